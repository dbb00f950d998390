package config

const (
	// Configuration file paths
	ConfigPathCatalog = "configs/catalog.yaml"
)

// Defaults
const (
	DefaultPort             = 8080
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
	DefaultEnvironment      = "dev"
	DefaultServiceName      = "income-engine"
	DefaultVersion          = "dev"
	DefaultStartingMoney    = 250.0
	DefaultDailyHours       = 14.0
	DefaultEventSpawnChance = 0.15
	DefaultLogHistory       = 500
)
