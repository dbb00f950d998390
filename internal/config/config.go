package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port             int
	LogLevel         string
	LogFormat        string
	Environment      string
	ServiceName      string
	Version          string
	CatalogPath      string
	RandomSeed       int64
	StartingMoney    float64
	DailyHours       float64
	DayInterval      time.Duration // 0 disables automatic day advancement
	EventSpawnChance float64
	LogHistory       int

	// HTTP API
	APIKey         string   // empty disables authentication
	TrustedProxies []string // remote addresses allowed to set X-Forwarded-For
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", DefaultVersion),
		CatalogPath: getEnv("CATALOG_PATH", ConfigPathCatalog),
		LogHistory:  getEnvAsInt("LOG_HISTORY", DefaultLogHistory),
		APIKey:      os.Getenv("API_KEY"),
	}

	if proxies := getEnv("TRUSTED_PROXIES", ""); proxies != "" {
		for _, p := range strings.Split(proxies, ",") {
			if p = strings.TrimSpace(p); p != "" {
				cfg.TrustedProxies = append(cfg.TrustedProxies, p)
			}
		}
	}

	port, err := strconv.Atoi(getEnv("PORT", strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	seed, err := strconv.ParseInt(getEnv("RANDOM_SEED", "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid RANDOM_SEED value: %w", err)
	}
	cfg.RandomSeed = seed

	if cfg.StartingMoney, err = getEnvAsFloat("STARTING_MONEY", DefaultStartingMoney); err != nil {
		return nil, err
	}
	if cfg.DailyHours, err = getEnvAsFloat("DAILY_HOURS", DefaultDailyHours); err != nil {
		return nil, err
	}
	if cfg.EventSpawnChance, err = getEnvAsFloat("EVENT_SPAWN_CHANCE", DefaultEventSpawnChance); err != nil {
		return nil, err
	}

	interval, err := time.ParseDuration(getEnv("DAY_INTERVAL", "0s"))
	if err != nil {
		return nil, fmt.Errorf("invalid DAY_INTERVAL value: %w", err)
	}
	cfg.DayInterval = interval

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects values the engine cannot run with
func (c *Config) Validate() error {
	if c.StartingMoney < 0 {
		return fmt.Errorf("STARTING_MONEY must not be negative, got %v", c.StartingMoney)
	}
	if c.DailyHours < 0 {
		return fmt.Errorf("DAILY_HOURS must not be negative, got %v", c.DailyHours)
	}
	if c.EventSpawnChance < 0 || c.EventSpawnChance > 1 {
		return fmt.Errorf("EVENT_SPAWN_CHANCE must be between 0 and 1, got %v", c.EventSpawnChance)
	}
	if c.DayInterval < 0 {
		return fmt.Errorf("DAY_INTERVAL must not be negative, got %s", c.DayInterval)
	}
	if c.CatalogPath == "" {
		return fmt.Errorf("CATALOG_PATH must be set")
	}
	return nil
}

// IsDevelopment reports whether the engine runs in a development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an integer environment variable, falling back to the
// default when unset or malformed
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnvAsFloat(key string, defaultValue float64) (float64, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return parsed, nil
}
