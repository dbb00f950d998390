package logger

// Level names accepted by Config.Level
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Format names accepted by Config.Format
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

const (
	DefaultVersion = "dev"
	CLIServiceName = "income-simulate"
	EnvironmentCLI = "cli"
)

// Attribute keys added to every record
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)
