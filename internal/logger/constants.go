package logger

// Level names accepted in LOG_LEVEL. "warning" is an alias of "warn".
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Formats accepted in LOG_FORMAT
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

const (
	DefaultServiceName = "arclab"
	CLIServiceName     = "arclab-cli"
	DefaultVersion     = "dev"
)

// Environments that turn on source locations
const (
	EnvironmentDev         = "dev"
	EnvironmentDevelopment = "development"
	EnvironmentTest        = "test"
	EnvironmentProduction  = "prod"
)

// Attribute keys attached to every record or by middleware
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)
