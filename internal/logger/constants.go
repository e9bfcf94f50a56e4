package logger

// ContextKeyRequestID keys the request ID stored by WithRequestID
const ContextKeyRequestID = "request_id"

// Accepted LOG_LEVEL values; anything else means info
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Accepted LOG_FORMAT values
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

const (
	DefaultServiceName = "dog-daycare"
	DefaultVersion     = "dev"
	ProductionVersion  = "1.0.0"
)

// Environments that change logger behaviour
const (
	EnvironmentDev        = "dev"
	EnvironmentProduction = "prod"
)

// Attributes attached to every record
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)
