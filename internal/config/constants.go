package config

import (
	"errors"
	"time"
)

// =============================================================================
// Environment Variable Names
// =============================================================================

const (
	EnvSchemaVersion = "ENV_SCHEMA_VERSION"

	EnvPort        = "PORT"
	EnvLogLevel    = "LOG_LEVEL"
	EnvLogFormat   = "LOG_FORMAT"
	EnvLogDir      = "LOG_DIR"
	EnvServiceName = "SERVICE_NAME"
	EnvVersion     = "VERSION"
	EnvEnvironment = "ENVIRONMENT"
	EnvAPIKey      = "API_KEY"

	EnvStoreDriver = "STORE_DRIVER"
	EnvSaveFile    = "SAVE_FILE"
	EnvSQLitePath  = "SQLITE_PATH"
	EnvHistoryFile = "HISTORY_FILE"

	EnvHistoryLimit     = "HISTORY_LIMIT"
	EnvAutosaveInterval = "AUTOSAVE_INTERVAL"
	EnvTrustedProxies   = "TRUSTED_PROXIES"

	EnvDBUser            = "DB_USER"
	EnvDBPassword        = "DB_PASSWORD"
	EnvDBHost            = "DB_HOST"
	EnvDBPort            = "DB_PORT"
	EnvDBName            = "DB_NAME"
	EnvDBMaxConns        = "DB_MAX_CONNS"
	EnvDBMaxConnIdleTime = "DB_MAX_CONN_IDLE_TIME"
	EnvDBMaxConnLifetime = "DB_MAX_CONN_LIFETIME"

	EnvBalanceFile = "BALANCE_FILE"
)

// =============================================================================
// Defaults
// =============================================================================

const (
	DefaultPort        = "8080"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultLogDir      = "logs"
	DefaultServiceName = "dog-daycare"
	DefaultVersion     = "dev"
	DefaultEnvironment = "dev"

	DefaultSaveFile    = "data/dogDaycare_saveData_v1.json"
	DefaultSQLitePath  = "data/daycare.db"
	DefaultHistoryFile = "data/departures.csv"
	DefaultDBName      = "dogdaycare"

	DefaultDBMaxConns        = 5
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute

	DefaultHistoryLimit     = 1000
	DefaultAutosaveInterval = 30 * time.Second
)

// Store drivers
const (
	StoreDriverMemory   = "memory"
	StoreDriverFile     = "file"
	StoreDriverSQLite   = "sqlite"
	StoreDriverPostgres = "postgres"
)

// Insecure example values shipped in .env.example
const (
	ExampleDBPassword = "change_this_secure_password"
	ExampleAPIKey     = "generate_with_openssl_rand_hex_32"
)

var (
	ErrUnknownStoreDriver = errors.New("unknown STORE_DRIVER")
	ErrInvalidBalance     = errors.New("invalid balance configuration")
)
