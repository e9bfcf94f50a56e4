package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of log files kept after cleanup
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting dog daycare"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Stores and Balance
// =============================================================================

const (
	LogMsgStoreOpened     = "Session store opened"
	LogMsgMigrationsRun   = "Database migrations applied"
	LogMsgBalanceLoaded   = "Balance loaded"
	ErrMsgOpenStore       = "failed to open store"
	ErrMsgConnectDatabase = "failed to connect to database"
	ErrMsgMigrateDatabase = "failed to migrate database"
	ErrMsgLoadBalance     = "failed to load balance"
)

// =============================================================================
// Event Handler Configuration
// =============================================================================

const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgWorkersSubscribed          = "Background workers subscribed"
	LogMsgStreamSubscribed           = "Stream hub subscribed"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
)

// =============================================================================
// Runtime
// =============================================================================

const (
	LogMsgRuntimeStarted    = "Simulation started"
	LogMsgAutosaveScheduled = "Periodic autosave scheduled"

	// JobAutosave names the periodic checkpoint job
	JobAutosave = "autosave"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgFinalSaveFailed      = "Final save failed"
	LogMsgFinalSaveDone        = "Final save written"
	LogMsgWorkerShutdownFailed = "Worker shutdown failed"
	LogMsgStoreCloseFailed     = "Store close failed"

	// Component names for shutdown logging
	ComponentSpawnWorker = "spawn"
)

// ShutdownTimeout bounds the whole graceful shutdown
const ShutdownTimeout = 10 * time.Second
