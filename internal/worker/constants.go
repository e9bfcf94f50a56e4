package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// ============================================================================
// Log Messages - Spawn Worker
// ============================================================================

// Log messages for spawn worker operations
const (
	LogMsgSpawnScheduled = "Scheduling dog arrival"
	LogMsgSpawnSkipped   = "Dog arrival skipped"
)

// ============================================================================
// Log Messages - Autosave and History Workers
// ============================================================================

// Log messages for persistence workers
const (
	LogMsgAutosaveFailed  = "Autosave failed"
	LogMsgAutosaveFlushed = "Session flushed to store"
	LogMsgHistoryQueued   = "Departure queued for history"
)

// Error messages
const (
	ErrMsgSaveSession     = "failed to save session"
	ErrMsgDecodeDeparture = "failed to decode departure"
	ErrMsgRecordDeparture = "failed to record departure"
)

// ============================================================================
// Pool sizing
// ============================================================================

// Defaults for the persistence pool. One worker keeps saves ordered.
const (
	DefaultPersistenceWorkers   = 1
	DefaultPersistenceQueueSize = 64
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
