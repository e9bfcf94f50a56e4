package postgres

// Error messages
const (
	ErrMsgLoadSession     = "failed to load session"
	ErrMsgDecodeSession   = "failed to decode session"
	ErrMsgEncodeSession   = "failed to encode session"
	ErrMsgSaveSession     = "failed to save session"
	ErrMsgClearSession    = "failed to clear session"
	ErrMsgBeginTx         = "failed to begin transaction"
	ErrMsgRecordDeparture = "failed to record departure"
	ErrMsgQueryDepartures = "failed to query departures"
)

// Log messages
const (
	LogMsgRollbackFailed    = "Failed to rollback transaction"
	LogMsgMigrationsApplied = "Applied postgres migrations"
)
