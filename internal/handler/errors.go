package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidLimit          = "Invalid limit parameter"
	ErrMsgStreamUnavailable     = "Streaming is unavailable"
	ErrMsgHistoryUnavailable    = "Departure history is not configured"
	ErrMsgHistoryFailed         = "Failed to read departure history"
	ErrMsgExportFailed          = "Failed to export departures"
)

// Success messages for API responses
const (
	MsgDogInteracted    = "Dog is on it"
	MsgUpgradePurchased = "Upgrade purchased"
	MsgSlotPurchased    = "New slot unlocked"
	MsgWorkerHired      = "Worker hired"
	MsgDaycareOpened    = "Daycare opened"
	MsgPlayStateChanged = "Play state updated"
	MsgSessionReset     = "Session reset"
)

// Log messages
const (
	LogMsgDecodeFailed       = "Failed to decode request"
	LogMsgRequestRejected    = "Request rejected by service"
	LogMsgReadinessFailed    = "Readiness check failed"
	LogMsgEncodeFailed       = "Failed to encode JSON response"
	LogMsgWriteFailed        = "Failed to write response buffer"
	LogMsgWebsocketUpgrade   = "Websocket upgrade failed"
	LogMsgWebsocketWrite     = "Websocket write failed"
	LogMsgWebsocketConnected = "Websocket client connected"
	LogMsgWebsocketClosed    = "Websocket client disconnected"
)
