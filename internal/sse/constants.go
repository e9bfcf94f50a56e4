package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 256

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 64
)

// SSE connection settings
const (
	// KeepaliveInterval is how often to send keepalive pings
	KeepaliveInterval = 30 * time.Second
)

// Stream event types that are not bus event types
const (
	// EventTypeSnapshot carries the full session after a change outside the tick
	EventTypeSnapshot = "session.snapshot"

	EventTypeConnected = "connected"

	// EventTypeKeepalive is the keepalive ping event type
	EventTypeKeepalive = "keepalive"
)

// Query parameters
const (
	QueryParamTypes = "types"
)

// Log messages
const (
	LogMsgClientConnected    = "Stream client connected"
	LogMsgClientDisconnected = "Stream client disconnected"
	LogMsgEventDropped       = "Stream broadcast buffer full, dropping event"
	LogMsgWriteError         = "Failed to write stream event"
	LogMsgSubscriberReady    = "Stream subscriber registered for event types"
	LogMsgInvalidPayload     = "Invalid stream event payload"
)
