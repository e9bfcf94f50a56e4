package event

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Actors recorded on dog interaction events
const (
	ActorPlayer = "player"
)

// Reasons attached to session change notifications
const (
	ReasonTick     = "tick"
	ReasonInteract = "interact"
	ReasonUpgrade  = "upgrade"
	ReasonSlot     = "slot"
	ReasonHire     = "hire"
	ReasonStart    = "start"
	ReasonReset    = "reset"
	ReasonSpawn    = "spawn"
	ReasonLoad     = "load"
)

// Log message constants
const (
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
	LogMsgPublishFailed      = "Event publish failed"
)
