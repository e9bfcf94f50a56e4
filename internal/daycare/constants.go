package daycare

// Generation constants
const (
	// NoTraitChance is the probability a generated dog has no special trait
	NoTraitChance = 0.2

	DogIDPrefix    = "dog-"
	WorkerIDPrefix = "worker-"

	// TimePrecision is the number of decimals countdowns are rounded to each tick
	TimePrecision = 6
)

// Departure ledger
const (
	DefaultLedgerSize = 200
)

// Log messages
const (
	LogMsgSessionLoaded      = "Loaded saved session"
	LogMsgSessionDefault     = "No saved session, starting a fresh daycare"
	LogMsgSessionLoadFailed  = "Failed to load saved session, starting fresh"
	LogMsgClearFailed        = "Failed to clear saved session"
	LogMsgDogRetrieved       = "Dog retrieved"
	LogMsgDogDeparted        = "Dog departed"
	LogMsgDogSpawned         = "Dog arrived"
	LogMsgEventStarted       = "Global event started"
	LogMsgEventEnded         = "Global event ended"
	LogMsgInteraction        = "Player interaction"
	LogMsgPurchaseRejected   = "Purchase rejected"
	LogMsgUpgradePurchased   = "Upgrade purchased"
	LogMsgSlotPurchased      = "Slot purchased"
	LogMsgWorkerHired        = "Worker hired"
	LogMsgSessionStarted     = "Daycare opened"
	LogMsgSessionReset       = "Session reset"
	LogMsgPlayStateChanged   = "Play state changed"
	LogMsgPublishFailed      = "Failed to publish daycare event"
)
