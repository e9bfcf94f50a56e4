package domain

import "time"

// Snapshot is the read model handed to the rendering layer.
type Snapshot struct {
	Money       int        `json:"money"`
	MaxDogs     int        `json:"max_dogs"`
	Dogs        []Dog      `json:"dogs"`
	Workers     []Worker   `json:"workers"`
	Upgrades    Upgrades   `json:"upgrades"`
	ActiveEvent *GameEvent `json:"active_event,omitempty"`
	DaycareName string     `json:"daycare_name"`
	HasStarted  bool       `json:"has_started"`
	IsPlaying   bool       `json:"is_playing"`
	FeedCost    int        `json:"feed_cost"`
	SlotCost    int        `json:"slot_cost"`
	Tick        uint64     `json:"tick"`
}

// Departure records the outcome of one dog's stay.
type Departure struct {
	DogID      string    `json:"dog_id" csv:"dog_id"`
	Name       string    `json:"name" csv:"name"`
	Breed      Breed     `json:"breed" csv:"breed"`
	Trait      TraitType `json:"trait" csv:"trait"`
	Score      int       `json:"score" csv:"score"`
	Success    bool      `json:"success" csv:"success"`
	Payout     int       `json:"payout" csv:"payout"`
	Event      EventType `json:"event,omitempty" csv:"event"`
	DepartedAt time.Time `json:"departed_at" csv:"departed_at"`
}

// WorkerAction records one care action a worker started.
type WorkerAction struct {
	WorkerID string `json:"worker_id"`
	DogID    string `json:"dog_id"`
	Action   Action `json:"action"`
}

// TickResult summarizes what one tick changed.
type TickResult struct {
	Tick          uint64
	MoneyDelta    int
	Departures    []Departure // dogs that turned RETRIEVED this tick
	Evicted       []Dog       // dogs removed after the grace window
	WorkerActions []WorkerAction
	EventStarted  *GameEvent
	EventEnded    *GameEvent
}
