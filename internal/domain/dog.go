package domain

// DogState is a dog's position in the care state machine.
type DogState string

const (
	DogStateIdle      DogState = "IDLE"
	DogStateEating    DogState = "EATING"
	DogStatePlaying   DogState = "PLAYING"
	DogStateSleeping  DogState = "SLEEPING"
	DogStateRetrieved DogState = "RETRIEVED"
)

// IsBusy reports whether the dog is in a care activity.
func (s DogState) IsBusy() bool {
	return s == DogStateEating || s == DogStatePlaying || s == DogStateSleeping
}

// Action is a care action a player or worker performs on a dog.
type Action string

const (
	ActionFeed  Action = "FEED"
	ActionPlay  Action = "PLAY"
	ActionSleep Action = "SLEEP"
)

// TargetState returns the state an action puts a dog into.
func (a Action) TargetState() (DogState, bool) {
	switch a {
	case ActionFeed:
		return DogStateEating, true
	case ActionPlay:
		return DogStatePlaying, true
	case ActionSleep:
		return DogStateSleeping, true
	}
	return "", false
}

// Dog is a single guest of the daycare.
// JSON field names match the persisted save format.
type Dog struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Breed         Breed     `json:"breed"`
	Trait         TraitType `json:"trait"`
	Hunger        float64   `json:"hunger"`
	Happiness     float64   `json:"happiness"`
	Energy        float64   `json:"energy"`
	State         DogState  `json:"state"`
	Color         string    `json:"color"`
	TimeRemaining float64   `json:"timeRemaining"`
	MaxTime       float64   `json:"maxTime"`
	Payout        *int      `json:"payout,omitempty"`   // set once, on retrieval
	WorkerID      string    `json:"workerId,omitempty"` // weak reference to the attending worker
	IsVIP         bool      `json:"isVIP,omitempty"`
}

// LowestNeed returns the minimum of the three gauges.
func (d Dog) LowestNeed() float64 {
	return min(d.Hunger, d.Happiness, d.Energy)
}

// AverageNeed returns the mean of the three gauges.
func (d Dog) AverageNeed() float64 {
	return (d.Hunger + d.Happiness + d.Energy) / 3
}

// AllNeedsAbove reports whether every gauge is strictly greater than threshold.
func (d Dog) AllNeedsAbove(threshold float64) bool {
	return d.Hunger > threshold && d.Happiness > threshold && d.Energy > threshold
}

// PayoutValue returns the recorded payout, or 0 when none was recorded.
func (d Dog) PayoutValue() int {
	if d.Payout == nil {
		return 0
	}
	return *d.Payout
}
