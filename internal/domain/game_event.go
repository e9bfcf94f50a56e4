package domain

// EventType identifies a global event.
type EventType string

const (
	EventHeatwave      EventType = "HEATWAVE"
	EventRain          EventType = "RAIN"
	EventAdoptionDrive EventType = "ADOPTION_DRIVE"
)

// EventModifiers are multipliers an active event applies to every dog.
type EventModifiers struct {
	HappinessDecay float64
	EnergyDecay    float64
	Payout         float64
}

// EventDefinition is the static description of an event type.
type EventDefinition struct {
	Type        EventType
	Name        string
	Description string
	Color       string
	Icon        string
	Modifiers   EventModifiers
}

// EventDefinitions is the static event table.
var EventDefinitions = map[EventType]EventDefinition{
	EventHeatwave: {
		Type:        EventHeatwave,
		Name:        "Heatwave",
		Description: "Blazing sun! Energy drains 2x faster.",
		Color:       "#ff9800",
		Icon:        "☀️",
		Modifiers:   EventModifiers{HappinessDecay: 1, EnergyDecay: 2, Payout: 1},
	},
	EventRain: {
		Type:        EventRain,
		Name:        "Rainy Day",
		Description: "Gloomy weather... Happiness drops faster.",
		Color:       "#607d8b",
		Icon:        "🌧️",
		Modifiers:   EventModifiers{HappinessDecay: 1.5, EnergyDecay: 1, Payout: 1},
	},
	EventAdoptionDrive: {
		Type:        EventAdoptionDrive,
		Name:        "Adoption Drive",
		Description: "Adoption fees are doubled!",
		Color:       "#e91e63",
		Icon:        "🎉",
		Modifiers:   EventModifiers{HappinessDecay: 1, EnergyDecay: 1, Payout: 2},
	},
}

// EventTypes lists every event type in a stable order for uniform selection.
var EventTypes = []EventType{EventHeatwave, EventRain, EventAdoptionDrive}

// GameEvent is an active, time-boxed global modifier.
type GameEvent struct {
	ID          string    `json:"id"`
	Type        EventType `json:"type"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Duration    float64   `json:"duration"` // remaining simulated seconds
	Color       string    `json:"color"`
	Icon        string    `json:"icon"`
}

// NewGameEvent instantiates an event of type t lasting duration seconds.
func NewGameEvent(id string, t EventType, duration float64) GameEvent {
	def := EventDefinitions[t]
	return GameEvent{
		ID:          id,
		Type:        t,
		Name:        def.Name,
		Description: def.Description,
		Duration:    duration,
		Color:       def.Color,
		Icon:        def.Icon,
	}
}

// Modifiers returns the multipliers of e, or neutral ones when e is nil.
func (e *GameEvent) Modifiers() EventModifiers {
	if e == nil {
		return EventModifiers{HappinessDecay: 1, EnergyDecay: 1, Payout: 1}
	}
	def, ok := EventDefinitions[e.Type]
	if !ok {
		return EventModifiers{HappinessDecay: 1, EnergyDecay: 1, Payout: 1}
	}
	return def.Modifiers
}
