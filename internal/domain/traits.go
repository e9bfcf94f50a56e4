package domain

// TraitType is a dog's temperament.
type TraitType string

const (
	TraitNone    TraitType = "NONE"
	TraitGlutton TraitType = "GLUTTON"
	TraitHyper   TraitType = "HYPER"
	TraitLazy    TraitType = "LAZY"
	TraitPlayful TraitType = "PLAYFUL"
	TraitLovable TraitType = "LOVABLE"
)

// TraitModifiers are multipliers applied to decay rates and payout.
// A value of 1 leaves the base rate unchanged.
type TraitModifiers struct {
	HungerDecay    float64 `json:"hungerDecay"`
	HappinessDecay float64 `json:"happinessDecay"`
	EnergyDecay    float64 `json:"energyDecay"`
	Payout         float64 `json:"payout"`
}

// TraitConfig describes a trait for display and simulation.
type TraitConfig struct {
	Name        string         `json:"name"`
	Icon        string         `json:"icon"`
	Description string         `json:"description"`
	Modifiers   TraitModifiers `json:"modifiers"`
}

var neutralModifiers = TraitModifiers{HungerDecay: 1, HappinessDecay: 1, EnergyDecay: 1, Payout: 1}

// Traits is the static trait table.
var Traits = map[TraitType]TraitConfig{
	TraitNone: {
		Name:        "Standard",
		Description: "Just a normal, good dog.",
		Modifiers:   neutralModifiers,
	},
	TraitGlutton: {
		Name:        "Glutton",
		Icon:        "🍔",
		Description: "Gets hungry faster.",
		Modifiers:   TraitModifiers{HungerDecay: 1.5, HappinessDecay: 1, EnergyDecay: 1, Payout: 1},
	},
	TraitHyper: {
		Name:        "Hyper",
		Icon:        "⚡",
		Description: "Burns energy quickly.",
		Modifiers:   TraitModifiers{HungerDecay: 1, HappinessDecay: 1, EnergyDecay: 1.5, Payout: 1},
	},
	TraitLazy: {
		Name:        "Lazy",
		Icon:        "💤",
		Description: "Slow energy decay.",
		Modifiers:   TraitModifiers{HungerDecay: 1, HappinessDecay: 1, EnergyDecay: 0.5, Payout: 1},
	},
	TraitPlayful: {
		Name:        "Playful",
		Icon:        "🎾",
		Description: "Needs constant attention.",
		Modifiers:   TraitModifiers{HungerDecay: 1, HappinessDecay: 1.5, EnergyDecay: 1, Payout: 1},
	},
	TraitLovable: {
		Name:        "Lovable",
		Icon:        "💖",
		Description: "Owners tip extra!",
		Modifiers:   TraitModifiers{HungerDecay: 1, HappinessDecay: 1, EnergyDecay: 1, Payout: 1.5},
	},
}

// SpecialTraits lists every trait other than NONE in a stable order.
var SpecialTraits = []TraitType{TraitGlutton, TraitHyper, TraitLazy, TraitPlayful, TraitLovable}

// Config returns the table entry for t. Unknown traits behave like NONE.
func (t TraitType) Config() TraitConfig {
	if cfg, ok := Traits[t]; ok {
		return cfg
	}
	return Traits[TraitNone]
}
