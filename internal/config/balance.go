package config

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultBalanceYAML []byte

// Balance holds the simulation tuning: rates, prices and timings.
type Balance struct {
	Clock     ClockBalance     `yaml:"clock"`
	Needs     NeedsBalance     `yaml:"needs"`
	Activity  ActivityBalance  `yaml:"activity"`
	Departure DepartureBalance `yaml:"departure"`
	Economy   EconomyBalance   `yaml:"economy"`
	Events    EventBalance     `yaml:"events"`
	Workers   WorkerBalance    `yaml:"workers"`
	Spawn     SpawnBalance     `yaml:"spawn"`
}

// ClockBalance maps wall-clock ticks to simulated time.
type ClockBalance struct {
	TickInterval time.Duration `yaml:"tick_interval"` // wall-clock period between ticks
	TickSeconds  float64       `yaml:"tick_seconds"`  // simulated seconds per tick
}

// NeedsBalance holds per-tick decay of the three gauges.
type NeedsBalance struct {
	Max            float64 `yaml:"max"`
	HungerDecay    float64 `yaml:"hunger_decay"`
	HappinessDecay float64 `yaml:"happiness_decay"`
	EnergyDecay    float64 `yaml:"energy_decay"`
}

// ActivityBalance holds per-tick restoration while a dog is busy.
type ActivityBalance struct {
	EatBoost        float64 `yaml:"eat_boost"`
	EatBoostPremium float64 `yaml:"eat_boost_premium"`
	SleepBoost      float64 `yaml:"sleep_boost"`
	SleepBoostBed   float64 `yaml:"sleep_boost_bed"`
	PlayBoost       float64 `yaml:"play_boost"`
	PlayBoostToy    float64 `yaml:"play_boost_toy"`
	PlayEnergyCost  float64 `yaml:"play_energy_cost"`
	PlayMinEnergy   float64 `yaml:"play_min_energy"` // play stops at or below this energy
}

// DepartureBalance controls scoring and eviction of departing dogs.
type DepartureBalance struct {
	GraceSeconds     float64 `yaml:"grace_seconds"`
	SuccessThreshold float64 `yaml:"success_threshold"` // every gauge must be strictly above
	PayoutMultiplier float64 `yaml:"payout_multiplier"`
}

// EconomyBalance holds starting funds and prices.
type EconomyBalance struct {
	StartingMoney    int `yaml:"starting_money"`
	StartingCapacity int `yaml:"starting_capacity"`
	FeedCost         int `yaml:"feed_cost"`
	PremiumFeedCost  int `yaml:"premium_feed_cost"`
	SlotCostPerDog   int `yaml:"slot_cost_per_dog"`
	PremiumFoodCost  int `yaml:"premium_food_cost"`
	FancyToyCost     int `yaml:"fancy_toy_cost"`
	ComfyBedCost     int `yaml:"comfy_bed_cost"`
}

// EventBalance controls random global events.
type EventBalance struct {
	ChancePerTick   float64 `yaml:"chance_per_tick"`
	DurationSeconds float64 `yaml:"duration_seconds"`
}

// WorkerBalance controls the worker heuristic and hiring prices.
type WorkerBalance struct {
	NeedThreshold      float64 `yaml:"need_threshold"`      // act on gauges below this
	SatisfiedThreshold float64 `yaml:"satisfied_threshold"` // release when all gauges exceed this
	CandidateBaseCost  int     `yaml:"candidate_base_cost"` // multiplied by (hired + 1)
	CostJitter         int     `yaml:"cost_jitter"`
	MinCost            int     `yaml:"min_cost"`
	Efficiency         float64 `yaml:"efficiency"`
}

// SpawnBalance controls generated dogs and the spawn delay.
type SpawnBalance struct {
	Delay              time.Duration `yaml:"delay"`
	MinNeed            int           `yaml:"min_need"`
	NeedRange          int           `yaml:"need_range"`
	MinStaySeconds     int           `yaml:"min_stay_seconds"`
	StayRangeSeconds   int           `yaml:"stay_range_seconds"`
	MaxTime            float64       `yaml:"max_time"`
	InitialNeed        float64       `yaml:"initial_need"`
	InitialStaySeconds float64       `yaml:"initial_stay_seconds"`
}

// DefaultBalance returns the embedded default tuning.
func DefaultBalance() Balance {
	var b Balance
	if err := yaml.Unmarshal(defaultBalanceYAML, &b); err != nil {
		panic(fmt.Sprintf("config: embedded balance defaults are invalid: %v", err))
	}
	return b
}

// LoadBalance returns the embedded defaults overlaid with the YAML file at path.
// An empty path yields the defaults.
func LoadBalance(path string) (Balance, error) {
	b := DefaultBalance()
	if path == "" {
		return b, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Balance{}, fmt.Errorf("reading balance file: %w", err)
	}
	// Unmarshal into the defaults so only keys present in the file change
	if err := yaml.Unmarshal(data, &b); err != nil {
		return Balance{}, fmt.Errorf("parsing balance file: %w", err)
	}
	if err := b.Validate(); err != nil {
		return Balance{}, err
	}
	return b, nil
}

// Validate rejects tunings the engine cannot run with.
func (b Balance) Validate() error {
	switch {
	case b.Clock.TickInterval <= 0:
		return fmt.Errorf("%w: clock.tick_interval must be positive", ErrInvalidBalance)
	case b.Clock.TickSeconds <= 0:
		return fmt.Errorf("%w: clock.tick_seconds must be positive", ErrInvalidBalance)
	case b.Needs.Max <= 0:
		return fmt.Errorf("%w: needs.max must be positive", ErrInvalidBalance)
	case b.Events.ChancePerTick < 0 || b.Events.ChancePerTick > 1:
		return fmt.Errorf("%w: events.chance_per_tick must be within [0,1]", ErrInvalidBalance)
	case b.Economy.StartingCapacity < 1:
		return fmt.Errorf("%w: economy.starting_capacity must be at least 1", ErrInvalidBalance)
	case b.Spawn.NeedRange < 1 || b.Spawn.StayRangeSeconds < 1:
		return fmt.Errorf("%w: spawn ranges must be at least 1", ErrInvalidBalance)
	case b.Workers.CostJitter < 0:
		return fmt.Errorf("%w: workers.cost_jitter must not be negative", ErrInvalidBalance)
	}
	return nil
}
