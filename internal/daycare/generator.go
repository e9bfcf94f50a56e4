package daycare

import (
	"github.com/google/uuid"

	"github.com/osse101/DogDaycare_Go/internal/config"
	"github.com/osse101/DogDaycare_Go/internal/domain"
	"github.com/osse101/DogDaycare_Go/internal/utils"
)

// Generator produces randomized dogs, workers and events.
// It is not safe for concurrent use; the service serializes access.
type Generator struct {
	rng     utils.Rand
	balance config.Balance
}

// NewGenerator creates a generator drawing from rng
func NewGenerator(rng utils.Rand, balance config.Balance) *Generator {
	return &Generator{rng: rng, balance: balance}
}

// RandomTrait returns NONE with probability NoTraitChance, otherwise a
// uniformly chosen special trait
func (g *Generator) RandomTrait() domain.TraitType {
	if g.rng.Float64() < NoTraitChance {
		return domain.TraitNone
	}
	return utils.Pick(g.rng, domain.SpecialTraits)
}

// Dog generates a new guest with gauges in [min_need, min_need+need_range)
// and a stay in [min_stay, min_stay+stay_range) seconds
func (g *Generator) Dog() domain.Dog {
	sp := g.balance.Spawn
	breed := utils.Pick(g.rng, domain.Breeds)
	name := utils.Pick(g.rng, domain.DogNames)
	trait := g.RandomTrait()

	return domain.Dog{
		ID:            DogIDPrefix + uuid.NewString(),
		Name:          name,
		Breed:         breed,
		Trait:         trait,
		Hunger:        float64(sp.MinNeed + g.rng.IntN(sp.NeedRange)),
		Happiness:     float64(sp.MinNeed + g.rng.IntN(sp.NeedRange)),
		Energy:        float64(sp.MinNeed + g.rng.IntN(sp.NeedRange)),
		State:         domain.DogStateIdle,
		Color:         domain.GeneratedDogColor,
		TimeRemaining: float64(sp.MinStaySeconds + g.rng.IntN(sp.StayRangeSeconds)),
		MaxTime:       sp.MaxTime,
	}
}

// InitialDog is the single guest of a fresh daycare
func (g *Generator) InitialDog() domain.Dog {
	sp := g.balance.Spawn
	return domain.Dog{
		ID:            DogIDPrefix + uuid.NewString(),
		Name:          utils.Pick(g.rng, domain.DogNames),
		Breed:         domain.BreedGoldenRetriever,
		Trait:         domain.TraitNone,
		Hunger:        sp.InitialNeed,
		Happiness:     sp.InitialNeed,
		Energy:        sp.InitialNeed,
		State:         domain.DogStateIdle,
		Color:         domain.InitialDogColor,
		TimeRemaining: sp.InitialStaySeconds,
		MaxTime:       sp.InitialStaySeconds,
	}
}

// Worker generates a hiring candidate priced around baseCost
func (g *Generator) Worker(baseCost int) domain.Worker {
	wb := g.balance.Workers
	name := utils.Pick(g.rng, domain.WorkerNames)
	avatar := utils.Pick(g.rng, domain.WorkerAvatars)

	cost := baseCost
	if wb.CostJitter > 0 {
		cost += g.rng.IntN(2*wb.CostJitter) - wb.CostJitter
	}

	return domain.Worker{
		ID:         WorkerIDPrefix + uuid.NewString(),
		Name:       name,
		Avatar:     avatar,
		Cost:       max(wb.MinCost, cost),
		Efficiency: wb.Efficiency,
	}
}

// Event rolls for a new global event. It returns nil most ticks.
func (g *Generator) Event() *domain.GameEvent {
	if g.rng.Float64() >= g.balance.Events.ChancePerTick {
		return nil
	}
	t := utils.Pick(g.rng, domain.EventTypes)
	evt := domain.NewGameEvent(uuid.NewString(), t, g.balance.Events.DurationSeconds)
	return &evt
}

// DefaultSession builds a fresh daycare
func (g *Generator) DefaultSession() domain.Session {
	return domain.Session{
		Money:    g.balance.Economy.StartingMoney,
		MaxDogs:  g.balance.Economy.StartingCapacity,
		Dogs:     []domain.Dog{g.InitialDog()},
		Workers:  []domain.Worker{},
		Upgrades: domain.Upgrades{},
	}
}
