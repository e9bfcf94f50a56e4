package daycare

import (
	"math"
	"time"

	"github.com/osse101/DogDaycare_Go/internal/config"
	"github.com/osse101/DogDaycare_Go/internal/domain"
	"github.com/osse101/DogDaycare_Go/internal/utils"
)

// Engine advances a session by one tick. It holds no session state of its
// own; callers own the session and serialize access to it.
type Engine struct {
	balance config.Balance
	gen     *Generator
}

// NewEngine creates an engine using gen for event rolls
func NewEngine(balance config.Balance, gen *Generator) *Engine {
	return &Engine{balance: balance, gen: gen}
}

// FeedCost returns the price of one meal given the owned upgrades
func (e *Engine) FeedCost(u domain.Upgrades) int {
	if u.PremiumFood {
		return e.balance.Economy.PremiumFeedCost
	}
	return e.balance.Economy.FeedCost
}

// SlotCost returns the price of the next capacity slot
func (e *Engine) SlotCost(maxDogs int) int {
	return e.balance.Economy.SlotCostPerDog * maxDogs
}

// CandidateBaseCost returns the base hiring price after hired workers
func (e *Engine) CandidateBaseCost(hired int) int {
	return e.balance.Workers.CandidateBaseCost * (hired + 1)
}

// UpgradeCost returns the catalog price of key
func (e *Engine) UpgradeCost(key domain.UpgradeKey) (int, bool) {
	switch key {
	case domain.UpgradePremiumFood:
		return e.balance.Economy.PremiumFoodCost, true
	case domain.UpgradeFancyToy:
		return e.balance.Economy.FancyToyCost, true
	case domain.UpgradeComfyBed:
		return e.balance.Economy.ComfyBedCost, true
	}
	return 0, false
}

// Tick runs one simulation step on s:
//  1. advance every dog using the event active at the start of the tick
//  2. evict dogs whose grace window elapsed, collecting their payouts
//  3. run the worker heuristic against money plus the pending delta
//  4. apply the accumulated delta once
//  5. advance or roll the global event
func (e *Engine) Tick(s *domain.Session, now time.Time) domain.TickResult {
	var result domain.TickResult
	evt := s.ActiveEvent

	for i := range s.Dogs {
		if dep, ok := e.advanceDog(&s.Dogs[i], s.Upgrades, evt); ok {
			dep.DepartedAt = now
			result.Departures = append(result.Departures, dep)
		}
	}

	moneyDelta := 0
	stay := s.Dogs[:0]
	for _, d := range s.Dogs {
		if d.State == domain.DogStateRetrieved && d.TimeRemaining <= -e.balance.Departure.GraceSeconds {
			moneyDelta += max(0, d.PayoutValue())
			result.Evicted = append(result.Evicted, d)
			continue
		}
		stay = append(stay, d)
	}
	// Zero the tail so evicted dogs do not linger in the backing array
	clear(s.Dogs[len(stay):])
	s.Dogs = stay

	result.WorkerActions = e.assignWorkers(s, &moneyDelta)

	s.Money += moneyDelta
	result.MoneyDelta = moneyDelta

	result.EventStarted, result.EventEnded = e.advanceEvent(s)
	return result
}

// advanceDog applies decay, activity effects and the departure countdown to
// d. It reports the departure record on the tick d becomes RETRIEVED.
func (e *Engine) advanceDog(d *domain.Dog, u domain.Upgrades, evt *domain.GameEvent) (domain.Departure, bool) {
	dt := e.balance.Clock.TickSeconds

	if d.State == domain.DogStateRetrieved {
		d.TimeRemaining = utils.RoundTo(d.TimeRemaining-dt, TimePrecision)
		return domain.Departure{}, false
	}

	remaining := utils.RoundTo(d.TimeRemaining-dt, TimePrecision)
	if remaining <= 0 {
		// Score on the gauges as they stood when time ran out; they stay frozen
		dep := e.score(d, evt)
		d.TimeRemaining = remaining
		d.State = domain.DogStateRetrieved
		d.WorkerID = ""
		payout := dep.Payout
		d.Payout = &payout
		return dep, true
	}

	traitMods := d.Trait.Config().Modifiers
	eventMods := evt.Modifiers()
	needs := e.balance.Needs
	act := e.balance.Activity

	hunger := d.Hunger - needs.HungerDecay*traitMods.HungerDecay
	happiness := d.Happiness - needs.HappinessDecay*eventMods.HappinessDecay*traitMods.HappinessDecay
	energy := d.Energy - needs.EnergyDecay*eventMods.EnergyDecay*traitMods.EnergyDecay

	switch d.State {
	case domain.DogStateEating:
		hunger += pick(u.PremiumFood, act.EatBoostPremium, act.EatBoost)
		if hunger >= needs.Max {
			d.State = domain.DogStateIdle
		}
	case domain.DogStateSleeping:
		energy += pick(u.ComfyBed, act.SleepBoostBed, act.SleepBoost)
		if energy >= needs.Max {
			d.State = domain.DogStateIdle
		}
	case domain.DogStatePlaying:
		happiness += pick(u.FancyToy, act.PlayBoostToy, act.PlayBoost)
		energy -= act.PlayEnergyCost
		if happiness >= needs.Max || energy <= act.PlayMinEnergy {
			d.State = domain.DogStateIdle
		}
	}

	d.Hunger = utils.Clamp(hunger, 0, needs.Max)
	d.Happiness = utils.Clamp(happiness, 0, needs.Max)
	d.Energy = utils.Clamp(energy, 0, needs.Max)
	d.TimeRemaining = remaining
	return domain.Departure{}, false
}

// score computes the departure outcome of d under evt
func (e *Engine) score(d *domain.Dog, evt *domain.GameEvent) domain.Departure {
	dep := domain.Departure{
		DogID:   d.ID,
		Name:    d.Name,
		Breed:   d.Breed,
		Trait:   d.Trait,
		Score:   int(math.Round(d.AverageNeed())),
		Success: d.AllNeedsAbove(e.balance.Departure.SuccessThreshold),
	}
	if evt != nil {
		dep.Event = evt.Type
	}
	if !dep.Success {
		return dep
	}

	payout := int(math.Floor(float64(dep.Score) * e.balance.Departure.PayoutMultiplier))
	if mult := d.Trait.Config().Modifiers.Payout; mult != 1 {
		payout = int(math.Floor(float64(payout) * mult))
	}
	if m := evt.Modifiers().Payout; m != 1 {
		payout = int(math.Floor(float64(payout) * m))
	}
	dep.Payout = payout
	return dep
}

// advanceEvent counts the active event down, or rolls for a new one when
// none was active at the start of the step
func (e *Engine) advanceEvent(s *domain.Session) (started, ended *domain.GameEvent) {
	if s.ActiveEvent != nil {
		left := utils.RoundTo(s.ActiveEvent.Duration-e.balance.Clock.TickSeconds, TimePrecision)
		if left <= 0 {
			ended = s.ActiveEvent
			s.ActiveEvent = nil
			return nil, ended
		}
		next := *s.ActiveEvent
		next.Duration = left
		s.ActiveEvent = &next
		return nil, nil
	}

	if evt := e.gen.Event(); evt != nil {
		s.ActiveEvent = evt
		return evt, nil
	}
	return nil, nil
}

func pick(cond bool, yes, no float64) float64 {
	if cond {
		return yes
	}
	return no
}
