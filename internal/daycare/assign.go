package daycare

import (
	"github.com/osse101/DogDaycare_Go/internal/domain"
)

// assignWorkers runs the greedy care heuristic once per worker, in hiring
// order. Feed affordability is checked against s.Money plus *moneyDelta,
// and feed costs are charged to *moneyDelta.
func (e *Engine) assignWorkers(s *domain.Session, moneyDelta *int) []domain.WorkerAction {
	var actions []domain.WorkerAction
	feedCost := e.FeedCost(s.Upgrades)
	wb := e.balance.Workers

	for _, w := range s.Workers {
		idx := s.AssignedDogIndex(w.ID)

		if idx != -1 {
			d := &s.Dogs[idx]
			if d.State != domain.DogStateIdle {
				// Wait out the current activity
				continue
			}
			if d.AllNeedsAbove(wb.SatisfiedThreshold) {
				d.WorkerID = ""
				idx = -1
			} else if act, ok := e.careFor(d, s.Money+*moneyDelta, feedCost, moneyDelta); ok {
				actions = append(actions, domain.WorkerAction{WorkerID: w.ID, DogID: d.ID, Action: act})
			}
		}

		if idx != -1 {
			continue
		}

		target := neediestDog(s.Dogs, wb.NeedThreshold)
		if target == -1 {
			continue
		}
		d := &s.Dogs[target]
		if act, ok := e.careFor(d, s.Money+*moneyDelta, feedCost, moneyDelta); ok {
			d.WorkerID = w.ID
			actions = append(actions, domain.WorkerAction{WorkerID: w.ID, DogID: d.ID, Action: act})
		}
	}
	return actions
}

// careFor starts the most urgent action on d: hunger first, then energy,
// then happiness. Feeding is skipped when available funds cannot cover it.
// It reports the action started, if any.
func (e *Engine) careFor(d *domain.Dog, available, feedCost int, moneyDelta *int) (domain.Action, bool) {
	act, ok := urgentAction(*d, e.balance.Workers.NeedThreshold)
	if !ok {
		return "", false
	}
	if act == domain.ActionFeed {
		if available < feedCost {
			return "", false
		}
		*moneyDelta -= feedCost
	}
	d.State, _ = act.TargetState()
	return act, true
}

// urgentAction picks the action for the first gauge below threshold in
// priority order hunger, energy, happiness
func urgentAction(d domain.Dog, threshold float64) (domain.Action, bool) {
	switch {
	case d.Hunger < threshold:
		return domain.ActionFeed, true
	case d.Energy < threshold:
		return domain.ActionSleep, true
	case d.Happiness < threshold:
		return domain.ActionPlay, true
	}
	return "", false
}

// neediestDog returns the index of the idle, unattended dog whose lowest
// gauge is smallest and below threshold, or -1. Earlier dogs win ties.
func neediestDog(dogs []domain.Dog, threshold float64) int {
	best := -1
	lowest := threshold
	for i, d := range dogs {
		if d.State != domain.DogStateIdle || d.WorkerID != "" {
			continue
		}
		if v := d.LowestNeed(); v < lowest {
			lowest = v
			best = i
		}
	}
	return best
}
