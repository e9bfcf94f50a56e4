package memory

import (
	"context"
	"sync"

	"github.com/osse101/DogDaycare_Go/internal/domain"
	"github.com/osse101/DogDaycare_Go/internal/repository"
)

// DefaultHistoryLimit bounds how many departures DepartureStore keeps
const DefaultHistoryLimit = 10_000

// DepartureStore is an in-memory repository.Departures. The oldest entries
// are dropped once limit is reached.
type DepartureStore struct {
	mu    sync.RWMutex
	deps  []domain.Departure
	limit int
}

var _ repository.Departures = (*DepartureStore)(nil)

// NewDepartureStore creates a store keeping up to limit departures
func NewDepartureStore(limit int) *DepartureStore {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &DepartureStore{limit: limit}
}

// Record appends deps, trimming the oldest beyond the limit
func (s *DepartureStore) Record(_ context.Context, deps ...domain.Departure) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.deps = append(s.deps, deps...)
	if over := len(s.deps) - s.limit; over > 0 {
		s.deps = append([]domain.Departure(nil), s.deps[over:]...)
	}
	return nil
}

// Recent returns the newest limit departures, oldest first
func (s *DepartureStore) Recent(_ context.Context, limit int) ([]domain.Departure, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	start := 0
	if limit > 0 && len(s.deps) > limit {
		start = len(s.deps) - limit
	}
	return append([]domain.Departure{}, s.deps[start:]...), nil
}
