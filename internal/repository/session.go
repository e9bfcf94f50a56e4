package repository

import (
	"context"

	"github.com/osse101/DogDaycare_Go/internal/domain"
)

// Session defines the persistence contract for the daycare snapshot.
// Every implementation stores a single record under domain.SaveKey.
type Session interface {
	// Load returns the saved snapshot, or domain.ErrNoSavedSession when none exists
	Load(ctx context.Context) (*domain.SaveData, error)
	// Save replaces the saved snapshot
	Save(ctx context.Context, data *domain.SaveData) error
	// Clear removes the saved snapshot. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
	// Ping reports whether the backing store is reachable
	Ping(ctx context.Context) error
}

// Departures defines the persistence contract for the departure history.
// History outlives session resets.
type Departures interface {
	// Record appends departures to the history
	Record(ctx context.Context, deps ...domain.Departure) error
	// Recent returns up to limit departures, oldest first
	Recent(ctx context.Context, limit int) ([]domain.Departure, error)
}
