package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/osse101/DogDaycare_Go/internal/domain"
	"github.com/osse101/DogDaycare_Go/internal/repository"
)

// DepartureStore keeps the departure history in the departures table
type DepartureStore struct {
	db *sql.DB
}

var _ repository.Departures = (*DepartureStore)(nil)

// NewDepartureStore wraps an opened database
func NewDepartureStore(db *sql.DB) *DepartureStore {
	return &DepartureStore{db: db}
}

func (s *DepartureStore) Record(ctx context.Context, deps ...domain.Departure) error {
	if len(deps) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO departures (dog_id, name, breed, trait, score, success, payout, event, departed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, d := range deps {
		_, err := stmt.ExecContext(ctx,
			d.DogID, d.Name, string(d.Breed), string(d.Trait), d.Score, d.Success, d.Payout,
			string(d.Event), d.DepartedAt.UTC().Format(time.RFC3339Nano),
		)
		if err != nil {
			return fmt.Errorf("failed to record departure %s: %w", d.DogID, err)
		}
	}
	return tx.Commit()
}

func (s *DepartureStore) Recent(ctx context.Context, limit int) ([]domain.Departure, error) {
	if limit <= 0 {
		limit = -1 // no limit
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT dog_id, name, breed, trait, score, success, payout, event, departed_at
		FROM (
			SELECT * FROM departures ORDER BY departure_id DESC LIMIT ?
		) ORDER BY departure_id ASC
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query departures: %w", err)
	}
	defer rows.Close()

	deps := []domain.Departure{}
	for rows.Next() {
		var (
			d                   domain.Departure
			breed, trait, event string
			departedAt          string
		)
		if err := rows.Scan(&d.DogID, &d.Name, &breed, &trait, &d.Score, &d.Success, &d.Payout, &event, &departedAt); err != nil {
			return nil, fmt.Errorf("failed to scan departure: %w", err)
		}
		d.Breed = domain.Breed(breed)
		d.Trait = domain.TraitType(trait)
		d.Event = domain.EventType(event)
		if d.DepartedAt, err = time.Parse(time.RFC3339Nano, departedAt); err != nil {
			return nil, fmt.Errorf("failed to parse departure time: %w", err)
		}
		deps = append(deps, d)
	}
	return deps, rows.Err()
}
