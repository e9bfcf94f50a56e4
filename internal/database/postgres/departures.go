package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/DogDaycare_Go/internal/domain"
	"github.com/osse101/DogDaycare_Go/internal/repository"
)

// DepartureStore keeps the departure history in the departures table
type DepartureStore struct {
	pool *pgxpool.Pool
}

var _ repository.Departures = (*DepartureStore)(nil)

// NewDepartureStore creates a new DepartureStore
func NewDepartureStore(pool *pgxpool.Pool) *DepartureStore {
	return &DepartureStore{pool: pool}
}

// Record inserts every departure in a single batched transaction
func (s *DepartureStore) Record(ctx context.Context, deps ...domain.Departure) error {
	if len(deps) == 0 {
		return nil
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgBeginTx, err)
	}
	defer SafeRollback(ctx, tx)

	batch := &pgx.Batch{}
	for _, d := range deps {
		batch.Queue(`
			INSERT INTO departures (dog_id, name, breed, trait, score, success, payout, event, departed_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, d.DogID, d.Name, string(d.Breed), string(d.Trait), d.Score, d.Success, d.Payout, string(d.Event), d.DepartedAt)
	}
	br := tx.SendBatch(ctx, batch)
	for _, d := range deps {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return fmt.Errorf("%s %s: %w", ErrMsgRecordDeparture, d.DogID, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgRecordDeparture, err)
	}
	return tx.Commit(ctx)
}

// Recent returns up to limit departures, oldest first. A limit of zero or less returns all.
func (s *DepartureStore) Recent(ctx context.Context, limit int) ([]domain.Departure, error) {
	var lim any
	if limit > 0 {
		lim = limit
	}
	rows, err := s.pool.Query(ctx, `
		SELECT dog_id, name, breed, trait, score, success, payout, event, departed_at
		FROM (
			SELECT * FROM departures ORDER BY departure_id DESC LIMIT $1
		) recent ORDER BY departure_id ASC
	`, lim)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgQueryDepartures, err)
	}

	deps, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Departure, error) {
		var (
			d                   domain.Departure
			breed, trait, event string
		)
		err := row.Scan(&d.DogID, &d.Name, &breed, &trait, &d.Score, &d.Success, &d.Payout, &event, &d.DepartedAt)
		d.Breed = domain.Breed(breed)
		d.Trait = domain.TraitType(trait)
		d.Event = domain.EventType(event)
		d.DepartedAt = d.DepartedAt.UTC()
		return d, err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgQueryDepartures, err)
	}
	if deps == nil {
		deps = []domain.Departure{}
	}
	return deps, nil
}
