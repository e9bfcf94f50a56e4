// Package postgres implements the daycare repositories on PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/DogDaycare_Go/internal/domain"
	"github.com/osse101/DogDaycare_Go/internal/repository"
)

// SessionStore keeps the session snapshot as a JSONB row keyed by domain.SaveKey
type SessionStore struct {
	pool *pgxpool.Pool
}

var _ repository.Session = (*SessionStore)(nil)

// NewSessionStore creates a new SessionStore
func NewSessionStore(pool *pgxpool.Pool) *SessionStore {
	return &SessionStore{pool: pool}
}

func (s *SessionStore) Load(ctx context.Context) (*domain.SaveData, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx,
		`SELECT data FROM daycare_sessions WHERE save_key = $1`, domain.SaveKey,
	).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNoSavedSession
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadSession, err)
	}

	var data domain.SaveData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgDecodeSession, err)
	}
	return &data, nil
}

func (s *SessionStore) Save(ctx context.Context, data *domain.SaveData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgEncodeSession, err)
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO daycare_sessions (save_key, data, saved_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (save_key) DO UPDATE SET data = EXCLUDED.data, saved_at = NOW()
	`, domain.SaveKey, raw)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgSaveSession, err)
	}
	return nil
}

func (s *SessionStore) Clear(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM daycare_sessions WHERE save_key = $1`, domain.SaveKey); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgClearSession, err)
	}
	return nil
}

func (s *SessionStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}
