package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/osse101/DogDaycare_Go/internal/domain"
	"github.com/osse101/DogDaycare_Go/internal/repository"
)

// SessionStore keeps the session snapshot as a JSON row keyed by domain.SaveKey
type SessionStore struct {
	db *sql.DB
}

var _ repository.Session = (*SessionStore)(nil)

// NewSessionStore wraps an opened database
func NewSessionStore(db *sql.DB) *SessionStore {
	return &SessionStore{db: db}
}

func (s *SessionStore) Load(ctx context.Context) (*domain.SaveData, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM daycare_sessions WHERE save_key = ?`, domain.SaveKey,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNoSavedSession
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var data domain.SaveData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &data, nil
}

func (s *SessionStore) Save(ctx context.Context, data *domain.SaveData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO daycare_sessions (save_key, data, saved_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (save_key) DO UPDATE SET data = excluded.data, saved_at = excluded.saved_at
	`, domain.SaveKey, string(raw))
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (s *SessionStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM daycare_sessions WHERE save_key = ?`, domain.SaveKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func (s *SessionStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
