// Package memory keeps the daycare snapshot in process memory. Nothing
// survives a restart; it backs tests and STORE_DRIVER=memory.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/osse101/DogDaycare_Go/internal/domain"
	"github.com/osse101/DogDaycare_Go/internal/repository"
)

// SessionStore is an in-memory repository.Session
type SessionStore struct {
	mu     sync.RWMutex
	record []byte
	saves  int
}

var _ repository.Session = (*SessionStore)(nil)

// NewSessionStore creates an empty store
func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// Load decodes the stored record. Records are kept encoded so callers never
// share memory with the store.
func (s *SessionStore) Load(_ context.Context) (*domain.SaveData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.record == nil {
		return nil, domain.ErrNoSavedSession
	}
	var data domain.SaveData
	if err := json.Unmarshal(s.record, &data); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &data, nil
}

// Save replaces the stored record
func (s *SessionStore) Save(_ context.Context, data *domain.SaveData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.record = raw
	s.saves++
	return nil
}

// Clear drops the stored record
func (s *SessionStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record = nil
	return nil
}

// Ping always succeeds
func (s *SessionStore) Ping(_ context.Context) error {
	return nil
}

// Saves returns how many times Save succeeded
func (s *SessionStore) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}
