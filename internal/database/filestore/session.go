// Package filestore persists the daycare to local files: the session as a
// JSON document and the departure history as CSV. A lock file next to each
// guards against concurrent writers, including other processes.
package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/osse101/DogDaycare_Go/internal/domain"
	"github.com/osse101/DogDaycare_Go/internal/repository"
)

// SessionStore keeps the session snapshot in a single JSON file
type SessionStore struct {
	path string
}

var _ repository.Session = (*SessionStore)(nil)

// NewSessionStore creates a store writing to path
func NewSessionStore(path string) *SessionStore {
	return &SessionStore{path: path}
}

// Path returns the save file location
func (s *SessionStore) Path() string {
	return s.path
}

// Load reads the save file
func (s *SessionStore) Load(ctx context.Context) (*domain.SaveData, error) {
	var data *domain.SaveData
	err := withLock(ctx, s.path, func() error {
		raw, err := os.ReadFile(s.path)
		if errors.Is(err, fs.ErrNotExist) {
			return domain.ErrNoSavedSession
		}
		if err != nil {
			return fmt.Errorf("reading save file: %w", err)
		}

		var decoded domain.SaveData
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return fmt.Errorf("decoding save file: %w", err)
		}
		data = &decoded
		return nil
	})
	return data, err
}

// Save rewrites the save file
func (s *SessionStore) Save(ctx context.Context, data *domain.SaveData) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding save file: %w", err)
	}
	return withLock(ctx, s.path, func() error {
		return writeAtomic(s.path, raw)
	})
}

// Clear deletes the save file
func (s *SessionStore) Clear(ctx context.Context) error {
	return withLock(ctx, s.path, func() error {
		if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("removing save file: %w", err)
		}
		return nil
	})
}

// Ping checks that the save directory exists or can be created
func (s *SessionStore) Ping(_ context.Context) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return fmt.Errorf("save directory unavailable: %w", err)
	}
	return nil
}
