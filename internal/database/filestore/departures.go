package filestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/osse101/DogDaycare_Go/internal/domain"
	"github.com/osse101/DogDaycare_Go/internal/repository"
)

// DepartureStore appends departures to a CSV file
type DepartureStore struct {
	path string
}

var _ repository.Departures = (*DepartureStore)(nil)

// NewDepartureStore creates a store writing to path
func NewDepartureStore(path string) *DepartureStore {
	return &DepartureStore{path: path}
}

// Record appends deps, writing the header when the file is new
func (s *DepartureStore) Record(ctx context.Context, deps ...domain.Departure) error {
	if len(deps) == 0 {
		return nil
	}
	return withLock(ctx, s.path, func() error {
		info, err := os.Stat(s.path)
		isNew := errors.Is(err, fs.ErrNotExist) || (err == nil && info.Size() == 0)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("checking history file: %w", err)
		}

		f, err := os.OpenFile(s.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, FilePerm)
		if err != nil {
			return fmt.Errorf("opening history file: %w", err)
		}
		defer f.Close()

		if isNew {
			err = gocsv.Marshal(deps, f)
		} else {
			err = gocsv.MarshalWithoutHeaders(deps, f)
		}
		if err != nil {
			return fmt.Errorf("appending history: %w", err)
		}
		return nil
	})
}

// Recent returns the last limit departures, oldest first. A limit of zero
// or less returns everything.
func (s *DepartureStore) Recent(ctx context.Context, limit int) ([]domain.Departure, error) {
	var deps []domain.Departure
	err := withLock(ctx, s.path, func() error {
		f, err := os.Open(s.path)
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("opening history file: %w", err)
		}
		defer f.Close()

		if err := gocsv.UnmarshalFile(f, &deps); err != nil && !errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return fmt.Errorf("reading history: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if limit > 0 && len(deps) > limit {
		deps = deps[len(deps)-limit:]
	}
	if deps == nil {
		deps = []domain.Departure{}
	}
	return deps, nil
}
