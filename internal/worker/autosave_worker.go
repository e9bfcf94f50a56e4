package worker

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/osse101/DogDaycare_Go/internal/domain"
	"github.com/osse101/DogDaycare_Go/internal/event"
	"github.com/osse101/DogDaycare_Go/internal/logger"
	"github.com/osse101/DogDaycare_Go/internal/metrics"
	"github.com/osse101/DogDaycare_Go/internal/repository"
)

// SaveSource supplies the snapshot to persist
type SaveSource interface {
	SaveData() *domain.SaveData
}

// AutosaveWorker persists the session after every state change. Saves run
// on the pool; changes arriving while a save is queued are folded into it,
// and each save writes the newest snapshot.
type AutosaveWorker struct {
	source  SaveSource
	repo    repository.Session
	pool    *Pool
	queued  atomic.Bool
	saves   atomic.Int64
	failure atomic.Int64
}

// NewAutosaveWorker creates a new AutosaveWorker
func NewAutosaveWorker(source SaveSource, repo repository.Session, pool *Pool) *AutosaveWorker {
	return &AutosaveWorker{
		source: source,
		repo:   repo,
		pool:   pool,
	}
}

// Subscribe subscribes the worker to relevant events
func (w *AutosaveWorker) Subscribe(bus event.Bus) {
	bus.Subscribe(event.SessionChanged, w.handleSessionChanged)
}

func (w *AutosaveWorker) handleSessionChanged(_ context.Context, _ event.Event) error {
	w.request()
	return nil
}

// request queues a save unless one is already waiting
func (w *AutosaveWorker) request() {
	if !w.queued.CompareAndSwap(false, true) {
		return
	}
	if !w.pool.TryEnqueue(JobFunc(w.process)) {
		// Queue full or stopped; the next change retries
		w.queued.Store(false)
	}
}

func (w *AutosaveWorker) process(ctx context.Context) error {
	// Cleared before reading so a change during the save queues another
	w.queued.Store(false)
	if err := w.save(ctx); err != nil {
		logger.FromContext(ctx).Warn(LogMsgAutosaveFailed, "error", err)
	}
	return nil
}

// Flush saves the current snapshot synchronously
func (w *AutosaveWorker) Flush(ctx context.Context) error {
	if err := w.save(ctx); err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgAutosaveFlushed)
	return nil
}

func (w *AutosaveWorker) save(ctx context.Context) error {
	if err := w.repo.Save(ctx, w.source.SaveData()); err != nil {
		w.failure.Add(1)
		metrics.Autosaves.WithLabelValues(metrics.ResultError).Inc()
		return fmt.Errorf("%s: %w", ErrMsgSaveSession, err)
	}
	w.saves.Add(1)
	metrics.Autosaves.WithLabelValues(metrics.ResultOK).Inc()
	return nil
}

// Stats reports completed and failed saves
func (w *AutosaveWorker) Stats() (saved, failed int64) {
	return w.saves.Load(), w.failure.Load()
}

// CheckpointJob returns a job that saves unconditionally, for periodic scheduling
func (w *AutosaveWorker) CheckpointJob() Job {
	return JobFunc(func(ctx context.Context) error {
		if err := w.save(ctx); err != nil {
			logger.FromContext(ctx).Warn(LogMsgAutosaveFailed, "error", err, "checkpoint", true)
		}
		return nil
	})
}
