package worker

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/DogDaycare_Go/internal/logger"
)

// BaseWorker provides common functionality for background workers that manage timers
type BaseWorker struct {
	mu       sync.Mutex
	timers   map[uuid.UUID]*time.Timer
	shutdown chan struct{}
	closed   bool
	wg       sync.WaitGroup
}

func (w *BaseWorker) init() {
	if w.timers == nil {
		w.timers = make(map[uuid.UUID]*time.Timer)
	}
	if w.shutdown == nil {
		w.shutdown = make(chan struct{})
	}
}

// schedule runs fn after d unless the worker shuts down first.
// It reports false once shutdown has begun.
func (w *BaseWorker) schedule(d time.Duration, fn func()) (uuid.UUID, bool) {
	id := uuid.New()

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return id, false
	}

	// Registered before the timer can fire so the callback always finds it
	w.wg.Add(1)
	w.timers[id] = time.AfterFunc(d, func() {
		defer w.wg.Done()
		if !w.removeTimer(id) {
			return
		}
		select {
		case <-w.shutdown:
			return
		default:
		}
		fn()
	})
	return id, true
}

// removeTimer reports whether the timer was still registered
func (w *BaseWorker) removeTimer(id uuid.UUID) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.timers[id]; !ok {
		return false
	}
	delete(w.timers, id)
	return true
}

func (w *BaseWorker) pending() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.timers)
}

func (w *BaseWorker) isShutdown() bool {
	select {
	case <-w.shutdown:
		return true
	default:
		return false
	}
}

func (w *BaseWorker) shutdownInternal(ctx context.Context, workerName string) error {
	log := logger.FromContext(ctx)
	log.Info("Shutting down " + workerName)

	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.shutdown)

	// Cancel all pending timers. A stopped timer never runs its callback,
	// so its wait group slot is released here.
	for id, timer := range w.timers {
		if timer.Stop() {
			w.wg.Done()
		}
		log.Info("Cancelled pending "+workerName+" execution", "timerID", id)
	}
	w.timers = make(map[uuid.UUID]*time.Timer)
	w.mu.Unlock()

	// Wait for in-flight executions
	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(workerName + " shutdown complete")
		return nil
	case <-ctx.Done():
		log.Warn(workerName + " shutdown timeout")
		return ctx.Err()
	}
}
