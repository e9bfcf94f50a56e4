package worker

import (
	"context"
	"fmt"

	"github.com/osse101/DogDaycare_Go/internal/event"
	"github.com/osse101/DogDaycare_Go/internal/logger"
	"github.com/osse101/DogDaycare_Go/internal/metrics"
	"github.com/osse101/DogDaycare_Go/internal/repository"
)

// HistoryWorker appends every scored departure to the persistent history.
// Writes run on the pool so a slow store never stalls a tick.
type HistoryWorker struct {
	repo repository.Departures
	pool *Pool
}

// NewHistoryWorker creates a new HistoryWorker
func NewHistoryWorker(repo repository.Departures, pool *Pool) *HistoryWorker {
	return &HistoryWorker{repo: repo, pool: pool}
}

// Subscribe subscribes the worker to relevant events
func (w *HistoryWorker) Subscribe(bus event.Bus) {
	bus.Subscribe(event.DogRetrieved, w.handleDogRetrieved)
}

func (w *HistoryWorker) handleDogRetrieved(ctx context.Context, e event.Event) error {
	payload, err := event.DecodePayload[event.DogRetrievedPayloadV1](e.Payload)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgDecodeDeparture, err)
	}
	dep := payload.Departure

	w.pool.Enqueue(JobFunc(func(ctx context.Context) error {
		if err := w.repo.Record(ctx, dep); err != nil {
			metrics.HistoryWrites.WithLabelValues(metrics.ResultError).Inc()
			return fmt.Errorf("%s %s: %w", ErrMsgRecordDeparture, dep.DogID, err)
		}
		metrics.HistoryWrites.WithLabelValues(metrics.ResultOK).Inc()
		return nil
	}))
	logger.FromContext(ctx).Debug(LogMsgHistoryQueued, "dog_id", dep.DogID)
	return nil
}
