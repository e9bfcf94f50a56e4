package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/DogDaycare_Go/internal/event"
	"github.com/osse101/DogDaycare_Go/internal/metrics"
	"github.com/osse101/DogDaycare_Go/internal/sse"
	"github.com/osse101/DogDaycare_Go/internal/worker"
)

// EventHandlerDependencies holds the subscribers wired onto the bus
type EventHandlerDependencies struct {
	EventBus event.Bus
	Spawner  *worker.SpawnWorker
	Autosave *worker.AutosaveWorker
	History  *worker.HistoryWorker
	Stream   *sse.Subscriber
}

// RegisterEventHandlers sets up all event handlers and subscribers:
// the metrics collector, the background workers and the stream bridge.
// Nil workers are skipped.
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	if deps.Spawner != nil {
		deps.Spawner.Subscribe(deps.EventBus)
	}
	if deps.Autosave != nil {
		deps.Autosave.Subscribe(deps.EventBus)
	}
	if deps.History != nil {
		deps.History.Subscribe(deps.EventBus)
	}
	slog.Info(LogMsgWorkersSubscribed,
		"spawn", deps.Spawner != nil,
		"autosave", deps.Autosave != nil,
		"history", deps.History != nil)

	if deps.Stream != nil {
		deps.Stream.Subscribe()
		slog.Info(LogMsgStreamSubscribed)
	}

	return nil
}
