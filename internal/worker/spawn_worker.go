package worker

import (
	"context"
	"time"

	"github.com/osse101/DogDaycare_Go/internal/event"
	"github.com/osse101/DogDaycare_Go/internal/logger"
)

// Spawner is the part of the daycare service the spawn worker drives
type Spawner interface {
	ReserveSpawn() (uint64, bool)
	CompleteSpawn(ctx context.Context, generation uint64) bool
}

// SpawnWorker brings a new dog in after a fixed delay whenever the
// daycare has a free slot. At most one arrival is pending at a time.
type SpawnWorker struct {
	BaseWorker
	spawner Spawner
	delay   time.Duration
}

// NewSpawnWorker creates a new SpawnWorker
func NewSpawnWorker(spawner Spawner, delay time.Duration) *SpawnWorker {
	w := &SpawnWorker{
		spawner: spawner,
		delay:   delay,
	}
	w.init()
	return w
}

// Start schedules an arrival if the restored session already has room
func (w *SpawnWorker) Start() {
	w.trySchedule(context.Background())
}

// Subscribe subscribes the worker to relevant events
func (w *SpawnWorker) Subscribe(bus event.Bus) {
	bus.Subscribe(event.SessionChanged, w.handleSessionChanged)
}

func (w *SpawnWorker) handleSessionChanged(ctx context.Context, _ event.Event) error {
	w.trySchedule(ctx)
	return nil
}

func (w *SpawnWorker) trySchedule(ctx context.Context) {
	if w.isShutdown() {
		return
	}
	generation, ok := w.spawner.ReserveSpawn()
	if !ok {
		return
	}

	logger.FromContext(ctx).Debug(LogMsgSpawnScheduled, "delay", w.delay, "generation", generation)
	w.schedule(w.delay, func() {
		w.spawn(generation)
	})
}

func (w *SpawnWorker) spawn(generation uint64) {
	ctx := context.Background()
	if !w.spawner.CompleteSpawn(ctx, generation) {
		logger.FromContext(ctx).Debug(LogMsgSpawnSkipped, "generation", generation)
	}
}

// Shutdown cancels any pending arrival
func (w *SpawnWorker) Shutdown(ctx context.Context) error {
	return w.shutdownInternal(ctx, "spawn worker")
}
