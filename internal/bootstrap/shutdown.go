package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/DogDaycare_Go/internal/scheduler"
	"github.com/osse101/DogDaycare_Go/internal/server"
	"github.com/osse101/DogDaycare_Go/internal/sse"
	"github.com/osse101/DogDaycare_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil members are skipped.
type ShutdownComponents struct {
	Server      *server.Server
	Clock       *scheduler.Clock
	Scheduler   *scheduler.Scheduler
	SpawnWorker *worker.SpawnWorker
	Autosave    *worker.AutosaveWorker
	Persistence *worker.Pool
	Hub         *sse.Hub
	Stores      *Stores
}

// GracefulShutdown stops the application in order:
// 1. HTTP server (stop accepting new requests)
// 2. Clock and pending spawn timers (freeze the simulation)
// 3. Final save, then the persistence pool (drain queued writes)
// 4. Stream hub and stores
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if c.Clock != nil {
		c.Clock.Stop()
	}
	if c.SpawnWorker != nil {
		shutdownWorker(ctx, ComponentSpawnWorker, c.SpawnWorker)
	}
	if c.Scheduler != nil {
		c.Scheduler.Stop()
	}

	if c.Autosave != nil {
		if err := c.Autosave.Flush(ctx); err != nil {
			slog.Error(LogMsgFinalSaveFailed, "error", err)
		} else {
			slog.Info(LogMsgFinalSaveDone)
		}
	}
	if c.Persistence != nil {
		c.Persistence.Stop()
	}

	if c.Hub != nil {
		c.Hub.Stop()
	}
	if c.Stores != nil {
		if err := c.Stores.Close(); err != nil {
			slog.Error(LogMsgStoreCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}

type shutdownableWorker interface {
	Shutdown(context.Context) error
}

func shutdownWorker(ctx context.Context, name string, w shutdownableWorker) {
	if err := w.Shutdown(ctx); err != nil {
		slog.Error(LogMsgWorkerShutdownFailed, "worker", name, "error", err)
	}
}
