// Package bootstrap assembles the daycare service from configuration.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/DogDaycare_Go/internal/config"
	"github.com/osse101/DogDaycare_Go/internal/daycare"
	"github.com/osse101/DogDaycare_Go/internal/event"
	"github.com/osse101/DogDaycare_Go/internal/scheduler"
	"github.com/osse101/DogDaycare_Go/internal/server"
	"github.com/osse101/DogDaycare_Go/internal/sse"
	"github.com/osse101/DogDaycare_Go/internal/utils"
	"github.com/osse101/DogDaycare_Go/internal/worker"
)

// App is the fully wired daycare: service, stores, background workers and
// the HTTP server.
type App struct {
	Config  *config.Config
	Balance config.Balance
	Bus     event.Bus
	Stores  *Stores
	Service daycare.Service
	Server  *server.Server
	Hub     *sse.Hub

	clock       *scheduler.Clock
	scheduler   *scheduler.Scheduler
	persistence *worker.Pool
	spawner     *worker.SpawnWorker
	autosave    *worker.AutosaveWorker
	history     *worker.HistoryWorker
}

// NewApp opens the stores, restores the saved session and wires every
// component. Nothing runs until Start.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	balance, err := LoadBalance(cfg.BalanceFile)
	if err != nil {
		return nil, err
	}

	stores, err := OpenStores(ctx, cfg)
	if err != nil {
		return nil, err
	}

	bus := InitializeEventSystem()
	svc := daycare.NewService(stores.Session, bus, balance, utils.NewRand(0))

	persistence := worker.NewPool(worker.DefaultPersistenceWorkers, worker.DefaultPersistenceQueueSize)
	hub := sse.NewHub()

	app := &App{
		Config:      cfg,
		Balance:     balance,
		Bus:         bus,
		Stores:      stores,
		Service:     svc,
		Hub:         hub,
		clock:       scheduler.NewClock(svc, balance.Clock.TickInterval),
		scheduler:   scheduler.New(persistence),
		persistence: persistence,
		spawner:     worker.NewSpawnWorker(svc, balance.Spawn.Delay),
		autosave:    worker.NewAutosaveWorker(svc, stores.Session, persistence),
		history:     worker.NewHistoryWorker(stores.Departures, persistence),
	}

	if err := RegisterEventHandlers(EventHandlerDependencies{
		EventBus: bus,
		Spawner:  app.spawner,
		Autosave: app.autosave,
		History:  app.history,
		Stream:   sse.NewSubscriber(hub, bus, svc),
	}); err != nil {
		_ = stores.Close()
		return nil, fmt.Errorf("failed to register event handlers: %w", err)
	}

	svc.Restore(ctx)

	app.Server = server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		Version:        cfg.Version,
		StoreName:      stores.Driver,
	}, svc, stores.Session, stores.Departures, hub)

	return app, nil
}

// Start launches the background components. The HTTP server is started
// separately by the caller.
func (a *App) Start(ctx context.Context) {
	a.persistence.Start()
	a.Hub.Start()
	a.spawner.Start()
	a.clock.Start(ctx)

	if a.Config.AutosaveInterval > 0 {
		a.scheduler.Schedule(JobAutosave, a.Config.AutosaveInterval, a.autosave.CheckpointJob())
		slog.Info(LogMsgAutosaveScheduled, "interval", a.Config.AutosaveInterval)
	}

	slog.Info(LogMsgRuntimeStarted,
		"tick_interval", a.Balance.Clock.TickInterval,
		"playing", a.Service.IsPlaying())
}

// Shutdown stops every component, writing a final save
func (a *App) Shutdown(ctx context.Context) {
	GracefulShutdown(ctx, ShutdownComponents{
		Server:      a.Server,
		Clock:       a.clock,
		Scheduler:   a.scheduler,
		SpawnWorker: a.spawner,
		Autosave:    a.autosave,
		Persistence: a.persistence,
		Hub:         a.Hub,
		Stores:      a.Stores,
	})
}
