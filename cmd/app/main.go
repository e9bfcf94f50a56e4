package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/DogDaycare_Go/internal/bootstrap"
	"github.com/osse101/DogDaycare_Go/internal/config"
)

// @title           Dog Daycare API
// @version         1.0
// @description     Tick-based dog daycare simulation.
// @BasePath        /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to setup logger: %v", err)
	}
	defer logFile.Close()

	if err := config.ValidateEnv(); err != nil {
		slog.Warn("Environment is incomplete, falling back to defaults", "error", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := bootstrap.NewApp(ctx, cfg)
	if err != nil {
		slog.Error("Failed to initialize daycare", "error", err)
		os.Exit(1)
	}
	app.Start(ctx)

	go func() {
		if err := app.Server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), bootstrap.ShutdownTimeout)
	defer shutdownCancel()

	cancel()
	app.Shutdown(shutdownCtx)
}
