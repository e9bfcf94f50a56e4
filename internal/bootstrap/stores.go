package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/DogDaycare_Go/internal/config"
	"github.com/osse101/DogDaycare_Go/internal/database"
	"github.com/osse101/DogDaycare_Go/internal/database/filestore"
	"github.com/osse101/DogDaycare_Go/internal/database/memory"
	"github.com/osse101/DogDaycare_Go/internal/database/postgres"
	"github.com/osse101/DogDaycare_Go/internal/database/sqlite"
	"github.com/osse101/DogDaycare_Go/internal/repository"
)

// Stores holds the persistence backends selected by STORE_DRIVER
type Stores struct {
	Driver     string
	Session    repository.Session
	Departures repository.Departures
	close      func() error
}

// Close releases the underlying database handles
func (s *Stores) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// OpenStores creates the session and departure stores for the configured driver.
// SQL drivers have their migrations applied before returning.
func OpenStores(ctx context.Context, cfg *config.Config) (*Stores, error) {
	stores := &Stores{Driver: cfg.StoreDriver}

	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		stores.Session = memory.NewSessionStore()
		stores.Departures = memory.NewDepartureStore(cfg.HistoryLimit)

	case config.StoreDriverFile:
		stores.Session = filestore.NewSessionStore(cfg.SaveFile)
		stores.Departures = filestore.NewDepartureStore(cfg.HistoryFile)

	case config.StoreDriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgOpenStore, err)
		}
		stores.Session = sqlite.NewSessionStore(db)
		stores.Departures = sqlite.NewDepartureStore(db)
		stores.close = db.Close

	case config.StoreDriverPostgres:
		pool, err := OpenPostgres(ctx, cfg)
		if err != nil {
			return nil, err
		}
		stores.Session = postgres.NewSessionStore(pool)
		stores.Departures = postgres.NewDepartureStore(pool)
		stores.close = func() error {
			pool.Close()
			return nil
		}

	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownStoreDriver, cfg.StoreDriver)
	}

	slog.Info(LogMsgStoreOpened, "driver", cfg.StoreDriver)
	return stores, nil
}

// OpenPostgres connects to the configured database and applies migrations
func OpenPostgres(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgConnectDatabase, err)
	}

	applied, err := postgres.Migrate(ctx, pool)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgMigrateDatabase, err)
	}
	if len(applied) > 0 {
		slog.Info(LogMsgMigrationsRun, "versions", applied)
	}
	return pool, nil
}
