package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/osse101/DogDaycare_Go/internal/config"
	"github.com/osse101/DogDaycare_Go/internal/database"
	"github.com/osse101/DogDaycare_Go/internal/database/migrations"
	"github.com/osse101/DogDaycare_Go/internal/database/sqlite"
)

var errNoMigrations = errors.New("migrations apply only to the sqlite and postgres drivers")

func newMigrateCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the SQL schema",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				db, dialect, closeDB, err := openSQL(cmd.Context(), c.cfg)
				if err != nil {
					return err
				}
				defer closeDB()

				applied, err := migrations.Up(cmd.Context(), db, dialect)
				if err != nil {
					return err
				}
				if len(applied) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date")
					return nil
				}
				for _, v := range applied {
					fmt.Fprintf(cmd.OutOrStdout(), "Applied %d\n", v)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "List migrations and whether they are applied",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				db, dialect, closeDB, err := openSQL(cmd.Context(), c.cfg)
				if err != nil {
					return err
				}
				defer closeDB()

				statuses, err := migrations.Status(cmd.Context(), db, dialect)
				if err != nil {
					return fmt.Errorf("reading migration status: %w", err)
				}
				for _, s := range statuses {
					fmt.Fprintf(cmd.OutOrStdout(), "%-5d %-8s %s\n", s.Source.Version, s.State, s.Source.Path)
				}
				return nil
			},
		},
	)
	return cmd
}

// openSQL opens the configured SQL database without migrating it
func openSQL(ctx context.Context, cfg *config.Config) (*sql.DB, goose.Dialect, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreDriverSQLite:
		db, err := sql.Open(sqlite.DriverName, cfg.SQLitePath)
		if err != nil {
			return nil, "", nil, fmt.Errorf("opening sqlite database: %w", err)
		}
		return db, migrations.DialectSQLite, func() { _ = db.Close() }, nil

	case config.StoreDriverPostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
		if err != nil {
			return nil, "", nil, fmt.Errorf("connecting to database: %w", err)
		}
		db := stdlib.OpenDBFromPool(pool)
		return db, migrations.DialectPostgres, func() {
			_ = db.Close()
			pool.Close()
		}, nil

	default:
		return nil, "", nil, fmt.Errorf("%w: %q", errNoMigrations, cfg.StoreDriver)
	}
}
