package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/osse101/DogDaycare_Go/internal/database/migrations"
	"github.com/osse101/DogDaycare_Go/internal/logger"
)

// Migrate applies the embedded postgres migrations through the pool
func Migrate(ctx context.Context, pool *pgxpool.Pool) ([]int64, error) {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	applied, err := migrations.Up(ctx, db, migrations.DialectPostgres)
	if err != nil {
		return nil, err
	}
	if len(applied) > 0 {
		logger.FromContext(ctx).Info(LogMsgMigrationsApplied, "versions", applied)
	}
	return applied, nil
}
