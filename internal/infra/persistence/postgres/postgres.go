package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"breadmap/config"
	"breadmap/internal/domain/lifecycle"
	"breadmap/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolWatchInterval     = 5 * time.Second
	poolWaitWarnThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the PostgreSQL connection backing every repository. The
// connection is pinged on startup and its pool is watched for wait pressure
// while the service runs.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Disable GORM's per-statement implicit transaction.
		// We keep explicit transactions via txManager.Execute for multi-step atomic operations.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	watchCtx, stopWatch := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			go watchPoolWaits(watchCtx, params.Logger, sqlDB, poolWatchInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopWatch()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// watchPoolWaits samples sql.DBStats on a ticker and logs whenever requests
// had to wait for a connection since the previous sample. Sustained waits
// mean the pool is undersized for the bakery browse traffic.
func watchPoolWaits(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waits := cur.WaitCount - prev.WaitCount
			waited := cur.WaitDuration - prev.WaitDuration
			prev = cur

			if waits == 0 {
				continue
			}
			attrs := []slog.Attr{
				slog.Int64("waitCountDelta", waits),
				slog.Duration("waitDurationDelta", waited),
				slog.Duration("avgWait", waited/time.Duration(waits)),
				slog.Int("maxOpenConns", cur.MaxOpenConnections),
				slog.Int("openConns", cur.OpenConnections),
				slog.Int("inUseConns", cur.InUse),
				slog.Int("idleConns", cur.Idle),
				slog.Int64("waitCountTotal", cur.WaitCount),
				slog.Duration("waitDurationTotal", cur.WaitDuration),
			}

			level := slog.LevelDebug
			msg := "Postgres pool wait observed"
			if waited >= poolWaitWarnThreshold {
				level = slog.LevelWarn
				msg = "Postgres pool wait detected"
			}
			logger.LogAttrs(ctx, level, msg, attrs...)
		}
	}
}
