// Package postgres wires the PostgreSQL-backed persistence used when a
// database is configured. It currently hosts durable session entries.
package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"nexprev/config"
	"nexprev/internal/domain/lifecycle"
	"nexprev/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Session restore runs on every guarded request, so pool contention shows
// up directly as user-visible latency. Waits are sampled at this cadence.
const poolWaitSampleInterval = 30 * time.Second

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the PostgreSQL client backing durable session entries.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Session writes are single-statement upserts; no implicit
		// transaction needed.
		SkipDefaultTransaction: true,
		Logger:                 newSessionQueryLogger(params.Logger, params.Config.Env.Debug),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			go reportPoolWaits(monitorCtx, params.Logger, sqlDB, poolWaitSampleInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// reportPoolWaits warns whenever requests had to queue for a pooled
// connection during the last sample window.
func reportPoolWaits(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			if waits := cur.WaitCount - prev.WaitCount; waits > 0 {
				logger.LogAttrs(ctx, slog.LevelWarn, "Session store pool wait",
					slog.Int64("waits", waits),
					slog.Duration("waitTime", cur.WaitDuration-prev.WaitDuration),
					slog.Int("openConns", cur.OpenConnections),
					slog.Int("inUseConns", cur.InUse),
				)
			}
			prev = cur
		}
	}
}
