package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"pushrelay/config"
	"pushrelay/internal/domain/lifecycle"
	"pushrelay/internal/errors"
	"pushrelay/internal/infra/persistence/migrations"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params holds dependencies for the PostgreSQL connection, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the PostgreSQL store. The ping, the optional schema migration and
// the pool monitor run on fx start so a missing database fails start-up.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres config is required for the postgres storage driver")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Multi-step writes (token registration) go through txManager.Execute.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
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

			if params.Config.Storage.Migrate {
				if err := migrations.Up(sqlDB, params.Logger); err != nil {
					return err
				}
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, params.Config.Dispatch.Workers)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// monitorDBPool warns when workers queue up for connections. With more
// delivery workers than open connections every dispatch round waits here.
func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, workers int) {
	if stats := sqlDB.Stats(); stats.MaxOpenConnections > 0 && stats.MaxOpenConnections < workers {
		logger.Warn("[Postgres] Fewer connections than delivery workers",
			slog.Int("maxOpenConns", stats.MaxOpenConnections),
			slog.Int("workers", workers),
		)
	}

	ticker := time.NewTicker(dbPoolMonitorInterval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		cur := sqlDB.Stats()
		waits := cur.WaitCount - prev.WaitCount
		waited := cur.WaitDuration - prev.WaitDuration
		prev = cur
		if waits <= 0 {
			continue
		}

		level := slog.LevelDebug
		if waited >= dbPoolWarnDurationThreshold {
			level = slog.LevelWarn
		}
		logger.LogAttrs(ctx, level, "[Postgres] Connection pool wait",
			slog.Int64("waits", waits),
			slog.Duration("avgWait", waited/time.Duration(waits)),
			slog.Int("inUse", cur.InUse),
			slog.Int("maxOpenConns", cur.MaxOpenConnections),
		)
	}
}
