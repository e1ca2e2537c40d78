package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"surveyor/config"
	"surveyor/internal/domain/lifecycle"
	"surveyor/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const poolWaitWarnThreshold = 50 * time.Millisecond

type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the principal store. On start it pings, applies migrations when
// enabled and begins watching pool contention; on stop it closes the pool.
func New(params Params) (*gorm.DB, error) {
	cfg := params.Config
	if cfg.Postgres == nil {
		return nil, errors.New("postgres configuration is required")
	}

	tuning := cfg.Database
	if tuning == nil {
		tuning = &config.DatabaseConfig{}
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}

	// Multi-statement atomicity goes through TransactionManager.Execute.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, cfg.Env.Debug, tuning.SlowQueryThreshold),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitor := &poolMonitor{db: sqlDB, logger: params.Logger, interval: tuning.PoolMonitorInterval}
	monitorCtx, stopMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := prepare(ctx, sqlDB, cfg.Migration, params.Logger); err != nil {
				return err
			}

			go monitor.run(monitorCtx)

			return nil
		},
		OnStop: func(context.Context) error {
			stopMonitor()

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

func prepare(ctx context.Context, sqlDB *sql.DB, migration *config.MigrationConfig, logger *slog.Logger) error {
	if err := sqlDB.PingContext(ctx); err != nil {
		return errors.Wrap(err, "failed to ping PostgreSQL")
	}

	if migration == nil || !migration.AutoMigrate {
		return nil
	}
	if err := RunMigrations(ctx, sqlDB); err != nil {
		return err
	}
	logger.Info("Principal store schema is up to date")

	return nil
}

// poolMonitor reports connection waits between ticks. Bcrypt-bound requests
// hold connections briefly, so sustained waits point at an undersized pool.
type poolMonitor struct {
	db       *sql.DB
	logger   *slog.Logger
	interval time.Duration
}

func (m *poolMonitor) run(ctx context.Context) {
	if m.interval <= 0 {
		return
	}

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	prev := m.db.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := m.db.Stats()
			m.report(ctx, prev, cur)
			prev = cur
		}
	}
}

func (m *poolMonitor) report(ctx context.Context, prev, cur sql.DBStats) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return
	}

	waited := cur.WaitDuration - prev.WaitDuration
	level := slog.LevelDebug
	if waited >= poolWaitWarnThreshold {
		level = slog.LevelWarn
	}

	m.logger.LogAttrs(ctx, level, "Postgres pool wait",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("maxOpenConns", cur.MaxOpenConnections),
		slog.Int("openConns", cur.OpenConnections),
		slog.Int("inUseConns", cur.InUse),
		slog.Int("idleConns", cur.Idle),
	)
}
