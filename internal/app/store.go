package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/heartmarshall/advocates-backend/internal/adapter/memory"
	"github.com/heartmarshall/advocates-backend/internal/adapter/postgres"
	advocaterepo "github.com/heartmarshall/advocates-backend/internal/adapter/postgres/advocate"
	"github.com/heartmarshall/advocates-backend/internal/app/seeder"
	"github.com/heartmarshall/advocates-backend/internal/config"
	"github.com/heartmarshall/advocates-backend/internal/domain"
)

// advocateReader is what the advocate service reads from.
type advocateReader interface {
	Find(ctx context.Context, filter domain.SearchFilter, limit, offset int) ([]domain.Advocate, error)
	Count(ctx context.Context, filter domain.SearchFilter) (int, error)
}

type pinger interface {
	Ping(ctx context.Context) error
}

// store bundles the advocate reader selected by configuration with its
// health probe and release function.
type store struct {
	advocates advocateReader
	health    pinger
	driver    string
	close     func()
	// collector is registered on the metrics registry when non-nil.
	collector prometheus.Collector
}

// openStore builds the store for cfg.Database.Driver. The memory driver is
// seeded from the embedded dataset when SeedOnStart is set.
func openStore(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (*store, error) {
	if cfg.IsMemory() {
		return openMemory(ctx, cfg, log)
	}
	return openPostgres(ctx, cfg, log)
}

func openMemory(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (*store, error) {
	mem := memory.NewStore()

	if cfg.SeedOnStart {
		p := seeder.NewPipeline(log, mem, seeder.Config{PhoneRegion: seeder.DefaultPhoneRegion})
		if err := p.Run(ctx); err != nil {
			return nil, fmt.Errorf("seed memory store: %w", err)
		}
		log.Info("memory store seeded", slog.Int("advocates", p.Results()["replace"].Inserted))
	}

	return &store{advocates: mem, health: mem, driver: config.DriverMemory, close: func() {}}, nil
}

func openPostgres(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (*store, error) {
	if cfg.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.DSN, log); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	log.Info("database connection established",
		slog.Int("max_conns", int(cfg.MaxConns)),
		slog.String("application_name", cfg.ApplicationName),
	)

	return &store{
		advocates: advocaterepo.New(pool),
		health:    pool,
		driver:    config.DriverPostgres,
		close:     pool.Close,
		collector: postgres.NewPoolCollector(pool),
	}, nil
}
