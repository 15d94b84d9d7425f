// Command seeder replaces the advocates table with a validated dataset.
// It is intended to be run offline, not as part of the main server.
//
// Flags:
//
//	--file           JSON dataset to load (default: dataset embedded in the binary)
//	--dry-run        validate the dataset without writing to the store
//	--migrate        apply pending migrations before seeding
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/advocates-backend/internal/adapter/memory"
	"github.com/heartmarshall/advocates-backend/internal/adapter/postgres"
	"github.com/heartmarshall/advocates-backend/internal/adapter/postgres/advocate"
	"github.com/heartmarshall/advocates-backend/internal/app"
	"github.com/heartmarshall/advocates-backend/internal/app/seeder"
	"github.com/heartmarshall/advocates-backend/internal/config"
)

func main() {
	fileFlag := flag.String("file", "", "JSON dataset to load (default: embedded dataset)")
	dryRunFlag := flag.Bool("dry-run", false, "validate the dataset without writing to the store")
	migrateFlag := flag.Bool("migrate", false, "apply pending migrations before seeding")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	// Load app config (for DB connection).
	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *fileFlag != "" {
		seederCfg.DatasetPath = *fileFlag
	}
	if *dryRunFlag {
		seederCfg.DryRun = true
	}
	if *migrateFlag {
		seederCfg.Migrate = true
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	var writer seeder.AdvocateWriter
	if appCfg.Database.IsMemory() {
		// Useful for validating a dataset without a database.
		logger.Warn("memory driver selected; seeded rows are discarded on exit")
		writer = memory.NewStore()
	} else {
		if seederCfg.Migrate {
			if err := postgres.Migrate(ctx, appCfg.Database.DSN, logger); err != nil {
				logger.Error("migrate", slog.String("error", err.Error()))
				os.Exit(1)
			}
		}

		pool, err := postgres.NewPool(ctx, appCfg.Database)
		if err != nil {
			logger.Error("connect to database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer pool.Close()

		writer = advocate.New(pool)
	}

	pipeline := seeder.NewPipeline(logger, writer, *seederCfg)
	if err := pipeline.Run(ctx); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if pipeline.HasErrors() {
		logger.Warn("pipeline completed with errors")
		os.Exit(1)
	}

	logger.Info("pipeline completed successfully",
		slog.Int("inserted", pipeline.Results()["replace"].Inserted),
		slog.Bool("dry_run", seederCfg.DryRun),
	)
}
