// Command cleanup removes every advocate from the directory. It refuses to
// run without --confirm.
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

	"github.com/heartmarshall/advocates-backend/internal/adapter/postgres"
	"github.com/heartmarshall/advocates-backend/internal/adapter/postgres/advocate"
	"github.com/heartmarshall/advocates-backend/internal/app"
	"github.com/heartmarshall/advocates-backend/internal/config"
)

func main() {
	confirmFlag := flag.Bool("confirm", false, "actually delete all advocates")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if cfg.Database.IsMemory() {
		logger.Error("cleanup requires the postgres driver")
		os.Exit(1)
	}
	if !*confirmFlag {
		logger.Error("refusing to delete advocates without --confirm")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	deleted, err := advocate.New(pool).DeleteAll(ctx)
	if err != nil {
		logger.Error("delete advocates failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("cleanup completed", slog.Int64("deleted", deleted))
}
