package app

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/heartmarshall/advocates-backend/internal/config"
)

// Run is the application entry point. It loads configuration, opens the
// advocate store, and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("driver", cfg.Database.Driver),
	)

	st, err := openStore(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	if st.collector != nil {
		reg.MustRegister(st.collector)
	}

	handler, stopMiddleware := newHandler(cfg, logger, st, reg)
	defer stopMiddleware()

	srv := &http.Server{
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}

	if err := serve(ctx, srv, ln, cfg.Server.ShutdownTimeout, logger); err != nil {
		return err
	}

	logger.Info("application stopped")
	return nil
}
