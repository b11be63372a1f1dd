package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/Bloopswy/ShoreSquad/internal/config"
	"github.com/Bloopswy/ShoreSquad/internal/database"
	"github.com/Bloopswy/ShoreSquad/internal/migrations"
	"github.com/Bloopswy/ShoreSquad/internal/observability"
	"github.com/Bloopswy/ShoreSquad/internal/server"
	"github.com/Bloopswy/ShoreSquad/internal/squad"
	"github.com/Bloopswy/ShoreSquad/internal/weather"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	clock := clockwork.NewRealClock()

	// --- Metrics ---
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := observability.NewMetrics(registry)

	// --- SQLite ---
	db, err := database.Open(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("connecting to sqlite: %w", err)
	}
	defer db.Close()

	if err := migrations.Run(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	logger.Info("connected to sqlite", "path", cfg.DBPath)

	// --- State ---
	store := server.NewSQLiteStore(db, logger, clock)
	if err := server.SeedDemo(ctx, logger, store, clock); err != nil {
		return fmt.Errorf("seeding demo events: %w", err)
	}

	tracker := squad.NewTracker(store, logger, clock, metrics)
	tracker.Load(ctx)

	// --- Forecast pipeline ---
	forecast := weather.NewClient(cfg.WeatherBaseURL, cfg.WeatherTimeout, logger, clock, metrics)

	// --- HTTP Server ---
	srv := server.New(cfg.HTTPAddr, logger, server.Deps{
		Tracker:        tracker,
		Forecast:       forecast,
		Store:          store,
		DB:             db,
		Metrics:        metrics,
		MetricsHandler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		StaticDir:      cfg.StaticDir,
	})

	// --- Run ---
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", "addr", cfg.HTTPAddr)
		return srv.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	return g.Wait()
}
