package server

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jonboulle/clockwork"

	"github.com/Bloopswy/ShoreSquad/internal/database"
	"github.com/Bloopswy/ShoreSquad/internal/migrations"
	"github.com/Bloopswy/ShoreSquad/internal/observability"
	"github.com/Bloopswy/ShoreSquad/internal/squad"
	"github.com/Bloopswy/ShoreSquad/internal/weather"
)

var testTime = time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubForecaster serves a canned bulletin so handler tests never touch
// the network.
type stubForecaster struct {
	bulletin weather.Bulletin
}

func (s stubForecaster) Bulletin(_ context.Context, loc *weather.Location) weather.Bulletin {
	b := s.bulletin
	b.Beach = weather.NearestBeach(loc)
	return b
}

type testEnv struct {
	deps    Deps
	tracker *squad.Tracker
	store   *SQLiteStore
	clock   *clockwork.FakeClock
	db      *sql.DB
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	db, err := database.Open(ctx, ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := migrations.Run(db); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	logger := discardLogger()
	clock := clockwork.NewFakeClockAt(testTime)
	metrics := observability.NewMetricsForTesting()
	store := NewSQLiteStore(db, logger, clock)

	if err := SeedDemo(ctx, logger, store, clock); err != nil {
		t.Fatalf("seed demo: %v", err)
	}

	tracker := squad.NewTracker(store, logger, clock, metrics)
	tracker.Load(ctx)

	return &testEnv{
		deps: Deps{
			Tracker:  tracker,
			Forecast: stubForecaster{bulletin: weather.MockBulletin(testTime)},
			Store:    store,
			DB:       db,
			Metrics:  metrics,
		},
		tracker: tracker,
		store:   store,
		clock:   clock,
		db:      db,
	}
}

func testRouter(t *testing.T) (*chi.Mux, *testEnv) {
	t.Helper()
	env := setupEnv(t)

	r := chi.NewRouter()
	addRoutes(r, discardLogger(), env.deps)
	return r, env
}

