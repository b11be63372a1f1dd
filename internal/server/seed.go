package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/Bloopswy/ShoreSquad/internal/squad"
)

// SeedDemo creates a couple of upcoming cleanup events if none exist.
// Idempotent: does nothing once any event is present.
func SeedDemo(ctx context.Context, logger *slog.Logger, store Store, clock clockwork.Clock) error {
	has, err := store.HasEvents(ctx)
	if err != nil {
		return err
	}
	if has {
		return nil
	}

	now := clock.Now()
	events := []squad.CleanupEvent{
		{
			ID:       "pasir-ris-sweep",
			Title:    "Saturday Shore Sweep",
			Beach:    "Pasir Ris Beach",
			StartsAt: nextWeekday(now, time.Saturday, 9),
		},
		{
			ID:       "east-coast-sunrise",
			Title:    "Sunrise Cleanup",
			Beach:    "East Coast Beach",
			StartsAt: nextWeekday(now, time.Sunday, 7),
		},
	}

	for _, ev := range events {
		if err := store.CreateEvent(ctx, ev); err != nil {
			return err
		}
	}

	logger.Info("demo cleanup events seeded", "count", len(events))
	return nil
}

// nextWeekday returns the next occurrence of day at the given hour,
// always in the future relative to now.
func nextWeekday(now time.Time, day time.Weekday, hour int) time.Time {
	t := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	offset := (int(day) - int(now.Weekday()) + 7) % 7
	t = t.AddDate(0, 0, offset)
	if !t.After(now) {
		t = t.AddDate(0, 0, 7)
	}
	return t
}
