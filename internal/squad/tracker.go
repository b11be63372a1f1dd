package squad

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"

	"github.com/jonboulle/clockwork"

	"github.com/Bloopswy/ShoreSquad/internal/observability"
)

// Store persists the two state slots. LoadState never fails: missing or
// unreadable slots come back as the documented fallbacks.
type Store interface {
	LoadState(ctx context.Context) ([]CrewMember, Stats)
	SaveCrew(ctx context.Context, crew []CrewMember) error
	SaveStats(ctx context.Context, stats Stats) error
}

// Tracker owns the application state. All mutation goes through its
// named operations; handlers and renderers only ever see snapshots.
// Writes to the store are best-effort: failures are logged and counted,
// never returned to the caller.
type Tracker struct {
	mu    sync.Mutex
	crew  []CrewMember
	stats Stats

	store     Store
	logger    *slog.Logger
	clock     clockwork.Clock
	metrics   *observability.Metrics
	trashHaul func() int
}

// NewTracker creates a Tracker with an empty roster and seeded stats.
// Call Load to hydrate from the store.
func NewTracker(store Store, logger *slog.Logger, clock clockwork.Clock, metrics *observability.Metrics) *Tracker {
	return &Tracker{
		stats:     SeedStats(),
		store:     store,
		logger:    logger,
		clock:     clock,
		metrics:   metrics,
		trashHaul: func() int { return 50 + rand.IntN(151) },
	}
}

// SetTrashHaul replaces the random trash-amount source, for tests.
func (t *Tracker) SetTrashHaul(fn func() int) {
	t.mu.Lock()
	t.trashHaul = fn
	t.mu.Unlock()
}

// Load hydrates crew and stats from the store and re-establishes the
// invariants: crewMembers mirrors the roster length and beaches is
// capped at MaxBeaches.
func (t *Tracker) Load(ctx context.Context) {
	crew, stats := t.store.LoadState(ctx)

	t.mu.Lock()
	t.crew = crew
	t.stats = stats
	t.reconcileLocked()
	t.mu.Unlock()

	t.logger.Info("state loaded", "crew", len(crew), "cleanups", stats.Cleanups)
}

// AddCrew appends a new member with a time-based id, recomputes the
// stats, and persists both slots.
func (t *Tracker) AddCrew(ctx context.Context, name, role string) CrewMember {
	now := t.clock.Now()
	member := CrewMember{
		ID:         strconv.FormatInt(now.UnixNano(), 36),
		Name:       strings.TrimSpace(name),
		Role:       strings.TrimSpace(role),
		JoinedDate: now.Format("Jan 2, 2006"),
	}

	t.mu.Lock()
	t.crew = append(t.crew, member)
	t.reconcileLocked()
	crew, stats := t.snapshotLocked()
	t.mu.Unlock()

	t.persist(ctx, crew, stats)
	t.logger.Info("crew member added", "id", member.ID, "role", member.Role)
	return member
}

// RemoveCrew filters the member with the given id out of the roster.
// An unknown id leaves the roster unchanged.
func (t *Tracker) RemoveCrew(ctx context.Context, id string) {
	t.mu.Lock()
	kept := t.crew[:0:0]
	removed := false
	for _, m := range t.crew {
		if m.ID == id {
			removed = true
			continue
		}
		kept = append(kept, m)
	}
	t.crew = kept
	t.reconcileLocked()
	crew, stats := t.snapshotLocked()
	t.mu.Unlock()

	if !removed {
		t.logger.Warn("remove crew: id not found", "id", id)
		return
	}

	t.persist(ctx, crew, stats)
	t.logger.Info("crew member removed", "id", id)
}

// ScheduleCleanup bumps the cleanup counter, adds a random trash haul,
// and recomputes the beaches-impacted cap.
func (t *Tracker) ScheduleCleanup(ctx context.Context) Stats {
	t.mu.Lock()
	t.stats.Cleanups++
	t.stats.Trash += t.trashHaul()
	t.reconcileLocked()
	crew, stats := t.snapshotLocked()
	t.mu.Unlock()

	t.metrics.CleanupsTotal.Inc()
	t.persist(ctx, crew, stats)
	t.logger.Info("cleanup scheduled", "cleanups", stats.Cleanups, "trash", stats.Trash)
	return stats
}

// Snapshot returns a copy of the roster and the current stats.
func (t *Tracker) Snapshot() ([]CrewMember, Stats) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshotLocked()
}

// reconcileLocked re-derives the counters that mirror other state.
// Caller holds t.mu.
func (t *Tracker) reconcileLocked() {
	t.stats.CrewMembers = len(t.crew)
	t.stats.Beaches = min(t.stats.Cleanups, MaxBeaches)
	t.metrics.CrewSize.Set(float64(len(t.crew)))
}

func (t *Tracker) snapshotLocked() ([]CrewMember, Stats) {
	crew := make([]CrewMember, len(t.crew))
	copy(crew, t.crew)
	return crew, t.stats
}

func (t *Tracker) persist(ctx context.Context, crew []CrewMember, stats Stats) {
	if err := t.store.SaveCrew(ctx, crew); err != nil {
		t.metrics.SlotSaveErrors.Inc()
		t.logger.Warn("saving crew slot failed", "error", err)
	}
	if err := t.store.SaveStats(ctx, stats); err != nil {
		t.metrics.SlotSaveErrors.Inc()
		t.logger.Warn("saving stats slot failed", "error", err)
	}
}
