package server

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/Bloopswy/ShoreSquad/internal/squad"
)

// Slot keys, the SQLite analog of the two browser storage entries.
const (
	slotCrew  = "crew"
	slotStats = "stats"
)

type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
	clock  clockwork.Clock
}

func NewSQLiteStore(db *sql.DB, logger *slog.Logger, clock clockwork.Clock) *SQLiteStore {
	return &SQLiteStore{db: db, logger: logger, clock: clock}
}

// LoadState reads both slots. It never fails to the caller: a missing
// crew slot yields an empty roster, a missing stats slot yields the
// seeded demo snapshot, and a corrupt slot is logged and replaced by
// the same fallback.
func (s *SQLiteStore) LoadState(ctx context.Context) ([]squad.CrewMember, squad.Stats) {
	var crew []squad.CrewMember
	if raw, ok := s.readSlot(ctx, slotCrew); ok {
		if err := json.Unmarshal([]byte(raw), &crew); err != nil {
			s.logger.Warn("crew slot corrupt, starting with empty roster", "error", err)
			crew = nil
		}
	}

	stats := squad.SeedStats()
	if raw, ok := s.readSlot(ctx, slotStats); ok {
		var loaded squad.Stats
		if err := json.Unmarshal([]byte(raw), &loaded); err != nil {
			s.logger.Warn("stats slot corrupt, using seeded snapshot", "error", err)
		} else {
			stats = loaded
		}
	}

	return crew, stats
}

func (s *SQLiteStore) SaveCrew(ctx context.Context, crew []squad.CrewMember) error {
	if crew == nil {
		crew = []squad.CrewMember{}
	}
	return s.writeSlot(ctx, slotCrew, crew)
}

func (s *SQLiteStore) SaveStats(ctx context.Context, stats squad.Stats) error {
	return s.writeSlot(ctx, slotStats, stats)
}

func (s *SQLiteStore) readSlot(ctx context.Context, key string) (string, bool) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM slots WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false
	}
	if err != nil {
		s.logger.Warn("reading slot failed", "key", key, "error", err)
		return "", false
	}
	return value, true
}

func (s *SQLiteStore) writeSlot(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO slots (key, value, updated_at)
		VALUES (?, ?, strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
		ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, string(data))
	return err
}

func (s *SQLiteStore) ListEvents(ctx context.Context) ([]squad.CleanupEvent, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT e.id, e.title, e.beach, e.starts_at, COUNT(su.id)
		FROM events e
		LEFT JOIN signups su ON su.event_id = e.id
		GROUP BY e.id
		ORDER BY e.starts_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []squad.CleanupEvent
	for rows.Next() {
		var ev squad.CleanupEvent
		var startsAt string
		if err := rows.Scan(&ev.ID, &ev.Title, &ev.Beach, &startsAt, &ev.Signups); err != nil {
			return nil, err
		}
		ev.StartsAt, _ = time.Parse(time.RFC3339, startsAt)
		events = append(events, ev)
	}
	return events, rows.Err()
}

func (s *SQLiteStore) CreateEvent(ctx context.Context, ev squad.CleanupEvent) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO events (id, title, beach, starts_at)
		VALUES (?, ?, ?, ?)
	`, ev.ID, ev.Title, ev.Beach, ev.StartsAt.UTC().Format(time.RFC3339))
	return err
}

func (s *SQLiteStore) HasEvents(ctx context.Context) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM events)`).Scan(&exists)
	return exists, err
}

func (s *SQLiteStore) AddSignup(ctx context.Context, eventID, name string) (squad.Signup, error) {
	var one int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM events WHERE id = ?`, eventID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return squad.Signup{}, ErrNotFound
	}
	if err != nil {
		return squad.Signup{}, err
	}

	signup := squad.Signup{
		ID:        uuid.NewString(),
		EventID:   eventID,
		Name:      name,
		CreatedAt: s.clock.Now().UTC(),
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO signups (id, event_id, name, created_at)
		VALUES (?, ?, ?, ?)
	`, signup.ID, signup.EventID, signup.Name, signup.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return squad.Signup{}, err
	}
	return signup, nil
}
