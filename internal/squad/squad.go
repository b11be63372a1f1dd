// Package squad defines the core domain of ShoreSquad: the crew roster,
// the aggregate impact stats, and upcoming cleanup events, plus the
// Tracker that owns all of it.
package squad

import "time"

// CrewMember is one volunteer on the roster. Members are never mutated
// in place; add and remove replace the list wholesale.
type CrewMember struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	JoinedDate string `json:"joinedDate"`
}

// Stats is the singleton aggregate counter record for the session.
type Stats struct {
	Cleanups    int `json:"cleanups"`
	Trash       int `json:"trash"`
	Beaches     int `json:"beaches"`
	CrewMembers int `json:"crewMembers"`
}

// MaxBeaches caps the "beaches impacted" counter.
const MaxBeaches = 5

// CleanupEvent is a scheduled beach cleanup volunteers can sign up for.
type CleanupEvent struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Beach    string    `json:"beach"`
	StartsAt time.Time `json:"startsAt"`
	Signups  int       `json:"signups"`
}

// Signup records one volunteer joining a cleanup event.
type Signup struct {
	ID        string    `json:"id"`
	EventID   string    `json:"eventId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// SeedStats is the demo snapshot used when the stats slot is missing or
// unreadable. Beaches and CrewMembers are recomputed on load, so only
// Cleanups and Trash carry information here.
func SeedStats() Stats {
	return Stats{Cleanups: 12, Trash: 248, Beaches: MaxBeaches, CrewMembers: 0}
}
