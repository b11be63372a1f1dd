package server

import (
	"net/http"

	"github.com/Bloopswy/ShoreSquad/internal/squad"
)

// StateResponse is the full projection the page renders from. It is
// re-derived from current state on every request; nothing is cached
// between renders.
type StateResponse struct {
	Crew      []squad.CrewMember  `json:"crew"`
	Stats     squad.Stats         `json:"stats"`
	NextEvent *squad.CleanupEvent `json:"nextEvent,omitempty"`
}

func handleState(tracker *squad.Tracker, store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		crew, stats := tracker.Snapshot()

		resp := StateResponse{Crew: crew, Stats: stats}
		events, err := store.ListEvents(r.Context())
		if err == nil && len(events) > 0 {
			resp.NextEvent = &events[0]
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
