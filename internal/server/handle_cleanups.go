package server

import (
	"net/http"

	"github.com/Bloopswy/ShoreSquad/internal/squad"
)

type StatsResponse struct {
	Stats squad.Stats `json:"stats"`
}

func handleScheduleCleanup(tracker *squad.Tracker, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats := tracker.ScheduleCleanup(r.Context())

		broker.Publish(UpdateEvent{
			Type:  "cleanup_scheduled",
			Stats: &stats,
		})

		writeJSON(w, http.StatusOK, StatsResponse{Stats: stats})
	}
}
