package server

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Bloopswy/ShoreSquad/internal/squad"
)

type CrewAddRequest struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

type CrewAddResponse struct {
	Member squad.CrewMember `json:"member"`
	Stats  squad.Stats      `json:"stats"`
}

type CrewListResponse struct {
	Crew  []squad.CrewMember `json:"crew"`
	Stats squad.Stats        `json:"stats"`
}

func handleCrewList(tracker *squad.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		crew, stats := tracker.Snapshot()
		writeJSON(w, http.StatusOK, CrewListResponse{Crew: crew, Stats: stats})
	}
}

func handleCrewAdd(tracker *squad.Tracker, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CrewAddRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		req.Name = strings.TrimSpace(req.Name)
		req.Role = strings.TrimSpace(req.Role)
		if req.Name == "" || req.Role == "" {
			writeError(w, http.StatusBadRequest, "name and role are required")
			return
		}

		member := tracker.AddCrew(r.Context(), req.Name, req.Role)
		_, stats := tracker.Snapshot()

		broker.Publish(UpdateEvent{
			Type:   "crew_added",
			CrewID: member.ID,
			Name:   member.Name,
			Stats:  &stats,
		})

		writeJSON(w, http.StatusCreated, CrewAddResponse{Member: member, Stats: stats})
	}
}

func handleCrewRemove(tracker *squad.Tracker, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		// Removing an unknown id is a no-op, not an error: the roster
		// simply stays as it was.
		tracker.RemoveCrew(r.Context(), id)
		crew, stats := tracker.Snapshot()

		broker.Publish(UpdateEvent{
			Type:   "crew_removed",
			CrewID: id,
			Stats:  &stats,
		})

		writeJSON(w, http.StatusOK, CrewListResponse{Crew: crew, Stats: stats})
	}
}
