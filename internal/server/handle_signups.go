package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Bloopswy/ShoreSquad/internal/observability"
	"github.com/Bloopswy/ShoreSquad/internal/squad"
)

type SignupRequest struct {
	Name string `json:"name"`
}

type EventListResponse struct {
	Events []squad.CleanupEvent `json:"events"`
}

func handleEventList(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		events, err := store.ListEvents(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		if events == nil {
			events = []squad.CleanupEvent{}
		}
		writeJSON(w, http.StatusOK, EventListResponse{Events: events})
	}
}

func handleEventSignup(store Store, broker *Broker, metrics *observability.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" {
			writeError(w, http.StatusBadRequest, "name is required")
			return
		}

		eventID := chi.URLParam(r, "id")
		signup, err := store.AddSignup(r.Context(), eventID, req.Name)
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "event not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		metrics.EventSignups.Inc()
		broker.Publish(UpdateEvent{
			Type: "event_signup",
			Name: signup.Name,
		})

		writeJSON(w, http.StatusCreated, signup)
	}
}
