package server

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"
)

func addRoutes(r chi.Router, logger *slog.Logger, deps Deps) {
	broker := NewBroker()

	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("ShoreSquad API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(logger, deps.DB))
	if deps.MetricsHandler != nil {
		r.Method("GET", "/metrics", deps.MetricsHandler)
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/state", handleState(deps.Tracker, deps.Store))
		r.Get("/crew", handleCrewList(deps.Tracker))
		r.Post("/crew", handleCrewAdd(deps.Tracker, broker))
		r.Delete("/crew/{id}", handleCrewRemove(deps.Tracker, broker))
		r.Post("/cleanups", handleScheduleCleanup(deps.Tracker, broker))
		r.Get("/weather", handleWeather(deps.Forecast))
		r.Get("/events", handleEventList(deps.Store))
		r.Post("/events/{id}/signups", handleEventSignup(deps.Store, broker, deps.Metrics))
		r.Get("/updates", handleUpdates(broker))
	})

	if deps.StaticDir != "" {
		if info, err := os.Stat(deps.StaticDir); err == nil && info.IsDir() {
			logger.Info("serving static page", "dir", deps.StaticDir)
			r.NotFound(handleStatic(deps.StaticDir))
		}
	}
}
