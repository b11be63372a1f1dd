package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"

	"github.com/Bloopswy/ShoreSquad/internal/squad"
	"github.com/Bloopswy/ShoreSquad/internal/weather"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "ShoreSquad API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Backend API for the ShoreSquad beach-cleanup community app.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of backend dependencies.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// GET /api/state
	getState, _ := r.NewOperationContext(http.MethodGet, "/api/state")
	getState.SetSummary("Full state projection")
	getState.SetDescription("Returns the crew roster, aggregate stats, and the next cleanup event.")
	getState.AddRespStructure(StateResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getState)

	// GET /api/crew
	getCrew, _ := r.NewOperationContext(http.MethodGet, "/api/crew")
	getCrew.SetSummary("List crew")
	getCrew.AddRespStructure(CrewListResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getCrew)

	// POST /api/crew
	postCrew, _ := r.NewOperationContext(http.MethodPost, "/api/crew")
	postCrew.SetSummary("Add crew member")
	postCrew.SetDescription("Adds a volunteer to the roster. Name and role are required.")
	postCrew.AddReqStructure(CrewAddRequest{})
	postCrew.AddRespStructure(CrewAddResponse{}, openapi.WithHTTPStatus(http.StatusCreated))
	postCrew.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postCrew)

	// DELETE /api/crew/{id}
	deleteCrew, _ := r.NewOperationContext(http.MethodDelete, "/api/crew/{id}")
	deleteCrew.SetSummary("Remove crew member")
	deleteCrew.SetDescription("Removes a member by id. Unknown ids leave the roster unchanged.")
	deleteCrew.AddReqStructure(struct {
		ID string `path:"id"`
	}{})
	deleteCrew.AddRespStructure(CrewListResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(deleteCrew)

	// POST /api/cleanups
	postCleanup, _ := r.NewOperationContext(http.MethodPost, "/api/cleanups")
	postCleanup.SetSummary("Schedule a cleanup")
	postCleanup.SetDescription("Increments the cleanup counters and recomputes beaches impacted.")
	postCleanup.AddRespStructure(StatsResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(postCleanup)

	// GET /api/weather
	getWeather, _ := r.NewOperationContext(http.MethodGet, "/api/weather")
	getWeather.SetSummary("Forecast bulletin")
	getWeather.SetDescription("Runs the forecast pipeline. Optional lat/lon select the nearest beach. Always returns a bulletin, live or mock.")
	getWeather.AddRespStructure(weather.Bulletin{}, openapi.WithHTTPStatus(http.StatusOK))
	getWeather.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(getWeather)

	// GET /api/events
	getEvents, _ := r.NewOperationContext(http.MethodGet, "/api/events")
	getEvents.SetSummary("List cleanup events")
	getEvents.AddRespStructure(EventListResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getEvents)

	// POST /api/events/{id}/signups
	postSignup, _ := r.NewOperationContext(http.MethodPost, "/api/events/{id}/signups")
	postSignup.SetSummary("Join a cleanup event")
	postSignup.AddReqStructure(struct {
		ID string `path:"id"`
	}{})
	postSignup.AddReqStructure(SignupRequest{})
	postSignup.AddRespStructure(squad.Signup{}, openapi.WithHTTPStatus(http.StatusCreated))
	postSignup.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postSignup.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(postSignup)

	// GET /api/updates
	getUpdates, _ := r.NewOperationContext(http.MethodGet, "/api/updates")
	getUpdates.SetSummary("SSE update stream")
	getUpdates.SetDescription("Server-Sent Events stream of crew and stats changes.")
	getUpdates.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("text/event-stream"))
	_ = r.AddOperation(getUpdates)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
