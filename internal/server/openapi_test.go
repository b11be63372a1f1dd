package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOpenAPISpecServes(t *testing.T) {
	h := handleOpenAPI()

	req := httptest.NewRequest(http.MethodGet, "/openapi.json", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var spec struct {
		OpenAPI string                    `json:"openapi"`
		Paths   map[string]map[string]any `json:"paths"`
	}
	if err := json.NewDecoder(w.Body).Decode(&spec); err != nil {
		t.Fatalf("decode spec: %v", err)
	}

	for _, path := range []string{
		"/api/state",
		"/api/crew",
		"/api/crew/{id}",
		"/api/cleanups",
		"/api/weather",
		"/api/events",
		"/api/events/{id}/signups",
		"/api/updates",
		"/healthz",
	} {
		if _, ok := spec.Paths[path]; !ok {
			t.Errorf("expected path %q in spec", path)
		}
	}
}
