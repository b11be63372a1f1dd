package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHealthOK(t *testing.T) {
	r, _ := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var checks map[string]struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(w.Body).Decode(&checks); err != nil {
		t.Fatalf("decode checks: %v", err)
	}
	if checks["sqlite"].Status != "ok" {
		t.Errorf("expected sqlite ok, got %q", checks["sqlite"].Status)
	}
}

func TestHealthDegraded(t *testing.T) {
	r, env := testRouter(t)
	env.db.Close()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 with closed db, got %d", w.Code)
	}
}
