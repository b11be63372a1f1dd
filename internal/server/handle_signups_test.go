package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Bloopswy/ShoreSquad/internal/squad"
)

func TestEventListIsSeeded(t *testing.T) {
	r, _ := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp EventListResponse
	json.NewDecoder(w.Body).Decode(&resp)
	if len(resp.Events) != 2 {
		t.Fatalf("expected 2 seeded events, got %d", len(resp.Events))
	}
	for _, ev := range resp.Events {
		if ev.Signups != 0 {
			t.Errorf("expected fresh event %q with 0 signups, got %d", ev.ID, ev.Signups)
		}
	}
}

func TestEventSignup(t *testing.T) {
	r, _ := testRouter(t)

	w := postJSON(t, r, "/api/events/pasir-ris-sweep/signups", SignupRequest{Name: "Maria"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var signup squad.Signup
	json.NewDecoder(w.Body).Decode(&signup)
	if signup.ID == "" {
		t.Error("expected generated signup id")
	}
	if signup.EventID != "pasir-ris-sweep" {
		t.Errorf("expected event id pasir-ris-sweep, got %q", signup.EventID)
	}

	// Signup count shows up in the event list.
	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	lw := httptest.NewRecorder()
	r.ServeHTTP(lw, req)

	var resp EventListResponse
	json.NewDecoder(lw.Body).Decode(&resp)
	for _, ev := range resp.Events {
		if ev.ID == "pasir-ris-sweep" && ev.Signups != 1 {
			t.Errorf("expected 1 signup, got %d", ev.Signups)
		}
	}
}

func TestEventSignupUnknownEvent(t *testing.T) {
	r, _ := testRouter(t)

	w := postJSON(t, r, "/api/events/no-such-event/signups", SignupRequest{Name: "Maria"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestEventSignupRequiresName(t *testing.T) {
	r, _ := testRouter(t)

	w := postJSON(t, r, "/api/events/pasir-ris-sweep/signups", SignupRequest{Name: "  "})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
