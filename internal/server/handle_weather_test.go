package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Bloopswy/ShoreSquad/internal/weather"
)

func TestWeatherReturnsBulletin(t *testing.T) {
	r, _ := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/weather", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var b weather.Bulletin
	json.NewDecoder(w.Body).Decode(&b)
	if b.Source != weather.SourceMock {
		t.Errorf("expected stubbed mock bulletin, got source %q", b.Source)
	}
	if len(b.Days) == 0 {
		t.Fatal("expected forecast days")
	}
	if !b.Days[0].BestDay {
		t.Error("expected first day tagged as best day")
	}
	if b.Beach != weather.DefaultBeach {
		t.Errorf("expected default beach without coordinates, got %q", b.Beach)
	}
}

func TestWeatherWithCoordinates(t *testing.T) {
	r, _ := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/weather?lat=1.3010&lon=103.9130&accuracy=20", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var b weather.Bulletin
	json.NewDecoder(w.Body).Decode(&b)
	if b.Beach != "East Coast Beach" {
		t.Errorf("expected East Coast Beach, got %q", b.Beach)
	}
}

func TestWeatherRejectsBadCoordinates(t *testing.T) {
	r, _ := testRouter(t)

	for _, query := range []string{
		"?lat=91&lon=103.9",
		"?lat=1.3&lon=181",
		"?lat=abc&lon=103.9",
		"?lat=1.3",
	} {
		req := httptest.NewRequest(http.MethodGet, "/api/weather"+query, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400 for %q, got %d", query, w.Code)
		}
	}
}
