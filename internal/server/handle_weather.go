package server

import (
	"net/http"
	"strconv"

	"github.com/Bloopswy/ShoreSquad/internal/weather"
)

// handleWeather runs the forecast pipeline. Coordinates are optional:
// without them the bulletin is for the default beach. Bad coordinates
// are the one user-visible error here — the analog of a denied
// geolocation prompt — and the fetch is not attempted.
func handleWeather(forecast Forecaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loc, ok := parseLocation(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid coordinates")
			return
		}

		writeJSON(w, http.StatusOK, forecast.Bulletin(r.Context(), loc))
	}
}

func parseLocation(r *http.Request) (*weather.Location, bool) {
	latStr := r.URL.Query().Get("lat")
	lonStr := r.URL.Query().Get("lon")
	if latStr == "" && lonStr == "" {
		return nil, true
	}
	if latStr == "" || lonStr == "" {
		return nil, false
	}

	lat, errLat := strconv.ParseFloat(latStr, 64)
	lon, errLon := strconv.ParseFloat(lonStr, 64)
	if errLat != nil || errLon != nil {
		return nil, false
	}

	loc := weather.Location{Lat: lat, Lon: lon}
	if acc, err := strconv.ParseFloat(r.URL.Query().Get("accuracy"), 64); err == nil {
		loc.AccuracyM = acc
	}
	if !loc.Valid() {
		return nil, false
	}
	return &loc, true
}
