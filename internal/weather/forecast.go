// Package weather fetches short-range forecasts from the data.gov.sg
// real-time APIs and normalizes them into a renderable Bulletin. The
// pipeline never fails from the caller's perspective: any fetch, status,
// or decode problem is replaced by a deterministic mock bulletin.
package weather

import (
	"strings"
	"time"
)

// Bulletin source tags. Tests and the UI can tell which branch ran.
const (
	SourceLive = "live"
	SourceMock = "mock"
)

// Band is an inclusive low/high range (humidity %, °C, or km/h).
type Band struct {
	Low  int `json:"low"`
	High int `json:"high"`
}

// ForecastDay is one normalized day of the bulletin.
type ForecastDay struct {
	Date        string `json:"date"` // YYYY-MM-DD
	Condition   string `json:"condition"`
	Glyph       string `json:"glyph"`
	Humidity    Band   `json:"humidity"`
	Temperature Band   `json:"temperature"`
	Wind        Band   `json:"wind"`
	BestDay     bool   `json:"bestDay"`
}

// Bulletin is the pipeline output: always renderable, tagged with the
// branch that produced it.
type Bulletin struct {
	Source    string        `json:"source"`
	Beach     string        `json:"beach"`
	UpdatedAt time.Time     `json:"updatedAt"`
	Days      []ForecastDay `json:"days"`
}

// Named per-field defaults, substituted when the upstream response omits
// a field. Defaulting is per-field: present fields pass through.
var (
	DefaultHumidity    = Band{Low: 60, High: 85}
	DefaultTemperature = Band{Low: 26, High: 32}
	DefaultWind        = Band{Low: 10, High: 20}
)

// DefaultCondition substitutes for an absent forecast text.
const DefaultCondition = "Partly Cloudy"

// combine merges the 24-hour record and the 4-day outlook into one
// bulletin. Index 0 (today, the earliest day) is tagged as the best day
// for a cleanup; no other ranking is applied.
func combine(cur currentRecord, outlook []outlookEntry, now time.Time) Bulletin {
	days := make([]ForecastDay, 0, 1+len(outlook))

	today := ForecastDay{
		Date:        dateOrDefault(cur.Date, now, 0),
		Condition:   conditionOrDefault(currentCondition(cur)),
		Humidity:    bandOrDefault(cur.General.RelativeHumidity),
		Temperature: tempOrDefault(cur.General.Temperature),
		Wind:        windOrDefault(cur.General.Wind),
		BestDay:     true,
	}
	today.Glyph = Glyph(today.Condition)
	days = append(days, today)

	for i, e := range outlook {
		day := ForecastDay{
			Date:        outlookDate(e, now, i+1),
			Condition:   conditionOrDefault(outlookCondition(e)),
			Humidity:    bandOrDefault(e.RelativeHumidity),
			Temperature: tempOrDefault(e.Temperature),
			Wind:        windOrDefault(e.Wind),
		}
		day.Glyph = Glyph(day.Condition)
		days = append(days, day)
	}

	return Bulletin{
		Source:    SourceLive,
		UpdatedAt: now,
		Days:      days,
	}
}

func currentCondition(cur currentRecord) string {
	if cur.General.Forecast == nil {
		return ""
	}
	return cur.General.Forecast.Text
}

func outlookCondition(e outlookEntry) string {
	if e.Forecast == nil {
		return ""
	}
	if e.Forecast.Text != "" {
		return e.Forecast.Text
	}
	return e.Forecast.Summary
}

func conditionOrDefault(text string) string {
	if strings.TrimSpace(text) == "" {
		return DefaultCondition
	}
	return text
}

func bandOrDefault(b *rawBand) Band {
	if b == nil {
		return DefaultHumidity
	}
	return Band{Low: b.Low, High: b.High}
}

func tempOrDefault(b *rawBand) Band {
	if b == nil {
		return DefaultTemperature
	}
	return Band{Low: b.Low, High: b.High}
}

func windOrDefault(w *rawWind) Band {
	if w == nil || w.Speed == nil {
		return DefaultWind
	}
	return Band{Low: w.Speed.Low, High: w.Speed.High}
}

// dateOrDefault uses the record's own date when present, otherwise
// today+offset from the injected clock.
func dateOrDefault(date string, now time.Time, offset int) string {
	if _, err := time.Parse("2006-01-02", date); err == nil {
		return date
	}
	return now.AddDate(0, 0, offset).Format("2006-01-02")
}

func outlookDate(e outlookEntry, now time.Time, offset int) string {
	if ts, err := time.Parse(time.RFC3339, e.Timestamp); err == nil {
		return ts.Format("2006-01-02")
	}
	return dateOrDefault(e.Date, now, offset)
}
