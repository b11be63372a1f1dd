package weather

import "time"

// mockConditions is the fixed rotation used for the fallback bulletin.
var mockConditions = [4]string{
	"Partly Cloudy",
	"Showers",
	"Fair",
	"Partly Cloudy",
}

// MockBulletin builds the deterministic fallback forecast: fixed
// condition texts, the default bands, and dates today+0..3. Given the
// same clock it always produces the same bulletin.
func MockBulletin(now time.Time) Bulletin {
	days := make([]ForecastDay, len(mockConditions))
	for i, cond := range mockConditions {
		days[i] = ForecastDay{
			Date:        now.AddDate(0, 0, i).Format("2006-01-02"),
			Condition:   cond,
			Glyph:       Glyph(cond),
			Humidity:    DefaultHumidity,
			Temperature: DefaultTemperature,
			Wind:        DefaultWind,
			BestDay:     i == 0,
		}
	}
	return Bulletin{
		Source:    SourceMock,
		UpdatedAt: now,
		Days:      days,
	}
}
