package weather

import "strings"

// Glyph maps a free-text forecast condition to a display glyph by
// case-insensitive substring match. The order matters: "Partly Cloudy
// (Day)" has to hit the partly-cloudy branch before the generic cloud
// branch, and anything thundery wins over plain rain.
func Glyph(condition string) string {
	c := strings.ToLower(condition)
	switch {
	case strings.Contains(c, "thunder"):
		return "⛈️"
	case strings.Contains(c, "rain"), strings.Contains(c, "shower"), strings.Contains(c, "drizzle"):
		return "🌧️"
	case strings.Contains(c, "partly cloudy"):
		return "⛅"
	case strings.Contains(c, "cloud"), strings.Contains(c, "overcast"):
		return "☁️"
	case strings.Contains(c, "clear"), strings.Contains(c, "fair"), strings.Contains(c, "sun"):
		return "☀️"
	case strings.Contains(c, "wind"), strings.Contains(c, "breez"):
		return "🌬️"
	default:
		return "🌤️"
	}
}
