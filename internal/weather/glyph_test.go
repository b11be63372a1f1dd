package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGlyph(t *testing.T) {
	cases := []struct {
		condition string
		want      string
	}{
		{"Thundery Showers", "⛈️"},
		{"Heavy Thundery Showers with Gusty Winds", "⛈️"},
		{"Light Rain", "🌧️"},
		{"Passing Showers", "🌧️"},
		{"Partly Cloudy (Day)", "⛅"},
		{"Partly cloudy", "⛅"},
		{"Cloudy", "☁️"},
		{"Overcast", "☁️"},
		{"Fair (Day)", "☀️"},
		{"Sunny", "☀️"},
		{"Windy", "🌬️"},
		{"Hazy", "🌤️"},
		{"", "🌤️"},
	}

	for _, tc := range cases {
		t.Run(tc.condition, func(t *testing.T) {
			assert.Equal(t, tc.want, Glyph(tc.condition))
		})
	}
}
