package weather

// Location is a one-shot position report from the client. It only
// influences which beach name the bulletin carries; the NEA forecast
// itself is island-wide.
type Location struct {
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	AccuracyM float64 `json:"accuracyMeters,omitempty"`
}

// Valid reports whether the coordinates are in range.
func (l Location) Valid() bool {
	return l.Lat >= -90 && l.Lat <= 90 && l.Lon >= -180 && l.Lon <= 180
}

type beach struct {
	name     string
	lat, lon float64
}

var beaches = []beach{
	{"Pasir Ris Beach", 1.3814, 103.9554},
	{"Changi Beach", 1.3903, 103.9915},
	{"Punggol Beach", 1.4213, 103.9110},
	{"East Coast Beach", 1.3007, 103.9122},
	{"Sembawang Beach", 1.4620, 103.8348},
	{"Siloso Beach", 1.2540, 103.8113},
}

// DefaultBeach is used when no location was granted.
const DefaultBeach = "Pasir Ris Beach"

// NearestBeach picks the closest beach from the fixed list, or the
// default when loc is nil. Squared-degree distance is plenty at this
// scale.
func NearestBeach(loc *Location) string {
	if loc == nil {
		return DefaultBeach
	}
	best := beaches[0]
	bestDist := distSq(*loc, best)
	for _, b := range beaches[1:] {
		if d := distSq(*loc, b); d < bestDist {
			best, bestDist = b, d
		}
	}
	return best.name
}

func distSq(loc Location, b beach) float64 {
	dLat := loc.Lat - b.lat
	dLon := loc.Lon - b.lon
	return dLat*dLat + dLon*dLon
}
