package pricing

import "strings"

// Zone is the installation pricing zone derived from a free-text location.
type Zone int

const (
	ZoneMetro Zone = iota
	ZoneOutskirts
	ZoneOther
)

var (
	metroKeywords     = []string{"nairobi", "westlands", "karen"}
	outskirtsKeywords = []string{"thika", "kiambu"}
	zoneFactor        = [...]float64{ZoneMetro: 1.0, ZoneOutskirts: 1.2, ZoneOther: 1.5}
	zoneLeadTime      = [...]string{
		ZoneMetro:     "3-5 working days",
		ZoneOutskirts: "5-7 working days",
		ZoneOther:     "7-10 working days",
	}
)

// ResolveZone matches keywords as case-insensitive substrings. The metro
// group is checked first, so "Thika Road, Nairobi" is ZoneMetro.
func ResolveZone(location string) Zone {
	normalized := strings.ToLower(location)
	if containsAny(normalized, metroKeywords) {
		return ZoneMetro
	}
	if containsAny(normalized, outskirtsKeywords) {
		return ZoneOutskirts
	}
	return ZoneOther
}

// LocationFactor is the multiplier applied to the base cost for a location.
func LocationFactor(location string) float64 {
	return ResolveZone(location).Factor()
}

// InstallationWindow is the lead time promised to the customer.
func InstallationWindow(location string) string {
	return zoneLeadTime[ResolveZone(location)]
}

func (z Zone) Factor() float64 { return zoneFactor[z] }

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
