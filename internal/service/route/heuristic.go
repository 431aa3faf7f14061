package route

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/asistia/homecare-backend-go/internal/domain/route"
)

// Average speeds in km/h per travel mode.
var averageSpeedKmh = map[route.TravelMode]float64{
	route.ModeDriving: 30,
	route.ModeWalking: 5,
	route.ModeTransit: 20,
}

// Minimum minutes per leg. Short or zero-distance legs still take time to
// park, walk in and ring the bell; without a floor they would report
// implausibly fast travel.
var baseMinutes = map[route.TravelMode]float64{
	route.ModeDriving: 5,
	route.ModeWalking: 10,
	route.ModeTransit: 15,
}

var postalCodeRegex = regexp.MustCompile(`\d{5}`)

// extractPostalCode prefers the structured field and falls back to the
// first 5-digit run inside the free-text address.
func extractPostalCode(info route.AddressInfo) string {
	if info.PostalCode != nil && *info.PostalCode != "" {
		return *info.PostalCode
	}
	if info.Address != nil {
		return postalCodeRegex.FindString(*info.Address)
	}
	return ""
}

// extractCity prefers the structured field and falls back to the
// second-to-last comma-separated token of the free-text address
// ("Calle Mayor 3, Mataró, España" -> "Mataró").
func extractCity(info route.AddressInfo) string {
	if info.City != nil && *info.City != "" {
		return strings.TrimSpace(*info.City)
	}
	if info.Address == nil {
		return ""
	}
	parts := strings.Split(*info.Address, ",")
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimSpace(parts[len(parts)-2])
}

// postalDeltaMeters maps the numeric gap between two postal codes to a
// distance bucket. Nearby codes share district prefixes, so small deltas
// mean short hops.
func postalDeltaMeters(from, to string) int {
	a, errA := strconv.Atoi(from)
	b, errB := strconv.Atoi(to)
	if errA != nil || errB != nil {
		return 0
	}

	delta := int(math.Abs(float64(a - b)))
	switch {
	case delta == 0:
		return 1000
	case delta < 10:
		return 2000
	case delta < 100:
		return 5000
	case delta < 1000:
		return 15000
	default:
		if d := delta * 100; d < 50000 {
			return d
		}
		return 50000
	}
}

const (
	sameCityMeters    = 3000
	unknownCityMeters = 20000
	defaultMeters     = 5000
)

// cityDistanceMeters looks the pair up in the known-city table, treating
// the pair as symmetric.
func cityDistanceMeters(from, to string) int {
	from = strings.ToLower(from)
	to = strings.ToLower(to)
	if from == to {
		return sameCityMeters
	}
	if d, ok := cityPairMeters[cityPair{from, to}]; ok {
		return d
	}
	if d, ok := cityPairMeters[cityPair{to, from}]; ok {
		return d
	}
	return unknownCityMeters
}

// estimateLeg runs the heuristic tiers in priority order for one stop pair.
func estimateLeg(from, to route.AddressInfo, mode route.TravelMode) (meters int, method route.Method, confidence route.Confidence) {
	fromPostal := extractPostalCode(from)
	toPostal := extractPostalCode(to)
	if fromPostal != "" && toPostal != "" {
		return postalDeltaMeters(fromPostal, toPostal), route.MethodPostalCode, route.ConfidenceHigh
	}

	fromCity := extractCity(from)
	toCity := extractCity(to)
	if fromCity != "" && toCity != "" {
		return cityDistanceMeters(fromCity, toCity), route.MethodCityDistance, route.ConfidenceMedium
	}

	return defaultMeters, route.MethodDefault, route.ConfidenceLow
}

// legDurationSeconds converts a distance to travel time for the mode,
// never under the mode's base minimum.
func legDurationSeconds(meters int, mode route.TravelMode) int {
	speed, ok := averageSpeedKmh[mode]
	if !ok {
		speed = averageSpeedKmh[route.ModeDriving]
	}
	base, ok := baseMinutes[mode]
	if !ok {
		base = baseMinutes[route.ModeDriving]
	}

	minutes := float64(meters) / 1000 / speed * 60
	if minutes < base {
		minutes = base
	}
	return int(math.Round(minutes * 60))
}
