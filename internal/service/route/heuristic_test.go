package route

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/asistia/homecare-backend-go/internal/domain/route"
)

func strPtr(s string) *string { return &s }

func TestExtractPostalCode(t *testing.T) {
	tests := []struct {
		name     string
		info     route.AddressInfo
		expected string
	}{
		{
			name:     "structured field wins",
			info:     route.AddressInfo{PostalCode: strPtr("08301"), Address: strPtr("Calle Mayor 3, 08302 Mataró")},
			expected: "08301",
		},
		{
			name:     "falls back to digits in free text",
			info:     route.AddressInfo{Address: strPtr("Calle Mayor 3, 08302 Mataró")},
			expected: "08302",
		},
		{
			name:     "no postal data",
			info:     route.AddressInfo{Address: strPtr("Calle Mayor 3, Mataró")},
			expected: "",
		},
		{
			name:     "empty info",
			info:     route.AddressInfo{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractPostalCode(tt.info))
		})
	}
}

func TestExtractCity(t *testing.T) {
	tests := []struct {
		name     string
		info     route.AddressInfo
		expected string
	}{
		{
			name:     "structured field wins",
			info:     route.AddressInfo{City: strPtr("Badalona"), Address: strPtr("Calle Mayor 3, Mataró, España")},
			expected: "Badalona",
		},
		{
			name:     "second to last token of free text",
			info:     route.AddressInfo{Address: strPtr("Calle Mayor 3, Mataró, España")},
			expected: "Mataró",
		},
		{
			name:     "single token address has no city",
			info:     route.AddressInfo{Address: strPtr("Calle Mayor 3")},
			expected: "",
		},
		{
			name:     "empty info",
			info:     route.AddressInfo{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractCity(tt.info))
		})
	}
}

func TestPostalDeltaMeters(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		expected int
	}{
		{"same code", "08301", "08301", 1000},
		{"adjacent district", "08301", "08302", 2000},
		{"delta under 100", "08301", "08350", 5000},
		{"delta under 1000", "08301", "08900", 15000},
		{"delta of 300", "08000", "08300", 15000},
		{"huge delta capped at 50km", "08001", "28001", 50000},
		{"delta just over 1000", "08001", "09101", 50000},
		{"non numeric codes", "ABCDE", "08301", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, postalDeltaMeters(tt.from, tt.to))
		})
	}
}

func TestCityDistanceMeters(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		expected int
	}{
		{"same city case insensitive", "Mataró", "mataró", sameCityMeters},
		{"known pair", "Mataró", "Barcelona", 30000},
		{"known pair reversed", "Barcelona", "Mataró", 30000},
		{"unknown pair", "Mataró", "Sevilla", unknownCityMeters},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cityDistanceMeters(tt.from, tt.to))
		})
	}
}

func TestEstimateLegTierOrder(t *testing.T) {
	withPostal := route.AddressInfo{PostalCode: strPtr("08301"), City: strPtr("Mataró")}
	withCity := route.AddressInfo{City: strPtr("Barcelona")}
	bare := route.AddressInfo{}

	meters, method, confidence := estimateLeg(withPostal, route.AddressInfo{PostalCode: strPtr("08301")}, route.ModeDriving)
	assert.Equal(t, 1000, meters)
	assert.Equal(t, route.MethodPostalCode, method)
	assert.Equal(t, route.ConfidenceHigh, confidence)

	// One side missing a postal code drops the pair down to the city tier.
	meters, method, confidence = estimateLeg(withPostal, withCity, route.ModeDriving)
	assert.Equal(t, 30000, meters)
	assert.Equal(t, route.MethodCityDistance, method)
	assert.Equal(t, route.ConfidenceMedium, confidence)

	meters, method, confidence = estimateLeg(bare, bare, route.ModeDriving)
	assert.Equal(t, defaultMeters, meters)
	assert.Equal(t, route.MethodDefault, method)
	assert.Equal(t, route.ConfidenceLow, confidence)
}

func TestLegDurationSeconds(t *testing.T) {
	tests := []struct {
		name     string
		meters   int
		mode     route.TravelMode
		expected int
	}{
		{"short drive hits 5 minute floor", 1000, route.ModeDriving, 300},
		{"2km drive still floored", 2000, route.ModeDriving, 300},
		{"5km drive at 30 km/h", 5000, route.ModeDriving, 600},
		{"15km drive", 15000, route.ModeDriving, 1800},
		{"3km walk at 5 km/h", 3000, route.ModeWalking, 2160},
		{"short walk hits 10 minute floor", 500, route.ModeWalking, 600},
		{"5km transit equals 15 minute floor", 5000, route.ModeTransit, 900},
		{"unknown mode falls back to driving profile", 5000, route.TravelMode("scooter"), 600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, legDurationSeconds(tt.meters, tt.mode))
		})
	}
}

func TestBucketScores(t *testing.T) {
	assert.Equal(t, route.ConfidenceLow, bucketScores(nil))
	assert.Equal(t, route.ConfidenceHigh, bucketScores([]confidenceScore{scoreHigh, scoreHigh}))
	assert.Equal(t, route.ConfidenceHigh, bucketScores([]confidenceScore{scoreHigh, scoreHigh, scoreMedium, scoreMedium}))
	assert.Equal(t, route.ConfidenceMedium, bucketScores([]confidenceScore{scoreHigh, scoreLow}))
	assert.Equal(t, route.ConfidenceMedium, bucketScores([]confidenceScore{scoreMedium, scoreMedium}))
	assert.Equal(t, route.ConfidenceLow, bucketScores([]confidenceScore{scoreLow, scoreLow, scoreMedium}))
}
