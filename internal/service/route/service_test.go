package route

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asistia/homecare-backend-go/internal/domain/route"
	"github.com/asistia/homecare-backend-go/internal/pkg/maps"
)

func stop(label, postal, city string) route.Stop {
	info := route.AddressInfo{}
	if postal != "" {
		info.PostalCode = &postal
	}
	if city != "" {
		info.City = &city
	}
	return route.Stop{Label: label, Address: info}
}

func TestEstimateHeuristicRequiresTwoStops(t *testing.T) {
	svc := NewRouteService(nil, Config{})

	estimate := svc.EstimateHeuristic(context.Background(), route.EstimateRouteRequest{
		Stops:      []route.Stop{stop("only", "08301", "")},
		TravelMode: string(route.ModeDriving),
	})

	assert.Empty(t, estimate.Segments)
	assert.Equal(t, route.ConfidenceLow, estimate.Confidence)
	assert.Equal(t, "at least two stops are required", estimate.Error)
}

func TestEstimateHeuristicPostalTier(t *testing.T) {
	svc := NewRouteService(nil, Config{})

	estimate := svc.EstimateHeuristic(context.Background(), route.EstimateRouteRequest{
		Stops: []route.Stop{
			stop("a", "08301", ""),
			stop("b", "08301", ""),
			stop("c", "08350", ""),
		},
		TravelMode: string(route.ModeDriving),
	})

	require.Len(t, estimate.Segments, 2)
	assert.Empty(t, estimate.Error)

	first := estimate.Segments[0]
	assert.True(t, first.Success)
	assert.Equal(t, route.MethodPostalCode, first.Method)
	assert.Equal(t, route.ConfidenceHigh, first.Confidence)
	assert.Equal(t, 1000, first.DistanceMeters)
	assert.Equal(t, 300, first.DurationSeconds)
	assert.True(t, first.Billable)

	second := estimate.Segments[1]
	assert.Equal(t, 5000, second.DistanceMeters)
	assert.Equal(t, 600, second.DurationSeconds)

	assert.Equal(t, 6000, estimate.TotalDistanceMeters)
	assert.Equal(t, 900, estimate.TotalDurationSeconds)
	assert.Equal(t, route.ConfidenceHigh, estimate.Confidence)
}

func TestEstimateHeuristicMixedTiers(t *testing.T) {
	svc := NewRouteService(nil, Config{})

	estimate := svc.EstimateHeuristic(context.Background(), route.EstimateRouteRequest{
		Stops: []route.Stop{
			stop("a", "", "Mataró"),
			stop("b", "", "Barcelona"),
			stop("c", "", ""),
		},
		TravelMode: string(route.ModeDriving),
	})

	require.Len(t, estimate.Segments, 2)
	assert.Equal(t, route.MethodCityDistance, estimate.Segments[0].Method)
	assert.Equal(t, 30000, estimate.Segments[0].DistanceMeters)
	assert.Equal(t, route.MethodDefault, estimate.Segments[1].Method)
	assert.Equal(t, defaultMeters, estimate.Segments[1].DistanceMeters)
	assert.Equal(t, route.ConfidenceMedium, estimate.Confidence)
}

func TestEstimateHeuristicWorkerStartNotBillable(t *testing.T) {
	svc := NewRouteService(nil, Config{})
	home := stop("home", "08301", "")

	estimate := svc.EstimateHeuristic(context.Background(), route.EstimateRouteRequest{
		Stops: []route.Stop{
			stop("a", "08302", ""),
			stop("b", "08350", ""),
			stop("c", "08355", ""),
		},
		TravelMode:  string(route.ModeDriving),
		WorkerStart: &home,
	})

	require.Len(t, estimate.Segments, 3)

	homeLeg := estimate.Segments[0]
	assert.Equal(t, "home", homeLeg.FromLabel)
	assert.False(t, homeLeg.Billable)
	assert.True(t, homeLeg.Success)
	assert.Equal(t, 2000, homeLeg.DistanceMeters)

	assert.True(t, estimate.Segments[1].Billable)
	assert.True(t, estimate.Segments[2].Billable)

	// Only the two client-to-client legs count: 5km + 2km.
	assert.Equal(t, 7000, estimate.TotalDistanceMeters)
	assert.Equal(t, 900, estimate.TotalDurationSeconds)
}

func TestEstimateExternal(t *testing.T) {
	cfg := Config{DefaultCity: "Mataró", Country: "España"}
	provider := maps.NewFakeProvider([]maps.FakePair{
		{From: "08301 Mataró, España", To: "08302 Mataró, España", Seconds: 420, Meters: 1800},
	})
	svc := NewRouteService(provider, cfg)

	estimate := svc.EstimateExternal(context.Background(), route.EstimateRouteRequest{
		Stops: []route.Stop{
			stop("a", "08301", "Mataró"),
			stop("b", "08302", "Mataró"),
			stop("c", "08999", "Sevilla"),
		},
		TravelMode: string(route.ModeDriving),
	})

	require.Len(t, estimate.Segments, 2)
	assert.Empty(t, estimate.Error)

	first := estimate.Segments[0]
	assert.True(t, first.Success)
	assert.Equal(t, route.MethodExternal, first.Method)
	assert.Equal(t, route.ConfidenceHigh, first.Confidence)
	assert.Equal(t, 420, first.DurationSeconds)
	assert.Equal(t, 1800, first.DistanceMeters)

	second := estimate.Segments[1]
	assert.False(t, second.Success)
	assert.Equal(t, route.ConfidenceLow, second.Confidence)
	assert.NotEmpty(t, second.Error)

	// Failed segments contribute nothing to the totals.
	assert.Equal(t, 420, estimate.TotalDurationSeconds)
	assert.Equal(t, 1800, estimate.TotalDistanceMeters)
	assert.Equal(t, route.ConfidenceMedium, estimate.Confidence)
}

func TestEstimateExternalAllSegmentsFailed(t *testing.T) {
	provider := maps.NewFakeProvider(nil)
	svc := NewRouteService(provider, Config{})

	estimate := svc.EstimateExternal(context.Background(), route.EstimateRouteRequest{
		Stops: []route.Stop{
			stop("a", "08301", ""),
			stop("b", "08302", ""),
		},
		TravelMode: string(route.ModeDriving),
	})

	require.Len(t, estimate.Segments, 1)
	assert.False(t, estimate.Segments[0].Success)
	assert.Equal(t, "no route segment could be calculated", estimate.Error)
	assert.Equal(t, route.ConfidenceLow, estimate.Confidence)
	assert.Zero(t, estimate.TotalDurationSeconds)
	assert.Zero(t, estimate.TotalDistanceMeters)
}

func TestEstimateExternalNilProvider(t *testing.T) {
	svc := NewRouteService(nil, Config{})

	estimate := svc.EstimateExternal(context.Background(), route.EstimateRouteRequest{
		Stops: []route.Stop{
			stop("a", "08301", ""),
			stop("b", "08302", ""),
		},
		TravelMode: string(route.ModeDriving),
	})

	require.Len(t, estimate.Segments, 1)
	assert.False(t, estimate.Segments[0].Success)
	assert.Contains(t, estimate.Segments[0].Error, "directions provider not configured")
	assert.Equal(t, "no route segment could be calculated", estimate.Error)
}

func TestEstimateExternalHomeLegExcludedFromTotals(t *testing.T) {
	cfg := Config{DefaultCity: "Mataró", Country: "España"}
	provider := maps.NewFakeProvider([]maps.FakePair{
		{From: "08301 Mataró, España", To: "08302 Mataró, España", Seconds: 300, Meters: 1500},
		{From: "08302 Mataró, España", To: "08303 Mataró, España", Seconds: 360, Meters: 2000},
	})
	svc := NewRouteService(provider, cfg)
	home := stop("home", "08301", "Mataró")

	estimate := svc.EstimateExternal(context.Background(), route.EstimateRouteRequest{
		Stops: []route.Stop{
			stop("a", "08302", "Mataró"),
			stop("b", "08303", "Mataró"),
		},
		TravelMode:  string(route.ModeDriving),
		WorkerStart: &home,
	})

	require.Len(t, estimate.Segments, 2)
	assert.False(t, estimate.Segments[0].Billable)
	assert.True(t, estimate.Segments[0].Success)
	assert.True(t, estimate.Segments[1].Billable)

	assert.Equal(t, 360, estimate.TotalDurationSeconds)
	assert.Equal(t, 2000, estimate.TotalDistanceMeters)
}

func TestFullAddress(t *testing.T) {
	s := &service{cfg: Config{DefaultCity: "Mataró", Country: "España"}}

	tests := []struct {
		name     string
		info     route.AddressInfo
		expected string
	}{
		{
			name:     "street postal and city",
			info:     route.AddressInfo{Address: strPtr("Calle Mayor 3"), PostalCode: strPtr("08301"), City: strPtr("Mataró")},
			expected: "Calle Mayor 3, 08301 Mataró, España",
		},
		{
			name:     "postal only",
			info:     route.AddressInfo{PostalCode: strPtr("08301")},
			expected: "08301, España",
		},
		{
			name:     "city only",
			info:     route.AddressInfo{City: strPtr("Badalona")},
			expected: "Badalona, España",
		},
		{
			name:     "empty falls back to default city",
			info:     route.AddressInfo{},
			expected: "Mataró, España",
		},
		{
			name:     "country already present is not duplicated",
			info:     route.AddressInfo{Address: strPtr("Calle Mayor 3, Mataró, España")},
			expected: "Calle Mayor 3, Mataró, España",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, s.fullAddress(tt.info))
		})
	}
}
