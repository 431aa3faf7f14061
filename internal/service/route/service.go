package route

import (
	"context"
	"fmt"
	"strings"

	"github.com/asistia/homecare-backend-go/internal/domain/route"
)

type confidenceScore = float64

const (
	scoreHigh   confidenceScore = 3
	scoreMedium confidenceScore = 2
	scoreLow    confidenceScore = 1
)

// Config carries address-assembly defaults for the external tier.
type Config struct {
	DefaultCity string
	Country     string
}

type service struct {
	provider route.DirectionsProvider
	cfg      Config
}

// NewRouteService builds the estimator. provider may be nil; the external
// tier then reports every segment as failed while the heuristic tier keeps
// working.
func NewRouteService(provider route.DirectionsProvider, cfg Config) route.Service {
	if cfg.DefaultCity == "" {
		cfg.DefaultCity = "Mataró"
	}
	if cfg.Country == "" {
		cfg.Country = "España"
	}
	return &service{provider: provider, cfg: cfg}
}

// stopsWithStart prepends the worker's own address as stop 0 when present.
// The returned flag marks whether segment 0 is the home leg, which is
// computed for completeness but excluded from billable totals.
func stopsWithStart(req route.EstimateRouteRequest) ([]route.Stop, bool) {
	if req.WorkerStart == nil {
		return req.Stops, false
	}
	stops := make([]route.Stop, 0, len(req.Stops)+1)
	stops = append(stops, *req.WorkerStart)
	stops = append(stops, req.Stops...)
	return stops, true
}

// EstimateHeuristic produces per-segment figures without touching any
// external service. Every segment succeeds; confidence reflects which
// address data was available.
func (s *service) EstimateHeuristic(ctx context.Context, req route.EstimateRouteRequest) route.Estimate {
	stops, hasHomeLeg := stopsWithStart(req)
	if len(stops) < 2 {
		return route.Estimate{
			Segments:   []route.Segment{},
			Confidence: route.ConfidenceLow,
			Error:      "at least two stops are required",
		}
	}

	mode := route.TravelMode(req.TravelMode)
	segments := make([]route.Segment, 0, len(stops)-1)
	scores := make([]confidenceScore, 0, len(stops)-1)

	totalDuration := 0
	totalDistance := 0

	for i := 0; i < len(stops)-1; i++ {
		meters, method, confidence := estimateLeg(stops[i].Address, stops[i+1].Address, mode)
		seconds := legDurationSeconds(meters, mode)
		billable := !(hasHomeLeg && i == 0)

		segments = append(segments, route.Segment{
			FromIndex:       i,
			ToIndex:         i + 1,
			FromLabel:       stops[i].Label,
			ToLabel:         stops[i+1].Label,
			DurationSeconds: seconds,
			DistanceMeters:  meters,
			Success:         true,
			Method:          method,
			Confidence:      confidence,
			Billable:        billable,
		})
		scores = append(scores, confidenceToScore(confidence))

		if billable {
			totalDuration += seconds
			totalDistance += meters
		}
	}

	return route.Estimate{
		Segments:             segments,
		TotalDurationSeconds: totalDuration,
		TotalDistanceMeters:  totalDistance,
		Confidence:           bucketScores(scores),
	}
}

// EstimateExternal asks the mapping service for exact durations, segment by
// segment. Segments are evaluated sequentially; one failed segment never
// aborts the rest, and the aggregate Error is set only when every segment
// failed.
func (s *service) EstimateExternal(ctx context.Context, req route.EstimateRouteRequest) route.Estimate {
	stops, hasHomeLeg := stopsWithStart(req)
	if len(stops) < 2 {
		return route.Estimate{
			Segments:   []route.Segment{},
			Confidence: route.ConfidenceLow,
			Error:      "at least two stops are required",
		}
	}

	mode := route.TravelMode(req.TravelMode)
	segments := make([]route.Segment, 0, len(stops)-1)
	scores := make([]confidenceScore, 0, len(stops)-1)

	totalDuration := 0
	totalDistance := 0
	succeeded := 0

	for i := 0; i < len(stops)-1; i++ {
		billable := !(hasHomeLeg && i == 0)
		segment := route.Segment{
			FromIndex: i,
			ToIndex:   i + 1,
			FromLabel: stops[i].Label,
			ToLabel:   stops[i+1].Label,
			Method:    route.MethodExternal,
			Billable:  billable,
		}

		result, err := s.directions(ctx, stops[i].Address, stops[i+1].Address, mode)
		if err != nil {
			segment.Success = false
			segment.Confidence = route.ConfidenceLow
			segment.Error = err.Error()
			scores = append(scores, scoreLow)
		} else {
			segment.Success = true
			segment.Confidence = route.ConfidenceHigh
			segment.DurationSeconds = result.DurationSeconds
			segment.DistanceMeters = result.DistanceMeters
			scores = append(scores, scoreHigh)
			succeeded++

			if billable {
				totalDuration += result.DurationSeconds
				totalDistance += result.DistanceMeters
			}
		}

		segments = append(segments, segment)
	}

	estimate := route.Estimate{
		Segments:             segments,
		TotalDurationSeconds: totalDuration,
		TotalDistanceMeters:  totalDistance,
		Confidence:           bucketScores(scores),
	}
	if succeeded == 0 {
		estimate.Error = "no route segment could be calculated"
	}
	return estimate
}

func (s *service) directions(ctx context.Context, from, to route.AddressInfo, mode route.TravelMode) (route.DirectionsResult, error) {
	if s.provider == nil {
		return route.DirectionsResult{}, fmt.Errorf("directions provider not configured")
	}

	origin := s.fullAddress(from)
	destination := s.fullAddress(to)

	result, err := s.provider.Directions(ctx, origin, destination, mode)
	if err != nil {
		return route.DirectionsResult{}, fmt.Errorf("directions %q -> %q: %w", origin, destination, err)
	}
	if result.Status != route.StatusOK {
		return route.DirectionsResult{}, fmt.Errorf("directions %q -> %q: status %s", origin, destination, result.Status)
	}
	return result, nil
}

// fullAddress assembles the postal address string the mapping service
// expects: street, "postal city", falling back to the configured city when
// nothing is known, with the country appended when absent.
func (s *service) fullAddress(info route.AddressInfo) string {
	var parts []string

	if info.Address != nil && strings.TrimSpace(*info.Address) != "" {
		parts = append(parts, strings.TrimSpace(*info.Address))
	}

	locality := ""
	if info.PostalCode != nil && *info.PostalCode != "" {
		locality = *info.PostalCode
	}
	city := ""
	if info.City != nil && *info.City != "" {
		city = *info.City
	}
	if locality != "" && city != "" {
		parts = append(parts, locality+" "+city)
	} else if locality != "" {
		parts = append(parts, locality)
	} else if city != "" {
		parts = append(parts, city)
	}

	if len(parts) == 0 {
		parts = append(parts, s.cfg.DefaultCity)
	}

	full := strings.Join(parts, ", ")
	if !strings.Contains(strings.ToLower(full), strings.ToLower(s.cfg.Country)) {
		full += ", " + s.cfg.Country
	}
	return full
}

func confidenceToScore(c route.Confidence) confidenceScore {
	switch c {
	case route.ConfidenceHigh:
		return scoreHigh
	case route.ConfidenceMedium:
		return scoreMedium
	default:
		return scoreLow
	}
}

// bucketScores averages per-segment scores and maps the mean back to a
// qualitative rating.
func bucketScores(scores []confidenceScore) route.Confidence {
	if len(scores) == 0 {
		return route.ConfidenceLow
	}

	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	avg := sum / float64(len(scores))

	switch {
	case avg >= 2.5:
		return route.ConfidenceHigh
	case avg >= 1.5:
		return route.ConfidenceMedium
	default:
		return route.ConfidenceLow
	}
}
