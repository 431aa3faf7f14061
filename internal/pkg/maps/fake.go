package maps

import (
	"context"
	"fmt"

	"github.com/asistia/homecare-backend-go/internal/domain/route"
)

type FakePair struct {
	From, To string
	Seconds  int
	Meters   int
}

// FakeProvider answers directions lookups from a fixed table. Unknown pairs
// fail the same way a non-OK service answer does, which makes it useful for
// exercising partial-failure paths in tests.
type FakeProvider struct {
	m map[string]route.DirectionsResult
}

func NewFakeProvider(pairs []FakePair) *FakeProvider {
	m := make(map[string]route.DirectionsResult, len(pairs))
	for _, p := range pairs {
		m[p.From+"|"+p.To] = route.DirectionsResult{
			Status:          route.StatusOK,
			DurationSeconds: p.Seconds,
			DistanceMeters:  p.Meters,
		}
	}
	return &FakeProvider{m: m}
}

func (p *FakeProvider) Directions(ctx context.Context, origin, destination string, mode route.TravelMode) (route.DirectionsResult, error) {
	r, ok := p.m[origin+"|"+destination]
	if !ok {
		return route.DirectionsResult{Status: "NOT_FOUND"}, fmt.Errorf("missing pair %q -> %q", origin, destination)
	}
	return r, nil
}
