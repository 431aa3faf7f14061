package route

import "context"

// Service produces travel-time estimates for an ordered stop list. Both
// methods are pure over their inputs (plus, for the external tier, the
// mapping service's current answers) and safe for concurrent use.
type Service interface {
	EstimateHeuristic(ctx context.Context, req EstimateRouteRequest) Estimate
	EstimateExternal(ctx context.Context, req EstimateRouteRequest) Estimate
}
