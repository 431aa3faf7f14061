package route

import "context"

// StatusOK is the only provider status treated as a usable answer. Any
// other status, or a transport error, counts as a segment failure.
const StatusOK = "OK"

// DirectionsResult is one origin-to-destination answer from the external
// mapping service.
type DirectionsResult struct {
	Status          string
	DurationSeconds int
	DistanceMeters  int
}

// DirectionsProvider is the contract for the external mapping/geocoding
// collaborator. Implementations must bound each call with a timeout.
type DirectionsProvider interface {
	Directions(ctx context.Context, origin, destination string, mode TravelMode) (DirectionsResult, error)
}
