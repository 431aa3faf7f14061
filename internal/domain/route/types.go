package route

// TravelMode selects the speed profile for an estimate.
type TravelMode string

const (
	ModeDriving TravelMode = "driving"
	ModeWalking TravelMode = "walking"
	ModeTransit TravelMode = "transit"
)

var TravelModeValues = []string{
	string(ModeDriving),
	string(ModeWalking),
	string(ModeTransit),
}

// Confidence is the qualitative reliability of an estimate, based on which
// data tier produced it.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Method records which tier produced a segment's figures.
type Method string

const (
	MethodPostalCode   Method = "postal_code"
	MethodCityDistance Method = "city_distance"
	MethodDefault      Method = "default"
	MethodExternal     Method = "external"
)

// AddressInfo is a caller-owned value describing one stop. Any field may be
// missing; the estimator degrades through postal code, city and finally a
// fixed default distance.
type AddressInfo struct {
	Address    *string `json:"address,omitempty"`
	PostalCode *string `json:"postalCode,omitempty"`
	City       *string `json:"city,omitempty"`
}

// Stop is one ordered point of a route.
type Stop struct {
	Label   string      `json:"label"`
	Address AddressInfo `json:"address"`
}

// Segment is the leg between two consecutive stops. Segments are recomputed
// on every estimation call and never cached here.
type Segment struct {
	FromIndex       int        `json:"fromIndex"`
	ToIndex         int        `json:"toIndex"`
	FromLabel       string     `json:"fromLabel"`
	ToLabel         string     `json:"toLabel"`
	DurationSeconds int        `json:"durationSeconds"`
	DistanceMeters  int        `json:"distanceMeters"`
	Success         bool       `json:"success"`
	Method          Method     `json:"method"`
	Confidence      Confidence `json:"confidence"`
	Billable        bool       `json:"billable"`
	Error           string     `json:"error,omitempty"`
}

// Estimate aggregates a whole route. Totals cover billable segments only:
// the leg from a worker's own address to the first service stop is computed
// for completeness but not counted. Error is non-empty only when no segment
// succeeded at all.
type Estimate struct {
	Segments             []Segment  `json:"segments"`
	TotalDurationSeconds int        `json:"totalDurationSeconds"`
	TotalDistanceMeters  int        `json:"totalDistanceMeters"`
	Confidence           Confidence `json:"confidence"`
	Error                string     `json:"error,omitempty"`
}
