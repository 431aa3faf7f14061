package route

import (
	"strings"

	"github.com/asistia/homecare-backend-go/internal/pkg/validator"
)

type EstimateRouteRequest struct {
	Stops       []Stop `json:"stops"`
	TravelMode  string `json:"travelMode"`
	WorkerStart *Stop  `json:"workerStart,omitempty"`
}

func (r *EstimateRouteRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Stops) < 2 {
		errs = append(errs, validator.ValidationError{
			Field:   "stops",
			Message: "at least two stops are required",
		})
	}
	if validator.IsEmpty(r.TravelMode) {
		r.TravelMode = string(ModeDriving)
	}
	if !validator.IsInSlice(r.TravelMode, TravelModeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "travelMode",
			Message: "travelMode must be one of: " + strings.Join(TravelModeValues, ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
