package holiday

import (
	"strings"

	"github.com/asistia/homecare-backend-go/internal/pkg/validator"
)

type CreateHolidayRequest struct {
	Day   int    `json:"day"`
	Month int    `json:"month"`
	Year  int    `json:"year"`
	Name  string `json:"name"`
	Type  string `json:"type"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Day < 1 || r.Day > 31 {
		errs = append(errs, validator.ValidationError{
			Field:   "day",
			Message: "day must be between 1 and 31",
		})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}
	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if !validator.IsInSlice(r.Type, HolidayTypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: " + strings.Join(HolidayTypeValues, ", "),
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type HolidayResponse struct {
	ID        string `json:"id"`
	Day       int    `json:"day"`
	Month     int    `json:"month"`
	Year      int    `json:"year"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	CreatedAt string `json:"created_at"`
}
