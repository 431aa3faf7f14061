package assignment

import (
	"github.com/asistia/homecare-backend-go/internal/domain/schedule"
	"github.com/asistia/homecare-backend-go/internal/pkg/validator"
)

type CreateAssignmentRequest struct {
	WorkerID             string                  `json:"worker_id"`
	ServiceUserID        string                  `json:"service_user_id"`
	StartDate            string                  `json:"start_date"` // YYYY-MM-DD
	EndDate              *string                 `json:"end_date,omitempty"`
	AssignedMonthlyHours float64                 `json:"assigned_monthly_hours"`
	Schedule             schedule.WeeklySchedule `json:"schedule,omitempty"`
}

func (r *CreateAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id is required",
		})
	}
	if validator.IsEmpty(r.ServiceUserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "service_user_id",
			Message: "service_user_id is required",
		})
	}
	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if _, valid := validator.IsValidDate(r.StartDate); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date in YYYY-MM-DD format",
		})
	}
	if r.EndDate != nil {
		if _, valid := validator.IsValidDate(*r.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be a valid date in YYYY-MM-DD format",
			})
		} else if *r.EndDate < r.StartDate {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must not be before start_date",
			})
		}
	}
	if r.AssignedMonthlyHours < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "assigned_monthly_hours",
			Message: "assigned_monthly_hours must be a non-negative number",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateAssignmentRequest struct {
	ID                   string   `json:"-"`
	StartDate            *string  `json:"start_date,omitempty"`
	EndDate              *string  `json:"end_date,omitempty"`
	AssignedMonthlyHours *float64 `json:"assigned_monthly_hours,omitempty"`
	Active               *bool    `json:"active,omitempty"`
}

func (r *UpdateAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.StartDate != nil {
		if _, valid := validator.IsValidDate(*r.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be a valid date in YYYY-MM-DD format",
			})
		}
	}
	if r.EndDate != nil {
		if _, valid := validator.IsValidDate(*r.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be a valid date in YYYY-MM-DD format",
			})
		}
	}
	if r.AssignedMonthlyHours != nil && *r.AssignedMonthlyHours < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "assigned_monthly_hours",
			Message: "assigned_monthly_hours must be a non-negative number",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// SlotRequest adds or edits one time slot on one weekday of an
// assignment's weekly schedule.
type SlotRequest struct {
	AssignmentID string `json:"-"`
	Day          string `json:"day"`
	SlotID       string `json:"slot_id,omitempty"`
	StartTime    string `json:"start_time"` // HH:MM, single-digit hours accepted
	EndTime      string `json:"end_time"`   // HH:MM
}

func (r *SlotRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AssignmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "assignment_id",
			Message: "assignment_id is required",
		})
	}
	if !validator.IsInSlice(r.Day, schedule.Weekdays) {
		errs = append(errs, validator.ValidationError{
			Field:   "day",
			Message: "day must be a lowercase English weekday name",
		})
	}
	if !validator.IsValidTime(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be a valid time in HH:MM format",
		})
	}
	if !validator.IsValidTime(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be a valid time in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AssignmentResponse struct {
	ID                   string                  `json:"id"`
	WorkerID             string                  `json:"worker_id"`
	ServiceUserID        string                  `json:"service_user_id"`
	StartDate            string                  `json:"start_date"`
	EndDate              *string                 `json:"end_date,omitempty"`
	AssignedMonthlyHours float64                 `json:"assigned_monthly_hours"`
	Schedule             schedule.WeeklySchedule `json:"schedule"`
	Active               bool                    `json:"active"`
	CreatedAt            string                  `json:"created_at"`
	UpdatedAt            string                  `json:"updated_at"`
}
