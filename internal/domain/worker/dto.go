package worker

import (
	"github.com/asistia/homecare-backend-go/internal/pkg/validator"
)

type CreateWorkerRequest struct {
	FullName    string  `json:"full_name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Address     string  `json:"address"`
	PostalCode  string  `json:"postal_code"`
	City        string  `json:"city"`
	WeeklyHours float64 `json:"weekly_hours"`
}

func (r *CreateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}
	if !validator.IsEmpty(r.Phone) && !validator.IsValidPhoneNumber(r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone must be a valid phone number",
		})
	}
	if !validator.IsEmpty(r.PostalCode) && !validator.IsValidPostalCode(r.PostalCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "postal_code",
			Message: "postal_code must be a 5-digit code",
		})
	}
	if r.WeeklyHours < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "weekly_hours",
			Message: "weekly_hours must be a non-negative number",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateWorkerRequest struct {
	ID          string   `json:"-"`
	FullName    *string  `json:"full_name,omitempty"`
	Email       *string  `json:"email,omitempty"`
	Phone       *string  `json:"phone,omitempty"`
	Address     *string  `json:"address,omitempty"`
	PostalCode  *string  `json:"postal_code,omitempty"`
	City        *string  `json:"city,omitempty"`
	WeeklyHours *float64 `json:"weekly_hours,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

func (r *UpdateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}
	if r.PostalCode != nil && !validator.IsValidPostalCode(*r.PostalCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "postal_code",
			Message: "postal_code must be a 5-digit code",
		})
	}
	if r.WeeklyHours != nil && *r.WeeklyHours < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "weekly_hours",
			Message: "weekly_hours must be a non-negative number",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type WorkerResponse struct {
	ID          string  `json:"id"`
	FullName    string  `json:"full_name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Address     string  `json:"address"`
	PostalCode  string  `json:"postal_code"`
	City        string  `json:"city"`
	WeeklyHours float64 `json:"weekly_hours"`
	Active      bool    `json:"active"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}
