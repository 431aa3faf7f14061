package serviceuser

import (
	"github.com/asistia/homecare-backend-go/internal/pkg/validator"
)

type CreateServiceUserRequest struct {
	FullName   string `json:"full_name"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	PostalCode string `json:"postal_code"`
	City       string `json:"city"`
	Notes      string `json:"notes"`
}

func (r *CreateServiceUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}
	if validator.IsEmpty(r.Address) {
		errs = append(errs, validator.ValidationError{
			Field:   "address",
			Message: "address is required",
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

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateServiceUserRequest struct {
	ID         string  `json:"-"`
	FullName   *string `json:"full_name,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Address    *string `json:"address,omitempty"`
	PostalCode *string `json:"postal_code,omitempty"`
	City       *string `json:"city,omitempty"`
	Notes      *string `json:"notes,omitempty"`
	Active     *bool   `json:"active,omitempty"`
}

func (r *UpdateServiceUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.PostalCode != nil && !validator.IsValidPostalCode(*r.PostalCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "postal_code",
			Message: "postal_code must be a 5-digit code",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ServiceUserResponse struct {
	ID         string `json:"id"`
	FullName   string `json:"full_name"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	PostalCode string `json:"postal_code"`
	City       string `json:"city"`
	Notes      string `json:"notes"`
	Active     bool   `json:"active"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}
