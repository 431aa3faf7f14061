package response

import (
	"errors"
	"net/http"

	"github.com/asistia/homecare-backend-go/internal/domain/assignment"
	"github.com/asistia/homecare-backend-go/internal/domain/holiday"
	"github.com/asistia/homecare-backend-go/internal/domain/notification"
	"github.com/asistia/homecare-backend-go/internal/domain/schedule"
	"github.com/asistia/homecare-backend-go/internal/domain/serviceuser"
	"github.com/asistia/homecare-backend-go/internal/domain/worker"
	"github.com/asistia/homecare-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Worker domain errors
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, worker.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Service user domain errors
	case errors.Is(err, serviceuser.ErrServiceUserNotFound):
		NotFound(w, "Service user not found")

	// Assignment and schedule domain errors
	case errors.Is(err, assignment.ErrAssignmentNotFound):
		NotFound(w, "Assignment not found")
	case errors.Is(err, schedule.ErrUnknownDay):
		BadRequest(w, "Unknown weekday", nil)
	case errors.Is(err, schedule.ErrSlotNotFound):
		NotFound(w, "Time slot not found")
	case errors.Is(err, schedule.ErrInvalidTimeFormat):
		BadRequest(w, "Invalid time format, expected HH:MM", nil)

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")

	// Notification domain errors
	case errors.Is(err, notification.ErrNotificationNotFound):
		NotFound(w, "Notification not found")
	case errors.Is(err, notification.ErrUnauthorized):
		Unauthorized(w, "Not allowed to access this notification")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
