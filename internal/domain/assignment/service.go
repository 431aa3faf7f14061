package assignment

import (
	"context"

	"github.com/asistia/homecare-backend-go/internal/domain/hours"
)

type Service interface {
	Create(ctx context.Context, req CreateAssignmentRequest) (AssignmentResponse, error)
	GetByID(ctx context.Context, id string) (AssignmentResponse, error)
	List(ctx context.Context, activeOnly bool) ([]AssignmentResponse, error)
	ListByWorker(ctx context.Context, workerID string) ([]AssignmentResponse, error)
	Update(ctx context.Context, req UpdateAssignmentRequest) (AssignmentResponse, error)
	Delete(ctx context.Context, id string) error

	// Schedule slot mutations. Each recomputes the touched day's totals
	// before the updated assignment is persisted and returned.
	AddSlot(ctx context.Context, req SlotRequest) (AssignmentResponse, error)
	UpdateSlot(ctx context.Context, req SlotRequest) (AssignmentResponse, error)
	RemoveSlot(ctx context.Context, assignmentID, day, slotID string) (AssignmentResponse, error)
	SetDayEnabled(ctx context.Context, assignmentID, day string, enabled bool) (AssignmentResponse, error)

	// MonthlyHours projects the assignment's weekly schedule over one month
	// and reconciles it against the assigned monthly hours.
	MonthlyHours(ctx context.Context, assignmentID string, month, year int) (hours.MonthlyCalculation, error)
}
