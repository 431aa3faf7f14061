package assignment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/asistia/homecare-backend-go/internal/domain/assignment"
	"github.com/asistia/homecare-backend-go/internal/domain/hours"
	"github.com/asistia/homecare-backend-go/internal/domain/notification"
	"github.com/asistia/homecare-backend-go/internal/domain/schedule"
	"github.com/asistia/homecare-backend-go/internal/domain/serviceuser"
	"github.com/asistia/homecare-backend-go/internal/domain/worker"
	"github.com/asistia/homecare-backend-go/internal/pkg/validator"
)

type assignmentServiceImpl struct {
	repo                assignment.Repository
	workerRepo          worker.Repository
	serviceUserRepo     serviceuser.Repository
	hoursService        hours.Service
	notificationService notification.Service
}

func NewAssignmentService(
	repo assignment.Repository,
	workerRepo worker.Repository,
	serviceUserRepo serviceuser.Repository,
	hoursService hours.Service,
	notificationService notification.Service,
) assignment.Service {
	return &assignmentServiceImpl{
		repo:                repo,
		workerRepo:          workerRepo,
		serviceUserRepo:     serviceUserRepo,
		hoursService:        hoursService,
		notificationService: notificationService,
	}
}

// Create implements assignment.Service.
func (s *assignmentServiceImpl) Create(ctx context.Context, req assignment.CreateAssignmentRequest) (assignment.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return assignment.AssignmentResponse{}, err
	}

	w, err := s.workerRepo.GetByID(ctx, req.WorkerID)
	if err != nil {
		return assignment.AssignmentResponse{}, err
	}
	if _, err := s.serviceUserRepo.GetByID(ctx, req.ServiceUserID); err != nil {
		return assignment.AssignmentResponse{}, err
	}

	ws := req.Schedule
	if ws == nil {
		ws = schedule.NewWeeklySchedule()
	}
	ws, err = ws.Normalize()
	if err != nil {
		return assignment.AssignmentResponse{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	var endDate *time.Time
	if req.EndDate != nil {
		parsed, _ := time.Parse("2006-01-02", *req.EndDate)
		endDate = &parsed
	}

	created, err := s.repo.Create(ctx, assignment.Assignment{
		WorkerID:             req.WorkerID,
		ServiceUserID:        req.ServiceUserID,
		StartDate:            startDate,
		EndDate:              endDate,
		AssignedMonthlyHours: req.AssignedMonthlyHours,
		Schedule:             ws,
		Active:               true,
	})
	if err != nil {
		return assignment.AssignmentResponse{}, err
	}

	s.queueNotification(ctx, w.ID, notification.TypeAssignmentCreated,
		"Nueva asignación",
		fmt.Sprintf("Asignación creada con inicio el %s", req.StartDate),
		map[string]interface{}{"assignment_id": created.ID, "service_user_id": created.ServiceUserID})

	return toResponse(created), nil
}

// GetByID implements assignment.Service.
func (s *assignmentServiceImpl) GetByID(ctx context.Context, id string) (assignment.AssignmentResponse, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return assignment.AssignmentResponse{}, err
	}

	return toResponse(*a), nil
}

// List implements assignment.Service.
func (s *assignmentServiceImpl) List(ctx context.Context, activeOnly bool) ([]assignment.AssignmentResponse, error) {
	assignments, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]assignment.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		responses = append(responses, toResponse(a))
	}

	return responses, nil
}

// ListByWorker implements assignment.Service.
func (s *assignmentServiceImpl) ListByWorker(ctx context.Context, workerID string) ([]assignment.AssignmentResponse, error) {
	assignments, err := s.repo.ListByWorker(ctx, workerID)
	if err != nil {
		return nil, err
	}

	responses := make([]assignment.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		responses = append(responses, toResponse(a))
	}

	return responses, nil
}

// Update implements assignment.Service.
func (s *assignmentServiceImpl) Update(ctx context.Context, req assignment.UpdateAssignmentRequest) (assignment.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return assignment.AssignmentResponse{}, err
	}

	existing, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return assignment.AssignmentResponse{}, err
	}

	a := *existing
	if req.StartDate != nil {
		startDate, _ := time.Parse("2006-01-02", *req.StartDate)
		a.StartDate = startDate
	}
	if req.EndDate != nil {
		endDate, _ := time.Parse("2006-01-02", *req.EndDate)
		a.EndDate = &endDate
	}
	if req.AssignedMonthlyHours != nil {
		a.AssignedMonthlyHours = *req.AssignedMonthlyHours
	}
	if req.Active != nil {
		a.Active = *req.Active
	}

	updated, err := s.repo.Update(ctx, a)
	if err != nil {
		return assignment.AssignmentResponse{}, err
	}

	if req.Active != nil && !*req.Active && existing.Active {
		s.queueNotification(ctx, updated.WorkerID, notification.TypeAssignmentEnded,
			"Asignación finalizada",
			"Una de tus asignaciones ha sido desactivada",
			map[string]interface{}{"assignment_id": updated.ID})
	}

	return toResponse(updated), nil
}

// Delete implements assignment.Service.
func (s *assignmentServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// AddSlot implements assignment.Service.
func (s *assignmentServiceImpl) AddSlot(ctx context.Context, req assignment.SlotRequest) (assignment.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return assignment.AssignmentResponse{}, err
	}

	slot, err := newSlot(req)
	if err != nil {
		return assignment.AssignmentResponse{}, err
	}
	slot.ID = uuid.NewString()

	return s.mutateSchedule(ctx, req.AssignmentID, func(ws schedule.WeeklySchedule) (schedule.WeeklySchedule, error) {
		return ws.AddSlot(req.Day, slot)
	})
}

// UpdateSlot implements assignment.Service.
func (s *assignmentServiceImpl) UpdateSlot(ctx context.Context, req assignment.SlotRequest) (assignment.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return assignment.AssignmentResponse{}, err
	}
	if req.SlotID == "" {
		return assignment.AssignmentResponse{}, schedule.ErrSlotNotFound
	}

	slot, err := newSlot(req)
	if err != nil {
		return assignment.AssignmentResponse{}, err
	}
	slot.ID = req.SlotID

	return s.mutateSchedule(ctx, req.AssignmentID, func(ws schedule.WeeklySchedule) (schedule.WeeklySchedule, error) {
		return ws.UpdateSlot(req.Day, slot)
	})
}

// RemoveSlot implements assignment.Service.
func (s *assignmentServiceImpl) RemoveSlot(ctx context.Context, assignmentID, day, slotID string) (assignment.AssignmentResponse, error) {
	return s.mutateSchedule(ctx, assignmentID, func(ws schedule.WeeklySchedule) (schedule.WeeklySchedule, error) {
		return ws.RemoveSlot(day, slotID)
	})
}

// SetDayEnabled implements assignment.Service.
func (s *assignmentServiceImpl) SetDayEnabled(ctx context.Context, assignmentID, day string, enabled bool) (assignment.AssignmentResponse, error) {
	return s.mutateSchedule(ctx, assignmentID, func(ws schedule.WeeklySchedule) (schedule.WeeklySchedule, error) {
		return ws.SetDayEnabled(day, enabled)
	})
}

// MonthlyHours implements assignment.Service.
func (s *assignmentServiceImpl) MonthlyHours(ctx context.Context, assignmentID string, month, year int) (hours.MonthlyCalculation, error) {
	a, err := s.repo.GetByID(ctx, assignmentID)
	if err != nil {
		return hours.MonthlyCalculation{}, err
	}

	return s.hoursService.CalculateMonth(ctx, a.Schedule, month, year, a.AssignedMonthlyHours), nil
}

// mutateSchedule loads the assignment, applies the schedule transformation
// and persists the result. Day totals are recomputed inside the
// transformation, so what is stored is always internally consistent.
func (s *assignmentServiceImpl) mutateSchedule(ctx context.Context, assignmentID string, fn func(schedule.WeeklySchedule) (schedule.WeeklySchedule, error)) (assignment.AssignmentResponse, error) {
	existing, err := s.repo.GetByID(ctx, assignmentID)
	if err != nil {
		return assignment.AssignmentResponse{}, err
	}

	ws := existing.Schedule
	if ws == nil {
		ws = schedule.NewWeeklySchedule()
	}

	ws, err = fn(ws)
	if err != nil {
		return assignment.AssignmentResponse{}, err
	}

	a := *existing
	a.Schedule = ws

	updated, err := s.repo.Update(ctx, a)
	if err != nil {
		return assignment.AssignmentResponse{}, err
	}

	s.queueNotification(ctx, updated.WorkerID, notification.TypeScheduleUpdated,
		"Horario actualizado",
		"El horario semanal de una de tus asignaciones ha cambiado",
		map[string]interface{}{"assignment_id": updated.ID})

	return toResponse(updated), nil
}

func newSlot(req assignment.SlotRequest) (schedule.TimeSlot, error) {
	start, err := validator.NormalizeTime(req.StartTime)
	if err != nil {
		return schedule.TimeSlot{}, fmt.Errorf("%w: %v", schedule.ErrInvalidTimeFormat, err)
	}
	end, err := validator.NormalizeTime(req.EndTime)
	if err != nil {
		return schedule.TimeSlot{}, fmt.Errorf("%w: %v", schedule.ErrInvalidTimeFormat, err)
	}

	return schedule.TimeSlot{
		StartTime: start,
		EndTime:   end,
		Hours:     schedule.SlotHours(start, end),
	}, nil
}

func (s *assignmentServiceImpl) queueNotification(ctx context.Context, recipientID string, notifType notification.NotificationType, title, message string, data map[string]interface{}) {
	if s.notificationService == nil {
		return
	}

	err := s.notificationService.QueueNotification(ctx, notification.CreateNotificationRequest{
		RecipientID: recipientID,
		Type:        notifType,
		Title:       title,
		Message:     message,
		Data:        data,
	})
	if err != nil {
		slog.Warn("failed to queue assignment notification", "type", notifType, "error", err)
	}
}

func toResponse(a assignment.Assignment) assignment.AssignmentResponse {
	var endDate *string
	if a.EndDate != nil {
		formatted := a.EndDate.Format("2006-01-02")
		endDate = &formatted
	}

	return assignment.AssignmentResponse{
		ID:                   a.ID,
		WorkerID:             a.WorkerID,
		ServiceUserID:        a.ServiceUserID,
		StartDate:            a.StartDate.Format("2006-01-02"),
		EndDate:              endDate,
		AssignedMonthlyHours: a.AssignedMonthlyHours,
		Schedule:             a.Schedule,
		Active:               a.Active,
		CreatedAt:            a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:            a.UpdatedAt.Format(time.RFC3339),
	}
}
