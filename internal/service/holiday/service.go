package holiday

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/asistia/homecare-backend-go/internal/domain/holiday"
	"github.com/asistia/homecare-backend-go/internal/domain/notification"
	"github.com/asistia/homecare-backend-go/internal/domain/worker"
)

type holidayServiceImpl struct {
	repo                holiday.Repository
	workerRepo          worker.Repository
	notificationService notification.Service
}

func NewHolidayService(repo holiday.Repository, workerRepo worker.Repository, notificationService notification.Service) holiday.Service {
	return &holidayServiceImpl{
		repo:                repo,
		workerRepo:          workerRepo,
		notificationService: notificationService,
	}
}

// Create implements holiday.Service.
func (s *holidayServiceImpl) Create(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	created, err := s.repo.Create(ctx, holiday.Holiday{
		Day:   req.Day,
		Month: req.Month,
		Year:  req.Year,
		Name:  req.Name,
		Type:  holiday.HolidayType(req.Type),
	})
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	s.notifyWorkers(ctx, created)

	return toResponse(created), nil
}

// ListByYear implements holiday.Service.
func (s *holidayServiceImpl) ListByYear(ctx context.Context, year int) ([]holiday.HolidayResponse, error) {
	holidays, err := s.repo.ListByYear(ctx, year)
	if err != nil {
		return nil, err
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, toResponse(h))
	}

	return responses, nil
}

// Delete implements holiday.Service.
func (s *holidayServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// notifyWorkers fans a holiday_added notification out to every active
// worker. Delivery is best-effort; a full queue or listing failure does not
// fail the create.
func (s *holidayServiceImpl) notifyWorkers(ctx context.Context, h holiday.Holiday) {
	if s.notificationService == nil || s.workerRepo == nil {
		return
	}

	workers, err := s.workerRepo.List(ctx, true)
	if err != nil {
		slog.Warn("failed to list workers for holiday notification", "error", err)
		return
	}

	reqs := make([]notification.CreateNotificationRequest, 0, len(workers))
	for _, w := range workers {
		reqs = append(reqs, notification.CreateNotificationRequest{
			RecipientID: w.ID,
			Type:        notification.TypeHolidayAdded,
			Title:       "Nuevo festivo",
			Message:     fmt.Sprintf("%s (%02d/%02d/%d)", h.Name, h.Day, h.Month, h.Year),
			Data: map[string]interface{}{
				"holiday_id": h.ID,
				"day":        h.Day,
				"month":      h.Month,
				"year":       h.Year,
				"type":       string(h.Type),
			},
		})
	}

	if err := s.notificationService.QueueBulkNotification(ctx, reqs); err != nil {
		slog.Warn("failed to queue holiday notifications", "error", err)
	}
}

func toResponse(h holiday.Holiday) holiday.HolidayResponse {
	return holiday.HolidayResponse{
		ID:        h.ID,
		Day:       h.Day,
		Month:     h.Month,
		Year:      h.Year,
		Name:      h.Name,
		Type:      string(h.Type),
		CreatedAt: h.CreatedAt.Format(time.RFC3339),
	}
}
