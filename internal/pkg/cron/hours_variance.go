package cron

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/asistia/homecare-backend-go/internal/domain/assignment"
	"github.com/asistia/homecare-backend-go/internal/domain/hours"
	"github.com/asistia/homecare-backend-go/internal/domain/notification"
)

// HoursVarianceJobs sweeps active assignments once a month and flags the
// ones whose projected hours drift from the assigned figure.
type HoursVarianceJobs struct {
	assignmentRepo  assignment.Repository
	hoursService    hours.Service
	notificationSvc notification.Service

	// ToleranceHours is the absolute deviation, in hours, below which no
	// mismatch notification is sent.
	ToleranceHours float64
}

func NewHoursVarianceJobs(
	assignmentRepo assignment.Repository,
	hoursService hours.Service,
	notificationSvc notification.Service,
) *HoursVarianceJobs {
	return &HoursVarianceJobs{
		assignmentRepo:  assignmentRepo,
		hoursService:    hoursService,
		notificationSvc: notificationSvc,
		ToleranceHours:  1,
	}
}

func (j *HoursVarianceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("monthly_hours_variance_sweep", 24*time.Hour, j.SweepPreviousMonth)
}

// SweepPreviousMonth reconciles every active assignment against the month
// that just closed. It only does work on the first day of a month.
func (j *HoursVarianceJobs) SweepPreviousMonth(ctx context.Context) error {
	now := time.Now()
	if now.Day() != 1 {
		return nil
	}

	prev := now.AddDate(0, -1, 0)
	month, year := int(prev.Month()), prev.Year()

	assignments, err := j.assignmentRepo.List(ctx, true)
	if err != nil {
		return fmt.Errorf("failed to list assignments: %w", err)
	}

	flagged := 0
	for _, a := range assignments {
		calc := j.hoursService.CalculateMonth(ctx, a.Schedule, month, year, a.AssignedMonthlyHours)
		if math.Abs(calc.Difference) < j.ToleranceHours {
			continue
		}

		err := j.notificationSvc.QueueNotification(ctx, notification.CreateNotificationRequest{
			RecipientID: a.WorkerID,
			Type:        notification.TypeHoursMismatch,
			Title:       "Desviación de horas",
			Message: fmt.Sprintf("Horas de %02d/%d: calculadas %.2f frente a %.2f asignadas (%s)",
				month, year, calc.TotalCalculatedHours, calc.AssignedHours, calc.VarianceLabel),
			Data: map[string]interface{}{
				"assignment_id": a.ID,
				"month":         month,
				"year":          year,
				"difference":    calc.Difference,
			},
		})
		if err != nil {
			slog.Warn("failed to queue hours mismatch notification", "assignment_id", a.ID, "error", err)
			continue
		}
		flagged++
	}

	slog.Info("hours variance sweep finished",
		"month", month, "year", year,
		"assignments", len(assignments), "flagged", flagged)

	return nil
}
