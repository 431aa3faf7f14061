package assignment

import (
	"time"

	"github.com/asistia/homecare-backend-go/internal/domain/schedule"
)

// Assignment is a recurring or time-boxed engagement of one worker with one
// service user. Schedule holds the weekly time-slot pattern the monthly
// reconciliation projects; AssignedMonthlyHours is the contracted figure it
// compares against.
type Assignment struct {
	ID                   string
	WorkerID             string
	ServiceUserID        string
	StartDate            time.Time
	EndDate              *time.Time
	AssignedMonthlyHours float64
	Schedule             schedule.WeeklySchedule
	Active               bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
