package hours

import (
	"context"

	"github.com/asistia/homecare-backend-go/internal/domain/schedule"
)

// Service projects a weekly recurring schedule over a calendar month and
// reconciles the result against an assigned-hours target. It never fails:
// when the holiday calendar is unreachable it proceeds with an empty set.
type Service interface {
	CalculateMonth(ctx context.Context, ws schedule.WeeklySchedule, month, year int, assignedHours float64) MonthlyCalculation
}
