package hours

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"time"

	"github.com/asistia/homecare-backend-go/internal/domain/holiday"
	"github.com/asistia/homecare-backend-go/internal/domain/hours"
	"github.com/asistia/homecare-backend-go/internal/domain/schedule"
)

// DayType classifies one calendar day.
type DayType string

const (
	DayTypeWorkday DayType = "workday"
	DayTypeWeekend DayType = "weekend"
	DayTypeHoliday DayType = "holiday"
)

type service struct {
	holidayRepo holiday.Repository
}

func NewHoursService(holidayRepo holiday.Repository) hours.Service {
	return &service{holidayRepo: holidayRepo}
}

// ClassifyDay buckets a calendar day. Holiday classification wins over
// weekend: a holiday falling on a Sunday counts only as holiday.
func ClassifyDay(day, month, year int, holidays []holiday.Holiday) DayType {
	for _, h := range holidays {
		if h.Matches(day, month, year) {
			return DayTypeHoliday
		}
	}

	weekday := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Weekday()
	if weekday == time.Saturday || weekday == time.Sunday {
		return DayTypeWeekend
	}

	return DayTypeWorkday
}

// DaysInMonth returns the number of calendar days in the given month.
func DaysInMonth(month, year int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// CalculateMonth classifies every day of the month, projects total hours
// from the weekly schedule and reports the variance against assignedHours.
//
// The projection uses a single representative day per day type: Monday's
// configured hours stand in for every workday and Sunday's for every
// weekend day and holiday. Per-weekday variation (a shorter Friday, say) is
// deliberately not reflected in the monthly total; changing this changes
// computed totals for existing assignments.
func (s *service) CalculateMonth(ctx context.Context, ws schedule.WeeklySchedule, month, year int, assignedHours float64) hours.MonthlyCalculation {
	holidays, err := s.holidayRepo.GetByMonth(ctx, month, year)
	if err != nil {
		slog.Warn("holiday lookup failed, proceeding without holidays",
			"month", month, "year", year, "error", err)
		holidays = nil
	}

	breakdown := hours.DaysBreakdown{}
	for day := 1; day <= DaysInMonth(month, year); day++ {
		switch ClassifyDay(day, month, year, holidays) {
		case DayTypeHoliday:
			breakdown.Festivos++
		case DayTypeWeekend:
			breakdown.FinesDeSemana++
		default:
			breakdown.Laborables++
		}
	}

	mondayHours := ws.EffectiveHours("monday")
	sundayHours := ws.EffectiveHours("sunday")

	total := float64(breakdown.Laborables)*mondayHours +
		float64(breakdown.Festivos+breakdown.FinesDeSemana)*sundayHours
	difference := total - assignedHours

	return hours.MonthlyCalculation{
		Month:                month,
		Year:                 year,
		TotalCalculatedHours: total,
		AssignedHours:        assignedHours,
		Difference:           difference,
		DaysBreakdown:        breakdown,
		VarianceLabel:        varianceLabel(difference),
	}
}

// varianceLabel renders the signed gap the way the schedule screens show
// it: positive difference is surplus (exceso), negative is deficit
// (defecto).
func varianceLabel(difference float64) string {
	switch {
	case difference == 0:
		return "exacto"
	case difference > 0:
		return fmt.Sprintf("exceso of %s hours", formatHours(difference))
	default:
		return fmt.Sprintf("defecto of %s hours", formatHours(math.Abs(difference)))
	}
}

func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}
