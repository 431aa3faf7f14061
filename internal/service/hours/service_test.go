package hours

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asistia/homecare-backend-go/internal/domain/holiday"
	"github.com/asistia/homecare-backend-go/internal/domain/schedule"
)

type fakeHolidayRepo struct {
	holidays []holiday.Holiday
	err      error
}

func (f *fakeHolidayRepo) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	return h, nil
}

func (f *fakeHolidayRepo) GetByMonth(ctx context.Context, month, year int) ([]holiday.Holiday, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []holiday.Holiday
	for _, h := range f.holidays {
		if h.Month == month && h.Year == year {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeHolidayRepo) ListByYear(ctx context.Context, year int) ([]holiday.Holiday, error) {
	return f.holidays, nil
}

func (f *fakeHolidayRepo) Delete(ctx context.Context, id string) error {
	return nil
}

// weeklyWith builds a schedule with a single slot starting at 08:00 on
// monday and sunday of the given whole-hour lengths.
func weeklyWith(mondayHours, sundayHours int) schedule.WeeklySchedule {
	ws := schedule.NewWeeklySchedule()
	if mondayHours > 0 {
		end := fmt.Sprintf("%02d:00", 8+mondayHours)
		ws, _ = ws.AddSlot("monday", schedule.TimeSlot{ID: "m1", StartTime: "08:00", EndTime: end})
		ws, _ = ws.SetDayEnabled("monday", true)
	}
	if sundayHours > 0 {
		end := fmt.Sprintf("%02d:00", 8+sundayHours)
		ws, _ = ws.AddSlot("sunday", schedule.TimeSlot{ID: "s1", StartTime: "08:00", EndTime: end})
		ws, _ = ws.SetDayEnabled("sunday", true)
	}
	return ws
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 28, DaysInMonth(2, 2026))
	assert.Equal(t, 29, DaysInMonth(2, 2028))
	assert.Equal(t, 31, DaysInMonth(1, 2026))
	assert.Equal(t, 30, DaysInMonth(4, 2026))
}

func TestClassifyDayPrecedence(t *testing.T) {
	holidays := []holiday.Holiday{
		{Day: 1, Month: 2, Year: 2026, Name: "Festivo de prueba", Type: holiday.TypeLocal},
	}

	// 2026-02-01 is a Sunday, but the holiday wins.
	assert.Equal(t, DayTypeHoliday, ClassifyDay(1, 2, 2026, holidays))
	// 2026-02-07 is a Saturday.
	assert.Equal(t, DayTypeWeekend, ClassifyDay(7, 2, 2026, nil))
	// 2026-02-02 is a Monday.
	assert.Equal(t, DayTypeWorkday, ClassifyDay(2, 2, 2026, nil))
}

func TestCalculateMonthFebruary(t *testing.T) {
	// February 2026: 28 days, 20 workdays, 8 weekend days, no holidays.
	svc := NewHoursService(&fakeHolidayRepo{})
	ws := weeklyWith(8, 0)

	calc := svc.CalculateMonth(context.Background(), ws, 2, 2026, 160)

	assert.Equal(t, 20, calc.DaysBreakdown.Laborables)
	assert.Equal(t, 8, calc.DaysBreakdown.FinesDeSemana)
	assert.Equal(t, 0, calc.DaysBreakdown.Festivos)
	assert.Equal(t, 160.0, calc.TotalCalculatedHours)
	assert.Equal(t, 0.0, calc.Difference)
	assert.Equal(t, "exacto", calc.VarianceLabel)
}

func TestCalculateMonthBreakdownSumsToMonthLength(t *testing.T) {
	repo := &fakeHolidayRepo{holidays: []holiday.Holiday{
		{Day: 6, Month: 1, Year: 2026, Name: "Reyes", Type: holiday.TypeNational},
		{Day: 1, Month: 1, Year: 2026, Name: "Año Nuevo", Type: holiday.TypeNational},
	}}
	svc := NewHoursService(repo)

	calc := svc.CalculateMonth(context.Background(), schedule.NewWeeklySchedule(), 1, 2026, 0)

	sum := calc.DaysBreakdown.Laborables + calc.DaysBreakdown.Festivos + calc.DaysBreakdown.FinesDeSemana
	assert.Equal(t, 31, sum)
	assert.Equal(t, 2, calc.DaysBreakdown.Festivos)
}

func TestCalculateMonthHolidayUsesSundayHours(t *testing.T) {
	repo := &fakeHolidayRepo{holidays: []holiday.Holiday{
		// 2026-02-04 is a Wednesday; as a holiday it draws Sunday hours.
		{Day: 4, Month: 2, Year: 2026, Name: "Festivo", Type: holiday.TypeLocal},
	}}
	svc := NewHoursService(repo)
	ws := weeklyWith(8, 4)

	calc := svc.CalculateMonth(context.Background(), ws, 2, 2026, 0)

	require.Equal(t, 19, calc.DaysBreakdown.Laborables)
	require.Equal(t, 1, calc.DaysBreakdown.Festivos)
	require.Equal(t, 8, calc.DaysBreakdown.FinesDeSemana)
	// 19 workdays at 8h + 9 weekend/holiday days at 4h
	assert.Equal(t, 19*8.0+9*4.0, calc.TotalCalculatedHours)
}

func TestCalculateMonthVarianceLabels(t *testing.T) {
	svc := NewHoursService(&fakeHolidayRepo{})
	ws := weeklyWith(8, 0) // Feb 2026: 160h calculated

	excess := svc.CalculateMonth(context.Background(), ws, 2, 2026, 150)
	assert.Equal(t, 10.0, excess.Difference)
	assert.Equal(t, "exceso of 10 hours", excess.VarianceLabel)

	deficit := svc.CalculateMonth(context.Background(), ws, 2, 2026, 170)
	assert.Equal(t, -10.0, deficit.Difference)
	assert.Equal(t, "defecto of 10 hours", deficit.VarianceLabel)
}

func TestCalculateMonthHolidayLookupFailureDegrades(t *testing.T) {
	svc := NewHoursService(&fakeHolidayRepo{err: errors.New("connection refused")})
	ws := weeklyWith(8, 0)

	calc := svc.CalculateMonth(context.Background(), ws, 2, 2026, 160)

	// Proceeds as if the month had no holidays.
	assert.Equal(t, 0, calc.DaysBreakdown.Festivos)
	assert.Equal(t, 160.0, calc.TotalCalculatedHours)
}

func TestCalculateMonthDisabledScheduleIsZero(t *testing.T) {
	svc := NewHoursService(&fakeHolidayRepo{})

	calc := svc.CalculateMonth(context.Background(), schedule.NewWeeklySchedule(), 2, 2026, 100)

	assert.Equal(t, 0.0, calc.TotalCalculatedHours)
	assert.Equal(t, -100.0, calc.Difference)
	assert.Equal(t, "defecto of 100 hours", calc.VarianceLabel)
}
