package schedule

import (
	"fmt"
	"time"

	"github.com/asistia/homecare-backend-go/internal/pkg/validator"
)

// Weekdays lists the keys of a WeeklySchedule in calendar order.
var Weekdays = []string{
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
	"sunday",
}

// TimeSlot is a contiguous start-end range within one day. Hours is derived
// from the two wall-clock times and never stored authoritatively.
type TimeSlot struct {
	ID        string  `json:"id"`
	StartTime string  `json:"startTime"` // HH:MM
	EndTime   string  `json:"endTime"`   // HH:MM
	Hours     float64 `json:"hours"`
}

// DaySchedule holds the configured slots for one weekday. TotalHours is
// recomputed on every structural mutation; a disabled day contributes zero
// hours no matter what its slots say.
type DaySchedule struct {
	Enabled    bool       `json:"enabled"`
	TimeSlots  []TimeSlot `json:"timeSlots"`
	TotalHours float64    `json:"totalHours"`
}

// WeeklySchedule maps lowercase English weekday names to day schedules.
type WeeklySchedule map[string]DaySchedule

// NewWeeklySchedule returns a schedule with all seven days present,
// disabled and empty.
func NewWeeklySchedule() WeeklySchedule {
	ws := make(WeeklySchedule, len(Weekdays))
	for _, day := range Weekdays {
		ws[day] = DaySchedule{Enabled: false, TimeSlots: []TimeSlot{}}
	}
	return ws
}

// SlotHours returns the decimal-hour length of a start-end pair. Slots are
// wall-clock ranges within a single day; an end at or before the start, or
// an unparseable time, yields zero rather than a negative contribution.
func SlotHours(startTime, endTime string) float64 {
	start, err := time.Parse("15:04", startTime)
	if err != nil {
		return 0
	}
	end, err := time.Parse("15:04", endTime)
	if err != nil {
		return 0
	}
	hours := end.Sub(start).Hours()
	if hours < 0 {
		return 0
	}
	return hours
}

// Recompute returns the day with every slot's Hours and the day's
// TotalHours freshly derived from the slot times.
func (d DaySchedule) Recompute() DaySchedule {
	slots := make([]TimeSlot, len(d.TimeSlots))
	total := 0.0
	for i, slot := range d.TimeSlots {
		slot.Hours = SlotHours(slot.StartTime, slot.EndTime)
		slots[i] = slot
		total += slot.Hours
	}
	d.TimeSlots = slots
	d.TotalHours = total
	return d
}

// EffectiveHours is the day's contribution to projections: zero when the
// day is disabled, TotalHours otherwise.
func (d DaySchedule) EffectiveHours() float64 {
	if !d.Enabled {
		return 0
	}
	return d.TotalHours
}

func (ws WeeklySchedule) clone() WeeklySchedule {
	out := make(WeeklySchedule, len(ws))
	for day, d := range ws {
		slots := make([]TimeSlot, len(d.TimeSlots))
		copy(slots, d.TimeSlots)
		d.TimeSlots = slots
		out[day] = d
	}
	return out
}

// AddSlot returns a copy of the schedule with the slot appended to the given
// day and that day's totals recomputed. The receiver is left untouched.
func (ws WeeklySchedule) AddSlot(day string, slot TimeSlot) (WeeklySchedule, error) {
	if !validator.IsInSlice(day, Weekdays) {
		return nil, ErrUnknownDay
	}

	out := ws.clone()
	d := out[day]
	d.TimeSlots = append(d.TimeSlots, slot)
	out[day] = d.Recompute()
	return out, nil
}

// RemoveSlot returns a copy of the schedule without the identified slot and
// with the day's totals recomputed.
func (ws WeeklySchedule) RemoveSlot(day string, slotID string) (WeeklySchedule, error) {
	if !validator.IsInSlice(day, Weekdays) {
		return nil, ErrUnknownDay
	}

	out := ws.clone()
	d := out[day]

	idx := -1
	for i, slot := range d.TimeSlots {
		if slot.ID == slotID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrSlotNotFound
	}

	d.TimeSlots = append(d.TimeSlots[:idx], d.TimeSlots[idx+1:]...)
	out[day] = d.Recompute()
	return out, nil
}

// UpdateSlot returns a copy of the schedule with the matching slot replaced
// and the day's totals recomputed.
func (ws WeeklySchedule) UpdateSlot(day string, slot TimeSlot) (WeeklySchedule, error) {
	if !validator.IsInSlice(day, Weekdays) {
		return nil, ErrUnknownDay
	}

	out := ws.clone()
	d := out[day]

	idx := -1
	for i, existing := range d.TimeSlots {
		if existing.ID == slot.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrSlotNotFound
	}

	d.TimeSlots[idx] = slot
	out[day] = d.Recompute()
	return out, nil
}

// SetDayEnabled returns a copy of the schedule with the day toggled.
func (ws WeeklySchedule) SetDayEnabled(day string, enabled bool) (WeeklySchedule, error) {
	if !validator.IsInSlice(day, Weekdays) {
		return nil, ErrUnknownDay
	}

	out := ws.clone()
	d := out[day]
	d.Enabled = enabled
	out[day] = d
	return out, nil
}

// Normalize returns a copy with every slot time zero-padded to HH:MM and
// all derived hours recomputed. Schedules arriving from free-form sources
// ("8:00" instead of "08:00") pass through here on ingestion.
func (ws WeeklySchedule) Normalize() (WeeklySchedule, error) {
	out := make(WeeklySchedule, len(Weekdays))
	for _, day := range Weekdays {
		d, ok := ws[day]
		if !ok {
			out[day] = DaySchedule{Enabled: false, TimeSlots: []TimeSlot{}}
			continue
		}

		slots := make([]TimeSlot, len(d.TimeSlots))
		for i, slot := range d.TimeSlots {
			start, err := validator.NormalizeTime(slot.StartTime)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidTimeFormat, err)
			}
			end, err := validator.NormalizeTime(slot.EndTime)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidTimeFormat, err)
			}
			slot.StartTime = start
			slot.EndTime = end
			slots[i] = slot
		}
		d.TimeSlots = slots
		out[day] = d.Recompute()
	}
	return out, nil
}

// EffectiveHours returns the day's projection contribution, zero for
// unknown days.
func (ws WeeklySchedule) EffectiveHours(day string) float64 {
	return ws[day].EffectiveHours()
}
