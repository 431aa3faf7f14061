package schedule

import (
	"errors"
	"testing"
)

func TestSlotHours(t *testing.T) {
	cases := []struct {
		start, end string
		want       float64
	}{
		{"08:00", "12:00", 4},
		{"09:00", "09:30", 0.5},
		{"08:00", "08:00", 0},
		{"12:00", "08:00", 0}, // end before start clamps to zero
		{"bad", "12:00", 0},
		{"08:00", "bad", 0},
	}
	for _, c := range cases {
		got := SlotHours(c.start, c.end)
		if got != c.want {
			t.Errorf("SlotHours(%q, %q) = %v, want %v", c.start, c.end, got, c.want)
		}
	}
}

func TestAddSlotRecomputesTotals(t *testing.T) {
	ws := NewWeeklySchedule()

	ws, err := ws.AddSlot("monday", TimeSlot{ID: "s1", StartTime: "08:00", EndTime: "12:00", Hours: 4})
	if err != nil {
		t.Fatalf("AddSlot: %v", err)
	}
	ws, err = ws.AddSlot("monday", TimeSlot{ID: "s2", StartTime: "15:00", EndTime: "17:00", Hours: 2})
	if err != nil {
		t.Fatalf("AddSlot: %v", err)
	}

	if got := ws["monday"].TotalHours; got != 6 {
		t.Errorf("monday total = %v, want 6", got)
	}

	_, err = ws.AddSlot("funday", TimeSlot{ID: "s3"})
	if !errors.Is(err, ErrUnknownDay) {
		t.Errorf("AddSlot(funday) error = %v, want ErrUnknownDay", err)
	}
}

func TestRemoveSlot(t *testing.T) {
	ws := NewWeeklySchedule()
	ws, _ = ws.AddSlot("tuesday", TimeSlot{ID: "s1", StartTime: "08:00", EndTime: "12:00", Hours: 4})
	ws, _ = ws.AddSlot("tuesday", TimeSlot{ID: "s2", StartTime: "15:00", EndTime: "17:00", Hours: 2})

	ws, err := ws.RemoveSlot("tuesday", "s1")
	if err != nil {
		t.Fatalf("RemoveSlot: %v", err)
	}
	if got := ws["tuesday"].TotalHours; got != 2 {
		t.Errorf("tuesday total = %v, want 2", got)
	}
	if len(ws["tuesday"].TimeSlots) != 1 {
		t.Errorf("tuesday slots = %d, want 1", len(ws["tuesday"].TimeSlots))
	}

	_, err = ws.RemoveSlot("tuesday", "missing")
	if !errors.Is(err, ErrSlotNotFound) {
		t.Errorf("RemoveSlot(missing) error = %v, want ErrSlotNotFound", err)
	}
}

func TestUpdateSlot(t *testing.T) {
	ws := NewWeeklySchedule()
	ws, _ = ws.AddSlot("friday", TimeSlot{ID: "s1", StartTime: "08:00", EndTime: "12:00", Hours: 4})

	ws, err := ws.UpdateSlot("friday", TimeSlot{ID: "s1", StartTime: "08:00", EndTime: "14:00", Hours: 6})
	if err != nil {
		t.Fatalf("UpdateSlot: %v", err)
	}
	if got := ws["friday"].TotalHours; got != 6 {
		t.Errorf("friday total = %v, want 6", got)
	}
}

func TestDisabledDayContributesNothing(t *testing.T) {
	ws := NewWeeklySchedule()
	ws, _ = ws.AddSlot("monday", TimeSlot{ID: "s1", StartTime: "08:00", EndTime: "12:00", Hours: 4})

	ws, err := ws.SetDayEnabled("monday", false)
	if err != nil {
		t.Fatalf("SetDayEnabled: %v", err)
	}

	if got := ws.EffectiveHours("monday"); got != 0 {
		t.Errorf("EffectiveHours(disabled monday) = %v, want 0", got)
	}
	// Slot data survives the toggle
	if len(ws["monday"].TimeSlots) != 1 {
		t.Errorf("monday slots = %d, want 1", len(ws["monday"].TimeSlots))
	}

	ws, _ = ws.SetDayEnabled("monday", true)
	if got := ws.EffectiveHours("monday"); got != 4 {
		t.Errorf("EffectiveHours(re-enabled monday) = %v, want 4", got)
	}
}

func TestMutationsDoNotTouchReceiver(t *testing.T) {
	base := NewWeeklySchedule()
	base, _ = base.AddSlot("monday", TimeSlot{ID: "s1", StartTime: "08:00", EndTime: "10:00", Hours: 2})

	_, err := base.AddSlot("monday", TimeSlot{ID: "s2", StartTime: "11:00", EndTime: "12:00", Hours: 1})
	if err != nil {
		t.Fatalf("AddSlot: %v", err)
	}

	if len(base["monday"].TimeSlots) != 1 {
		t.Errorf("receiver mutated: monday slots = %d, want 1", len(base["monday"].TimeSlots))
	}
}

func TestNormalize(t *testing.T) {
	ws := WeeklySchedule{
		"monday": DaySchedule{
			Enabled: true,
			TimeSlots: []TimeSlot{
				{ID: "s1", StartTime: "8:00", EndTime: "12:00"},
			},
		},
	}

	ws, err := ws.Normalize()
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	slot := ws["monday"].TimeSlots[0]
	if slot.StartTime != "08:00" {
		t.Errorf("StartTime = %q, want 08:00", slot.StartTime)
	}
	if slot.Hours != 4 {
		t.Errorf("Hours = %v, want 4", slot.Hours)
	}
	if ws["monday"].TotalHours != 4 {
		t.Errorf("TotalHours = %v, want 4", ws["monday"].TotalHours)
	}

	// Missing days are filled in disabled
	if d, ok := ws["sunday"]; !ok || d.Enabled {
		t.Errorf("sunday = %+v, want present and disabled", d)
	}

	bad := WeeklySchedule{
		"monday": DaySchedule{Enabled: true, TimeSlots: []TimeSlot{{ID: "s1", StartTime: "25:00", EndTime: "26:00"}}},
	}
	if _, err := bad.Normalize(); !errors.Is(err, ErrInvalidTimeFormat) {
		t.Errorf("Normalize(bad) error = %v, want ErrInvalidTimeFormat", err)
	}
}
