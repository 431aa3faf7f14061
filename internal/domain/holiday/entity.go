package holiday

import "time"

// HolidayType distinguishes the calendar a holiday comes from.
type HolidayType string

const (
	TypeNational HolidayType = "national"
	TypeRegional HolidayType = "regional"
	TypeLocal    HolidayType = "local"
)

var HolidayTypeValues = []string{
	string(TypeNational),
	string(TypeRegional),
	string(TypeLocal),
}

// Holiday is one non-working calendar day. Uniqueness of (day, month, year)
// is a data-entry concern; consumers tolerate duplicates.
type Holiday struct {
	ID        string
	Day       int // 1-31
	Month     int // 1-12
	Year      int
	Name      string
	Type      HolidayType
	CreatedAt time.Time
}

// Matches reports whether the holiday falls on the given calendar day.
func (h Holiday) Matches(day, month, year int) bool {
	return h.Day == day && h.Month == month && h.Year == year
}
