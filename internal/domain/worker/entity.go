package worker

import "time"

// Worker is a field carer. The address fields feed the route estimator's
// home-to-first-stop leg; WeeklyHours is the contracted target the monthly
// reconciliation compares against when an assignment carries no figure of
// its own.
type Worker struct {
	ID          string
	FullName    string
	Email       string
	Phone       string
	Address     string
	PostalCode  string
	City        string
	WeeklyHours float64
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
