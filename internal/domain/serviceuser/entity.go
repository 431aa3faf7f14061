package serviceuser

import "time"

// ServiceUser is a person receiving home-care visits. The address fields
// are what the route estimator works from.
type ServiceUser struct {
	ID         string
	FullName   string
	Phone      string
	Address    string
	PostalCode string
	City       string
	Notes      string
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
