package holiday

import "context"

// Repository is the persisted holiday calendar. GetByMonth returning zero
// rows is a valid answer, not an error.
type Repository interface {
	Create(ctx context.Context, h Holiday) (Holiday, error)
	GetByMonth(ctx context.Context, month, year int) ([]Holiday, error)
	ListByYear(ctx context.Context, year int) ([]Holiday, error)
	Delete(ctx context.Context, id string) error
}
