package serviceuser

import "context"

type Repository interface {
	Create(ctx context.Context, u ServiceUser) (ServiceUser, error)
	GetByID(ctx context.Context, id string) (*ServiceUser, error)
	List(ctx context.Context, activeOnly bool) ([]ServiceUser, error)
	Update(ctx context.Context, u ServiceUser) (ServiceUser, error)
	Delete(ctx context.Context, id string) error
}
