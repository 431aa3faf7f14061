package serviceuser

import "context"

type Service interface {
	Create(ctx context.Context, req CreateServiceUserRequest) (ServiceUserResponse, error)
	GetByID(ctx context.Context, id string) (ServiceUserResponse, error)
	List(ctx context.Context, activeOnly bool) ([]ServiceUserResponse, error)
	Update(ctx context.Context, req UpdateServiceUserRequest) (ServiceUserResponse, error)
	Delete(ctx context.Context, id string) error
}
