package worker

import "context"

type Repository interface {
	Create(ctx context.Context, w Worker) (Worker, error)
	GetByID(ctx context.Context, id string) (*Worker, error)
	List(ctx context.Context, activeOnly bool) ([]Worker, error)
	Update(ctx context.Context, w Worker) (Worker, error)
	Delete(ctx context.Context, id string) error
}
