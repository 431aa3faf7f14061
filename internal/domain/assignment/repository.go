package assignment

import "context"

type Repository interface {
	Create(ctx context.Context, a Assignment) (Assignment, error)
	GetByID(ctx context.Context, id string) (*Assignment, error)
	ListByWorker(ctx context.Context, workerID string) ([]Assignment, error)
	List(ctx context.Context, activeOnly bool) ([]Assignment, error)
	Update(ctx context.Context, a Assignment) (Assignment, error)
	Delete(ctx context.Context, id string) error
}
