package holiday

import "context"

type Service interface {
	Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	ListByYear(ctx context.Context, year int) ([]HolidayResponse, error)
	Delete(ctx context.Context, id string) error
}
