package holiday

import "context"

type Service interface {
	Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	ListForYear(ctx context.Context, year int) ([]HolidayResponse, error)
	ListForMonth(ctx context.Context, year, month int) ([]HolidayResponse, error)
	Delete(ctx context.Context, id string) error
}
