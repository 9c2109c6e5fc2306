package holiday

import "context"

// CalendarProvider is the read-only holiday oracle the planning core
// consumes. Implementations: the postgresql repository, the remote calendar
// API client, and the redis cache decorator.
type CalendarProvider interface {
	GetHolidaysForYear(ctx context.Context, year int) ([]Holiday, error)
	GetHolidaysForMonth(ctx context.Context, year, month int) ([]Holiday, error)
}

type Repository interface {
	CalendarProvider

	Create(ctx context.Context, h Holiday) (Holiday, error)
	Delete(ctx context.Context, id string) error
}
