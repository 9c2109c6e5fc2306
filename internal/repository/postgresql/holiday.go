package postgresql

import (
	"context"

	"github.com/caredesk/homecare-backend-go/internal/domain/holiday"
	"github.com/caredesk/homecare-backend-go/internal/pkg/database"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.Repository {
	return &holidayRepositoryImpl{db: db}
}

// Create implements holiday.Repository.
func (r *holidayRepositoryImpl) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	insertQuery := `
		INSERT INTO holidays (id, date, name, type, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, date, name, type, created_at
	`

	var created holiday.Holiday
	err := q.QueryRow(ctx, insertQuery, h.ID, h.Date, h.Name, h.Type).Scan(
		&created.ID,
		&created.Date,
		&created.Name,
		&created.Type,
		&created.CreatedAt,
	)
	if err != nil {
		return holiday.Holiday{}, err
	}
	return created, nil
}

// GetHolidaysForYear implements holiday.CalendarProvider.
func (r *holidayRepositoryImpl) GetHolidaysForYear(ctx context.Context, year int) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, date, name, type, created_at
		FROM holidays
		WHERE EXTRACT(YEAR FROM date) = $1
		ORDER BY date
	`
	return r.queryHolidays(ctx, q, query, year)
}

// GetHolidaysForMonth implements holiday.CalendarProvider.
func (r *holidayRepositoryImpl) GetHolidaysForMonth(ctx context.Context, year, month int) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, date, name, type, created_at
		FROM holidays
		WHERE EXTRACT(YEAR FROM date) = $1 AND EXTRACT(MONTH FROM date) = $2
		ORDER BY date
	`
	return r.queryHolidays(ctx, q, query, year, month)
}

// Delete implements holiday.Repository.
func (r *holidayRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	var deleted string
	return q.QueryRow(ctx, `DELETE FROM holidays WHERE id = $1 RETURNING id`, id).Scan(&deleted)
}

func (r *holidayRepositoryImpl) queryHolidays(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]holiday.Holiday, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []holiday.Holiday
	for rows.Next() {
		var h holiday.Holiday
		if err := rows.Scan(&h.ID, &h.Date, &h.Name, &h.Type, &h.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, h)
	}
	return list, rows.Err()
}
