package holiday

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/caredesk/homecare-backend-go/internal/domain/holiday"
	"github.com/caredesk/homecare-backend-go/internal/pkg/metrics"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type holidayServiceImpl struct {
	holidayRepo holiday.Repository
}

func NewHolidayService(holidayRepo holiday.Repository) holiday.Service {
	return &holidayServiceImpl{holidayRepo: holidayRepo}
}

// Create implements holiday.Service.
func (s *holidayServiceImpl) Create(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	created, err := s.holidayRepo.Create(ctx, holiday.Holiday{
		ID:   uuid.NewString(),
		Date: date,
		Name: req.Name,
		Type: holiday.HolidayType(req.Type),
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return holiday.HolidayResponse{}, holiday.ErrHolidayExists
		}
		return holiday.HolidayResponse{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return holiday.NewResponse(created), nil
}

// ListForYear implements holiday.Service.
func (s *holidayServiceImpl) ListForYear(ctx context.Context, year int) ([]holiday.HolidayResponse, error) {
	list, err := s.holidayRepo.GetHolidaysForYear(ctx, year)
	if err != nil {
		metrics.HolidayLookupsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%w: %v", holiday.ErrLookupFailed, err)
	}
	metrics.HolidayLookupsTotal.WithLabelValues("ok").Inc()
	return toResponses(list), nil
}

// ListForMonth implements holiday.Service.
func (s *holidayServiceImpl) ListForMonth(ctx context.Context, year, month int) ([]holiday.HolidayResponse, error) {
	list, err := s.holidayRepo.GetHolidaysForMonth(ctx, year, month)
	if err != nil {
		metrics.HolidayLookupsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%w: %v", holiday.ErrLookupFailed, err)
	}
	metrics.HolidayLookupsTotal.WithLabelValues("ok").Inc()
	return toResponses(list), nil
}

// Delete implements holiday.Service.
func (s *holidayServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.holidayRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return holiday.ErrHolidayNotFound
		}
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	return nil
}

func toResponses(list []holiday.Holiday) []holiday.HolidayResponse {
	responses := make([]holiday.HolidayResponse, 0, len(list))
	for _, h := range list {
		responses = append(responses, holiday.NewResponse(h))
	}
	return responses
}
