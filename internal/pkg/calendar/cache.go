package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/caredesk/homecare-backend-go/internal/domain/holiday"
	"github.com/caredesk/homecare-backend-go/internal/pkg/metrics"
	"github.com/redis/go-redis/v9"
)

// CachedProvider is a read-through redis cache in front of another
// CalendarProvider. Holiday sets change rarely, so a generous TTL is safe.
// Cache failures degrade to the inner provider instead of failing the
// lookup.
type CachedProvider struct {
	inner holiday.CalendarProvider
	rdb   *redis.Client
	ttl   time.Duration
}

func NewCachedProvider(inner holiday.CalendarProvider, rdb *redis.Client, ttl time.Duration) *CachedProvider {
	return &CachedProvider{
		inner: inner,
		rdb:   rdb,
		ttl:   ttl,
	}
}

// GetHolidaysForYear implements holiday.CalendarProvider.
func (p *CachedProvider) GetHolidaysForYear(ctx context.Context, year int) ([]holiday.Holiday, error) {
	key := fmt.Sprintf("holidays:%d", year)
	return p.lookup(ctx, key, func() ([]holiday.Holiday, error) {
		return p.inner.GetHolidaysForYear(ctx, year)
	})
}

// GetHolidaysForMonth implements holiday.CalendarProvider.
func (p *CachedProvider) GetHolidaysForMonth(ctx context.Context, year, month int) ([]holiday.Holiday, error) {
	key := fmt.Sprintf("holidays:%d:%02d", year, month)
	return p.lookup(ctx, key, func() ([]holiday.Holiday, error) {
		return p.inner.GetHolidaysForMonth(ctx, year, month)
	})
}

func (p *CachedProvider) lookup(ctx context.Context, key string, fetch func() ([]holiday.Holiday, error)) ([]holiday.Holiday, error) {
	cached, err := p.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var holidays []holiday.Holiday
		if err := json.Unmarshal(cached, &holidays); err == nil {
			metrics.HolidayLookupsTotal.WithLabelValues("cache_hit").Inc()
			return holidays, nil
		}
		// Unreadable entry; fall through and overwrite it.
	}

	holidays, err := fetch()
	if err != nil {
		return nil, err
	}
	metrics.HolidayLookupsTotal.WithLabelValues("cache_miss").Inc()

	if encoded, err := json.Marshal(holidays); err == nil {
		_ = p.rdb.Set(ctx, key, encoded, p.ttl).Err()
	}
	return holidays, nil
}
