package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/caredesk/homecare-backend-go/internal/config"
	"github.com/caredesk/homecare-backend-go/internal/domain/holiday"
	"golang.org/x/oauth2/clientcredentials"
)

// HTTPProvider fetches public holidays from a remote calendar API. Requests
// carry an OAuth2 client-credentials token; the oauth2 transport handles
// token refresh.
type HTTPProvider struct {
	baseURL string
	region  string
	client  *http.Client
}

func NewHTTPProvider(cfg config.CalendarConfig) *HTTPProvider {
	credentials := clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.TokenURL,
	}

	client := credentials.Client(context.Background())
	client.Timeout = 15 * time.Second

	return &HTTPProvider{
		baseURL: cfg.BaseURL,
		region:  cfg.Region,
		client:  client,
	}
}

type holidayPayload struct {
	ID   string `json:"id"`
	Date string `json:"date"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// GetHolidaysForYear implements holiday.CalendarProvider.
func (p *HTTPProvider) GetHolidaysForYear(ctx context.Context, year int) ([]holiday.Holiday, error) {
	query := url.Values{
		"year":   {strconv.Itoa(year)},
		"region": {p.region},
	}
	return p.fetch(ctx, query)
}

// GetHolidaysForMonth implements holiday.CalendarProvider.
func (p *HTTPProvider) GetHolidaysForMonth(ctx context.Context, year, month int) ([]holiday.Holiday, error) {
	query := url.Values{
		"year":   {strconv.Itoa(year)},
		"month":  {strconv.Itoa(month)},
		"region": {p.region},
	}
	return p.fetch(ctx, query)
}

func (p *HTTPProvider) fetch(ctx context.Context, query url.Values) ([]holiday.Holiday, error) {
	endpoint := p.baseURL + "/holidays?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build calendar request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calendar request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("calendar API returned status %d", resp.StatusCode)
	}

	var payload []holidayPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode calendar response: %w", err)
	}

	holidays := make([]holiday.Holiday, 0, len(payload))
	for _, item := range payload {
		date, err := time.Parse("2006-01-02", item.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid holiday date %q: %w", item.Date, err)
		}
		holidays = append(holidays, holiday.Holiday{
			ID:   item.ID,
			Date: date,
			Name: item.Name,
			Type: holiday.HolidayType(item.Type),
		})
	}
	return holidays, nil
}
