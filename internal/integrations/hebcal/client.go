package hebcal

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/m04kA/SMC-DeliveryService/internal/domain"
)

// SourceName имя источника в логах и метриках
const SourceName = "hebcal"

// Client клиент Hebcal API (https://www.hebcal.com/home/195/jewish-calendar-rest-api).
// Загружает праздники за весь год одним запросом и запоминает результат.
type Client struct {
	baseURL    string
	israel     bool
	httpClient *http.Client
	log        Logger

	mu    sync.RWMutex
	years map[int]map[domain.CalendarDate]string
	group singleflight.Group
}

// NewClient создает новый экземпляр клиента Hebcal
func NewClient(baseURL string, timeout time.Duration, israel bool, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		israel:  israel,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:   log,
		years: make(map[int]map[domain.CalendarDate]string),
	}
}

// LookupHoliday возвращает праздник с запретом работы (yomtov) в указанную дату или nil
func (c *Client) LookupHoliday(ctx context.Context, date domain.CalendarDate) (*domain.Holiday, error) {
	holidays, err := c.year(ctx, date.Year)
	if err != nil {
		return nil, err
	}

	name, ok := holidays[date]
	if !ok {
		return nil, nil
	}

	return &domain.Holiday{
		Date:   date,
		Name:   name,
		Source: SourceName,
	}, nil
}

func (c *Client) year(ctx context.Context, year int) (map[domain.CalendarDate]string, error) {
	if holidays, ok := c.cached(year); ok {
		return holidays, nil
	}

	// Один запрос на год для всех одновременных вызовов.
	// Отмена контекста одного из ожидающих не прерывает общую загрузку
	ch := c.group.DoChan(strconv.Itoa(year), func() (interface{}, error) {
		if holidays, ok := c.cached(year); ok {
			return holidays, nil
		}

		holidays, err := c.fetchYear(context.WithoutCancel(ctx), year)
		if err != nil {
			return nil, err
		}

		c.log.Info("Hebcal: loaded %d closing holidays for year %d", len(holidays), year)

		c.mu.Lock()
		c.years[year] = holidays
		c.mu.Unlock()
		return holidays, nil
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: waiting for year %d: %v", ErrInternal, year, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(map[domain.CalendarDate]string), nil
	}
}

func (c *Client) cached(year int) (map[domain.CalendarDate]string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	holidays, ok := c.years[year]
	return holidays, ok
}

func (c *Client) fetchYear(ctx context.Context, year int) (map[domain.CalendarDate]string, error) {
	params := url.Values{}
	params.Set("v", "1")
	params.Set("cfg", "json")
	params.Set("maj", "on")
	params.Set("year", strconv.Itoa(year))
	if c.israel {
		params.Set("i", "on")
	}

	reqURL := fmt.Sprintf("%s/hebcal?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var payload yearResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	holidays := make(map[domain.CalendarDate]string)
	for _, it := range payload.Items {
		if !it.Yomtov {
			continue
		}
		if len(it.Date) < len(domain.DateFormat) {
			return nil, fmt.Errorf("%w: malformed date %q", ErrInvalidResponse, it.Date)
		}
		date, err := domain.ParseCalendarDate(it.Date[:len(domain.DateFormat)])
		if err != nil {
			return nil, fmt.Errorf("%w: malformed date %q: %v", ErrInvalidResponse, it.Date, err)
		}
		if _, exists := holidays[date]; !exists {
			holidays[date] = it.Title
		}
	}

	return holidays, nil
}
