package salonapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SLN-BookingFlow/internal/domain"
	"github.com/m04kA/SLN-BookingFlow/pkg/types"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент внешнего API салона
// Все ответы валидируются на границе: в ядро попадают только типизированные
// данные, сломанный ответ превращается в ErrInvalidResponse
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента API салона
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// get выполняет GET запрос и возвращает data из конверта ответа
func (c *Client) get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")

	return c.do(req)
}

// post выполняет POST запрос с JSON телом и возвращает data из конверта
func (c *Client) post(ctx context.Context, path string, body interface{}) (json.RawMessage, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, fmt.Errorf("%w: failed to encode request body: %v", ErrInternal, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return c.do(req)
}

func (c *Client) do(req *http.Request) (json.RawMessage, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, fmt.Errorf("%w: status code %d", ErrUnavailable, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if !env.Status {
		if env.Message == "" {
			env.Message = "no message"
		}
		return nil, fmt.Errorf("%w: %s", ErrRejected, env.Message)
	}

	return env.Data, nil
}

// GetEmployees получает список сотрудников филиала
func (c *Client) GetEmployees(ctx context.Context, branchID int64) ([]Employee, error) {
	query := url.Values{}
	query.Set("branch_id", strconv.FormatInt(branchID, 10))

	data, err := c.get(ctx, "/employee-list", query)
	if err != nil {
		return nil, err
	}

	var employees []Employee
	if err := json.Unmarshal(data, &employees); err != nil {
		return nil, fmt.Errorf("%w: failed to parse employee list: %v", ErrInvalidResponse, err)
	}

	return employees, nil
}

// GetEmployeeServices получает категории услуг филиала
func (c *Client) GetEmployeeServices(ctx context.Context, branchID int64) ([]ServiceCategory, error) {
	query := url.Values{}
	query.Set("branch_id", strconv.FormatInt(branchID, 10))

	data, err := c.get(ctx, "/employee-service-list", query)
	if err != nil {
		return nil, err
	}

	var categories []ServiceCategory
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("%w: failed to parse service list: %v", ErrInvalidResponse, err)
	}

	return categories, nil
}

// GetAvailability получает карту занятости на дату
// Ключи валидируются как "HH:MM" до того, как карта попадет в ядро
func (c *Client) GetAvailability(ctx context.Context, branchID, staffID int64, serviceIDs []int64, date string) (domain.OccupancyMap, error) {
	ids := make([]string, len(serviceIDs))
	for i, id := range serviceIDs {
		ids[i] = strconv.FormatInt(id, 10)
	}

	query := url.Values{}
	query.Set("branch_id", strconv.FormatInt(branchID, 10))
	query.Set("staff_id", strconv.FormatInt(staffID, 10))
	query.Set("service_id", strings.Join(ids, ","))
	query.Set("date", date)

	data, err := c.get(ctx, "/booking-slots", query)
	if err != nil {
		return nil, err
	}

	var raw map[string]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: failed to parse occupancy map: %v", ErrInvalidResponse, err)
	}

	occupancy := make(domain.OccupancyMap, len(raw))
	for key, capacity := range raw {
		ts, err := types.NewTimeStringFromString(key)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid occupancy key %q", ErrInvalidResponse, key)
		}
		occupancy[ts] = capacity
	}

	return occupancy, nil
}

// SaveBooking создает бронирование для зарегистрированного пользователя
// Вызов не повторяется автоматически: запись не идемпотентна
func (c *Client) SaveBooking(ctx context.Context, payload *BookingPayload) (int64, error) {
	return c.saveBooking(ctx, "/save-booking", payload)
}

// SaveBookingGuest создает гостевое бронирование
func (c *Client) SaveBookingGuest(ctx context.Context, payload *BookingPayload) (int64, error) {
	return c.saveBooking(ctx, "/save-booking-guest", payload)
}

func (c *Client) saveBooking(ctx context.Context, path string, payload *BookingPayload) (int64, error) {
	data, err := c.post(ctx, path, payload)
	if err != nil {
		return 0, err
	}

	var saved savedBooking
	if len(data) > 0 {
		if err := json.Unmarshal(data, &saved); err != nil {
			return 0, fmt.Errorf("%w: failed to parse booking id: %v", ErrInvalidResponse, err)
		}
	}

	c.log.Info("Booking saved via %s: booking_id=%d, branch_id=%d, employee_id=%d",
		path, saved.ID, payload.BranchID, payload.EmployeeID)

	return saved.ID, nil
}

// CancelBooking отменяет бронирование по ID
func (c *Client) CancelBooking(ctx context.Context, bookingID int64) error {
	_, err := c.post(ctx, fmt.Sprintf("/booking-cancel/%d", bookingID), nil)
	if err != nil {
		return err
	}

	c.log.Info("Booking cancelled: booking_id=%d", bookingID)
	return nil
}
