package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с identity-сервисом
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента identity-сервиса
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetCustomer получает профиль клиента по ID
func (c *Client) GetCustomer(ctx context.Context, userID int64) (*Customer, error) {
	url := fmt.Sprintf("%s/internal/users/%d", c.baseURL, userID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid user ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrCustomerNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var profile rawProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return profile.toCustomer(), nil
}

// GetCustomerWithGracefulDegradation получает профиль клиента с graceful degradation
// При недоступности identity-сервиса возвращает ErrServiceDegraded, что позволяет
// создать бронирование с плейсхолдером вместо имени клиента
func (c *Client) GetCustomerWithGracefulDegradation(ctx context.Context, userID int64) (*Customer, error) {
	c.log.Info("Fetching customer profile for user_id=%d", userID)

	customer, err := c.GetCustomer(ctx, userID)
	if err != nil {
		// Критичная бизнес-ошибка - пробрасываем дальше
		if err == ErrCustomerNotFound {
			c.log.Info("No customer profile found for user_id=%d", userID)
			return nil, err
		}

		// Для всех остальных ошибок (недоступность сервиса, timeout, ошибки парсинга)
		// применяем graceful degradation
		c.log.Error("Identity service unavailable, applying graceful degradation for user_id=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: user_id=%d, error=%v", ErrServiceDegraded, userID, err)
	}

	c.log.Info("Successfully fetched customer profile for user_id=%d", userID)
	return customer, nil
}
