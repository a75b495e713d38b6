package garageservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// Client клиент для работы с GarageService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента GarageService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetCustomerCard получает карточку клиента мастерской
func (c *Client) GetCustomerCard(ctx context.Context, customerID int64) (*CustomerCard, error) {
	url := fmt.Sprintf("%s/internal/customers/%d/card", c.baseURL, customerID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Сетевые ошибки и timeout считаем временными
		var netErr net.Error
		if errors.As(err, &netErr) {
			return nil, fmt.Errorf("%w: %v", ErrTransientFetch, err)
		}
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid customer ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrCustomerNotFound
	case http.StatusServiceUnavailable, http.StatusGatewayTimeout, http.StatusBadGateway:
		return nil, fmt.Errorf("%w: status code %d", ErrTransientFetch, resp.StatusCode)
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var card CustomerCard
	if err := json.NewDecoder(resp.Body).Decode(&card); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &card, nil
}

// GetCustomerCardWithGracefulDegradation получает карточку клиента с graceful degradation
// При недоступности GarageService возвращает ErrServiceDegraded: бронирование
// создается без денормализованных данных клиента, имя подставляется позже
func (c *Client) GetCustomerCardWithGracefulDegradation(ctx context.Context, customerID int64) (*CustomerCard, error) {
	c.log.Info("Fetching customer card for customer_id=%d", customerID)

	card, err := c.GetCustomerCard(ctx, customerID)
	if err != nil {
		// Критичная бизнес-ошибка (клиент не найден) пробрасывается дальше
		if errors.Is(err, ErrCustomerNotFound) {
			c.log.Info("No customer card found for customer_id=%d", customerID)
			return nil, err
		}

		// Для всех остальных ошибок (недоступность сервиса, timeout, ошибки парсинга и т.д.)
		// применяем graceful degradation - возвращаем ErrServiceDegraded с контекстом
		// Повышаем уровень логирования до ERROR, чтобы быстрее заметить проблему
		c.log.Error("GarageService unavailable, applying graceful degradation for customer_id=%d: %v", customerID, err)
		return nil, fmt.Errorf("%w: customer_id=%d, error=%v", ErrServiceDegraded, customerID, err)
	}

	c.log.Info("Successfully fetched customer card for customer_id=%d", customerID)
	return card, nil
}
