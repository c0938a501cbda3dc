// Package api реализует HTTP клиент для сервера linkkeeper.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/iudanet/linkkeeper/pkg/api"
)

// APIError представляет ошибку, возвращенную сервером
type APIError struct {
	Code       string // машиночитаемый код из тела ответа
	Message    string // сообщение для пользователя
	StatusCode int    // HTTP статус
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовок Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// SetToken устанавливает bearer токен для авторизованных запросов
func (c *Client) SetToken(token string) {
	c.token = token
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.UserResponse, error) {
	var resp api.UserResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/register", req, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.LoginResponse, error) {
	var resp api.LoginResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// ListCollections возвращает коллекции пользователя
func (c *Client) ListCollections(ctx context.Context, sortOrder string) ([]api.CollectionResponse, error) {
	path := "/api/v1/collections"
	if sortOrder != "" {
		path += "?sort_order=" + url.QueryEscape(sortOrder)
	}

	var resp []api.CollectionResponse
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("list collections request failed: %w", err)
	}
	return resp, nil
}

// CreateCollection создает новую коллекцию
func (c *Client) CreateCollection(ctx context.Context, req api.CreateCollectionRequest) (*api.CollectionResponse, error) {
	var resp api.CollectionResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/collections", req, &resp); err != nil {
		return nil, fmt.Errorf("create collection request failed: %w", err)
	}
	return &resp, nil
}

// CreateItem создает закладку в коллекции
func (c *Client) CreateItem(ctx context.Context, collectionID string, req api.CreateItemRequest) (*api.ItemResponse, error) {
	path := fmt.Sprintf("/api/v1/collections/%s/items", url.PathEscape(collectionID))

	var resp api.ItemResponse
	if err := c.doRequest(ctx, http.MethodPost, path, req, &resp); err != nil {
		return nil, fmt.Errorf("create item request failed: %w", err)
	}
	return &resp, nil
}

// ListItems возвращает закладки коллекции
func (c *Client) ListItems(ctx context.Context, collectionID string) ([]api.ItemResponse, error) {
	path := fmt.Sprintf("/api/v1/collections/%s/items", url.PathEscape(collectionID))

	var resp []api.ItemResponse
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("list items request failed: %w", err)
	}
	return resp, nil
}

// doRequest выполняет HTTP запрос и декодирует ответ
// Не-2xx ответ декодируется в *APIError
func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	reqURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.decodeError(resp)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// decodeError разбирает тело ошибки в APIError
func (c *Client) decodeError(resp *http.Response) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
	}

	var errResp api.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error.Code != "" {
		apiErr.Code = errResp.Error.Code
		apiErr.Message = errResp.Error.Message
	}

	return apiErr
}
