// Package client предоставляет типизированный HTTP-клиент к API учёта товаров
// и локальное представление каталога в виде kanban-доски с оптимистичными
// обновлениями.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/magabrotheeeer/inventory-tracker/internal/models"
)

// APIError описывает отказ API: HTTP статус и сообщение из конверта ответа.
type APIError struct {
	StatusCode int
	Message    string
	Errors     []string
}

func (e *APIError) Error() string {
	if len(e.Errors) > 0 {
		return fmt.Sprintf("api error %d: %s (%s)", e.StatusCode, e.Message, strings.Join(e.Errors, "; "))
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// envelope — общий формат всех ответов API.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
	Errors  []string        `json:"errors,omitempty"`
}

// Client выполняет типизированные запросы к API учёта товаров.
type Client struct {
	apiURL     string
	token      string
	httpClient *http.Client
}

// New создаёт новый клиент API.
func New(apiURL string) *Client {
	return &Client{
		apiURL:     strings.TrimRight(apiURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// SetToken задает bearer-токен для последующих запросов.
func (c *Client) SetToken(token string) {
	c.token = token
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, c.apiURL+path, &buf)
	if err != nil {
		return nil, err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

// do выполняет запрос и разбирает конверт ответа. Полезная нагрузка
// декодируется в out, если out не nil и сервер вернул данные.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if !env.Success {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    env.Message,
			Errors:     env.Errors,
		}
	}
	if out != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("decode data: %w", err)
		}
	}
	return nil
}

// LoginResult — полезная нагрузка успешного входа.
type LoginResult struct {
	Token string `json:"token"`
	User  struct {
		ID       string `json:"id"`
		Username string `json:"username"`
	} `json:"user"`
}

// Register создает нового пользователя.
func (c *Client) Register(ctx context.Context, username, password string) error {
	req, err := c.newRequest(ctx, http.MethodPost, "/api/auth/register", map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

// Login аутентифицирует пользователя и запоминает выданный токен.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/api/auth/login", map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return nil, err
	}
	var result LoginResult
	if err := c.do(req, &result); err != nil {
		return nil, err
	}
	c.token = result.Token
	return &result, nil
}

// ListCategories возвращает имена категорий пользователя.
func (c *Client) ListCategories(ctx context.Context) ([]string, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/categories", nil)
	if err != nil {
		return nil, err
	}
	var names []string
	if err := c.do(req, &names); err != nil {
		return nil, err
	}
	return names, nil
}

// CreateCategory создает новую категорию.
func (c *Client) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/api/categories", models.DummyCategory{Name: name})
	if err != nil {
		return nil, err
	}
	var category models.Category
	if err := c.do(req, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory удаляет категорию; её товары сервер переносит
// в категорию по умолчанию.
func (c *Client) DeleteCategory(ctx context.Context, name string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/api/categories/"+url.PathEscape(name), nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

// CreateProduct создает новый товар.
func (c *Client) CreateProduct(ctx context.Context, product models.DummyProduct) (*models.Product, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/api/products", product)
	if err != nil {
		return nil, err
	}
	var created models.Product
	if err := c.do(req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// ListProducts возвращает товары пользователя с учетом фильтра.
func (c *Client) ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	query := url.Values{}
	if filter.Category != "" {
		query.Set("category", filter.Category)
	}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	path := "/api/products"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	var products []models.Product
	if err := c.do(req, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct возвращает товар по идентификатору.
func (c *Client) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/products/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}
	var product models.Product
	if err := c.do(req, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// GetProductByBarcode возвращает товар по штрихкоду.
func (c *Client) GetProductByBarcode(ctx context.Context, barcode string) (*models.Product, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/products/barcode/"+url.PathEscape(barcode), nil)
	if err != nil {
		return nil, err
	}
	var product models.Product
	if err := c.do(req, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct частично обновляет товар.
func (c *Client) UpdateProduct(ctx context.Context, id string, upd models.UpdateProduct) (*models.Product, error) {
	req, err := c.newRequest(ctx, http.MethodPut, "/api/products/"+url.PathEscape(id), upd)
	if err != nil {
		return nil, err
	}
	var product models.Product
	if err := c.do(req, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct удаляет товар по идентификатору.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/api/products/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

// GetStats возвращает статистику каталога.
func (c *Client) GetStats(ctx context.Context) (*models.Stats, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/products/stats/analytics", nil)
	if err != nil {
		return nil, err
	}
	var stats models.Stats
	if err := c.do(req, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
