package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"shorturlweb/internal/models"
)

// ShortURLAPI определяет интерфейс для работы с REST API коротких ссылок.
type ShortURLAPI interface {
	// List запрашивает страницу коротких ссылок пользователя.
	List(ctx context.Context, page, size int) (models.Page[models.ShortURL], error)

	// Create создает новую короткую ссылку.
	Create(ctx context.Context, req models.CreateShortURLRequest) (models.ShortURL, error)

	// Delete удаляет короткую ссылку по идентификатору.
	Delete(ctx context.Context, id string) error

	// Lookup получает короткую ссылку по ключу через неаутентифицируемый
	// кэширующий эндпоинт API.
	Lookup(ctx context.Context, key string) (models.ShortURL, error)
}

// ShortURLClient реализует ShortURLAPI. Перед каждым аутентифицируемым
// запросом получает свежий токен у TokenProvider. Общего изменяемого
// состояния нет, методы можно вызывать конкурентно.
type ShortURLClient struct {
	auth       TokenProvider
	httpClient *http.Client
	apiBaseURL string
	logger     *zap.Logger
	debug      bool
}

// NewShortURLClient создает новый клиент REST API.
func NewShortURLClient(apiBaseURL string, auth TokenProvider, debug bool, logger *zap.Logger) *ShortURLClient {
	return &ShortURLClient{
		auth:       auth,
		httpClient: &http.Client{},
		apiBaseURL: apiBaseURL,
		logger:     logger,
		debug:      debug,
	}
}

// List запрашивает страницу коротких ссылок с параметрами page и size.
func (c *ShortURLClient) List(ctx context.Context, page, size int) (models.Page[models.ShortURL], error) {
	var zero models.Page[models.ShortURL]

	reqURL := c.apiBaseURL + "/api/v1/shorturl?" + url.Values{
		"page": {strconv.Itoa(page)},
		"size": {strconv.Itoa(size)},
	}.Encode()

	var envelope models.Envelope[models.Page[models.ShortURL]]
	if err := c.doJSON(ctx, http.MethodGet, reqURL, nil, &envelope); err != nil {
		return zero, err
	}

	return envelope.Data, nil
}

// Create создает короткую ссылку и возвращает созданную сущность.
func (c *ShortURLClient) Create(ctx context.Context, req models.CreateShortURLRequest) (models.ShortURL, error) {
	var zero models.ShortURL

	body, err := json.Marshal(req)
	if err != nil {
		return zero, fmt.Errorf("encoding create request: %w", err)
	}

	var envelope models.Envelope[models.ShortURL]
	if err := c.doJSON(ctx, http.MethodPost, c.apiBaseURL+"/api/v1/shorturl", body, &envelope); err != nil {
		return zero, err
	}

	return envelope.Data, nil
}

// Delete удаляет короткую ссылку. Успех определяется только отсутствием
// ошибки, тело ответа не разбирается.
func (c *ShortURLClient) Delete(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, c.apiBaseURL+"/api/v1/shorturl/"+url.PathEscape(id), nil, nil)
}

// Lookup получает короткую ссылку по ключу. Эндпоинт не требует токена.
func (c *ShortURLClient) Lookup(ctx context.Context, key string) (models.ShortURL, error) {
	var zero models.ShortURL

	reqURL := c.apiBaseURL + "/api/v1/cache/" + url.PathEscape(key)
	if c.debug {
		c.logger.Debug("GET " + reqURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return zero, fmt.Errorf("building lookup request: %w", err)
	}

	var envelope models.Envelope[models.ShortURL]
	if err := c.do(req, &envelope); err != nil {
		return zero, err
	}

	return envelope.Data, nil
}

// doJSON выполняет аутентифицируемый запрос: получает свежий токен,
// выставляет заголовок Authorization и разбирает JSON-ответ в out (если не nil).
func (c *ShortURLClient) doJSON(ctx context.Context, method, reqURL string, body []byte, out any) error {
	token, err := c.auth.Token(ctx)
	if err != nil {
		return err
	}

	if c.debug {
		c.logger.Debug(method + " " + reqURL)
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return fmt.Errorf("building API request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req, out)
}

// do выполняет запрос и разбирает ответ.
func (c *ShortURLClient) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("requesting API: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Error("Error closing response body", zap.Error(err))
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &APIError{Status: resp.StatusCode, StatusText: resp.Status}
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding API response: %w", err)
	}

	if c.debug {
		c.logger.Debug("API response decoded", zap.String("url", req.URL.String()))
	}

	return nil
}
