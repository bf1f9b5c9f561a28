// Package client содержит HTTP-клиенты внешних сервисов: эндпоинта выдачи
// токена и REST API коротких ссылок.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"shorturlweb/internal/models"
)

// TokenProvider определяет интерфейс получения bearer-токена.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// AuthClient получает короткоживущий bearer-токен у эндпоинта токена.
// Каждый вызов выполняет свежий запрос: токен не кэшируется и не обновляется,
// повторов при ошибке нет.
type AuthClient struct {
	httpClient *http.Client
	bffBaseURL string
	logger     *zap.Logger
	debug      bool
}

// NewAuthClient создает новый AuthClient.
func NewAuthClient(bffBaseURL string, debug bool, logger *zap.Logger) *AuthClient {
	return &AuthClient{
		httpClient: &http.Client{},
		bffBaseURL: bffBaseURL,
		logger:     logger,
		debug:      debug,
	}
}

// Token запрашивает свежий bearer-токен.
func (c *AuthClient) Token(ctx context.Context) (string, error) {
	url := c.bffBaseURL + "/jwt"
	if c.debug {
		c.logger.Debug("GET " + url)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("building token request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("requesting token: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Error("Error closing response body", zap.Error(err))
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", &AuthError{Status: resp.StatusCode, StatusText: resp.Status}
	}

	var token models.TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", fmt.Errorf("decoding token response: %w", err)
	}

	return token.TokenValue, nil
}
