package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"shorturlweb/internal/models"
)

// mockTokenProvider реализует интерфейс TokenProvider для тестов
type mockTokenProvider struct {
	tokenFunc func(ctx context.Context) (string, error)
}

func (m *mockTokenProvider) Token(ctx context.Context) (string, error) {
	if m.tokenFunc != nil {
		return m.tokenFunc(ctx)
	}
	return "test-token", nil
}

func TestAuthClient_Token(t *testing.T) {
	t.Run("Fresh token on each call", func(t *testing.T) {
		calls := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/jwt", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, err := w.Write([]byte(`{"token_value":"jwt-abc"}`))
			assert.NoError(t, err)
		}))
		defer server.Close()

		client := NewAuthClient(server.URL, false, zap.NewNop())

		token, err := client.Token(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "jwt-abc", token)

		_, err = client.Token(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, calls, "токен не кэшируется")
	})

	t.Run("Non-2xx yields AuthError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		client := NewAuthClient(server.URL, false, zap.NewNop())

		_, err := client.Token(context.Background())
		var authErr *AuthError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, http.StatusUnauthorized, authErr.Status)
	})
}

func TestShortURLClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/shorturl", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("size"))

		w.Header().Set("Content-Type", "application/json")
		_, err := w.Write([]byte(`{
			"status": "OK",
			"message": "",
			"data": {
				"content": [{"id": "id-1", "key": "abc1234", "url": "https://example.com"}],
				"number": 1,
				"size": 10,
				"number_of_elements": 1,
				"total_elements": 11,
				"total_pages": 2,
				"first": false,
				"last": true
			}
		}`))
		assert.NoError(t, err)
	}))
	defer server.Close()

	client := NewShortURLClient(server.URL, &mockTokenProvider{}, false, zap.NewNop())

	page, err := client.List(context.Background(), 1, 10)
	require.NoError(t, err)

	require.Len(t, page.Content, 1)
	assert.Equal(t, "id-1", page.Content[0].ID)
	assert.Equal(t, "abc1234", page.Content[0].Key)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, int64(11), page.TotalElements)
	assert.True(t, page.Last)
}

func TestShortURLClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/shorturl", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"url": "https://example.com", "description": null}`, string(body))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, err = w.Write([]byte(`{"status":"CREATED","message":"","data":{"id":"new-id","key":"xyz9876","url":"https://example.com"}}`))
		assert.NoError(t, err)
	}))
	defer server.Close()

	client := NewShortURLClient(server.URL, &mockTokenProvider{}, false, zap.NewNop())

	created, err := client.Create(context.Background(), models.CreateShortURLRequest{URL: "https://example.com"})
	require.NoError(t, err)
	assert.Equal(t, "new-id", created.ID)
	assert.Equal(t, "xyz9876", created.Key)
}

func TestShortURLClient_Delete(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/api/v1/shorturl/id-1", r.URL.Path)
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewShortURLClient(server.URL, &mockTokenProvider{}, false, zap.NewNop())
		assert.NoError(t, client.Delete(context.Background(), "id-1"))
	})

	t.Run("Non-2xx yields APIError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := NewShortURLClient(server.URL, &mockTokenProvider{}, false, zap.NewNop())

		err := client.Delete(context.Background(), "missing")
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.Status)
	})
}

func TestShortURLClient_Lookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/cache/abc1234", r.URL.Path)
		// Эндпоинт кэша не требует токена.
		assert.Empty(t, r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(models.Envelope[models.ShortURL]{
			Status: "OK",
			Data:   models.ShortURL{ID: "id-1", Key: "abc1234", URL: "https://example.com/target"},
		})
		assert.NoError(t, err)
	}))
	defer server.Close()

	tokenErrProvider := &mockTokenProvider{
		tokenFunc: func(ctx context.Context) (string, error) {
			t.Fatal("Lookup не должен запрашивать токен")
			return "", nil
		},
	}
	client := NewShortURLClient(server.URL, tokenErrProvider, false, zap.NewNop())

	su, err := client.Lookup(context.Background(), "abc1234")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/target", su.URL)
}

func TestShortURLClient_TokenFailureShortCircuits(t *testing.T) {
	requested := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = true
	}))
	defer server.Close()

	provider := &mockTokenProvider{
		tokenFunc: func(ctx context.Context) (string, error) {
			return "", &AuthError{Status: http.StatusBadGateway, StatusText: "502 Bad Gateway"}
		},
	}
	client := NewShortURLClient(server.URL, provider, false, zap.NewNop())

	_, err := client.List(context.Background(), 0, 20)
	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.False(t, requested, "запрос к API не выполняется без токена")
}
