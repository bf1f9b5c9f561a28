package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGzipMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, err := w.Write([]byte("<tr><td>row</td></tr>"))
		assert.NoError(t, err)
	})
	handler := GzipMiddleware(next)

	t.Run("Compresses when client accepts gzip", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/my-short-urls/table", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))

		gz, err := gzip.NewReader(w.Body)
		require.NoError(t, err)
		defer gz.Close()

		body, err := io.ReadAll(gz)
		require.NoError(t, err)
		assert.Equal(t, "<tr><td>row</td></tr>", string(body))
	})

	t.Run("Passes through without gzip support", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/my-short-urls/table", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Empty(t, w.Header().Get("Content-Encoding"))
		assert.Equal(t, "<tr><td>row</td></tr>", w.Body.String())
	})
}
