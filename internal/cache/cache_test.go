package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"shorturlweb/internal/models"
)

func TestNullCache(t *testing.T) {
	c := NewNullCache()
	ctx := context.Background()

	_, err := c.Get(ctx, "abc1234")
	assert.ErrorIs(t, err, ErrCacheMiss)

	// Запись не делает последующий Get успешным.
	assert.NoError(t, c.Set(ctx, "abc1234", models.ShortURL{Key: "abc1234", URL: "https://example.com"}))
	_, err = c.Get(ctx, "abc1234")
	assert.ErrorIs(t, err, ErrCacheMiss)

	assert.NoError(t, c.HealthCheck(ctx))
	assert.NoError(t, c.Close())
}
