// Package cache предоставляет кэш результатов поиска коротких ссылок по
// ключу, используемый редиректом /u/{key}.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"shorturlweb/internal/models"
)

// ErrCacheMiss возникает, когда ключ не найден в кэше.
var ErrCacheMiss = errors.New("cache miss")

// ShortURLCache определяет интерфейс кэша редирект-ссылок.
type ShortURLCache interface {
	// Get получает короткую ссылку по ключу; ErrCacheMiss при отсутствии.
	Get(ctx context.Context, key string) (models.ShortURL, error)

	// Set сохраняет короткую ссылку с настроенным TTL.
	Set(ctx context.Context, key string, value models.ShortURL) error

	// HealthCheck проверяет соединение с кэшем.
	HealthCheck(ctx context.Context) error

	// Close закрывает соединение.
	Close() error
}

// Проверяем, что обе реализации удовлетворяют интерфейсу.
var (
	_ ShortURLCache = (*RedisCache)(nil)
	_ ShortURLCache = (*NullCache)(nil)
)

const keyPrefix = "shorturl:"

// RedisCache - реализация кэша на основе Redis.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache создает кэш и проверяет подключение к Redis.
func NewRedisCache(addr string, ttl time.Duration) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}

	return &RedisCache{client: client, ttl: ttl}, nil
}

// Get получает короткую ссылку из кэша.
func (c *RedisCache) Get(ctx context.Context, key string) (models.ShortURL, error) {
	var zero models.ShortURL

	data, err := c.client.Get(ctx, keyPrefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return zero, ErrCacheMiss
		}
		return zero, fmt.Errorf("cache get %q: %w", key, err)
	}

	var su models.ShortURL
	if err := json.Unmarshal([]byte(data), &su); err != nil {
		return zero, fmt.Errorf("cache get %q: %w", key, err)
	}
	return su, nil
}

// Set сохраняет короткую ссылку в кэш.
func (c *RedisCache) Set(ctx context.Context, key string, value models.ShortURL) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache set %q: %w", key, err)
	}
	if err := c.client.Set(ctx, keyPrefix+key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set %q: %w", key, err)
	}
	return nil
}

// HealthCheck проверяет соединение с Redis.
func (c *RedisCache) HealthCheck(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close закрывает соединение с Redis.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// NullCache - заглушка для работы без кэша: всегда промах, запись - no-op.
type NullCache struct{}

// NewNullCache создает заглушку кэша.
func NewNullCache() *NullCache {
	return &NullCache{}
}

// Get всегда возвращает ErrCacheMiss.
func (n *NullCache) Get(ctx context.Context, key string) (models.ShortURL, error) {
	return models.ShortURL{}, ErrCacheMiss
}

// Set ничего не делает.
func (n *NullCache) Set(ctx context.Context, key string, value models.ShortURL) error {
	return nil
}

// HealthCheck всегда успешен.
func (n *NullCache) HealthCheck(ctx context.Context) error {
	return nil
}

// Close ничего не делает.
func (n *NullCache) Close() error {
	return nil
}
