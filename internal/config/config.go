// Package config отвечает за конфигурацию приложения.
package config

import (
	"flag"
	"time"

	"github.com/caarlos0/env/v6"
)

// Config хранит конфигурацию веб-приложения.
type Config struct {
	ServerAddress   string        `env:"SERVER_ADDRESS"`    // Адрес для запуска HTTP-сервера
	APIBaseURL      string        `env:"API_BASE_URL"`      // Базовый адрес REST API коротких ссылок
	BFFBaseURL      string        `env:"BFF_BASE_URL"`      // Базовый адрес BFF (эндпоинт токена и /u/{key})
	RedisAddr       string        `env:"REDIS_ADDR"`        // Адрес Redis для кэша редиректов (пусто - без кэша)
	SessionSecret   string        `env:"SESSION_SECRET"`    // Ключ подписи сессионной куки
	TLSCertFile     string        `env:"TLS_CERT_FILE"`     // Путь к TLS-сертификату
	TLSKeyFile      string        `env:"TLS_KEY_FILE"`      // Путь к TLS-ключу
	KeyLength       int           `env:"KEY_LENGTH"`        // Длина ключа короткой ссылки
	DefaultPageSize int           `env:"DEFAULT_PAGE_SIZE"` // Размер страницы листинга по умолчанию
	CacheTTL        time.Duration `env:"CACHE_TTL"`         // Время жизни записи в кэше редиректов
	Debug           bool          `env:"DEBUG"`             // Подробное логирование запросов и ответов API
	EnableHTTPS     bool          `env:"ENABLE_HTTPS"`      // Включен ли HTTPS
}

// NewConfig инициализирует конфигурацию, читая флаги и переменные окружения.
// Переменные окружения имеют наивысший приоритет.
func NewConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress:   ":8080",
		APIBaseURL:      "http://localhost:8081",
		BFFBaseURL:      "http://localhost:8080",
		SessionSecret:   "development-secret",
		KeyLength:       7,
		DefaultPageSize: 20,
		CacheTTL:        10 * time.Minute,
	}

	flag.StringVar(&cfg.ServerAddress, "a", cfg.ServerAddress, "Адрес запуска HTTP-сервера (env: SERVER_ADDRESS)")
	flag.StringVar(&cfg.APIBaseURL, "api", cfg.APIBaseURL, "Базовый адрес REST API (env: API_BASE_URL)")
	flag.StringVar(&cfg.BFFBaseURL, "bff", cfg.BFFBaseURL, "Базовый адрес BFF (env: BFF_BASE_URL)")
	flag.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "Адрес Redis (env: REDIS_ADDR)")
	flag.IntVar(&cfg.DefaultPageSize, "p", cfg.DefaultPageSize, "Размер страницы по умолчанию (env: DEFAULT_PAGE_SIZE)")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Подробное логирование (env: DEBUG)")
	flag.BoolVar(&cfg.EnableHTTPS, "s", cfg.EnableHTTPS, "Включить HTTPS (env: ENABLE_HTTPS)")

	flag.Parse()

	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsHTTPSEnabled сообщает, нужно ли запускать сервер с TLS.
func (c *Config) IsHTTPSEnabled() bool {
	return c.EnableHTTPS && c.TLSCertFile != "" && c.TLSKeyFile != ""
}
