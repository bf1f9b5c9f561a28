// Package app содержит основную структуру приложения и логику инициализации.
// Предоставляет точку входа для запуска HTTP сервера с настроенными
// маршрутами и middleware.
package app

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"shorturlweb/internal/cache"
	"shorturlweb/internal/client"
	"shorturlweb/internal/config"
	"shorturlweb/internal/handler"
	"shorturlweb/internal/middleware"
	"shorturlweb/internal/view"
)

// App представляет веб-приложение страницы коротких ссылок.
type App struct {
	config  *config.Config
	router  *chi.Mux
	logger  *zap.Logger
	handler *handler.Handler
	cache   cache.ShortURLCache
}

// NewApp создает и инициализирует новый экземпляр приложения: клиенты
// внешних сервисов, движок синхронизации, кэш редиректов и обработчики.
func NewApp(cfg *config.Config, logger *zap.Logger) (*App, error) {
	auth := client.NewAuthClient(cfg.BFFBaseURL, cfg.Debug, logger)
	api := client.NewShortURLClient(cfg.APIBaseURL, auth, cfg.Debug, logger)

	var redirectCache cache.ShortURLCache
	if cfg.RedisAddr != "" {
		rc, err := cache.NewRedisCache(cfg.RedisAddr, cfg.CacheTTL)
		if err != nil {
			return nil, err
		}
		redirectCache = rc
	} else {
		logger.Info("Redirect cache disabled, no Redis address configured")
		redirectCache = cache.NewNullCache()
	}

	engine := view.NewController(api, cfg.BFFBaseURL, cfg.DefaultPageSize, logger)
	h := handler.NewHandler(engine, api, redirectCache, cfg, logger)

	return &App{
		config:  cfg,
		router:  chi.NewRouter(),
		logger:  logger,
		handler: h,
		cache:   redirectCache,
	}, nil
}

// setupRoutes настраивает HTTP маршруты и middleware приложения.
func (a *App) setupRoutes() {
	a.router.Use(middleware.LoggerMiddleware(a.logger))
	a.router.Use(middleware.GzipMiddleware)
	a.router.Use(middleware.WithSession(a.config.SessionSecret))

	a.router.Get("/", a.handler.HandleMyShortURLs)
	a.router.Get("/my-short-urls", a.handler.HandleMyShortURLs)
	a.router.Get("/my-short-urls/table", a.handler.HandleTable)
	a.router.Post("/my-short-urls", a.handler.HandleCreate)
	a.router.Post("/my-short-urls/{id}/delete", a.handler.HandleStageDelete)
	a.router.Post("/my-short-urls/delete", a.handler.HandleConfirmDelete)
	a.router.Get("/config.js", a.handler.HandleConfigJS)
	a.router.Get("/u/{key}", a.handler.HandleRedirect)
}

// GetServer создает и возвращает настроенный HTTP сервер.
func (a *App) GetServer() *http.Server {
	a.setupRoutes()

	return &http.Server{
		Addr:         a.config.ServerAddress,
		Handler:      a.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
}

// Close освобождает ресурсы приложения.
func (a *App) Close() error {
	return a.cache.Close()
}
