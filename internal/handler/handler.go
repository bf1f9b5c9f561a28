// Package handler содержит HTTP-обработчики страницы "мои короткие ссылки"
// и вспомогательных эндпоинтов: фрагментов таблицы, формы создания,
// подтверждения удаления, скрипта конфигурации и редиректа /u/{key}.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"shorturlweb/internal/cache"
	"shorturlweb/internal/client"
	"shorturlweb/internal/config"
	"shorturlweb/internal/models"
	"shorturlweb/internal/view"
)

// pageSizes - варианты размера страницы в селекторе.
var pageSizes = []int{10, 20, 50, 100}

// ViewEngine определяет интерфейс движка синхронизации страницы.
type ViewEngine interface {
	Refresh(ctx context.Context) (view.Snapshot, error)
	RefreshAt(ctx context.Context, page, size int) (view.Snapshot, error)
	Create(ctx context.Context, req models.CreateShortURLRequest) (models.ShortURL, view.Snapshot, error)
	StageDelete(id string)
	ConfirmDelete(ctx context.Context) (view.Snapshot, error)
}

// Handler обрабатывает HTTP-запросы веб-приложения.
type Handler struct {
	engine   ViewEngine
	api      client.ShortURLAPI
	cache    cache.ShortURLCache
	cfg      *config.Config
	logger   *zap.Logger
	keyRegex *regexp.Regexp
}

// NewHandler создает новый Handler.
func NewHandler(engine ViewEngine, api client.ShortURLAPI, c cache.ShortURLCache, cfg *config.Config, logger *zap.Logger) *Handler {
	return &Handler{
		engine:   engine,
		api:      api,
		cache:    c,
		cfg:      cfg,
		logger:   logger,
		keyRegex: keyPattern(cfg.KeyLength),
	}
}

type pageData struct {
	Snapshot   view.Snapshot
	PageSizes  []int
	APIDocsURL string
	LogoutURL  string
}

type fragmentData struct {
	Snapshot view.Snapshot
	Notice   string
}

// HandleMyShortURLs отдает полную страницу, предварительно обновив состояние
// с сервера.
func (h *Handler) HandleMyShortURLs(w http.ResponseWriter, r *http.Request) {
	snap, err := h.engine.Refresh(r.Context())
	if err != nil {
		h.writeRefreshError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := pageData{
		Snapshot:   snap,
		PageSizes:  pageSizes,
		APIDocsURL: h.cfg.APIBaseURL + "/api/v1/docs/swagger-ui/index.html",
		LogoutURL:  h.cfg.BFFBaseURL + "/logout",
	}
	if err := pageTmpl.Execute(w, data); err != nil {
		h.logger.Error("Error writing page", zap.Error(err))
	}
}

// HandleTable отдает фрагмент с тремя регионами. Параметры page и size
// необязательны: без них обновление идет по текущему состоянию движка.
func (h *Handler) HandleTable(w http.ResponseWriter, r *http.Request) {
	var (
		snap view.Snapshot
		err  error
	)

	pageParam := r.URL.Query().Get("page")
	sizeParam := r.URL.Query().Get("size")
	if pageParam == "" && sizeParam == "" {
		snap, err = h.engine.Refresh(r.Context())
	} else {
		page, perr := parseIntParam(pageParam, 0)
		size, serr := parseIntParam(sizeParam, h.cfg.DefaultPageSize)
		if perr != nil || serr != nil || page < 0 || size <= 0 {
			http.Error(w, "invalid page parameters", http.StatusBadRequest)
			return
		}
		// Смена размера страницы возвращает на первую страницу.
		if pageParam == "" && sizeParam != "" {
			page = 0
		}
		snap, err = h.engine.RefreshAt(r.Context(), page, size)
	}
	if err != nil {
		h.writeRefreshError(w, err)
		return
	}

	h.writeFragment(w, fragmentData{Snapshot: snap})
}

// HandleCreate обрабатывает форму создания короткой ссылки.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	rawURL := r.PostFormValue("url")
	if err := validateURL(rawURL); err != nil {
		http.Error(w, ErrInvalidURL.Error(), http.StatusBadRequest)
		return
	}

	req := models.CreateShortURLRequest{URL: rawURL}
	if desc := r.PostFormValue("description"); desc != "" {
		req.Description = &desc
	}

	created, snap, err := h.engine.Create(r.Context(), req)
	if err != nil {
		h.writeRefreshError(w, err)
		return
	}

	h.writeFragment(w, fragmentData{
		Snapshot: snap,
		Notice:   "Created Short URL " + created.ID,
	})
}

// HandleStageDelete готовит цель удаления; сам запрос к API не выполняется.
func (h *Handler) HandleStageDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "empty id", http.StatusBadRequest)
		return
	}
	h.engine.StageDelete(id)
	w.WriteHeader(http.StatusNoContent)
}

// HandleConfirmDelete удаляет подготовленную цель и отдает обновленный
// фрагмент.
func (h *Handler) HandleConfirmDelete(w http.ResponseWriter, r *http.Request) {
	snap, err := h.engine.ConfirmDelete(r.Context())
	if err != nil {
		if errors.Is(err, view.ErrNoPendingDelete) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.writeRefreshError(w, err)
		return
	}

	h.writeFragment(w, fragmentData{
		Snapshot: snap,
		Notice:   "Short URL has been deleted",
	})
}

// HandleConfigJS отдает скрипт с конфигурацией фронтенда.
func (h *Handler) HandleConfigJS(w http.ResponseWriter, r *http.Request) {
	cfg := map[string]any{
		"apiBaseURL": h.cfg.APIBaseURL,
		"bffBaseURL": h.cfg.BFFBaseURL,
		"debug":      h.cfg.Debug,
	}
	params, err := json.Marshal(cfg)
	if err != nil {
		h.logger.Error("Error generating config for frontend", zap.Error(err))
		params = []byte("{}")
	}

	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	if _, err := w.Write(append([]byte("const CONFIG="), params...)); err != nil {
		h.logger.Error("Error writing config script", zap.Error(err))
	}
}

// HandleRedirect обрабатывает GET /u/{key}: проверяет ключ, находит цель
// (через кэш, затем через API) и отвечает постоянным редиректом.
func (h *Handler) HandleRedirect(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if len(key) > maxKeyLength || !h.keyRegex.MatchString(key) {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	su, err := h.cache.Get(r.Context(), key)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			h.logger.Error("Error reading redirect cache", zap.Error(err))
		}
		su, err = h.api.Lookup(r.Context(), key)
		if err != nil {
			var apiErr *client.APIError
			if errors.As(err, &apiErr) &&
				(apiErr.Status == http.StatusNotFound || apiErr.Status == http.StatusBadRequest) {
				http.Error(w, "Not found", http.StatusNotFound)
				return
			}
			h.logger.Error("Error looking up short URL", zap.String("key", key), zap.Error(err))
			http.Error(w, "Bad gateway", http.StatusBadGateway)
			return
		}
		if err := h.cache.Set(r.Context(), key, su); err != nil {
			h.logger.Error("Error writing redirect cache", zap.Error(err))
		}
	}

	http.Redirect(w, r, su.URL, http.StatusMovedPermanently)
}

// writeFragment пишет ответ фрагментного эндпоинта.
func (h *Handler) writeFragment(w http.ResponseWriter, data fragmentData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := fragmentTmpl.Execute(w, data); err != nil {
		h.logger.Error("Error writing fragment", zap.Error(err))
	}
}

// writeRefreshError транслирует ошибки обновления в HTTP-статусы. Устаревшее
// обновление не ошибка для клиента: более новый ответ уже обновил регионы.
func (h *Handler) writeRefreshError(w http.ResponseWriter, err error) {
	if errors.Is(err, view.ErrSuperseded) {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	var authErr *client.AuthError
	var apiErr *client.APIError
	switch {
	case errors.As(err, &authErr):
		h.logger.Error("Auth request failed", zap.Int("status", authErr.Status))
		http.Error(w, "Authorization failed", http.StatusBadGateway)
	case errors.As(err, &apiErr):
		h.logger.Error("API request failed", zap.Int("status", apiErr.Status))
		http.Error(w, "API request failed", http.StatusBadGateway)
	default:
		h.logger.Error("Refresh failed", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// parseIntParam разбирает необязательный числовой параметр запроса.
func parseIntParam(value string, fallback int) (int, error) {
	if value == "" {
		return fallback, nil
	}
	return strconv.Atoi(value)
}
