// Package view содержит движок синхронизации страницы "мои короткие ссылки":
// единую точку обновления, которая запрашивает страницу результатов у API и
// перерисовывает список, навигацию и сводку как одно атомарное обновление.
package view

import (
	"context"
	"errors"
	"html/template"
	"sync"

	"go.uber.org/zap"

	"shorturlweb/internal/client"
	"shorturlweb/internal/models"
	"shorturlweb/internal/render"
)

// ErrSuperseded возвращается, когда результат обновления устарел: за время
// запроса было начато более новое обновление, и его результат имеет приоритет.
var ErrSuperseded = errors.New("refresh superseded by a newer request")

// ErrNoPendingDelete возвращается при подтверждении удаления без
// подготовленной цели.
var ErrNoPendingDelete = errors.New("no pending delete target")

// PageState хранит текущие номер страницы (с нуля) и размер страницы.
// Это единственный источник истины для неявных обновлений: регионы страницы -
// лишь проекция этого состояния.
type PageState struct {
	Page int
	Size int
}

// Snapshot представляет согласованное отрисованное состояние трех регионов
// страницы вместе с состоянием пагинации, по которому они построены.
type Snapshot struct {
	List    template.HTML
	Nav     template.HTML
	Summary string
	State   PageState
}

// Controller связывает клиент API и рендереры регионов. Все мутации
// (создание, удаление, переход по страницам) сходятся в refresh: состояние
// заново выводится из ответа сервера, а не латается локально.
type Controller struct {
	api     client.ShortURLAPI
	list    *render.ListRenderer
	nav     *render.PaginationRenderer
	summary *render.SummaryRenderer
	logger  *zap.Logger

	mu            sync.Mutex
	state         PageState
	snapshot      Snapshot
	lastCount     int
	pendingDelete string
	seq           uint64
}

// NewController создает контроллер с начальным состоянием (страница 0,
// размер defaultSize).
func NewController(api client.ShortURLAPI, bffBaseURL string, defaultSize int, logger *zap.Logger) *Controller {
	return &Controller{
		api:     api,
		list:    render.NewListRenderer(bffBaseURL),
		nav:     render.NewPaginationRenderer(),
		summary: render.NewSummaryRenderer(),
		logger:  logger,
		state:   PageState{Page: 0, Size: defaultSize},
	}
}

// Snapshot возвращает последнее примененное отрисованное состояние.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot
}

// State возвращает текущее состояние пагинации.
func (c *Controller) State() PageState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Refresh обновляет страницу по текущему состоянию пагинации.
func (c *Controller) Refresh(ctx context.Context) (Snapshot, error) {
	c.mu.Lock()
	page, size := c.state.Page, c.state.Size
	c.mu.Unlock()
	return c.refresh(ctx, page, size)
}

// RefreshAt обновляет страницу по явно заданным номеру и размеру страницы.
func (c *Controller) RefreshAt(ctx context.Context, page, size int) (Snapshot, error) {
	return c.refresh(ctx, page, size)
}

// refresh выполняет один цикл синхронизации: List у API, затем отрисовка
// трех регионов и атомарное применение результата. Каждый вызов получает
// монотонно растущий номер; если к моменту завершения появился более новый
// вызов, результат отбрасывается с ErrSuperseded. Ошибка запроса или
// отрисовки оставляет прежнее отрисованное состояние нетронутым.
func (c *Controller) refresh(ctx context.Context, page, size int) (Snapshot, error) {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.mu.Unlock()

	result, err := c.api.List(ctx, page, size)
	if err != nil {
		return Snapshot{}, err
	}

	var (
		wg          sync.WaitGroup
		listHTML    template.HTML
		listErr     error
		navHTML     template.HTML
		navErr      error
		summaryText string
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		listHTML, listErr = c.list.Render(&result)
	}()
	go func() {
		defer wg.Done()
		navHTML, navErr = c.nav.Render(&result)
	}()
	go func() {
		defer wg.Done()
		summaryText = c.summary.Render(&result)
	}()
	wg.Wait()

	if listErr != nil && !errors.Is(listErr, render.ErrNoContent) {
		return Snapshot{}, listErr
	}
	if navErr != nil {
		return Snapshot{}, navErr
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if seq != c.seq {
		c.logger.Debug("Discarding stale refresh",
			zap.Uint64("seq", seq),
			zap.Uint64("newest", c.seq))
		return Snapshot{}, ErrSuperseded
	}

	if errors.Is(listErr, render.ErrNoContent) {
		// Регион списка не перерисовывается, прежние строки сохраняются.
		listHTML = c.snapshot.List
	}

	c.state = PageState{Page: result.Number, Size: result.Size}
	c.lastCount = result.NumberOfElements
	c.snapshot = Snapshot{
		List:    listHTML,
		Nav:     navHTML,
		Summary: summaryText,
		State:   c.state,
	}
	return c.snapshot, nil
}

// Create создает короткую ссылку и заново выводит состояние из ответа
// сервера: после мутации выполняется обычный Refresh без явных аргументов.
func (c *Controller) Create(ctx context.Context, req models.CreateShortURLRequest) (models.ShortURL, Snapshot, error) {
	created, err := c.api.Create(ctx, req)
	if err != nil {
		return models.ShortURL{}, Snapshot{}, err
	}

	snap, err := c.Refresh(ctx)
	return created, snap, err
}

// StageDelete готовит цель удаления. Одновременно существует не более одной
// цели: новая перезаписывает прежнюю.
func (c *Controller) StageDelete(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pendingDelete = id
}

// PendingDelete возвращает текущую подготовленную цель удаления.
func (c *Controller) PendingDelete() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pendingDelete
}

// ConfirmDelete удаляет подготовленную цель и обновляет страницу. Если
// удалялся последний элемент страницы, номер страницы уменьшается до
// обновления, чтобы не запрашивать опустевший хвост; на нулевой странице
// номер остается нулем.
func (c *Controller) ConfirmDelete(ctx context.Context) (Snapshot, error) {
	c.mu.Lock()
	id := c.pendingDelete
	c.pendingDelete = ""
	wasLast := c.lastCount == 1
	c.mu.Unlock()

	if id == "" {
		return Snapshot{}, ErrNoPendingDelete
	}

	if err := c.api.Delete(ctx, id); err != nil {
		return Snapshot{}, err
	}

	if wasLast {
		c.mu.Lock()
		if c.state.Page > 0 {
			c.state.Page--
		}
		c.mu.Unlock()
	}

	return c.Refresh(ctx)
}
