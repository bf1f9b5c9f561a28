// Package render строит HTML-фрагменты регионов страницы "мои короткие ссылки":
// строки таблицы, навигацию по страницам и сводку диапазона. Каждый результат
// целиком заменяет содержимое своего региона, частичных обновлений нет.
package render

import (
	"bytes"
	"errors"
	"html/template"

	"shorturlweb/internal/models"
)

// ErrNoContent возвращается, когда страница отсутствует или не содержит
// поля content; регион в этом случае не перерисовывается.
var ErrNoContent = errors.New("page has no content")

const listRowsTemplate = `{{range .}}<tr>
    <td>{{.ID}}</td>
    <td>
        <a href="#" data-url="{{.RedirectURL}}" data-bs-toggle="popover" data-bs-trigger="manual"
          data-bs-content="Copied!" data-bs-placement="left" data-bs-custom-class="my-short-urls">
          <i class="bi bi-copy me-1"></i></a>
        <a href="{{.RedirectURL}}" target="_blank">{{.RedirectURL}}</a>
    </td>
    <td>
        <span class="text-truncate fit" data-bs-toggle="tooltip" data-bs-title="{{.TargetURL}}"
            data-bs-custom-class="my-short-urls">{{.TargetURL}}</span>
    </td>
    <td>{{if .Description}}
        <span class="text-truncate fit" data-bs-toggle="tooltip" data-bs-title="{{.Description}}"
            data-bs-custom-class="my-short-urls">{{.Description}}</span>
    {{end}}</td>
    <td>{{.CreatedAt}}</td>
    <td>{{.ExpiresAt}}</td>
    <td>
        <a href="#" data-id="{{.ID}}" data-bs-toggle="modal" data-bs-target="#short-url-delete-modal">
            <i class="bi bi-trash text-danger"></i>
        </a>
    </td>
</tr>
{{end}}`

const noDataRowTemplate = `<tr id="no-short-urls">
    <td colspan="7">
        <div class="container bg-white">
            <div class="position-relative p-5 text-center text-muted">
                <h1 class="text-body-emphasis">No Short URLs</h1>
                <div class="my-3"><i class="bi bi-table h1"></i></div>
                <p class="col-lg-6 mx-auto mb-4">
                    Add a Short URL to begin!
                </p>
            </div>
        </div>
    </td>
</tr>
`

// timestampLayout приближает вывод Date.toLocaleString() браузера.
const timestampLayout = "1/2/2006, 3:04:05 PM"

type listRow struct {
	ID          string
	RedirectURL string
	TargetURL   string
	Description string
	CreatedAt   string
	ExpiresAt   string
}

// ListRenderer строит строки таблицы коротких ссылок.
type ListRenderer struct {
	rows       *template.Template
	noData     *template.Template
	bffBaseURL string
}

// NewListRenderer создает рендерер списка. Адрес bffBaseURL используется для
// построения редирект-ссылок вида {bffBaseURL}/u/{key}.
func NewListRenderer(bffBaseURL string) *ListRenderer {
	return &ListRenderer{
		rows:       template.Must(template.New("list-rows").Parse(listRowsTemplate)),
		noData:     template.Must(template.New("no-data-row").Parse(noDataRowTemplate)),
		bffBaseURL: bffBaseURL,
	}
}

// Render возвращает HTML строк таблицы для страницы результатов.
// Пустая страница дает одну строку-заглушку на всю ширину таблицы.
// Отсутствующая или некорректная страница дает ErrNoContent.
func (r *ListRenderer) Render(page *models.Page[models.ShortURL]) (template.HTML, error) {
	if page == nil || page.Content == nil {
		return "", ErrNoContent
	}
	if len(page.Content) == 0 {
		return r.renderNoData()
	}

	rows := make([]listRow, 0, len(page.Content))
	for _, su := range page.Content {
		rows = append(rows, listRow{
			ID:          su.ID,
			RedirectURL: r.bffBaseURL + "/u/" + su.Key,
			TargetURL:   su.URL,
			Description: su.Description,
			CreatedAt:   su.CreatedAt.Local().Format(timestampLayout),
			ExpiresAt:   su.ExpiresAt.Local().Format(timestampLayout),
		})
	}

	var buf bytes.Buffer
	if err := r.rows.Execute(&buf, rows); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

func (r *ListRenderer) renderNoData() (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.noData.Execute(&buf, nil); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
