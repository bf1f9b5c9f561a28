package render

import (
	"bytes"
	"html/template"

	"shorturlweb/internal/models"
)

const navTemplate = `<li class="page-item{{if .PrevDisabled}} disabled{{end}}">
    <a class="page-link previous" href="#" aria-label="Previous">
        <span aria-hidden="true">&laquo;</span>
    </a>
</li>
{{range .Pages}}<li class="page-item{{if .Active}} active{{end}}"><a class="page-link" href="#">{{.Label}}</a></li>
{{end}}<li class="page-item{{if .NextDisabled}} disabled{{end}}">
    <a class="page-link next" href="#" aria-label="Next">
        <span aria-hidden="true">&raquo;</span>
    </a>
</li>
`

type navPage struct {
	Label  int
	Active bool
}

type navData struct {
	PrevDisabled bool
	NextDisabled bool
	Pages        []navPage
}

// PaginationRenderer строит элементы навигации по страницам: "назад",
// нумерованные ссылки и "вперед".
type PaginationRenderer struct {
	tmpl *template.Template
}

// NewPaginationRenderer создает рендерер навигации.
func NewPaginationRenderer() *PaginationRenderer {
	return &PaginationRenderer{
		tmpl: template.Must(template.New("nav").Parse(navTemplate)),
	}
}

// Render возвращает HTML навигации для страницы результатов. Номера страниц
// отображаются с единицы, активной помечается ссылка текущей страницы.
// При нуле страниц нумерованных ссылок нет и оба крайних элемента отключены.
func (r *PaginationRenderer) Render(page *models.Page[models.ShortURL]) (template.HTML, error) {
	data := navData{
		PrevDisabled: page.First,
		NextDisabled: page.Last,
	}
	if page.TotalPages == 0 {
		data.PrevDisabled = true
		data.NextDisabled = true
	}

	data.Pages = make([]navPage, 0, page.TotalPages)
	for i := 0; i < page.TotalPages; i++ {
		data.Pages = append(data.Pages, navPage{Label: i + 1, Active: i == page.Number})
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
