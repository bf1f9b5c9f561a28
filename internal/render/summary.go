package render

import (
	"fmt"

	"shorturlweb/internal/models"
)

// SummaryRenderer строит текст сводки диапазона вида "X - Y of Z".
type SummaryRenderer struct{}

// NewSummaryRenderer создает рендерер сводки.
func NewSummaryRenderer() *SummaryRenderer {
	return &SummaryRenderer{}
}

// Render возвращает текст сводки: границы диапазона считаются с единицы.
// На пустой странице диапазон получается обратным (Y < X); текст намеренно
// не подавляется, пустоту таблицы показывает строка-заглушка списка.
func (r *SummaryRenderer) Render(page *models.Page[models.ShortURL]) string {
	start := page.Number*page.Size + 1
	end := start + page.NumberOfElements - 1
	return fmt.Sprintf("%d - %d of %d", start, end, page.TotalElements)
}
