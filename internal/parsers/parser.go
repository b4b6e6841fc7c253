// Package parsers извлекает типизированные записи из HTML-страниц Dodo IS.
//
// Каждый парсер жёстко закодирован под структуру конкретной страницы:
// имена тегов и CSS-классов, порядок колонок таблиц, идентификаторы
// элементов. Страницы не версионируются, поэтому дрейф разметки — это
// ошибка markup_shape, а не повод молча вернуть значения по умолчанию.
// Парсеры не ходят в сеть и не изменяют входную разметку.
package parsers

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const panelTitleSelector = "h1.operationalStatistics_panelTitle"

func newDocument(html string) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(html))
}

// parsePanelTitles возвращает нормализованные тексты панелей операционной
// статистики в порядке их следования в разметке.
func parsePanelTitles(doc *goquery.Document) []string {
	var titles []string
	doc.Find(panelTitleSelector).Each(func(_ int, sel *goquery.Selection) {
		titles = append(titles, ClearExtraSymbols(sel.Text()))
	})
	return titles
}

// splitValueAndDelta разбирает составную панель вида "123\n-45" на основное
// значение и дельту к прошлой неделе.
func splitValueAndDelta(panel string) (value, delta string, ok bool) {
	parts := strings.SplitN(panel, "\n", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// parseMinutesSeconds переводит строку "mm:ss" в секунды.
func parseMinutesSeconds(panel string) (int, bool) {
	parts := strings.Split(panel, ":")
	if len(parts) != 2 {
		return 0, false
	}
	minutes, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	seconds, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	return minutes*60 + seconds, true
}

// tableBodyRows возвращает строки таблицы без заголовка.
func tableBodyRows(table *goquery.Selection) *goquery.Selection {
	if body := table.Find("tbody tr"); body.Length() > 0 {
		return body
	}
	rows := table.Find("tr")
	if rows.Length() == 0 {
		return rows
	}
	return rows.Slice(1, rows.Length())
}

// cellTexts возвращает обрезанные тексты ячеек строки таблицы.
func cellTexts(row *goquery.Selection) []string {
	var texts []string
	row.Find("td").Each(func(_ int, cell *goquery.Selection) {
		texts = append(texts, strings.TrimSpace(cell.Text()))
	})
	return texts
}

// isDigits повторяет семантику проверки «ячейка — целое число без знака».
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
