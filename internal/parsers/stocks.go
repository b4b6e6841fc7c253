package parsers

import (
	"fmt"
	"strconv"
	"strings"

	"dodo-statistics/internal/models"

	"github.com/PuerkitoBio/goquery"
)

// Отчёт остатков имеет ровно 6 колонок; последняя — остаток в днях.
const stockColumnsCount = 6

// StockBalanceParser разбирает отчёт остатков ингредиентов одной пиццерии.
type StockBalanceParser struct {
	doc    *goquery.Document
	unitID models.UnitID
}

// NewStockBalanceParser строит парсер по сырой разметке отчёта.
func NewStockBalanceParser(html string, unitID models.UnitID) (*StockBalanceParser, error) {
	doc, err := newDocument(html)
	if err != nil {
		return nil, fmt.Errorf("failed to build document: %w", err)
	}
	return &StockBalanceParser{doc: doc, unitID: unitID}, nil
}

// Parse возвращает остатки по ингредиентам. Строки с числом ячеек, отличным
// от шести, и строки с нечисловым остатком молча пропускаются: в отчёте это
// промежуточные заголовки и агрегаты. Последний сегмент имени после запятой
// содержит единицу измерения и отбрасывается.
func (p *StockBalanceParser) Parse() ([]models.StockBalance, error) {
	result := []models.StockBalance{}
	p.doc.Find("tbody tr").Each(func(_ int, row *goquery.Selection) {
		cells := cellTexts(row)
		if len(cells) != stockColumnsCount {
			return
		}

		daysLeftText := cells[stockColumnsCount-1]
		if !isDigits(daysLeftText) {
			return
		}
		daysLeft, err := strconv.Atoi(daysLeftText)
		if err != nil {
			return
		}

		nameParts := strings.Split(cells[0], ",")
		ingredientName := strings.Join(nameParts[:len(nameParts)-1], ",")

		result = append(result, models.StockBalance{
			UnitID:         p.unitID,
			IngredientName: ingredientName,
			DaysLeft:       daysLeft,
		})
	})
	return result, nil
}
