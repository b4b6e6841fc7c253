package parsers

import (
	"fmt"

	"dodo-statistics/internal/apperror"
	"dodo-statistics/internal/models"

	"github.com/PuerkitoBio/goquery"
)

const stopSalesTableSelector = "table#bootgrid-table"

// Позиции колонок в отчёте стоп-продаж по секторам.
const (
	sectorColumnUnitName  = 0
	sectorColumnSector    = 1
	sectorColumnStartedAt = 2
	sectorColumnStopped   = 3
	sectorColumnResumed   = 5

	minSectorColumns = 6

	sectorStopSalesPage = "sector_stop_sales"
)

// Позиции колонок в отчёте стоп-продаж по улицам.
const (
	streetColumnUnitName  = 0
	streetColumnSector    = 1
	streetColumnStreet    = 2
	streetColumnStartedAt = 3
	streetColumnStopped   = 4
	streetColumnResumed   = 6

	minStreetColumns = 7

	streetStopSalesPage = "street_stop_sales"
)

// SectorStopSalesParser разбирает отчёт стоп-продаж по секторам доставки.
// Значения ячеек не интерпретируются: записи несут сырой текст.
type SectorStopSalesParser struct {
	doc *goquery.Document
}

// NewSectorStopSalesParser строит парсер по сырой разметке отчёта.
func NewSectorStopSalesParser(html string) (*SectorStopSalesParser, error) {
	doc, err := newDocument(html)
	if err != nil {
		return nil, fmt.Errorf("failed to build document: %w", err)
	}
	return &SectorStopSalesParser{doc: doc}, nil
}

// Parse возвращает по записи на каждую строку тела таблицы отчёта.
func (p *SectorStopSalesParser) Parse() ([]models.StopSaleBySector, error) {
	table := p.doc.Find(stopSalesTableSelector)
	if table.Length() == 0 {
		return nil, apperror.MarkupShape(sectorStopSalesPage, 0, "report table not found")
	}

	var (
		stopSales []models.StopSaleBySector
		shapeErr  error
	)
	table.Find("tbody tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		cells := cellTexts(row)
		if len(cells) < minSectorColumns {
			shapeErr = apperror.MarkupShape(sectorStopSalesPage, 0,
				fmt.Sprintf("report row has %d cells, expected at least %d", len(cells), minSectorColumns))
			return false
		}
		stopSales = append(stopSales, models.StopSaleBySector{
			UnitName:            cells[sectorColumnUnitName],
			Sector:              cells[sectorColumnSector],
			StartedAt:           cells[sectorColumnStartedAt],
			StaffNameWhoStopped: cells[sectorColumnStopped],
			StaffNameWhoResumed: cells[sectorColumnResumed],
		})
		return true
	})
	if shapeErr != nil {
		return nil, shapeErr
	}
	return stopSales, nil
}

// StreetStopSalesParser разбирает отчёт стоп-продаж по улицам.
type StreetStopSalesParser struct {
	doc *goquery.Document
}

// NewStreetStopSalesParser строит парсер по сырой разметке отчёта.
func NewStreetStopSalesParser(html string) (*StreetStopSalesParser, error) {
	doc, err := newDocument(html)
	if err != nil {
		return nil, fmt.Errorf("failed to build document: %w", err)
	}
	return &StreetStopSalesParser{doc: doc}, nil
}

// Parse возвращает по записи на каждую строку таблицы отчёта без заголовка.
func (p *StreetStopSalesParser) Parse() ([]models.StopSaleByStreet, error) {
	table := p.doc.Find(stopSalesTableSelector)
	if table.Length() == 0 {
		return nil, apperror.MarkupShape(streetStopSalesPage, 0, "report table not found")
	}

	var (
		stopSales []models.StopSaleByStreet
		shapeErr  error
	)
	rows := table.Find("tr")
	rows.EachWithBreak(func(i int, row *goquery.Selection) bool {
		if i == 0 {
			return true
		}
		cells := cellTexts(row)
		if len(cells) < minStreetColumns {
			shapeErr = apperror.MarkupShape(streetStopSalesPage, 0,
				fmt.Sprintf("report row has %d cells, expected at least %d", len(cells), minStreetColumns))
			return false
		}
		stopSales = append(stopSales, models.StopSaleByStreet{
			UnitName:            cells[streetColumnUnitName],
			Sector:              cells[streetColumnSector],
			Street:              cells[streetColumnStreet],
			StartedAt:           cells[streetColumnStartedAt],
			StaffNameWhoStopped: cells[streetColumnStopped],
			StaffNameWhoResumed: cells[streetColumnResumed],
		})
		return true
	})
	if shapeErr != nil {
		return nil, shapeErr
	}
	return stopSales, nil
}
