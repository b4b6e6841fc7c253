package parsers

import (
	"fmt"
	"sort"
	"strings"

	"dodo-statistics/internal/apperror"
	"dodo-statistics/internal/models"

	"github.com/PuerkitoBio/goquery"
)

const (
	// Фраза, которой отчёт сообщает об отсутствии данных за период.
	noDataSentinel = "данные не найдены"

	// Отчёт по одной пиццерии имеет ровно 7 колонок; сводный отчёт по сети
	// добавляет колонку с именем пиццерии.
	singleUnitColumnsCount = 7

	unitNameColumnHeader = "Пиццерия"

	certificatesPage = "being_late_certificates"
)

// BeingLateCertificatesParser разбирает отчёт о сертификатах за опоздание.
// Отчёт приходит в двух формах: таблица по одной запрошенной пиццерии и
// сводная таблица по нескольким, сгруппированная по имени пиццерии.
type BeingLateCertificatesParser struct {
	doc           *goquery.Document
	requestUnitID models.UnitID
	unitsByID     map[models.UnitID]models.Unit
	unitsByName   map[string]models.Unit
}

// NewBeingLateCertificatesParser строит парсер. units нужен, чтобы
// сопоставить имена пиццерий из сводной таблицы их идентификаторам.
func NewBeingLateCertificatesParser(html string, requestUnitID models.UnitID, units []models.Unit) (*BeingLateCertificatesParser, error) {
	doc, err := newDocument(html)
	if err != nil {
		return nil, fmt.Errorf("failed to build document: %w", err)
	}
	return &BeingLateCertificatesParser{
		doc:           doc,
		requestUnitID: requestUnitID,
		unitsByID:     models.UnitsByID(units),
		unitsByName:   models.UnitsByName(units),
	}, nil
}

// Parse возвращает количество сертификатов по каждой пиццерии из отчёта.
// Сентинел «данные не найдены» означает пустой результат вне зависимости от
// содержимого таблиц.
func (p *BeingLateCertificatesParser) Parse() ([]models.UnitBeingLateCertificates, error) {
	if strings.Contains(strings.ToLower(strings.TrimSpace(p.doc.Text())), noDataSentinel) {
		return []models.UnitBeingLateCertificates{}, nil
	}

	tables := p.doc.Find("table")
	if tables.Length() < 2 {
		return nil, apperror.MarkupShape(certificatesPage, int(p.requestUnitID),
			fmt.Sprintf("expected report as second table, found %d tables", tables.Length()))
	}
	table := tables.Eq(1)

	headers := p.headerTexts(table)
	if len(headers) == singleUnitColumnsCount {
		return p.parseSingleUnit(table)
	}
	return p.parseGroupedByUnitName(table, headers)
}

// parseSingleUnit обрабатывает отчёт по одной пиццерии: количество
// сертификатов — это число строк, пиццерия берётся из контекста запроса.
func (p *BeingLateCertificatesParser) parseSingleUnit(table *goquery.Selection) ([]models.UnitBeingLateCertificates, error) {
	unit, ok := p.unitsByID[p.requestUnitID]
	if !ok {
		return nil, apperror.MarkupShape(certificatesPage, int(p.requestUnitID),
			fmt.Sprintf("request unit %d is not in the supplied unit collection", p.requestUnitID))
	}
	return []models.UnitBeingLateCertificates{{
		UnitID:                     unit.ID,
		UnitName:                   unit.Name,
		BeingLateCertificatesCount: tableBodyRows(table).Length(),
	}}, nil
}

// parseGroupedByUnitName обрабатывает сводный отчёт: строки группируются по
// колонке с именем пиццерии, идентификаторы берутся из справочника.
func (p *BeingLateCertificatesParser) parseGroupedByUnitName(table *goquery.Selection, headers []string) ([]models.UnitBeingLateCertificates, error) {
	unitNameColumn := -1
	for i, header := range headers {
		if header == unitNameColumnHeader {
			unitNameColumn = i
			break
		}
	}
	if unitNameColumn == -1 {
		return nil, apperror.MarkupShape(certificatesPage, int(p.requestUnitID),
			fmt.Sprintf("report table has no %q column", unitNameColumnHeader))
	}

	counts := make(map[string]int)
	var shapeErr error
	tableBodyRows(table).EachWithBreak(func(_ int, row *goquery.Selection) bool {
		cells := cellTexts(row)
		if unitNameColumn >= len(cells) {
			shapeErr = apperror.MarkupShape(certificatesPage, int(p.requestUnitID),
				fmt.Sprintf("report row has %d cells, unit name expected at %d", len(cells), unitNameColumn))
			return false
		}
		counts[cells[unitNameColumn]]++
		return true
	})
	if shapeErr != nil {
		return nil, shapeErr
	}

	unitNames := make([]string, 0, len(counts))
	for unitName := range counts {
		unitNames = append(unitNames, unitName)
	}
	sort.Strings(unitNames)

	result := make([]models.UnitBeingLateCertificates, 0, len(unitNames))
	for _, unitName := range unitNames {
		unit, ok := p.unitsByName[unitName]
		if !ok {
			return nil, apperror.MarkupShape(certificatesPage, int(p.requestUnitID),
				fmt.Sprintf("report mentions unknown unit %q", unitName))
		}
		result = append(result, models.UnitBeingLateCertificates{
			UnitID:                     unit.ID,
			UnitName:                   unitName,
			BeingLateCertificatesCount: counts[unitName],
		})
	}
	return result, nil
}

func (p *BeingLateCertificatesParser) headerTexts(table *goquery.Selection) []string {
	var headers []string
	table.Find("tr").First().Find("th, td").Each(func(_ int, cell *goquery.Selection) {
		headers = append(headers, strings.TrimSpace(cell.Text()))
	})
	return headers
}
