package parsers

import (
	"fmt"
	"strconv"

	"dodo-statistics/internal/apperror"
	"dodo-statistics/internal/models"

	"github.com/PuerkitoBio/goquery"
)

// Позиции панелей на странице операционной статистики кухни.
const (
	panelKitchenRevenue     = 0
	panelProductSpending    = 1
	panelAverageCookingTime = 3

	minKitchenPanels = 4

	kitchenPage = "kitchen_partial"
)

const productsCountSelector = "h1.operationalStatistics_productsCountValue"

// KitchenStatisticsParser разбирает страницу операционной статистики кухни
// одной пиццерии.
type KitchenStatisticsParser struct {
	doc    *goquery.Document
	unitID models.UnitID
	panels []string
}

// NewKitchenStatisticsParser строит парсер по сырой разметке страницы.
func NewKitchenStatisticsParser(html string, unitID models.UnitID) (*KitchenStatisticsParser, error) {
	doc, err := newDocument(html)
	if err != nil {
		return nil, fmt.Errorf("failed to build document: %w", err)
	}
	return &KitchenStatisticsParser{
		doc:    doc,
		unitID: unitID,
		panels: parsePanelTitles(doc),
	}, nil
}

// Parse извлекает срез статистики кухни.
func (p *KitchenStatisticsParser) Parse() (models.KitchenPartialStatistics, error) {
	if len(p.panels) < minKitchenPanels {
		return models.KitchenPartialStatistics{}, apperror.MarkupShape(
			kitchenPage, int(p.unitID),
			fmt.Sprintf("expected at least %d panel titles, got %d", minKitchenPanels, len(p.panels)),
		)
	}

	revenue, err := p.parseRevenue()
	if err != nil {
		return models.KitchenPartialStatistics{}, err
	}
	spending, err := p.parseProductSpending()
	if err != nil {
		return models.KitchenPartialStatistics{}, err
	}
	cookingTime, err := p.parseAverageCookingTime()
	if err != nil {
		return models.KitchenPartialStatistics{}, err
	}
	tracking, err := p.parseTracking()
	if err != nil {
		return models.KitchenPartialStatistics{}, err
	}

	return models.KitchenPartialStatistics{
		UnitID:             p.unitID,
		Revenue:            revenue,
		ProductSpending:    spending,
		AverageCookingTime: cookingTime,
		Tracking:           tracking,
	}, nil
}

func (p *KitchenStatisticsParser) parseRevenue() (models.KitchenRevenue, error) {
	perHour, delta, err := p.parseValueWithDelta(panelKitchenRevenue)
	if err != nil {
		return models.KitchenRevenue{}, err
	}
	return models.KitchenRevenue{PerHour: perHour, DeltaFromWeekBefore: delta}, nil
}

func (p *KitchenStatisticsParser) parseProductSpending() (models.ProductSpending, error) {
	perHour, delta, err := p.parseValueWithDelta(panelProductSpending)
	if err != nil {
		return models.ProductSpending{}, err
	}
	return models.ProductSpending{PerHour: perHour, DeltaFromWeekBefore: delta}, nil
}

func (p *KitchenStatisticsParser) parseValueWithDelta(panelIndex int) (int, int, error) {
	valueText, deltaText, ok := splitValueAndDelta(p.panels[panelIndex])
	if !ok {
		return 0, 0, apperror.MarkupShape(kitchenPage, int(p.unitID),
			fmt.Sprintf("panel %d is not a value with delta: %q", panelIndex, p.panels[panelIndex]))
	}
	value, err := strconv.Atoi(valueText)
	if err != nil {
		return 0, 0, apperror.MarkupShape(kitchenPage, int(p.unitID),
			fmt.Sprintf("panel %d value is not a number: %q", panelIndex, valueText))
	}
	delta, err := strconv.Atoi(deltaText)
	if err != nil {
		return 0, 0, apperror.MarkupShape(kitchenPage, int(p.unitID),
			fmt.Sprintf("panel %d delta is not a number: %q", panelIndex, deltaText))
	}
	return value, delta, nil
}

func (p *KitchenStatisticsParser) parseAverageCookingTime() (int, error) {
	seconds, ok := parseMinutesSeconds(p.panels[panelAverageCookingTime])
	if !ok {
		return 0, apperror.MarkupShape(kitchenPage, int(p.unitID),
			fmt.Sprintf("panel %d is not mm:ss: %q", panelAverageCookingTime, p.panels[panelAverageCookingTime]))
	}
	return seconds, nil
}

func (p *KitchenStatisticsParser) parseTracking() (models.KitchenTracking, error) {
	var (
		counts   []int
		parseErr error
	)
	p.doc.Find(productsCountSelector).Each(func(_ int, sel *goquery.Selection) {
		value, err := strconv.Atoi(ClearExtraSymbols(sel.Text()))
		if err != nil && parseErr == nil {
			parseErr = apperror.MarkupShape(kitchenPage, int(p.unitID),
				fmt.Sprintf("tracking count is not a number: %q", sel.Text()))
		}
		counts = append(counts, value)
	})
	if parseErr != nil {
		return models.KitchenTracking{}, parseErr
	}
	if len(counts) != 3 {
		return models.KitchenTracking{}, apperror.MarkupShape(kitchenPage, int(p.unitID),
			fmt.Sprintf("expected 3 tracking counts, got %d", len(counts)))
	}
	return models.KitchenTracking{
		Postponed: counts[0],
		InQueue:   counts[1],
		InWork:    counts[2],
	}, nil
}
