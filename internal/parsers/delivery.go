package parsers

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"dodo-statistics/internal/apperror"
	"dodo-statistics/internal/models"

	"github.com/PuerkitoBio/goquery"
)

// Позиции панелей на странице операционной статистики доставки.
const (
	panelDeliveryPerformance = 0
	panelHeatedShelfOrders   = 2
	panelCouriers            = 3
	panelHeatedShelfAwaiting = 5

	minDeliveryPanels = 6

	deliveryPage = "delivery_partial"
)

const weekAgoSelector = ".operationalStatistics_weekAgo"

// Значение «неделю назад» встроено в текст блока в формате «x,y».
var weekAgoPattern = regexp.MustCompile(`[0-9],[0-9]`)

// DeliveryStatisticsParser разбирает страницу операционной статистики
// доставки одной пиццерии.
type DeliveryStatisticsParser struct {
	doc    *goquery.Document
	unitID models.UnitID
	panels []string
}

// NewDeliveryStatisticsParser строит парсер по сырой разметке страницы.
func NewDeliveryStatisticsParser(html string, unitID models.UnitID) (*DeliveryStatisticsParser, error) {
	doc, err := newDocument(html)
	if err != nil {
		return nil, fmt.Errorf("failed to build document: %w", err)
	}
	return &DeliveryStatisticsParser{
		doc:    doc,
		unitID: unitID,
		panels: parsePanelTitles(doc),
	}, nil
}

// Parse извлекает срез статистики доставки.
func (p *DeliveryStatisticsParser) Parse() (models.DeliveryPartialStatistics, error) {
	if len(p.panels) < minDeliveryPanels {
		return models.DeliveryPartialStatistics{}, apperror.MarkupShape(
			deliveryPage, int(p.unitID),
			fmt.Sprintf("expected at least %d panel titles, got %d", minDeliveryPanels, len(p.panels)),
		)
	}

	performance, err := p.parsePerformance()
	if err != nil {
		return models.DeliveryPartialStatistics{}, err
	}
	heatedShelf, err := p.parseHeatedShelf()
	if err != nil {
		return models.DeliveryPartialStatistics{}, err
	}
	couriers, err := p.parseCouriers()
	if err != nil {
		return models.DeliveryPartialStatistics{}, err
	}

	return models.DeliveryPartialStatistics{
		UnitID:      p.unitID,
		Performance: performance,
		HeatedShelf: heatedShelf,
		Couriers:    couriers,
	}, nil
}

func (p *DeliveryStatisticsParser) parsePerformance() (models.DeliveryPerformance, error) {
	perHourText, deltaText, ok := splitValueAndDelta(p.panels[panelDeliveryPerformance])
	if !ok {
		return models.DeliveryPerformance{}, apperror.MarkupShape(deliveryPage, int(p.unitID),
			fmt.Sprintf("panel %d is not a value with delta: %q", panelDeliveryPerformance, p.panels[panelDeliveryPerformance]))
	}
	perHour, err := strconv.ParseFloat(perHourText, 64)
	if err != nil {
		return models.DeliveryPerformance{}, apperror.MarkupShape(deliveryPage, int(p.unitID),
			fmt.Sprintf("deliveries per hour is not a number: %q", perHourText))
	}
	delta, err := strconv.Atoi(deltaText)
	if err != nil {
		return models.DeliveryPerformance{}, apperror.MarkupShape(deliveryPage, int(p.unitID),
			fmt.Sprintf("deliveries delta is not a number: %q", deltaText))
	}

	weekAgoText := strings.TrimSpace(p.doc.Find(weekAgoSelector).First().Text())
	match := weekAgoPattern.FindString(weekAgoText)
	if match == "" {
		return models.DeliveryPerformance{}, apperror.MarkupShape(deliveryPage, int(p.unitID),
			fmt.Sprintf("week ago block has no x,y value: %q", weekAgoText))
	}
	weekAgo, err := strconv.ParseFloat(strings.ReplaceAll(match, ",", "."), 64)
	if err != nil {
		return models.DeliveryPerformance{}, apperror.MarkupShape(deliveryPage, int(p.unitID),
			fmt.Sprintf("week ago value is not a number: %q", match))
	}

	return models.DeliveryPerformance{
		OrdersForCourierCountPerHourToday:      perHour,
		DeltaFromWeekBefore:                    delta,
		OrdersForCourierCountPerHourWeekBefore: weekAgo,
	}, nil
}

func (p *DeliveryStatisticsParser) parseHeatedShelf() (models.HeatedShelf, error) {
	ordersCount, err := strconv.Atoi(p.panels[panelHeatedShelfOrders])
	if err != nil {
		return models.HeatedShelf{}, apperror.MarkupShape(deliveryPage, int(p.unitID),
			fmt.Sprintf("heated shelf orders count is not a number: %q", p.panels[panelHeatedShelfOrders]))
	}
	awaitingTime, ok := parseMinutesSeconds(p.panels[panelHeatedShelfAwaiting])
	if !ok {
		return models.HeatedShelf{}, apperror.MarkupShape(deliveryPage, int(p.unitID),
			fmt.Sprintf("panel %d is not mm:ss: %q", panelHeatedShelfAwaiting, p.panels[panelHeatedShelfAwaiting]))
	}
	return models.HeatedShelf{OrdersCount: ordersCount, OrdersAwaitingTime: awaitingTime}, nil
}

func (p *DeliveryStatisticsParser) parseCouriers() (models.Couriers, error) {
	parts := strings.Split(p.panels[panelCouriers], "/")
	if len(parts) != 2 {
		return models.Couriers{}, apperror.MarkupShape(deliveryPage, int(p.unitID),
			fmt.Sprintf("couriers panel is not total/in_queue: %q", p.panels[panelCouriers]))
	}
	total, err := strconv.Atoi(parts[0])
	if err != nil {
		return models.Couriers{}, apperror.MarkupShape(deliveryPage, int(p.unitID),
			fmt.Sprintf("couriers total is not a number: %q", parts[0]))
	}
	inQueue, err := strconv.Atoi(parts[1])
	if err != nil {
		return models.Couriers{}, apperror.MarkupShape(deliveryPage, int(p.unitID),
			fmt.Sprintf("couriers in queue is not a number: %q", parts[1]))
	}
	return models.Couriers{InQueueCount: inQueue, TotalCount: total}, nil
}
