package parsers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"dodo-statistics/internal/apperror"
	"dodo-statistics/internal/models"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
)

// Позиции колонок в списке заказов менеджера смены.
const (
	orderColumnLink   = 0
	orderColumnNumber = 1
	orderColumnPrice  = 4
	orderColumnType   = 7

	minOrderColumns = 8

	ordersPage      = "orders_partial"
	orderDetailPage = "order_detail"
)

// События в истории заказа. Журнал пишется на смеси русского и английского.
const (
	eventReceiptClosedForReturn = "закрыт чек на возврат"
	eventOrderAccepted          = "has been accepted"
	eventOrderRejected          = "has been rejected"
)

var historyTimeLayouts = []string{
	"02.01.2006 15:04:05",
	"02.01.2006 15:04",
}

// OrdersParser разбирает список заказов менеджера смены.
type OrdersParser struct {
	doc *goquery.Document
}

// NewOrdersParser строит парсер по сырой разметке списка.
func NewOrdersParser(html string) (*OrdersParser, error) {
	doc, err := newDocument(html)
	if err != nil {
		return nil, fmt.Errorf("failed to build document: %w", err)
	}
	return &OrdersParser{doc: doc}, nil
}

// Parse возвращает по записи на каждую строку списка, пропуская заголовок.
// UUID заказа извлекается из последнего query-параметра ссылки в первой
// колонке.
func (p *OrdersParser) Parse() ([]models.OrderPartial, error) {
	var (
		orders   []models.OrderPartial
		parseErr error
	)
	rows := p.doc.Find("tr")
	rows.EachWithBreak(func(i int, row *goquery.Selection) bool {
		if i == 0 {
			return true
		}
		cells := row.Find("td")
		if cells.Length() < minOrderColumns {
			parseErr = apperror.MarkupShape(ordersPage, 0,
				fmt.Sprintf("order row has %d cells, expected at least %d", cells.Length(), minOrderColumns))
			return false
		}

		href, _ := cells.Eq(orderColumnLink).Find("a").Attr("href")
		rawUUID := href[strings.LastIndex(href, "=")+1:]
		orderUUID, err := uuid.Parse(rawUUID)
		if err != nil {
			parseErr = apperror.MarkupShape(ordersPage, 0,
				fmt.Sprintf("order link has no uuid: %q", href))
			return false
		}

		price, err := strconv.Atoi(ClearExtraSymbols(cells.Eq(orderColumnPrice).Text()))
		if err != nil {
			parseErr = apperror.MarkupShape(ordersPage, 0,
				fmt.Sprintf("order price is not a number: %q", cells.Eq(orderColumnPrice).Text()))
			return false
		}

		orders = append(orders, models.OrderPartial{
			UUID:   orderUUID,
			Number: strings.TrimSpace(cells.Eq(orderColumnNumber).Text()),
			Price:  price,
			Type:   strings.TrimSpace(cells.Eq(orderColumnType).Text()),
		})
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return orders, nil
}

// OrderDetailParser разбирает страницу одного заказа менеджера смены.
type OrderDetailParser struct {
	doc *goquery.Document
	ref models.OrderRef
}

// NewOrderDetailParser строит парсер страницы заказа. ref сохраняет контекст
// заказа из списка: он возвращается в записи и в ошибках.
func NewOrderDetailParser(html string, ref models.OrderRef) (*OrderDetailParser, error) {
	doc, err := newDocument(html)
	if err != nil {
		return nil, fmt.Errorf("failed to build document: %w", err)
	}
	return &OrderDetailParser{doc: doc, ref: ref}, nil
}

// Parse извлекает детали заказа двумя проходами по истории: первый находит
// факт закрытия чека на возврат, второй — времена приёма и отклонения.
// Время печати чека заполняется только если чек был закрыт на возврат.
func (p *OrderDetailParser) Parse() (models.OrderDetail, error) {
	number := p.doc.Find("span#orderNumber")
	if number.Length() == 0 {
		return models.OrderDetail{}, apperror.MarkupShape(orderDetailPage, 0, "order number element not found")
	}
	department := p.doc.Find("div.headerDepartment")
	if department.Length() == 0 {
		return models.OrderDetail{}, apperror.MarkupShape(orderDetailPage, 0, "department element not found")
	}
	history := p.doc.Find("div#history")
	if history.Length() == 0 {
		return models.OrderDetail{}, apperror.MarkupShape(orderDetailPage, 0, "history element not found")
	}

	rows := historyRows(history)

	isReceiptPrinted := false
	for _, row := range rows {
		if strings.Contains(row.message, eventReceiptClosedForReturn) {
			isReceiptPrinted = true
			break
		}
	}

	var createdAt, receiptPrintedAt *time.Time
	for _, row := range rows {
		switch {
		case strings.Contains(row.message, eventOrderAccepted):
			createdAt = parseHistoryTime(row.timestamp)
		case strings.Contains(row.message, eventOrderRejected) && isReceiptPrinted:
			receiptPrintedAt = parseHistoryTime(row.timestamp)
		}
	}

	return models.OrderDetail{
		UUID:             p.ref.UUID,
		Number:           strings.TrimSpace(number.Text()),
		UnitName:         strings.TrimSpace(department.Text()),
		CreatedAt:        createdAt,
		ReceiptPrintedAt: receiptPrintedAt,
		Price:            p.ref.Price,
		Type:             p.ref.Type,
	}, nil
}

type historyRow struct {
	timestamp string
	message   string
}

// historyRows собирает строки истории без заголовка: время и текст события.
func historyRows(history *goquery.Selection) []historyRow {
	var rows []historyRow
	history.Find("tr").Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			return
		}
		cells := row.Find("td")
		if cells.Length() < 2 {
			return
		}
		rows = append(rows, historyRow{
			timestamp: strings.TrimSpace(cells.Eq(0).Text()),
			message:   strings.ToLower(strings.TrimSpace(cells.Eq(1).Text())),
		})
	})
	return rows
}

func parseHistoryTime(raw string) *time.Time {
	for _, layout := range historyTimeLayouts {
		if parsed, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return &parsed
		}
	}
	return nil
}
