package parsers

import (
	"fmt"
	"strconv"
	"strings"

	"dodo-statistics/internal/apperror"
	"dodo-statistics/internal/models"

	"github.com/PuerkitoBio/goquery"
)

// Позиции колонок в отчёте заказов ресторана.
const (
	restaurantColumnUnitName = 0
	restaurantColumnNumber   = 1
	restaurantColumnPrice    = 2
	restaurantColumnType     = 3

	minRestaurantColumns = 4

	restaurantOrdersPage = "restaurant_orders"
)

// RestaurantOrdersParser разбирает сводный отчёт заказов ресторана и
// группирует строки по пиццерии в порядке их первого появления.
type RestaurantOrdersParser struct {
	doc         *goquery.Document
	unitsByName map[string]models.Unit
}

// NewRestaurantOrdersParser строит парсер. units сопоставляет имена пиццерий
// из отчёта их идентификаторам.
func NewRestaurantOrdersParser(html string, units []models.Unit) (*RestaurantOrdersParser, error) {
	doc, err := newDocument(html)
	if err != nil {
		return nil, fmt.Errorf("failed to build document: %w", err)
	}
	return &RestaurantOrdersParser{doc: doc, unitsByName: models.UnitsByName(units)}, nil
}

// Parse возвращает заказы, сгруппированные по пиццерии.
func (p *RestaurantOrdersParser) Parse() ([]models.UnitRestaurantOrders, error) {
	var (
		groups   []*models.UnitRestaurantOrders
		byName   = make(map[string]*models.UnitRestaurantOrders)
		shapeErr error
	)

	rows := p.doc.Find("tr")
	rows.EachWithBreak(func(i int, row *goquery.Selection) bool {
		if i == 0 {
			return true
		}
		cells := row.Find("td")
		if cells.Length() < minRestaurantColumns {
			shapeErr = apperror.MarkupShape(restaurantOrdersPage, 0,
				fmt.Sprintf("report row has %d cells, expected at least %d", cells.Length(), minRestaurantColumns))
			return false
		}

		unitName := strings.TrimSpace(cells.Eq(restaurantColumnUnitName).Text())
		price, err := strconv.Atoi(ClearExtraSymbols(cells.Eq(restaurantColumnPrice).Text()))
		if err != nil {
			shapeErr = apperror.MarkupShape(restaurantOrdersPage, 0,
				fmt.Sprintf("order price is not a number: %q", cells.Eq(restaurantColumnPrice).Text()))
			return false
		}

		group, ok := byName[unitName]
		if !ok {
			unit, known := p.unitsByName[unitName]
			if !known {
				shapeErr = apperror.MarkupShape(restaurantOrdersPage, 0,
					fmt.Sprintf("report mentions unknown unit %q", unitName))
				return false
			}
			group = &models.UnitRestaurantOrders{UnitID: unit.ID, UnitName: unitName}
			byName[unitName] = group
			groups = append(groups, group)
		}
		group.Orders = append(group.Orders, models.RestaurantOrder{
			Number: strings.TrimSpace(cells.Eq(restaurantColumnNumber).Text()),
			Price:  price,
			Type:   strings.TrimSpace(cells.Eq(restaurantColumnType).Text()),
		})
		return true
	})
	if shapeErr != nil {
		return nil, shapeErr
	}

	result := make([]models.UnitRestaurantOrders, 0, len(groups))
	for _, group := range groups {
		result = append(result, *group)
	}
	return result, nil
}
