package dodoapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"dodo-statistics/internal/apperror"
	"dodo-statistics/internal/config"
	"dodo-statistics/internal/logger"
	"dodo-statistics/internal/models"
	"dodo-statistics/internal/parsers"

	"github.com/go-resty/resty/v2"
)

// OfficeManagerClient ходит на HTML-страницы офис-менеджера Dodo IS.
// Авторизация — сессионные cookie, которые передаёт вызывающая сторона.
type OfficeManagerClient struct {
	http *resty.Client
	log  *logger.Logger
}

// NewOfficeManagerClient создает клиент офис-менеджера
func NewOfficeManagerClient(cfg *config.DodoAPIConfig, log *logger.Logger) *OfficeManagerClient {
	return &OfficeManagerClient{
		http: newHTTPClient(cfg.OfficeManagerBaseURL, cfg),
		log:  log,
	}
}

// GetKitchenStatistics загружает и разбирает срез статистики кухни пиццерии.
func (c *OfficeManagerClient) GetKitchenStatistics(ctx context.Context, cookies []*http.Cookie, unitID models.UnitID) (models.KitchenPartialStatistics, error) {
	html, err := c.getPage(ctx, cookies, "/OfficeManager/OperationalStatisticsForTodayAndWeek/KitchenPartial",
		map[string]string{"unitId": strconv.Itoa(int(unitID))}, unitID)
	if err != nil {
		return models.KitchenPartialStatistics{}, err
	}

	parser, err := parsers.NewKitchenStatisticsParser(html, unitID)
	if err != nil {
		return models.KitchenPartialStatistics{}, fmt.Errorf("failed to parse kitchen page: %w", err)
	}
	return parser.Parse()
}

// GetDeliveryStatistics загружает и разбирает срез статистики доставки пиццерии.
func (c *OfficeManagerClient) GetDeliveryStatistics(ctx context.Context, cookies []*http.Cookie, unitID models.UnitID) (models.DeliveryPartialStatistics, error) {
	html, err := c.getPage(ctx, cookies, "/OfficeManager/OperationalStatisticsForTodayAndWeek/DeliveryPartial",
		map[string]string{"unitId": strconv.Itoa(int(unitID))}, unitID)
	if err != nil {
		return models.DeliveryPartialStatistics{}, err
	}

	parser, err := parsers.NewDeliveryStatisticsParser(html, unitID)
	if err != nil {
		return models.DeliveryPartialStatistics{}, fmt.Errorf("failed to parse delivery page: %w", err)
	}
	return parser.Parse()
}

// GetBeingLateCertificates загружает отчёт о сертификатах за опоздание по
// перечисленным пиццериям за период.
func (c *OfficeManagerClient) GetBeingLateCertificates(ctx context.Context, cookies []*http.Cookie, units []models.Unit, period models.Period) ([]models.UnitBeingLateCertificates, error) {
	if len(units) == 0 {
		return nil, apperror.Validation("at least one unit is required")
	}

	html, err := c.postReport(ctx, cookies, "/Reports/BeingLateCertificates/Get", units, period, units[0].ID)
	if err != nil {
		return nil, err
	}

	parser, err := parsers.NewBeingLateCertificatesParser(html, units[0].ID, units)
	if err != nil {
		return nil, fmt.Errorf("failed to parse certificates report: %w", err)
	}
	return parser.Parse()
}

// GetRestaurantOrders загружает отчёт заказов ресторана по перечисленным
// пиццериям за период.
func (c *OfficeManagerClient) GetRestaurantOrders(ctx context.Context, cookies []*http.Cookie, units []models.Unit, period models.Period) ([]models.UnitRestaurantOrders, error) {
	if len(units) == 0 {
		return nil, apperror.Validation("at least one unit is required")
	}

	html, err := c.postReport(ctx, cookies, "/Reports/Orders/Get", units, period, units[0].ID)
	if err != nil {
		return nil, err
	}

	parser, err := parsers.NewRestaurantOrdersParser(html, units)
	if err != nil {
		return nil, fmt.Errorf("failed to parse restaurant orders report: %w", err)
	}
	return parser.Parse()
}

// GetStocksBalance загружает остатки ингредиентов одной пиццерии.
func (c *OfficeManagerClient) GetStocksBalance(ctx context.Context, cookies []*http.Cookie, unitID models.UnitID) ([]models.StockBalance, error) {
	html, err := c.getPage(ctx, cookies, "/OfficeManager/StockBalance",
		map[string]string{"unitId": strconv.Itoa(int(unitID))}, unitID)
	if err != nil {
		return nil, err
	}

	parser, err := parsers.NewStockBalanceParser(html, unitID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stocks page: %w", err)
	}
	return parser.Parse()
}

// GetSectorStopSales загружает отчёт стоп-продаж по секторам доставки.
func (c *OfficeManagerClient) GetSectorStopSales(ctx context.Context, cookies []*http.Cookie, units []models.Unit, period models.Period) ([]models.StopSaleBySector, error) {
	if len(units) == 0 {
		return nil, apperror.Validation("at least one unit is required")
	}

	html, err := c.postReport(ctx, cookies, "/Reports/StopSaleStatistic/GetDeliverySectorStopSaleReport", units, period, units[0].ID)
	if err != nil {
		return nil, err
	}

	parser, err := parsers.NewSectorStopSalesParser(html)
	if err != nil {
		return nil, fmt.Errorf("failed to parse sector stop sales report: %w", err)
	}
	return parser.Parse()
}

// GetStreetStopSales загружает отчёт стоп-продаж по улицам.
func (c *OfficeManagerClient) GetStreetStopSales(ctx context.Context, cookies []*http.Cookie, units []models.Unit, period models.Period) ([]models.StopSaleByStreet, error) {
	if len(units) == 0 {
		return nil, apperror.Validation("at least one unit is required")
	}

	html, err := c.postReport(ctx, cookies, "/Reports/StopSaleStatistic/GetDeliveryStreetStopSaleReport", units, period, units[0].ID)
	if err != nil {
		return nil, err
	}

	parser, err := parsers.NewStreetStopSalesParser(html)
	if err != nil {
		return nil, fmt.Errorf("failed to parse street stop sales report: %w", err)
	}
	return parser.Parse()
}

func (c *OfficeManagerClient) getPage(ctx context.Context, cookies []*http.Cookie, path string, query map[string]string, unitID models.UnitID) (string, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetCookies(cookies).
		SetQueryParams(query).
		Get(path)
	if err != nil {
		return "", apperror.OfficeManagerAPI(int(unitID), 0, err)
	}
	if resp.IsError() {
		return "", apperror.OfficeManagerAPI(int(unitID), resp.StatusCode(),
			fmt.Errorf("office manager responded with status %d", resp.StatusCode()))
	}
	return resp.String(), nil
}

func (c *OfficeManagerClient) postReport(ctx context.Context, cookies []*http.Cookie, path string, units []models.Unit, period models.Period, unitID models.UnitID) (string, error) {
	from, to := formatPeriod(period)
	form := url.Values{
		"beginDate": {from},
		"endDate":   {to},
	}
	for _, unit := range units {
		form.Add("unitsIds", strconv.Itoa(int(unit.ID)))
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetCookies(cookies).
		SetFormDataFromValues(form).
		Post(path)
	if err != nil {
		return "", apperror.OfficeManagerAPI(int(unitID), 0, err)
	}
	if resp.IsError() {
		return "", apperror.OfficeManagerAPI(int(unitID), resp.StatusCode(),
			fmt.Errorf("office manager responded with status %d", resp.StatusCode()))
	}
	return resp.String(), nil
}
