package dodoapi

import (
	"context"
	"fmt"

	"dodo-statistics/internal/apperror"
	"dodo-statistics/internal/config"
	"dodo-statistics/internal/logger"
	"dodo-statistics/internal/models"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// PrivateAPIClient ходит в приватный API Dodo. Авторизация — bearer-токен,
// который передаёт вызывающая сторона.
type PrivateAPIClient struct {
	http *resty.Client
	log  *logger.Logger
}

// NewPrivateAPIClient создает клиент приватного API
func NewPrivateAPIClient(cfg *config.DodoAPIConfig, log *logger.Logger) *PrivateAPIClient {
	return &PrivateAPIClient{
		http: newHTTPClient(cfg.PrivateAPIBaseURL, cfg),
		log:  log,
	}
}

// GetDeliveryStatistics возвращает статистику доставки по пиццериям за период.
func (c *PrivateAPIClient) GetDeliveryStatistics(ctx context.Context, token string, unitUUIDs []uuid.UUID, period models.Period) ([]models.UnitDeliveryStatistics, error) {
	var result struct {
		UnitsStatistics []models.UnitDeliveryStatistics `json:"unitsStatistics"`
	}
	if err := c.get(ctx, token, "/delivery/statistics", unitUUIDs, period, &result); err != nil {
		return nil, err
	}
	return result.UnitsStatistics, nil
}

// GetOrdersHandoverTime возвращает времена выдачи заказов по пиццериям за период.
func (c *PrivateAPIClient) GetOrdersHandoverTime(ctx context.Context, token string, unitUUIDs []uuid.UUID, period models.Period) ([]models.OrderHandoverTime, error) {
	var result struct {
		OrdersHandoverTime []models.OrderHandoverTime `json:"ordersHandoverTime"`
	}
	if err := c.get(ctx, token, "/production/orders-handover-time", unitUUIDs, period, &result); err != nil {
		return nil, err
	}
	return result.OrdersHandoverTime, nil
}

// GetIngredientStopSales возвращает стоп-продажи ингредиентов за период.
func (c *PrivateAPIClient) GetIngredientStopSales(ctx context.Context, token string, unitUUIDs []uuid.UUID, period models.Period) ([]models.StopSaleByIngredient, error) {
	var result struct {
		StopSalesByIngredients []models.StopSaleByIngredient `json:"stopSalesByIngredients"`
	}
	if err := c.get(ctx, token, "/production/stop-sales-ingredients", unitUUIDs, period, &result); err != nil {
		return nil, err
	}
	for i := range result.StopSalesByIngredients {
		normalizeStopSale(&result.StopSalesByIngredients[i].StopSale)
	}
	return result.StopSalesByIngredients, nil
}

// GetProductStopSales возвращает стоп-продажи продуктов за период.
func (c *PrivateAPIClient) GetProductStopSales(ctx context.Context, token string, unitUUIDs []uuid.UUID, period models.Period) ([]models.StopSaleByProduct, error) {
	var result struct {
		StopSalesByProducts []models.StopSaleByProduct `json:"stopSalesByProducts"`
	}
	if err := c.get(ctx, token, "/production/stop-sales-products", unitUUIDs, period, &result); err != nil {
		return nil, err
	}
	for i := range result.StopSalesByProducts {
		normalizeStopSale(&result.StopSalesByProducts[i].StopSale)
	}
	return result.StopSalesByProducts, nil
}

// GetSalesChannelStopSales возвращает стоп-продажи каналов продаж за период.
func (c *PrivateAPIClient) GetSalesChannelStopSales(ctx context.Context, token string, unitUUIDs []uuid.UUID, period models.Period) ([]models.StopSaleBySalesChannel, error) {
	var result struct {
		StopSalesBySalesChannels []models.StopSaleBySalesChannel `json:"stopSalesBySalesChannels"`
	}
	if err := c.get(ctx, token, "/production/stop-sales-channels", unitUUIDs, period, &result); err != nil {
		return nil, err
	}
	for i := range result.StopSalesBySalesChannels {
		normalizeStopSale(&result.StopSalesBySalesChannels[i].StopSale)
	}
	return result.StopSalesBySalesChannels, nil
}

func (c *PrivateAPIClient) get(ctx context.Context, token, path string, unitUUIDs []uuid.UUID, period models.Period, result interface{}) error {
	if len(unitUUIDs) == 0 {
		return apperror.Validation("at least one unit uuid is required")
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetQueryParams(map[string]string{
			"units": joinUnitUUIDs(unitUUIDs),
			"from":  period.From.Format(privateAPITimeLayout),
			"to":    period.To.Format(privateAPITimeLayout),
		}).
		SetResult(result).
		Get(path)
	if err != nil {
		return apperror.PrivateAPI(0, err)
	}
	if resp.IsError() {
		return apperror.PrivateAPI(resp.StatusCode(),
			fmt.Errorf("private api responded with status %d", resp.StatusCode()))
	}
	return nil
}

// normalizeStopSale приводит пустое имя возобновившего сотрудника к nil:
// приватный API отдаёт для действующих стопов то пустую строку, то null.
func normalizeStopSale(s *models.StopSale) {
	if s.StaffNameWhoResumed != nil && *s.StaffNameWhoResumed == "" {
		s.StaffNameWhoResumed = nil
	}
}
