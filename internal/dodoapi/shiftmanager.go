package dodoapi

import (
	"context"
	"fmt"
	"net/http"

	"dodo-statistics/internal/apperror"
	"dodo-statistics/internal/config"
	"dodo-statistics/internal/logger"
	"dodo-statistics/internal/models"
	"dodo-statistics/internal/parsers"

	"github.com/go-resty/resty/v2"
)

// ShiftManagerClient ходит на HTML-страницы менеджера смены Dodo IS.
type ShiftManagerClient struct {
	http *resty.Client
	log  *logger.Logger
}

// NewShiftManagerClient создает клиент менеджера смены
func NewShiftManagerClient(cfg *config.DodoAPIConfig, log *logger.Logger) *ShiftManagerClient {
	return &ShiftManagerClient{
		http: newHTTPClient(cfg.ShiftManagerBaseURL, cfg),
		log:  log,
	}
}

// GetCanceledOrders возвращает список отменённых заказов смены за период.
func (c *ShiftManagerClient) GetCanceledOrders(ctx context.Context, cookies []*http.Cookie, period models.Period) ([]models.OrderPartial, error) {
	from, to := formatPeriod(period)
	resp, err := c.http.R().
		SetContext(ctx).
		SetCookies(cookies).
		SetQueryParams(map[string]string{
			"beginDate":        from,
			"endDate":          to,
			"orderStateFilter": "Failure",
		}).
		Get("/Managment/ShiftManagment/PartialShiftOrders")
	if err != nil {
		return nil, apperror.ShiftManagerAPI(0, err)
	}
	if resp.IsError() {
		return nil, apperror.ShiftManagerAPI(resp.StatusCode(),
			fmt.Errorf("shift manager responded with status %d", resp.StatusCode()))
	}

	parser, err := parsers.NewOrdersParser(resp.String())
	if err != nil {
		return nil, fmt.Errorf("failed to parse orders page: %w", err)
	}
	return parser.Parse()
}

// GetOrderDetail возвращает детали одного заказа. Любой сбой помечается
// ошибкой order_detail с контекстом заказа: вызывающая сторона собирает из
// таких ошибок частичный отчёт, а не прерывает обход.
func (c *ShiftManagerClient) GetOrderDetail(ctx context.Context, cookies []*http.Cookie, ref models.OrderRef) (models.OrderDetail, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetCookies(cookies).
		SetQueryParam("orderUUId", ref.UUID.String()).
		Get("/Managment/ShiftManagment/Order")
	if err != nil {
		return models.OrderDetail{}, apperror.OrderDetail(ref.UUID, ref.Price, ref.Type, err)
	}
	if resp.IsError() {
		return models.OrderDetail{}, apperror.OrderDetail(ref.UUID, ref.Price, ref.Type,
			fmt.Errorf("shift manager responded with status %d", resp.StatusCode()))
	}

	parser, err := parsers.NewOrderDetailParser(resp.String(), ref)
	if err != nil {
		return models.OrderDetail{}, apperror.OrderDetail(ref.UUID, ref.Price, ref.Type, err)
	}
	detail, err := parser.Parse()
	if err != nil {
		return models.OrderDetail{}, apperror.OrderDetail(ref.UUID, ref.Price, ref.Type, err)
	}
	return detail, nil
}
