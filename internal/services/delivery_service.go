package services

import (
	"context"

	"dodo-statistics/internal/calc"
	"dodo-statistics/internal/dodoapi"
	"dodo-statistics/internal/logger"
	"dodo-statistics/internal/models"

	"github.com/google/uuid"
)

type deliveryStatisticsAPI interface {
	GetDeliveryStatistics(ctx context.Context, token string, unitUUIDs []uuid.UUID, period models.Period) ([]models.UnitDeliveryStatistics, error)
	GetOrdersHandoverTime(ctx context.Context, token string, unitUUIDs []uuid.UUID, period models.Period) ([]models.OrderHandoverTime, error)
}

// DeliveryService отдаёт статистику доставки приватного API, дополненную
// расчётными метриками.
type DeliveryService struct {
	privateAPI deliveryStatisticsAPI
	log        *logger.Logger
}

// NewDeliveryService создает новый сервис статистики доставки
func NewDeliveryService(privateAPI *dodoapi.PrivateAPIClient, log *logger.Logger) *DeliveryService {
	return &DeliveryService{privateAPI: privateAPI, log: log}
}

// GetDeliveryStatistics возвращает статистику доставки по пиццериям,
// дополненную заказами на курьера в час, долей курьерского приложения и
// загрузкой курьеров.
func (s *DeliveryService) GetDeliveryStatistics(ctx context.Context, token string, unitUUIDs []uuid.UUID, period models.Period) ([]models.UnitDeliveryStatisticsExtended, error) {
	statistics, err := s.privateAPI.GetDeliveryStatistics(ctx, token, unitUUIDs, period)
	if err != nil {
		return nil, err
	}

	extended := make([]models.UnitDeliveryStatisticsExtended, 0, len(statistics))
	for _, stats := range statistics {
		extended = append(extended, calc.ExtendDeliveryStatistics(stats))
	}
	return extended, nil
}

// GetOrdersHandoverTime возвращает времена выдачи заказов по пиццериям.
func (s *DeliveryService) GetOrdersHandoverTime(ctx context.Context, token string, unitUUIDs []uuid.UUID, period models.Period) ([]models.OrderHandoverTime, error) {
	return s.privateAPI.GetOrdersHandoverTime(ctx, token, unitUUIDs, period)
}
