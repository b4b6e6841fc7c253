package services

import (
	"context"
	"net/http"
	"time"

	"dodo-statistics/internal/dodoapi"
	"dodo-statistics/internal/kafka"
	"dodo-statistics/internal/logger"
	"dodo-statistics/internal/models"

	"github.com/google/uuid"
)

type stopSalesAPI interface {
	GetIngredientStopSales(ctx context.Context, token string, unitUUIDs []uuid.UUID, period models.Period) ([]models.StopSaleByIngredient, error)
	GetProductStopSales(ctx context.Context, token string, unitUUIDs []uuid.UUID, period models.Period) ([]models.StopSaleByProduct, error)
	GetSalesChannelStopSales(ctx context.Context, token string, unitUUIDs []uuid.UUID, period models.Period) ([]models.StopSaleBySalesChannel, error)
}

type stopSalesReportsAPI interface {
	GetSectorStopSales(ctx context.Context, cookies []*http.Cookie, units []models.Unit, period models.Period) ([]models.StopSaleBySector, error)
	GetStreetStopSales(ctx context.Context, cookies []*http.Cookie, units []models.Unit, period models.Period) ([]models.StopSaleByStreet, error)
}

type stopSalePublisher interface {
	PublishStopSale(event models.StopSaleEvent) error
}

// StopSalesService собирает стоп-продажи из приватного API и из отчётов
// офис-менеджера. По каждой действующей стоп-продаже публикуется событие в
// Kafka; сбой публикации не портит ответ.
type StopSalesService struct {
	privateAPI    stopSalesAPI
	officeManager stopSalesReportsAPI
	producer      stopSalePublisher
	log           *logger.Logger
}

// NewStopSalesService создает новый сервис стоп-продаж. producer может быть
// nil: тогда события не публикуются.
func NewStopSalesService(privateAPI *dodoapi.PrivateAPIClient, officeManager *dodoapi.OfficeManagerClient, producer *kafka.Producer, log *logger.Logger) *StopSalesService {
	s := &StopSalesService{
		privateAPI:    privateAPI,
		officeManager: officeManager,
		log:           log,
	}
	if producer != nil {
		s.producer = producer
	}
	return s
}

// GetIngredientStopSales возвращает стоп-продажи ингредиентов за период.
func (s *StopSalesService) GetIngredientStopSales(ctx context.Context, token string, unitUUIDs []uuid.UUID, period models.Period) ([]models.StopSaleByIngredient, error) {
	stopSales, err := s.privateAPI.GetIngredientStopSales(ctx, token, unitUUIDs, period)
	if err != nil {
		return nil, err
	}
	for _, stopSale := range stopSales {
		s.publishIfActive(stopSale.StopSale, models.StopSaleEventIngredient, stopSale.IngredientName)
	}
	return stopSales, nil
}

// GetProductStopSales возвращает стоп-продажи продуктов за период.
func (s *StopSalesService) GetProductStopSales(ctx context.Context, token string, unitUUIDs []uuid.UUID, period models.Period) ([]models.StopSaleByProduct, error) {
	stopSales, err := s.privateAPI.GetProductStopSales(ctx, token, unitUUIDs, period)
	if err != nil {
		return nil, err
	}
	for _, stopSale := range stopSales {
		s.publishIfActive(stopSale.StopSale, models.StopSaleEventProduct, stopSale.ProductName)
	}
	return stopSales, nil
}

// GetSalesChannelStopSales возвращает стоп-продажи каналов продаж за период.
func (s *StopSalesService) GetSalesChannelStopSales(ctx context.Context, token string, unitUUIDs []uuid.UUID, period models.Period) ([]models.StopSaleBySalesChannel, error) {
	stopSales, err := s.privateAPI.GetSalesChannelStopSales(ctx, token, unitUUIDs, period)
	if err != nil {
		return nil, err
	}
	for _, stopSale := range stopSales {
		s.publishIfActive(stopSale.StopSale, models.StopSaleEventSalesChannel, stopSale.SalesChannelName)
	}
	return stopSales, nil
}

// GetSectorStopSales возвращает стоп-продажи по секторам доставки из отчёта
// офис-менеджера.
func (s *StopSalesService) GetSectorStopSales(ctx context.Context, cookies []*http.Cookie, units []models.Unit, period models.Period) ([]models.StopSaleBySector, error) {
	return s.officeManager.GetSectorStopSales(ctx, cookies, units, period)
}

// GetStreetStopSales возвращает стоп-продажи по улицам из отчёта офис-менеджера.
func (s *StopSalesService) GetStreetStopSales(ctx context.Context, cookies []*http.Cookie, units []models.Unit, period models.Period) ([]models.StopSaleByStreet, error) {
	return s.officeManager.GetStreetStopSales(ctx, cookies, units, period)
}

func (s *StopSalesService) publishIfActive(stopSale models.StopSale, eventType models.StopSaleEventType, subject string) {
	if s.producer == nil || !stopSale.Active() {
		return
	}

	event := models.StopSaleEvent{
		ID:                  uuid.New(),
		Type:                eventType,
		UnitUUID:            stopSale.UnitUUID,
		UnitName:            stopSale.UnitName,
		Subject:             subject,
		Reason:              stopSale.Reason,
		StartedAt:           stopSale.StartedAt,
		StaffNameWhoStopped: stopSale.StaffNameWhoStopped,
		OccurredAt:          time.Now(),
	}
	if err := s.producer.PublishStopSale(event); err != nil {
		s.log.WithError(err).WithFields(map[string]interface{}{
			"unit_name": event.UnitName,
			"subject":   event.Subject,
		}).Warn("Failed to publish stop sale event")
	}
}
