package services

import (
	"context"
	"net/http"
	"time"

	"dodo-statistics/internal/apperror"
	"dodo-statistics/internal/config"
	"dodo-statistics/internal/dodoapi"
	"dodo-statistics/internal/logger"
	"dodo-statistics/internal/models"
	"dodo-statistics/internal/redis"
)

type cacheStore interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	SetMultiple(ctx context.Context, values map[string]interface{}, ttl time.Duration) error
}

type restaurantOrdersAPI interface {
	GetRestaurantOrders(ctx context.Context, cookies []*http.Cookie, units []models.Unit, period models.Period) ([]models.UnitRestaurantOrders, error)
}

type shiftOrdersAPI interface {
	GetCanceledOrders(ctx context.Context, cookies []*http.Cookie, period models.Period) ([]models.OrderPartial, error)
	GetOrderDetail(ctx context.Context, cookies []*http.Cookie, ref models.OrderRef) (models.OrderDetail, error)
}

// OrdersService собирает статистику заказов: заказы ресторана с кешированием
// по пиццериям и отменённые заказы смены.
type OrdersService struct {
	officeManager restaurantOrdersAPI
	shiftManager  shiftOrdersAPI
	cache         cacheStore
	log           *logger.Logger
	ordersTTL     time.Duration
}

// NewOrdersService создает новый сервис статистики заказов
func NewOrdersService(officeManager *dodoapi.OfficeManagerClient, shiftManager *dodoapi.ShiftManagerClient, cache *redis.Client, log *logger.Logger, cfg *config.CacheConfig) *OrdersService {
	return &OrdersService{
		officeManager: officeManager,
		shiftManager:  shiftManager,
		cache:         cache,
		log:           log,
		ordersTTL:     time.Duration(cfg.RestaurantOrdersTTLMinutes) * time.Minute,
	}
}

// GetRestaurantOrders возвращает заказы ресторана по пиццериям за сегодня.
// Запрошенные пиццерии делятся на закешированные и недостающие; к офис-
// менеджеру уходит один запрос только по недостающим. Сбой записи в кеш не
// портит ответ.
func (s *OrdersService) GetRestaurantOrders(ctx context.Context, cookies []*http.Cookie, units []models.Unit) ([]models.UnitRestaurantOrders, error) {
	if len(units) == 0 {
		return nil, apperror.Validation("at least one unit is required")
	}

	var (
		result  []models.UnitRestaurantOrders
		missing []models.Unit
	)
	for _, unit := range units {
		key := redis.Key(redis.KeyKindRestaurantOrders, unit.ID)
		var cached models.UnitRestaurantOrders
		if err := s.cache.Get(ctx, key, &cached); err != nil {
			if !apperror.Is(err, apperror.KindCacheMiss) {
				s.log.WithError(err).WithField("key", key).Warn("Cache read failed, treating as miss")
			}
			missing = append(missing, unit)
			continue
		}
		result = append(result, cached)
	}

	if len(missing) == 0 {
		return result, nil
	}

	fetched, err := s.officeManager.GetRestaurantOrders(ctx, cookies, missing, models.NewPeriodToday())
	if err != nil {
		return nil, err
	}
	for _, group := range fetched {
		key := redis.Key(redis.KeyKindRestaurantOrders, group.UnitID)
		if err := s.cache.Set(ctx, key, group, s.ordersTTL); err != nil {
			s.log.WithError(err).WithField("key", key).Warn("Failed to cache restaurant orders")
		}
	}
	return append(result, fetched...), nil
}

// GetCanceledOrders возвращает детали отменённых заказов смены за сегодня.
// Сбой одного заказа не прерывает обход: его контекст попадает в FailedOrders.
func (s *OrdersService) GetCanceledOrders(ctx context.Context, cookies []*http.Cookie) (models.CanceledOrdersStatistics, error) {
	orders, err := s.shiftManager.GetCanceledOrders(ctx, cookies, models.NewPeriodToday())
	if err != nil {
		return models.CanceledOrdersStatistics{}, err
	}

	var stats models.CanceledOrdersStatistics
	for _, order := range orders {
		detail, err := s.shiftManager.GetOrderDetail(ctx, cookies, order.Ref())
		if err != nil {
			s.log.WithError(err).WithField("order_uuid", order.UUID).Warn("Failed to get order detail")
			stats.FailedOrders = append(stats.FailedOrders, order.Ref())
			continue
		}
		stats.Orders = append(stats.Orders, detail)
	}
	return stats, nil
}
