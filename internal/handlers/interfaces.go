package handlers

import (
	"context"
	"net/http"

	"dodo-statistics/internal/models"

	"github.com/google/uuid"
)

// ----- Units -----

type UnitsProvider interface {
	GetUnits(ctx context.Context) ([]models.Unit, error)
	GetUnitsByIDs(ctx context.Context, unitIDs []models.UnitID) ([]models.Unit, error)
	GetUnitUUIDs(ctx context.Context, unitIDs []models.UnitID) ([]uuid.UUID, error)
}

// ----- Statistics -----

type RevenueProvider interface {
	GetRevenueStatistics(ctx context.Context, unitIDs []models.UnitID) (models.UnitsRevenueStatistics, error)
}

type PartialStatisticsProvider interface {
	GetKitchenStatistics(ctx context.Context, cookies []*http.Cookie, unitIDs []models.UnitID) (models.KitchenStatisticsBatch, error)
	GetDeliveryStatistics(ctx context.Context, cookies []*http.Cookie, unitIDs []models.UnitID) (models.DeliveryStatisticsBatch, error)
}

type OrdersProvider interface {
	GetRestaurantOrders(ctx context.Context, cookies []*http.Cookie, units []models.Unit) ([]models.UnitRestaurantOrders, error)
	GetCanceledOrders(ctx context.Context, cookies []*http.Cookie) (models.CanceledOrdersStatistics, error)
}

type CertificatesProvider interface {
	GetBeingLateCertificates(ctx context.Context, cookies []*http.Cookie, units []models.Unit) ([]models.BeingLateCertificatesTodayAndWeekBefore, error)
}

type DeliveryProvider interface {
	GetDeliveryStatistics(ctx context.Context, token string, unitUUIDs []uuid.UUID, period models.Period) ([]models.UnitDeliveryStatisticsExtended, error)
	GetOrdersHandoverTime(ctx context.Context, token string, unitUUIDs []uuid.UUID, period models.Period) ([]models.OrderHandoverTime, error)
}

// ----- Stop sales -----

type StopSalesProvider interface {
	GetIngredientStopSales(ctx context.Context, token string, unitUUIDs []uuid.UUID, period models.Period) ([]models.StopSaleByIngredient, error)
	GetProductStopSales(ctx context.Context, token string, unitUUIDs []uuid.UUID, period models.Period) ([]models.StopSaleByProduct, error)
	GetSalesChannelStopSales(ctx context.Context, token string, unitUUIDs []uuid.UUID, period models.Period) ([]models.StopSaleBySalesChannel, error)
	GetSectorStopSales(ctx context.Context, cookies []*http.Cookie, units []models.Unit, period models.Period) ([]models.StopSaleBySector, error)
	GetStreetStopSales(ctx context.Context, cookies []*http.Cookie, units []models.Unit, period models.Period) ([]models.StopSaleByStreet, error)
}

// ----- Stocks -----

type StocksProvider interface {
	GetStockBalances(ctx context.Context, cookies []*http.Cookie, unitIDs []models.UnitID) (models.StockBalanceStatistics, error)
}

// ----- Cache -----

type CacheInvalidator interface {
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	DeleteByPrefix(ctx context.Context, prefix string) error
}

// ----- Health -----

type DBHealth interface {
	Health() error
}

type RedisHealth interface {
	Health(ctx context.Context) error
}
