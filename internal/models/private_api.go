package models

import (
	"time"

	"github.com/google/uuid"
)

// UnitDeliveryStatistics — статистика доставки приватного API по одной пиццерии.
type UnitDeliveryStatistics struct {
	UnitUUID                            uuid.UUID `json:"unitId"`
	UnitName                            string    `json:"unitName"`
	AverageCookingTime                  int       `json:"avgCookingTime"`
	AverageDeliveryOrderFulfillmentTime int       `json:"avgDeliveryOrderFulfillmentTime"`
	AverageHeatedShelfTime              int       `json:"avgHeatedShelfTime"`
	AverageOrderTripTime                int       `json:"avgOrderTripTime"`
	CouriersShiftsDuration              int       `json:"couriersShiftsDuration"`
	DeliveryOrdersCount                 int       `json:"deliveryOrdersCount"`
	DeliverySales                       int       `json:"deliverySales"`
	LateOrdersCount                     int       `json:"lateOrdersCount"`
	OrdersWithCourierAppCount           int       `json:"ordersWithCourierAppCount"`
	TripsCount                          int       `json:"tripsCount"`
	TripsDuration                       int       `json:"tripsDuration"`
}

// UnitDeliveryStatisticsExtended дополняет статистику доставки расчётными
// метриками.
type UnitDeliveryStatisticsExtended struct {
	UnitDeliveryStatistics
	OrdersForCourierCountPerHour  float64 `json:"orders_for_courier_count_per_hour"`
	DeliveryWithCourierAppPercent float64 `json:"delivery_with_courier_app_percent"`
	CouriersWorkloadPercent       float64 `json:"couriers_workload_percent"`
}

// SalesChannel — канал продаж приватного API.
type SalesChannel string

const (
	SalesChannelDineIn   SalesChannel = "Dine-in"
	SalesChannelTakeaway SalesChannel = "Takeaway"
	SalesChannelDelivery SalesChannel = "Delivery"
)

// OrderHandoverTime — время выдачи заказа по данным приватного API.
type OrderHandoverTime struct {
	UnitUUID             uuid.UUID    `json:"unitId"`
	UnitName             string       `json:"unitName"`
	OrderID              uuid.UUID    `json:"orderId"`
	OrderNumber          string       `json:"orderNumber"`
	SalesChannel         SalesChannel `json:"salesChannel"`
	OrderTrackingStartAt time.Time    `json:"orderTrackingStartAt"`
	TrackingPendingTime  int          `json:"trackingPendingTime"`
	CookingTime          int          `json:"cookingTime"`
	HeatedShelfTime      int          `json:"heatedShelfTime"`
}
