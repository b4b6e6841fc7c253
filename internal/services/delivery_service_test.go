package services

import (
	"context"
	"errors"
	"testing"

	"dodo-statistics/internal/apperror"
	"dodo-statistics/internal/models"

	"github.com/google/uuid"
)

type fakeDeliveryStatisticsAPI struct {
	statistics []models.UnitDeliveryStatistics
	handover   []models.OrderHandoverTime
	err        error
}

func (f *fakeDeliveryStatisticsAPI) GetDeliveryStatistics(ctx context.Context, token string, unitUUIDs []uuid.UUID, period models.Period) ([]models.UnitDeliveryStatistics, error) {
	return f.statistics, f.err
}

func (f *fakeDeliveryStatisticsAPI) GetOrdersHandoverTime(ctx context.Context, token string, unitUUIDs []uuid.UUID, period models.Period) ([]models.OrderHandoverTime, error) {
	return f.handover, f.err
}

func TestDeliveryService_GetDeliveryStatistics_ExtendsMetrics(t *testing.T) {
	api := &fakeDeliveryStatisticsAPI{
		statistics: []models.UnitDeliveryStatistics{
			{
				UnitName:                  "Москва 1-1",
				DeliveryOrdersCount:       10,
				CouriersShiftsDuration:    10800,
				OrdersWithCourierAppCount: 5,
				TripsDuration:             5400,
			},
		},
	}
	service := &DeliveryService{privateAPI: api, log: testLogger()}

	extended, err := service.GetDeliveryStatistics(context.Background(), "token", []uuid.UUID{uuid.New()}, models.NewPeriodToday())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(extended) != 1 {
		t.Fatalf("expected 1 unit, got %d", len(extended))
	}

	unit := extended[0]
	if unit.OrdersForCourierCountPerHour != 3.33 {
		t.Errorf("unexpected orders per hour: %v", unit.OrdersForCourierCountPerHour)
	}
	if unit.DeliveryWithCourierAppPercent != 50.0 {
		t.Errorf("unexpected courier app percent: %v", unit.DeliveryWithCourierAppPercent)
	}
	if unit.CouriersWorkloadPercent != 50.0 {
		t.Errorf("unexpected couriers workload: %v", unit.CouriersWorkloadPercent)
	}
}

func TestDeliveryService_GetDeliveryStatistics_Error(t *testing.T) {
	api := &fakeDeliveryStatisticsAPI{err: apperror.PrivateAPI(401, errors.New("unauthorized"))}
	service := &DeliveryService{privateAPI: api, log: testLogger()}

	if _, err := service.GetDeliveryStatistics(context.Background(), "token", nil, models.NewPeriodToday()); !apperror.Is(err, apperror.KindPrivateAPI) {
		t.Fatalf("expected private api error, got %v", err)
	}
}

func TestDeliveryService_GetOrdersHandoverTime(t *testing.T) {
	api := &fakeDeliveryStatisticsAPI{
		handover: []models.OrderHandoverTime{{UnitName: "Москва 1-1", OrderNumber: "38", TrackingPendingTime: 120}},
	}
	service := &DeliveryService{privateAPI: api, log: testLogger()}

	handover, err := service.GetOrdersHandoverTime(context.Background(), "token", nil, models.NewPeriodToday())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(handover) != 1 || handover[0].OrderNumber != "38" {
		t.Fatalf("unexpected handover times: %+v", handover)
	}
}
