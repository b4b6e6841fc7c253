package services

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"dodo-statistics/internal/apperror"
	"dodo-statistics/internal/models"

	"github.com/google/uuid"
)

type fakeStopSalesAPI struct {
	ingredients   []models.StopSaleByIngredient
	products      []models.StopSaleByProduct
	salesChannels []models.StopSaleBySalesChannel
	err           error
}

func (f *fakeStopSalesAPI) GetIngredientStopSales(ctx context.Context, token string, unitUUIDs []uuid.UUID, period models.Period) ([]models.StopSaleByIngredient, error) {
	return f.ingredients, f.err
}

func (f *fakeStopSalesAPI) GetProductStopSales(ctx context.Context, token string, unitUUIDs []uuid.UUID, period models.Period) ([]models.StopSaleByProduct, error) {
	return f.products, f.err
}

func (f *fakeStopSalesAPI) GetSalesChannelStopSales(ctx context.Context, token string, unitUUIDs []uuid.UUID, period models.Period) ([]models.StopSaleBySalesChannel, error) {
	return f.salesChannels, f.err
}

type fakeStopSalesReportsAPI struct {
	sectors []models.StopSaleBySector
	streets []models.StopSaleByStreet
	err     error
}

func (f *fakeStopSalesReportsAPI) GetSectorStopSales(ctx context.Context, cookies []*http.Cookie, units []models.Unit, period models.Period) ([]models.StopSaleBySector, error) {
	return f.sectors, f.err
}

func (f *fakeStopSalesReportsAPI) GetStreetStopSales(ctx context.Context, cookies []*http.Cookie, units []models.Unit, period models.Period) ([]models.StopSaleByStreet, error) {
	return f.streets, f.err
}

type fakeStopSalePublisher struct {
	events []models.StopSaleEvent
	err    error
}

func (f *fakeStopSalePublisher) PublishStopSale(event models.StopSaleEvent) error {
	f.events = append(f.events, event)
	return f.err
}

func stopSaleFixture(active bool) models.StopSale {
	stopSale := models.StopSale{
		UnitUUID:            uuid.MustParse("8f0bdf0d-1111-4c5c-b8d8-7b4a1e3045b9"),
		UnitName:            "Москва 1-1",
		Reason:              "Закончился ингредиент",
		StartedAt:           time.Date(2023, 2, 7, 10, 0, 0, 0, time.UTC),
		StaffNameWhoStopped: "Иванов Иван",
	}
	if !active {
		resumedAt := stopSale.StartedAt.Add(time.Hour)
		resumedBy := "Петров Пётр"
		stopSale.EndedAt = &resumedAt
		stopSale.StaffNameWhoResumed = &resumedBy
	}
	return stopSale
}

func TestStopSalesService_PublishesOnlyActiveStopSales(t *testing.T) {
	api := &fakeStopSalesAPI{
		ingredients: []models.StopSaleByIngredient{
			{StopSale: stopSaleFixture(true), IngredientName: "Сыр Моцарелла"},
			{StopSale: stopSaleFixture(false), IngredientName: "Соус томатный"},
		},
	}
	publisher := &fakeStopSalePublisher{}
	service := &StopSalesService{privateAPI: api, producer: publisher, log: testLogger()}

	stopSales, err := service.GetIngredientStopSales(context.Background(), "token", nil, models.NewPeriodToday())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stopSales) != 2 {
		t.Fatalf("expected both stop sales returned, got %d", len(stopSales))
	}

	if len(publisher.events) != 1 {
		t.Fatalf("expected 1 published event, got %d", len(publisher.events))
	}
	event := publisher.events[0]
	if event.Type != models.StopSaleEventIngredient || event.Subject != "Сыр Моцарелла" {
		t.Fatalf("unexpected event: %+v", event)
	}
	if event.UnitName != "Москва 1-1" || event.Reason != "Закончился ингредиент" {
		t.Fatalf("event lost stop sale context: %+v", event)
	}
	if event.ID == uuid.Nil || event.OccurredAt.IsZero() {
		t.Fatalf("event missing id or timestamp: %+v", event)
	}
}

func TestStopSalesService_PublishFailureDoesNotFail(t *testing.T) {
	api := &fakeStopSalesAPI{
		products: []models.StopSaleByProduct{{StopSale: stopSaleFixture(true), ProductName: "Пицца Пепперони"}},
	}
	publisher := &fakeStopSalePublisher{err: errors.New("kafka down")}
	service := &StopSalesService{privateAPI: api, producer: publisher, log: testLogger()}

	stopSales, err := service.GetProductStopSales(context.Background(), "token", nil, models.NewPeriodToday())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stopSales) != 1 {
		t.Fatalf("expected 1 stop sale, got %d", len(stopSales))
	}
}

func TestStopSalesService_NoProducer(t *testing.T) {
	api := &fakeStopSalesAPI{
		salesChannels: []models.StopSaleBySalesChannel{{StopSale: stopSaleFixture(true), SalesChannelName: "Доставка"}},
	}
	service := &StopSalesService{privateAPI: api, log: testLogger()}

	stopSales, err := service.GetSalesChannelStopSales(context.Background(), "token", nil, models.NewPeriodToday())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stopSales) != 1 {
		t.Fatalf("expected 1 stop sale, got %d", len(stopSales))
	}
}

func TestStopSalesService_FetchError(t *testing.T) {
	api := &fakeStopSalesAPI{err: apperror.PrivateAPI(401, errors.New("unauthorized"))}
	publisher := &fakeStopSalePublisher{}
	service := &StopSalesService{privateAPI: api, producer: publisher, log: testLogger()}

	if _, err := service.GetIngredientStopSales(context.Background(), "token", nil, models.NewPeriodToday()); !apperror.Is(err, apperror.KindPrivateAPI) {
		t.Fatalf("expected private api error, got %v", err)
	}
	if len(publisher.events) != 0 {
		t.Fatalf("expected no events on fetch error, got %d", len(publisher.events))
	}
}

func TestStopSalesService_ReportPassthrough(t *testing.T) {
	reports := &fakeStopSalesReportsAPI{
		sectors: []models.StopSaleBySector{{UnitName: "Москва 1-1", Sector: "Север"}},
		streets: []models.StopSaleByStreet{{UnitName: "Москва 1-1", Street: "Ленина"}},
	}
	service := &StopSalesService{officeManager: reports, log: testLogger()}

	sectors, err := service.GetSectorStopSales(context.Background(), nil, nil, models.NewPeriodToday())
	if err != nil || len(sectors) != 1 || sectors[0].Sector != "Север" {
		t.Fatalf("unexpected sectors: %v err=%v", sectors, err)
	}
	streets, err := service.GetStreetStopSales(context.Background(), nil, nil, models.NewPeriodToday())
	if err != nil || len(streets) != 1 || streets[0].Street != "Ленина" {
		t.Fatalf("unexpected streets: %v err=%v", streets, err)
	}
}
