package kafka

import (
	"testing"
	"time"

	"dodo-statistics/internal/config"
	"dodo-statistics/internal/logger"
	"dodo-statistics/internal/models"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/google/uuid"
)

func newTestProducer(t *testing.T) (*Producer, *mocks.SyncProducer) {
	t.Helper()
	mp := mocks.NewSyncProducer(t, sarama.NewConfig())
	p := &Producer{
		producer: mp,
		log:      logger.New(&config.LoggerConfig{Level: "error", Format: "json"}),
		topics:   &config.Topics{StopSales: "stop_sales"},
	}
	return p, mp
}

func TestPublishStopSale(t *testing.T) {
	p, mp := newTestProducer(t)
	mp.ExpectSendMessageAndSucceed()

	event := models.StopSaleEvent{
		ID:         uuid.New(),
		Type:       models.StopSaleEventIngredient,
		UnitUUID:   uuid.New(),
		UnitName:   "Москва 1-1",
		Subject:    "Сыр Моцарелла",
		Reason:     "закончился",
		StartedAt:  time.Now(),
		OccurredAt: time.Now(),
	}

	if err := p.PublishStopSale(event); err != nil {
		t.Fatalf("expected publish success, got %v", err)
	}

	if err := mp.Close(); err != nil {
		t.Fatalf("failed to close mock producer: %v", err)
	}
}

func TestPublishStopSale_Failure(t *testing.T) {
	p, mp := newTestProducer(t)
	mp.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	event := models.StopSaleEvent{ID: uuid.New(), Type: models.StopSaleEventProduct, UnitUUID: uuid.New()}
	if err := p.PublishStopSale(event); err == nil {
		t.Fatalf("expected error on send failure")
	}
	_ = p.Close()
}

func TestNewProducer_Error(t *testing.T) {
	log := logger.New(&config.LoggerConfig{Level: "error", Format: "json"})
	cfg := &config.KafkaConfig{Brokers: []string{"localhost:0"}}
	if _, err := NewProducer(cfg, log); err == nil {
		t.Fatalf("expected error creating producer")
	}
}

func TestProducer_CloseNil(t *testing.T) {
	var p *Producer
	if err := p.Close(); err != nil {
		t.Fatalf("expected nil error on nil producer")
	}
	p = &Producer{}
	if err := p.Close(); err != nil {
		t.Fatalf("expected nil error on empty producer, got %v", err)
	}
}
