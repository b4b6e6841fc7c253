package services

import (
	"context"
	"net/http"
	"sort"
	"sync"

	"dodo-statistics/internal/apperror"
	"dodo-statistics/internal/config"
	"dodo-statistics/internal/dodoapi"
	"dodo-statistics/internal/logger"
	"dodo-statistics/internal/models"
)

type partialStatisticsAPI interface {
	GetKitchenStatistics(ctx context.Context, cookies []*http.Cookie, unitID models.UnitID) (models.KitchenPartialStatistics, error)
	GetDeliveryStatistics(ctx context.Context, cookies []*http.Cookie, unitID models.UnitID) (models.DeliveryPartialStatistics, error)
}

// PartialStatisticsService собирает срезы операционной статистики кухни и
// доставки по наборам пиццерий с изоляцией сбоев по юнитам.
type PartialStatisticsService struct {
	officeManager partialStatisticsAPI
	log           *logger.Logger
	concurrency   int
}

// NewPartialStatisticsService создает новый сервис срезов операционной статистики
func NewPartialStatisticsService(officeManager *dodoapi.OfficeManagerClient, log *logger.Logger, cfg *config.DodoAPIConfig) *PartialStatisticsService {
	concurrency := cfg.BatchConcurrency
	if concurrency < 1 {
		concurrency = 1
	}
	return &PartialStatisticsService{
		officeManager: officeManager,
		log:           log,
		concurrency:   concurrency,
	}
}

// GetKitchenStatistics возвращает статистику кухни по пиццериям. Сбой одной
// пиццерии попадает в ErrorUnitIDs, не прерывая остальных.
func (s *PartialStatisticsService) GetKitchenStatistics(ctx context.Context, cookies []*http.Cookie, unitIDs []models.UnitID) (models.KitchenStatisticsBatch, error) {
	if len(unitIDs) == 0 {
		return models.KitchenStatisticsBatch{}, apperror.Validation("at least one unit id is required")
	}

	var (
		mu    sync.Mutex
		batch models.KitchenStatisticsBatch
	)
	s.forEachUnit(ctx, unitIDs, func(ctx context.Context, unitID models.UnitID) {
		stats, err := s.officeManager.GetKitchenStatistics(ctx, cookies, unitID)

		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			s.log.WithError(err).WithField("unit_id", unitID).Warn("Failed to get kitchen statistics")
			batch.ErrorUnitIDs = append(batch.ErrorUnitIDs, unitID)
			return
		}
		batch.Units = append(batch.Units, stats)
	})

	sort.Slice(batch.Units, func(i, j int) bool { return batch.Units[i].UnitID < batch.Units[j].UnitID })
	sort.Slice(batch.ErrorUnitIDs, func(i, j int) bool { return batch.ErrorUnitIDs[i] < batch.ErrorUnitIDs[j] })
	return batch, nil
}

// GetDeliveryStatistics возвращает статистику доставки по пиццериям с той же
// изоляцией сбоев, что и GetKitchenStatistics.
func (s *PartialStatisticsService) GetDeliveryStatistics(ctx context.Context, cookies []*http.Cookie, unitIDs []models.UnitID) (models.DeliveryStatisticsBatch, error) {
	if len(unitIDs) == 0 {
		return models.DeliveryStatisticsBatch{}, apperror.Validation("at least one unit id is required")
	}

	var (
		mu    sync.Mutex
		batch models.DeliveryStatisticsBatch
	)
	s.forEachUnit(ctx, unitIDs, func(ctx context.Context, unitID models.UnitID) {
		stats, err := s.officeManager.GetDeliveryStatistics(ctx, cookies, unitID)

		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			s.log.WithError(err).WithField("unit_id", unitID).Warn("Failed to get delivery statistics")
			batch.ErrorUnitIDs = append(batch.ErrorUnitIDs, unitID)
			return
		}
		batch.Units = append(batch.Units, stats)
	})

	sort.Slice(batch.Units, func(i, j int) bool { return batch.Units[i].UnitID < batch.Units[j].UnitID })
	sort.Slice(batch.ErrorUnitIDs, func(i, j int) bool { return batch.ErrorUnitIDs[i] < batch.ErrorUnitIDs[j] })
	return batch, nil
}

// forEachUnit выполняет fn по каждой пиццерии с ограниченным параллелизмом.
func (s *PartialStatisticsService) forEachUnit(ctx context.Context, unitIDs []models.UnitID, fn func(ctx context.Context, unitID models.UnitID)) {
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, s.concurrency)
	for _, unitID := range unitIDs {
		wg.Add(1)
		go func(unitID models.UnitID) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()
			fn(ctx, unitID)
		}(unitID)
	}
	wg.Wait()
}
