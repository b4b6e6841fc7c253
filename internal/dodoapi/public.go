package dodoapi

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"dodo-statistics/internal/apperror"
	"dodo-statistics/internal/config"
	"dodo-statistics/internal/logger"
	"dodo-statistics/internal/models"

	"github.com/go-resty/resty/v2"
)

// PublicAPIClient ходит в публичный API Dodo. Авторизация не требуется,
// достаточно узнаваемого User-Agent.
type PublicAPIClient struct {
	http        *resty.Client
	log         *logger.Logger
	concurrency int
}

// NewPublicAPIClient создает клиент публичного API
func NewPublicAPIClient(cfg *config.DodoAPIConfig, log *logger.Logger) *PublicAPIClient {
	concurrency := cfg.BatchConcurrency
	if concurrency < 1 {
		concurrency = 1
	}
	return &PublicAPIClient{
		http:        newHTTPClient(cfg.PublicAPIBaseURL, cfg),
		log:         log,
		concurrency: concurrency,
	}
}

// GetOperationalStatistics возвращает выручку и число заказов пиццерии за
// сегодня и за тот же день неделей раньше.
func (c *PublicAPIClient) GetOperationalStatistics(ctx context.Context, unitID models.UnitID) (models.OperationalStatistics, error) {
	var stats models.OperationalStatistics

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&stats).
		Get(fmt.Sprintf("/ru/api/v1/OperationalStatisticsForTodayAndWeek/%d", unitID))
	if err != nil {
		return models.OperationalStatistics{}, apperror.PublicAPI(int(unitID), 0, err)
	}
	if resp.IsError() {
		return models.OperationalStatistics{}, apperror.PublicAPI(int(unitID), resp.StatusCode(),
			fmt.Errorf("public api responded with status %d", resp.StatusCode()))
	}

	stats.UnitID = unitID
	return stats, nil
}

// GetOperationalStatisticsBatch опрашивает публичный API по всем пиццериям с
// ограниченным параллелизмом. Сбой одной пиццерии не прерывает остальных:
// её идентификатор попадает в ErrorUnitIDs.
func (c *PublicAPIClient) GetOperationalStatisticsBatch(ctx context.Context, unitIDs []models.UnitID) models.OperationalStatisticsBatch {
	var (
		mu    sync.Mutex
		wg    sync.WaitGroup
		batch models.OperationalStatisticsBatch
	)

	semaphore := make(chan struct{}, c.concurrency)
	for _, unitID := range unitIDs {
		wg.Add(1)
		go func(unitID models.UnitID) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			stats, err := c.GetOperationalStatistics(ctx, unitID)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				c.log.WithField("unit_id", unitID).WithError(err).Warn("Failed to get operational statistics")
				batch.ErrorUnitIDs = append(batch.ErrorUnitIDs, unitID)
				return
			}
			batch.Units = append(batch.Units, stats)
		}(unitID)
	}
	wg.Wait()

	sort.Slice(batch.Units, func(i, j int) bool { return batch.Units[i].UnitID < batch.Units[j].UnitID })
	sort.Slice(batch.ErrorUnitIDs, func(i, j int) bool { return batch.ErrorUnitIDs[i] < batch.ErrorUnitIDs[j] })

	return batch
}
