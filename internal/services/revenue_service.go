package services

import (
	"context"

	"dodo-statistics/internal/apperror"
	"dodo-statistics/internal/calc"
	"dodo-statistics/internal/dodoapi"
	"dodo-statistics/internal/logger"
	"dodo-statistics/internal/models"
)

type operationalStatisticsAPI interface {
	GetOperationalStatisticsBatch(ctx context.Context, unitIDs []models.UnitID) models.OperationalStatisticsBatch
}

// RevenueService считает выручку пиццерий по данным публичного API.
type RevenueService struct {
	publicAPI operationalStatisticsAPI
	log       *logger.Logger
}

// NewRevenueService создает новый сервис статистики выручки
func NewRevenueService(publicAPI *dodoapi.PublicAPIClient, log *logger.Logger) *RevenueService {
	return &RevenueService{publicAPI: publicAPI, log: log}
}

// GetRevenueStatistics возвращает выручку по пиццериям с дельтами к прошлой
// неделе и итогами по всей выборке. Пиццерии, по которым публичный API
// ответил ошибкой, перечисляются отдельно и в итоги не входят.
func (s *RevenueService) GetRevenueStatistics(ctx context.Context, unitIDs []models.UnitID) (models.UnitsRevenueStatistics, error) {
	if len(unitIDs) == 0 {
		return models.UnitsRevenueStatistics{}, apperror.Validation("at least one unit id is required")
	}

	batch := s.publicAPI.GetOperationalStatisticsBatch(ctx, unitIDs)

	revenues := make([]models.RevenueForTodayAndWeekBefore, 0, len(batch.Units))
	for _, stats := range batch.Units {
		revenues = append(revenues, models.RevenueForTodayAndWeekBefore{
			UnitID:              stats.UnitID,
			Today:               stats.Today.Revenue,
			WeekBefore:          stats.WeekBefore.Revenue,
			DeltaFromWeekBefore: calc.RevenueDeltaInPercents(stats.Today.Revenue, stats.WeekBefore.Revenue),
		})
	}

	return models.UnitsRevenueStatistics{
		Revenues:     revenues,
		Metadata:     calc.RevenueMetadata(revenues),
		ErrorUnitIDs: batch.ErrorUnitIDs,
	}, nil
}
