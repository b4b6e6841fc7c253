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

type stocksAPI interface {
	GetStocksBalance(ctx context.Context, cookies []*http.Cookie, unitID models.UnitID) ([]models.StockBalance, error)
}

// StocksService собирает остатки ингредиентов по пиццериям с кешированием
// по каждой пиццерии.
type StocksService struct {
	officeManager stocksAPI
	cache         cacheStore
	log           *logger.Logger
	stocksTTL     time.Duration
}

// NewStocksService создает новый сервис остатков ингредиентов
func NewStocksService(officeManager *dodoapi.OfficeManagerClient, cache *redis.Client, log *logger.Logger, cfg *config.CacheConfig) *StocksService {
	return &StocksService{
		officeManager: officeManager,
		cache:         cache,
		log:           log,
		stocksTTL:     time.Duration(cfg.StocksTTLMinutes) * time.Minute,
	}
}

// GetStockBalances возвращает остатки по всем запрошенным пиццериям. Сбой
// одной пиццерии попадает в ErrorUnitIDs, не прерывая остальных.
func (s *StocksService) GetStockBalances(ctx context.Context, cookies []*http.Cookie, unitIDs []models.UnitID) (models.StockBalanceStatistics, error) {
	if len(unitIDs) == 0 {
		return models.StockBalanceStatistics{}, apperror.Validation("at least one unit id is required")
	}

	var stats models.StockBalanceStatistics
	for _, unitID := range unitIDs {
		key := redis.Key(redis.KeyKindStocksBalance, unitID)

		var cached []models.StockBalance
		if err := s.cache.Get(ctx, key, &cached); err == nil {
			stats.Stocks = append(stats.Stocks, cached...)
			continue
		} else if !apperror.Is(err, apperror.KindCacheMiss) {
			s.log.WithError(err).WithField("key", key).Warn("Cache read failed, treating as miss")
		}

		stocks, err := s.officeManager.GetStocksBalance(ctx, cookies, unitID)
		if err != nil {
			s.log.WithError(err).WithField("unit_id", unitID).Warn("Failed to get stocks balance")
			stats.ErrorUnitIDs = append(stats.ErrorUnitIDs, unitID)
			continue
		}

		if err := s.cache.Set(ctx, key, stocks, s.stocksTTL); err != nil {
			s.log.WithError(err).WithField("key", key).Warn("Failed to cache stocks balance")
		}
		stats.Stocks = append(stats.Stocks, stocks...)
	}
	return stats, nil
}
