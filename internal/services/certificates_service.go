package services

import (
	"context"
	"net/http"
	"sync"
	"time"

	"dodo-statistics/internal/apperror"
	"dodo-statistics/internal/config"
	"dodo-statistics/internal/dodoapi"
	"dodo-statistics/internal/logger"
	"dodo-statistics/internal/models"
	"dodo-statistics/internal/redis"
)

type certificatesAPI interface {
	GetBeingLateCertificates(ctx context.Context, cookies []*http.Cookie, units []models.Unit, period models.Period) ([]models.UnitBeingLateCertificates, error)
}

// CertificatesService собирает статистику сертификатов за опоздание парой
// «сегодня / неделю назад» с кешированием композита по пиццериям.
type CertificatesService struct {
	officeManager   certificatesAPI
	cache           cacheStore
	log             *logger.Logger
	certificatesTTL time.Duration
}

// NewCertificatesService создает новый сервис сертификатов за опоздание
func NewCertificatesService(officeManager *dodoapi.OfficeManagerClient, cache *redis.Client, log *logger.Logger, cfg *config.CacheConfig) *CertificatesService {
	return &CertificatesService{
		officeManager:   officeManager,
		cache:           cache,
		log:             log,
		certificatesTTL: time.Duration(cfg.CertificatesTTLMinutes) * time.Minute,
	}
}

// GetBeingLateCertificates возвращает по каждой пиццерии количество
// сертификатов сегодня и неделей раньше. Недостающие в кеше пиццерии
// запрашиваются двумя параллельными отчётами (сегодня и неделю назад),
// результаты сшиваются по пиццерии с нулями по умолчанию и кешируются
// по отдельности.
func (s *CertificatesService) GetBeingLateCertificates(ctx context.Context, cookies []*http.Cookie, units []models.Unit) ([]models.BeingLateCertificatesTodayAndWeekBefore, error) {
	if len(units) == 0 {
		return nil, apperror.Validation("at least one unit is required")
	}

	var (
		result  []models.BeingLateCertificatesTodayAndWeekBefore
		missing []models.Unit
	)
	for _, unit := range units {
		key := redis.Key(redis.KeyKindBeingLateCertificates, unit.ID)
		var cached models.BeingLateCertificatesTodayAndWeekBefore
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

	var (
		wg                      sync.WaitGroup
		today, weekBefore       []models.UnitBeingLateCertificates
		todayErr, weekBeforeErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		today, todayErr = s.officeManager.GetBeingLateCertificates(ctx, cookies, missing, models.NewPeriodToday())
	}()
	go func() {
		defer wg.Done()
		weekBefore, weekBeforeErr = s.officeManager.GetBeingLateCertificates(ctx, cookies, missing, models.NewPeriodWeekBefore())
	}()
	wg.Wait()

	if todayErr != nil {
		return nil, todayErr
	}
	if weekBeforeErr != nil {
		return nil, weekBeforeErr
	}

	zipped := zipCertificates(missing, today, weekBefore)

	toCache := make(map[string]interface{}, len(zipped))
	for _, composite := range zipped {
		toCache[redis.Key(redis.KeyKindBeingLateCertificates, composite.UnitID)] = composite
	}
	if err := s.cache.SetMultiple(ctx, toCache, s.certificatesTTL); err != nil {
		s.log.WithError(err).Warn("Failed to cache being late certificates")
	}

	return append(result, zipped...), nil
}

// zipCertificates сшивает отчёты двух периодов по пиццериям. Пиццерия,
// отсутствующая в отчёте периода, получает ноль за этот период.
func zipCertificates(units []models.Unit, today, weekBefore []models.UnitBeingLateCertificates) []models.BeingLateCertificatesTodayAndWeekBefore {
	todayCounts := make(map[models.UnitID]int, len(today))
	for _, report := range today {
		todayCounts[report.UnitID] = report.BeingLateCertificatesCount
	}
	weekBeforeCounts := make(map[models.UnitID]int, len(weekBefore))
	for _, report := range weekBefore {
		weekBeforeCounts[report.UnitID] = report.BeingLateCertificatesCount
	}

	result := make([]models.BeingLateCertificatesTodayAndWeekBefore, 0, len(units))
	for _, unit := range units {
		result = append(result, models.BeingLateCertificatesTodayAndWeekBefore{
			UnitID:                      unit.ID,
			UnitName:                    unit.Name,
			CertificatesTodayCount:      todayCounts[unit.ID],
			CertificatesWeekBeforeCount: weekBeforeCounts[unit.ID],
		})
	}
	return result
}
