// Package dodoapi содержит клиенты внешних поверхностей Dodo IS: публичного
// и приватного JSON API и HTML-страниц офис-менеджера и менеджера смены.
//
// Клиенты не интерпретируют разметку сами: HTML передаётся парсерам из
// пакета parsers, а ошибки транспорта и статусов помечаются видами ошибок
// соответствующей поверхности.
package dodoapi

import (
	"strings"
	"time"

	"dodo-statistics/internal/config"
	"dodo-statistics/internal/models"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const (
	// Формат дат в отчётных формах офис-менеджера.
	reportDateLayout = "02.01.2006"

	// Формат меток времени приватного API (локальное время пиццерии).
	privateAPITimeLayout = "2006-01-02T15:04:05"
)

func newHTTPClient(baseURL string, cfg *config.DodoAPIConfig) *resty.Client {
	return resty.New().
		SetBaseURL(baseURL).
		SetTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second).
		SetHeader("User-Agent", cfg.UserAgent)
}

// joinUnitUUIDs собирает параметр units приватного API: uuid без дефисов
// через запятую.
func joinUnitUUIDs(unitUUIDs []uuid.UUID) string {
	parts := make([]string, 0, len(unitUUIDs))
	for _, unitUUID := range unitUUIDs {
		parts = append(parts, strings.ReplaceAll(unitUUID.String(), "-", ""))
	}
	return strings.Join(parts, ",")
}

func formatPeriod(period models.Period) (from, to string) {
	return period.From.Format(reportDateLayout), period.To.Format(reportDateLayout)
}
