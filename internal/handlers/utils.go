package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"dodo-statistics/internal/models"
)

const periodQueryLayout = "2006-01-02T15:04:05"

// ErrorResponse представляет структуру ответа с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// writeJSONResponse отправляет JSON ответ
func writeJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// writeErrorResponse отправляет ответ с ошибкой
func writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	response := ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	writeJSONResponse(w, statusCode, response)
}

// parseUnitIDs разбирает параметр unit_ids: идентификаторы пиццерий через запятую.
func parseUnitIDs(r *http.Request) ([]models.UnitID, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("unit_ids"))
	if raw == "" {
		return nil, fmt.Errorf("unit_ids query parameter is required")
	}

	parts := strings.Split(raw, ",")
	unitIDs := make([]models.UnitID, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid unit id %q", part)
		}
		unitIDs = append(unitIDs, models.UnitID(id))
	}
	return unitIDs, nil
}

// parsePeriod разбирает параметры from/to; без них берётся период «сегодня».
func parsePeriod(r *http.Request) (models.Period, error) {
	query := r.URL.Query()
	fromStr, toStr := query.Get("from"), query.Get("to")
	if fromStr == "" && toStr == "" {
		return models.NewPeriodToday(), nil
	}
	if fromStr == "" || toStr == "" {
		return models.Period{}, fmt.Errorf("from and to must be passed together")
	}

	from, err := time.Parse(periodQueryLayout, fromStr)
	if err != nil {
		return models.Period{}, fmt.Errorf("invalid from value %q", fromStr)
	}
	to, err := time.Parse(periodQueryLayout, toStr)
	if err != nil {
		return models.Period{}, fmt.Errorf("invalid to value %q", toStr)
	}
	if to.Before(from) {
		return models.Period{}, fmt.Errorf("to must not be before from")
	}
	return models.Period{From: from, To: to}, nil
}

// bearerToken извлекает токен приватного API из заголовка Authorization.
func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", fmt.Errorf("Authorization header is required")
	}
	token := strings.TrimPrefix(header, "Bearer ")
	if token == header || token == "" {
		return "", fmt.Errorf("Authorization header must be a bearer token")
	}
	return token, nil
}
