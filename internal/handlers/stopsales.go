package handlers

import (
	"net/http"

	"dodo-statistics/internal/logger"
	"dodo-statistics/internal/models"

	"github.com/google/uuid"
)

// StopSalesHandler отдаёт стоп-продажи: ингредиенты, продукты и каналы
// продаж из приватного API, секторы и улицы из отчётов офис-менеджера.
type StopSalesHandler struct {
	stopSales StopSalesProvider
	units     UnitsProvider
	log       *logger.Logger
}

// NewStopSalesHandler создает новый обработчик стоп-продаж
func NewStopSalesHandler(stopSales StopSalesProvider, units UnitsProvider, log *logger.Logger) *StopSalesHandler {
	return &StopSalesHandler{
		stopSales: stopSales,
		units:     units,
		log:       log,
	}
}

// IngredientStopSales возвращает стоп-продажи ингредиентов за период.
func (h *StopSalesHandler) IngredientStopSales(w http.ResponseWriter, r *http.Request) {
	h.servePrivateAPIStopSales(w, r, "Failed to get ingredient stop sales", func(token string, unitUUIDs []uuid.UUID, period models.Period) (interface{}, error) {
		return h.stopSales.GetIngredientStopSales(r.Context(), token, unitUUIDs, period)
	})
}

// ProductStopSales возвращает стоп-продажи продуктов за период.
func (h *StopSalesHandler) ProductStopSales(w http.ResponseWriter, r *http.Request) {
	h.servePrivateAPIStopSales(w, r, "Failed to get product stop sales", func(token string, unitUUIDs []uuid.UUID, period models.Period) (interface{}, error) {
		return h.stopSales.GetProductStopSales(r.Context(), token, unitUUIDs, period)
	})
}

// SalesChannelStopSales возвращает стоп-продажи каналов продаж за период.
func (h *StopSalesHandler) SalesChannelStopSales(w http.ResponseWriter, r *http.Request) {
	h.servePrivateAPIStopSales(w, r, "Failed to get sales channel stop sales", func(token string, unitUUIDs []uuid.UUID, period models.Period) (interface{}, error) {
		return h.stopSales.GetSalesChannelStopSales(r.Context(), token, unitUUIDs, period)
	})
}

// SectorStopSales возвращает стоп-продажи по секторам доставки из отчёта
// офис-менеджера.
func (h *StopSalesHandler) SectorStopSales(w http.ResponseWriter, r *http.Request) {
	h.serveReportStopSales(w, r, "Failed to get sector stop sales", func(units []models.Unit, period models.Period) (interface{}, error) {
		return h.stopSales.GetSectorStopSales(r.Context(), r.Cookies(), units, period)
	})
}

// StreetStopSales возвращает стоп-продажи по улицам из отчёта офис-менеджера.
func (h *StopSalesHandler) StreetStopSales(w http.ResponseWriter, r *http.Request) {
	h.serveReportStopSales(w, r, "Failed to get street stop sales", func(units []models.Unit, period models.Period) (interface{}, error) {
		return h.stopSales.GetStreetStopSales(r.Context(), r.Cookies(), units, period)
	})
}

func (h *StopSalesHandler) servePrivateAPIStopSales(w http.ResponseWriter, r *http.Request, internalMessage string, fetch func(token string, unitUUIDs []uuid.UUID, period models.Period) (interface{}, error)) {
	if r.Method != http.MethodGet {
		writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	token, err := bearerToken(r)
	if err != nil {
		writeErrorResponse(w, http.StatusUnauthorized, err.Error())
		return
	}

	unitIDs, err := parseUnitIDs(r)
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	unitUUIDs, err := h.units.GetUnitUUIDs(r.Context(), unitIDs)
	if err != nil {
		writeServiceError(w, h.log, err, "Failed to resolve units")
		return
	}

	period, err := parsePeriod(r)
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	stopSales, err := fetch(token, unitUUIDs, period)
	if err != nil {
		writeServiceError(w, h.log, err, internalMessage)
		return
	}

	writeJSONResponse(w, http.StatusOK, stopSales)
}

func (h *StopSalesHandler) serveReportStopSales(w http.ResponseWriter, r *http.Request, internalMessage string, fetch func(units []models.Unit, period models.Period) (interface{}, error)) {
	if r.Method != http.MethodGet {
		writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	unitIDs, err := parseUnitIDs(r)
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	units, err := h.units.GetUnitsByIDs(r.Context(), unitIDs)
	if err != nil {
		writeServiceError(w, h.log, err, "Failed to resolve units")
		return
	}

	period, err := parsePeriod(r)
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	stopSales, err := fetch(units, period)
	if err != nil {
		writeServiceError(w, h.log, err, internalMessage)
		return
	}

	writeJSONResponse(w, http.StatusOK, stopSales)
}
