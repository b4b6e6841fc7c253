package handlers

import (
	"net/http"

	"dodo-statistics/internal/logger"
)

// UnitsHandler отдаёт справочник пиццерий.
type UnitsHandler struct {
	units UnitsProvider
	log   *logger.Logger
}

// NewUnitsHandler создает новый обработчик справочника
func NewUnitsHandler(units UnitsProvider, log *logger.Logger) *UnitsHandler {
	return &UnitsHandler{units: units, log: log}
}

// GetUnits возвращает все пиццерии справочника.
func (h *UnitsHandler) GetUnits(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	units, err := h.units.GetUnits(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "Failed to get units")
		return
	}

	writeJSONResponse(w, http.StatusOK, units)
}
