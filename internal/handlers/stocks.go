package handlers

import (
	"net/http"

	"dodo-statistics/internal/logger"
)

// StocksHandler отдаёт остатки ингредиентов по пиццериям.
type StocksHandler struct {
	stocks StocksProvider
	log    *logger.Logger
}

// NewStocksHandler создает новый обработчик остатков
func NewStocksHandler(stocks StocksProvider, log *logger.Logger) *StocksHandler {
	return &StocksHandler{stocks: stocks, log: log}
}

// StockBalances возвращает остатки ингредиентов в днях по пиццериям.
func (h *StocksHandler) StockBalances(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	unitIDs, err := parseUnitIDs(r)
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	stats, err := h.stocks.GetStockBalances(r.Context(), r.Cookies(), unitIDs)
	if err != nil {
		writeServiceError(w, h.log, err, "Failed to get stock balances")
		return
	}

	writeJSONResponse(w, http.StatusOK, stats)
}
