package handlers

import (
	"net/http"

	"dodo-statistics/internal/logger"
	"dodo-statistics/internal/models"

	"github.com/google/uuid"
)

// StatisticsHandler отдаёт статистику пиццерий: выручку, срезы кухни и
// доставки, заказы ресторана, отменённые заказы и сертификаты за опоздание.
// Сессионные cookie Dodo IS пробрасываются из входящего запроса, токен
// приватного API берётся из заголовка Authorization.
type StatisticsHandler struct {
	units        UnitsProvider
	revenue      RevenueProvider
	partials     PartialStatisticsProvider
	orders       OrdersProvider
	certificates CertificatesProvider
	delivery     DeliveryProvider
	log          *logger.Logger
}

// NewStatisticsHandler создает новый обработчик статистики
func NewStatisticsHandler(units UnitsProvider, revenue RevenueProvider, partials PartialStatisticsProvider, orders OrdersProvider, certificates CertificatesProvider, delivery DeliveryProvider, log *logger.Logger) *StatisticsHandler {
	return &StatisticsHandler{
		units:        units,
		revenue:      revenue,
		partials:     partials,
		orders:       orders,
		certificates: certificates,
		delivery:     delivery,
		log:          log,
	}
}

// RevenueStatistics возвращает выручку пиццерий по данным публичного API.
func (h *StatisticsHandler) RevenueStatistics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	unitIDs, err := parseUnitIDs(r)
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	stats, err := h.revenue.GetRevenueStatistics(r.Context(), unitIDs)
	if err != nil {
		writeServiceError(w, h.log, err, "Failed to get revenue statistics")
		return
	}

	writeJSONResponse(w, http.StatusOK, stats)
}

// KitchenStatistics возвращает срезы операционной статистики кухни.
func (h *StatisticsHandler) KitchenStatistics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	unitIDs, err := parseUnitIDs(r)
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	batch, err := h.partials.GetKitchenStatistics(r.Context(), r.Cookies(), unitIDs)
	if err != nil {
		writeServiceError(w, h.log, err, "Failed to get kitchen statistics")
		return
	}

	writeJSONResponse(w, http.StatusOK, batch)
}

// DeliveryPartialStatistics возвращает срезы операционной статистики доставки.
func (h *StatisticsHandler) DeliveryPartialStatistics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	unitIDs, err := parseUnitIDs(r)
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	batch, err := h.partials.GetDeliveryStatistics(r.Context(), r.Cookies(), unitIDs)
	if err != nil {
		writeServiceError(w, h.log, err, "Failed to get delivery statistics")
		return
	}

	writeJSONResponse(w, http.StatusOK, batch)
}

// RestaurantOrders возвращает заказы ресторана по пиццериям за сегодня.
func (h *StatisticsHandler) RestaurantOrders(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	units, ok := h.resolveUnits(w, r)
	if !ok {
		return
	}

	orders, err := h.orders.GetRestaurantOrders(r.Context(), r.Cookies(), units)
	if err != nil {
		writeServiceError(w, h.log, err, "Failed to get restaurant orders")
		return
	}

	writeJSONResponse(w, http.StatusOK, orders)
}

// CanceledOrders возвращает детали отменённых заказов смены за сегодня.
func (h *StatisticsHandler) CanceledOrders(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	stats, err := h.orders.GetCanceledOrders(r.Context(), r.Cookies())
	if err != nil {
		writeServiceError(w, h.log, err, "Failed to get canceled orders")
		return
	}

	writeJSONResponse(w, http.StatusOK, stats)
}

// BeingLateCertificates возвращает сертификаты за опоздание «сегодня и
// неделю назад» по пиццериям.
func (h *StatisticsHandler) BeingLateCertificates(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	units, ok := h.resolveUnits(w, r)
	if !ok {
		return
	}

	certificates, err := h.certificates.GetBeingLateCertificates(r.Context(), r.Cookies(), units)
	if err != nil {
		writeServiceError(w, h.log, err, "Failed to get being late certificates")
		return
	}

	writeJSONResponse(w, http.StatusOK, certificates)
}

// DeliveryStatistics возвращает статистику доставки приватного API с
// расчётными метриками.
func (h *StatisticsHandler) DeliveryStatistics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	token, unitUUIDs, period, ok := h.resolvePrivateAPIRequest(w, r)
	if !ok {
		return
	}

	statistics, err := h.delivery.GetDeliveryStatistics(r.Context(), token, unitUUIDs, period)
	if err != nil {
		writeServiceError(w, h.log, err, "Failed to get delivery statistics")
		return
	}

	writeJSONResponse(w, http.StatusOK, statistics)
}

// OrdersHandoverTime возвращает времена выдачи заказов приватного API.
func (h *StatisticsHandler) OrdersHandoverTime(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	token, unitUUIDs, period, ok := h.resolvePrivateAPIRequest(w, r)
	if !ok {
		return
	}

	handoverTimes, err := h.delivery.GetOrdersHandoverTime(r.Context(), token, unitUUIDs, period)
	if err != nil {
		writeServiceError(w, h.log, err, "Failed to get orders handover time")
		return
	}

	writeJSONResponse(w, http.StatusOK, handoverTimes)
}

func (h *StatisticsHandler) resolveUnits(w http.ResponseWriter, r *http.Request) ([]models.Unit, bool) {
	unitIDs, err := parseUnitIDs(r)
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return nil, false
	}

	units, err := h.units.GetUnitsByIDs(r.Context(), unitIDs)
	if err != nil {
		writeServiceError(w, h.log, err, "Failed to resolve units")
		return nil, false
	}
	return units, true
}

func (h *StatisticsHandler) resolvePrivateAPIRequest(w http.ResponseWriter, r *http.Request) (string, []uuid.UUID, models.Period, bool) {
	token, err := bearerToken(r)
	if err != nil {
		writeErrorResponse(w, http.StatusUnauthorized, err.Error())
		return "", nil, models.Period{}, false
	}

	unitIDs, err := parseUnitIDs(r)
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return "", nil, models.Period{}, false
	}

	unitUUIDs, err := h.units.GetUnitUUIDs(r.Context(), unitIDs)
	if err != nil {
		writeServiceError(w, h.log, err, "Failed to resolve units")
		return "", nil, models.Period{}, false
	}

	period, err := parsePeriod(r)
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return "", nil, models.Period{}, false
	}
	return token, unitUUIDs, period, true
}
