package handlers

import (
	"net/http"

	"dodo-statistics/internal/logger"
	"dodo-statistics/internal/redis"
)

// CacheHandler управляет ручной инвалидацией закешированной статистики.
type CacheHandler struct {
	cache CacheInvalidator
	log   *logger.Logger
}

// NewCacheHandler создает новый обработчик инвалидации кеша
func NewCacheHandler(cache CacheInvalidator, log *logger.Logger) *CacheHandler {
	return &CacheHandler{cache: cache, log: log}
}

// InvalidateCache удаляет закешированную статистику по виду ключа. С
// параметром unit_ids удаляются только перечисленные пиццерии, без него —
// все ключи этого вида.
func (h *CacheHandler) InvalidateCache(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	kind := r.URL.Query().Get("kind")
	switch kind {
	case redis.KeyKindRestaurantOrders, redis.KeyKindBeingLateCertificates, redis.KeyKindStocksBalance:
	default:
		writeErrorResponse(w, http.StatusBadRequest, "Unknown cache kind")
		return
	}

	if r.URL.Query().Get("unit_ids") == "" {
		if err := h.cache.DeleteByPrefix(r.Context(), kind+"@"); err != nil {
			h.log.WithError(err).WithField("kind", kind).Error("Failed to invalidate cache by prefix")
			writeErrorResponse(w, http.StatusInternalServerError, "Failed to invalidate cache")
			return
		}
		writeJSONResponse(w, http.StatusOK, map[string]interface{}{"kind": kind})
		return
	}

	unitIDs, err := parseUnitIDs(r)
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	removed := 0
	for _, unitID := range unitIDs {
		key := redis.Key(kind, unitID)
		exists, err := h.cache.Exists(r.Context(), key)
		if err != nil {
			h.log.WithError(err).WithField("key", key).Error("Failed to check cache key")
			writeErrorResponse(w, http.StatusInternalServerError, "Failed to invalidate cache")
			return
		}
		if !exists {
			continue
		}
		if err := h.cache.Delete(r.Context(), key); err != nil {
			h.log.WithError(err).WithField("key", key).Error("Failed to delete cache key")
			writeErrorResponse(w, http.StatusInternalServerError, "Failed to invalidate cache")
			return
		}
		removed++
	}

	writeJSONResponse(w, http.StatusOK, map[string]interface{}{"kind": kind, "removed": removed})
}
