package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"dodo-statistics/internal/redis"
)

type fakeCacheInvalidator struct {
	keys          map[string]bool
	deleted       []string
	prefixDeletes []string
	deleteErr     error
}

func (f *fakeCacheInvalidator) Delete(_ context.Context, key string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.keys, key)
	f.deleted = append(f.deleted, key)
	return nil
}

func (f *fakeCacheInvalidator) Exists(_ context.Context, key string) (bool, error) {
	return f.keys[key], nil
}

func (f *fakeCacheInvalidator) DeleteByPrefix(_ context.Context, prefix string) error {
	f.prefixDeletes = append(f.prefixDeletes, prefix)
	return nil
}

func TestCacheHandler_InvalidateByUnits(t *testing.T) {
	cache := &fakeCacheInvalidator{keys: map[string]bool{
		redis.Key(redis.KeyKindRestaurantOrders, 1): true,
		redis.Key(redis.KeyKindRestaurantOrders, 3): true,
	}}
	handler := NewCacheHandler(cache, testLogger())

	req := httptest.NewRequest(http.MethodDelete, "/api/cache?kind=restaurant_orders&unit_ids=1,2,3", nil)
	rr := httptest.NewRecorder()
	handler.InvalidateCache(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var resp struct {
		Kind    string `json:"kind"`
		Removed int    `json:"removed"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Kind != redis.KeyKindRestaurantOrders || resp.Removed != 2 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if len(cache.deleted) != 2 {
		t.Fatalf("expected 2 deletes for existing keys only, got %v", cache.deleted)
	}
	if len(cache.prefixDeletes) != 0 {
		t.Fatalf("prefix delete must not run when unit_ids given: %v", cache.prefixDeletes)
	}
}

func TestCacheHandler_InvalidateAllOfKind(t *testing.T) {
	cache := &fakeCacheInvalidator{keys: map[string]bool{}}
	handler := NewCacheHandler(cache, testLogger())

	req := httptest.NewRequest(http.MethodDelete, "/api/cache?kind=stocks_balance", nil)
	rr := httptest.NewRecorder()
	handler.InvalidateCache(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if len(cache.prefixDeletes) != 1 || cache.prefixDeletes[0] != "stocks_balance@" {
		t.Fatalf("expected prefix delete for stocks_balance@, got %v", cache.prefixDeletes)
	}
}

func TestCacheHandler_UnknownKind(t *testing.T) {
	handler := NewCacheHandler(&fakeCacheInvalidator{keys: map[string]bool{}}, testLogger())

	req := httptest.NewRequest(http.MethodDelete, "/api/cache?kind=couriers", nil)
	rr := httptest.NewRecorder()
	handler.InvalidateCache(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown kind, got %d", rr.Code)
	}
}

func TestCacheHandler_DeleteError(t *testing.T) {
	cache := &fakeCacheInvalidator{
		keys:      map[string]bool{redis.Key(redis.KeyKindStocksBalance, 1): true},
		deleteErr: errors.New("redis down"),
	}
	handler := NewCacheHandler(cache, testLogger())

	req := httptest.NewRequest(http.MethodDelete, "/api/cache?kind=stocks_balance&unit_ids=1", nil)
	rr := httptest.NewRecorder()
	handler.InvalidateCache(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
}

func TestCacheHandler_MethodNotAllowed(t *testing.T) {
	handler := NewCacheHandler(&fakeCacheInvalidator{keys: map[string]bool{}}, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/cache?kind=stocks_balance", nil)
	rr := httptest.NewRecorder()
	handler.InvalidateCache(rr, req)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rr.Code)
	}
}
