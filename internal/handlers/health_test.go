package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type stubDBHealth struct{ err error }

func (s *stubDBHealth) Health() error { return s.err }

type stubRedisHealth struct{ err error }

func (s *stubRedisHealth) Health(ctx context.Context) error { return s.err }

func TestHealthHandler_Healthy(t *testing.T) {
	handler := NewHealthHandler(&stubDBHealth{}, &stubRedisHealth{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	handler.Health(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var resp HealthResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "healthy" || resp.Services["database"] != "healthy" || resp.Services["redis"] != "healthy" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if _, ok := resp.Services["kafka"]; ok {
		t.Fatalf("kafka check must be skipped without brokers: %+v", resp.Services)
	}
}

func TestHealthHandler_UnhealthyDatabase(t *testing.T) {
	handler := NewHealthHandler(&stubDBHealth{err: errors.New("db down")}, &stubRedisHealth{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	handler.Health(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rr.Code)
	}
}

func TestHealthHandler_Readiness(t *testing.T) {
	handler := NewHealthHandler(&stubDBHealth{}, &stubRedisHealth{err: errors.New("redis down")}, nil)

	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	rr := httptest.NewRecorder()
	handler.Readiness(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rr.Code)
	}
}

func TestHealthHandler_Liveness(t *testing.T) {
	handler := NewHealthHandler(&stubDBHealth{}, &stubRedisHealth{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/live", nil)
	rr := httptest.NewRecorder()
	handler.Liveness(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestHealthHandler_MethodNotAllowed(t *testing.T) {
	handler := NewHealthHandler(&stubDBHealth{}, &stubRedisHealth{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/health", nil)
	rr := httptest.NewRecorder()
	handler.Health(rr, req)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rr.Code)
	}
}
