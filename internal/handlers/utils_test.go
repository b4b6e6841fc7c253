package handlers

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"dodo-statistics/internal/models"
)

func TestParseUnitIDs(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?unit_ids=1,2,%203", nil)
	unitIDs, err := parseUnitIDs(req)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !reflect.DeepEqual(unitIDs, []models.UnitID{1, 2, 3}) {
		t.Fatalf("unexpected unit ids: %v", unitIDs)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	if _, err := parseUnitIDs(req); err == nil {
		t.Fatalf("expected error for missing unit_ids")
	}

	req = httptest.NewRequest(http.MethodGet, "/?unit_ids=1,abc", nil)
	if _, err := parseUnitIDs(req); err == nil {
		t.Fatalf("expected error for non-numeric unit id")
	}
}

func TestParsePeriod(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?from=2023-02-07T00:00:00&to=2023-02-07T12:00:00", nil)
	period, err := parsePeriod(req)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if period.From.Hour() != 0 || period.To.Hour() != 12 {
		t.Fatalf("unexpected period: %+v", period)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	period, err = parsePeriod(req)
	if err != nil {
		t.Fatalf("expected default period, got %v", err)
	}
	if period.From.IsZero() || period.To.Before(period.From) {
		t.Fatalf("unexpected default period: %+v", period)
	}

	req = httptest.NewRequest(http.MethodGet, "/?from=2023-02-07T00:00:00", nil)
	if _, err := parsePeriod(req); err == nil {
		t.Fatalf("expected error for from without to")
	}

	req = httptest.NewRequest(http.MethodGet, "/?from=2023-02-07T12:00:00&to=2023-02-07T00:00:00", nil)
	if _, err := parsePeriod(req); err == nil {
		t.Fatalf("expected error for inverted period")
	}
}

func TestBearerToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer secret")
	token, err := bearerToken(req)
	if err != nil || token != "secret" {
		t.Fatalf("unexpected token: %q err=%v", token, err)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	if _, err := bearerToken(req); err == nil {
		t.Fatalf("expected error without header")
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic abc")
	if _, err := bearerToken(req); err == nil {
		t.Fatalf("expected error for non-bearer scheme")
	}
}

func TestWriteJSONResponse(t *testing.T) {
	rr := httptest.NewRecorder()
	writeJSONResponse(rr, http.StatusOK, map[string]string{"ok": "true"})

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content-type: %s", ct)
	}
	if body := rr.Body.String(); body == "" {
		t.Fatalf("empty body")
	}
}
