package apperror

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestIs(t *testing.T) {
	err := PublicAPI(42, 500, errors.New("boom"))
	if !Is(err, KindPublicAPI) {
		t.Fatalf("expected public_api kind")
	}
	if Is(err, KindCacheMiss) {
		t.Fatalf("unexpected cache_miss kind")
	}
	if Is(errors.New("plain"), KindPublicAPI) {
		t.Fatalf("plain error must not match any kind")
	}
}

func TestIs_Wrapped(t *testing.T) {
	err := fmt.Errorf("fetch failed: %w", ShiftManagerAPI(503, errors.New("bad gateway")))
	if !Is(err, KindShiftManagerAPI) {
		t.Fatalf("expected shift_manager_api kind through wrapping")
	}

	e, ok := As(err)
	if !ok {
		t.Fatalf("expected As to succeed")
	}
	if e.StatusCode != 503 {
		t.Fatalf("unexpected status code: %d", e.StatusCode)
	}
}

func TestCacheMiss_CarriesKey(t *testing.T) {
	err := CacheMiss("restaurant_orders@42")

	e, ok := As(err)
	if !ok {
		t.Fatalf("expected apperror")
	}
	if e.Key != "restaurant_orders@42" {
		t.Fatalf("unexpected key: %s", e.Key)
	}
	if !strings.Contains(err.Error(), "restaurant_orders@42") {
		t.Fatalf("error text must mention the key: %s", err.Error())
	}
}

func TestOrderDetail_CarriesOrderContext(t *testing.T) {
	orderID := uuid.New()
	err := OrderDetail(orderID, 1234, "Доставка", errors.New("page failed"))

	e, ok := As(err)
	if !ok {
		t.Fatalf("expected apperror")
	}
	if e.OrderID != orderID || e.OrderPrice != 1234 || e.OrderType != "Доставка" {
		t.Fatalf("order context lost: %+v", e)
	}
	if !errors.Is(err, e.Err) {
		t.Fatalf("expected unwrap to inner error")
	}
}

func TestMarkupShape(t *testing.T) {
	err := MarkupShape("kitchen_partial", 7, "expected at least 4 panel titles, got 2")

	e, ok := As(err)
	if !ok {
		t.Fatalf("expected apperror")
	}
	if e.Page != "kitchen_partial" || e.UnitID != 7 {
		t.Fatalf("markup context lost: %+v", e)
	}
	if err.Error() != "expected at least 4 panel titles, got 2" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}

func TestError_NilSafe(t *testing.T) {
	var e *Error
	if e.Error() != "" {
		t.Fatalf("nil error must render empty string")
	}
	if e.Unwrap() != nil {
		t.Fatalf("nil error must unwrap to nil")
	}
}
