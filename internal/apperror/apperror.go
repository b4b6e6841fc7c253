package apperror

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Kind describes a stable error category that can be mapped to HTTP status codes.
type Kind string

const (
	// Upstream Dodo IS surfaces.
	KindPublicAPI        Kind = "public_api"
	KindOfficeManagerAPI Kind = "office_manager_api"
	KindShiftManagerAPI  Kind = "shift_manager_api"
	KindPrivateAPI       Kind = "private_api"

	// KindCacheMiss is a control-flow signal consumed by batch fetchers,
	// not a user-visible failure.
	KindCacheMiss Kind = "cache_miss"

	// KindMarkupShape means an upstream page did not match the structure
	// a parser is hard-coded against.
	KindMarkupShape Kind = "markup_shape"

	// KindOrderDetail is a per-order failure carrying enough context to
	// report a best-effort partial record.
	KindOrderDetail Kind = "order_detail"

	KindValidation Kind = "validation"
)

// Error is a typed error with a stable Kind and optional diagnostic context.
// Only the fields relevant to the Kind are populated.
type Error struct {
	Kind Kind
	Msg  string
	Err  error

	UnitID     int
	Key        string
	StatusCode int
	Page       string

	OrderID    uuid.UUID
	OrderPrice int
	OrderType  string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Kind == KindCacheMiss:
		return fmt.Sprintf("object with key %q has not been found in cache", e.Key)
	case e.Msg != "":
		return e.Msg
	case e.Err != nil:
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// PublicAPI помечает ошибку публичного API Dodo, привязанную к пиццерии.
func PublicAPI(unitID int, statusCode int, err error) error {
	return &Error{Kind: KindPublicAPI, Err: err, UnitID: unitID, StatusCode: statusCode}
}

// OfficeManagerAPI помечает ошибку HTML-поверхности офис-менеджера.
func OfficeManagerAPI(unitID int, statusCode int, err error) error {
	return &Error{Kind: KindOfficeManagerAPI, Err: err, UnitID: unitID, StatusCode: statusCode}
}

// ShiftManagerAPI помечает ошибку HTML-поверхности менеджера смены.
func ShiftManagerAPI(statusCode int, err error) error {
	return &Error{Kind: KindShiftManagerAPI, Err: err, StatusCode: statusCode}
}

// PrivateAPI помечает ошибку приватного API Dodo.
func PrivateAPI(statusCode int, err error) error {
	return &Error{Kind: KindPrivateAPI, Err: err, StatusCode: statusCode}
}

// CacheMiss сигнализирует об отсутствии ключа в кеше.
func CacheMiss(key string) error {
	return &Error{Kind: KindCacheMiss, Key: key}
}

// MarkupShape сообщает, что разметка страницы не совпала с ожидаемой структурой.
func MarkupShape(page string, unitID int, msg string) error {
	return &Error{Kind: KindMarkupShape, Msg: msg, UnitID: unitID, Page: page}
}

// OrderDetail помечает сбой получения деталей заказа, сохраняя контекст заказа.
func OrderDetail(orderID uuid.UUID, price int, orderType string, err error) error {
	return &Error{Kind: KindOrderDetail, Err: err, OrderID: orderID, OrderPrice: price, OrderType: orderType}
}

// Validation помечает ошибку входных данных запроса.
func Validation(msg string) error {
	return &Error{Kind: KindValidation, Msg: msg}
}

func Is(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// As извлекает *Error из цепочки ошибок.
func As(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}
