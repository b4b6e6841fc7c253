package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderPartial — строка из списка заказов менеджера смены.
type OrderPartial struct {
	UUID   uuid.UUID `json:"uuid"`
	Number string    `json:"number"`
	Price  int       `json:"price"`
	Type   string    `json:"type"`
}

// Ref возвращает контекст заказа для запроса страницы деталей.
func (o OrderPartial) Ref() OrderRef {
	return OrderRef{UUID: o.UUID, Price: o.Price, Type: o.Type}
}

// OrderRef — минимальный контекст заказа, который переживает сбой загрузки
// страницы деталей.
type OrderRef struct {
	UUID  uuid.UUID `json:"uuid"`
	Price int       `json:"price"`
	Type  string    `json:"type"`
}

// OrderDetail — детали заказа со страницы менеджера смены. CreatedAt берётся
// из события приёма заказа, ReceiptPrintedAt — из события отклонения, но
// только если перед ним был закрыт чек на возврат.
type OrderDetail struct {
	UUID             uuid.UUID  `json:"uuid"`
	Number           string     `json:"number"`
	UnitName         string     `json:"unit_name"`
	CreatedAt        *time.Time `json:"created_at"`
	ReceiptPrintedAt *time.Time `json:"receipt_printed_at"`
	Price            int        `json:"price"`
	Type             string     `json:"type"`
}

// RestaurantOrder — заказ ресторана из отчёта офис-менеджера.
type RestaurantOrder struct {
	Number string `json:"number"`
	Price  int    `json:"price"`
	Type   string `json:"type"`
}

// UnitRestaurantOrders — заказы ресторана, сгруппированные по пиццерии.
type UnitRestaurantOrders struct {
	UnitID   UnitID            `json:"unit_id"`
	UnitName string            `json:"unit_name"`
	Orders   []RestaurantOrder `json:"orders"`
}

// CanceledOrdersStatistics — детали отменённых заказов плюс заказы, страницы
// которых не удалось получить или разобрать.
type CanceledOrdersStatistics struct {
	Orders       []OrderDetail `json:"orders"`
	FailedOrders []OrderRef    `json:"failed_orders"`
}
