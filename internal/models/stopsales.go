package models

import (
	"time"

	"github.com/google/uuid"
)

// StopSale — общая часть стоп-продажи из приватного API. EndedAt и
// StaffNameWhoResumed отсутствуют, пока стоп не снят.
type StopSale struct {
	UnitUUID            uuid.UUID  `json:"unitId"`
	UnitName            string     `json:"unitName"`
	Reason              string     `json:"reason"`
	StartedAt           time.Time  `json:"startedAt"`
	EndedAt             *time.Time `json:"endedAt"`
	StaffNameWhoStopped string     `json:"staffNameWhoStopped"`
	StaffNameWhoResumed *string    `json:"staffNameWhoResumed"`
}

// Active сообщает, действует ли стоп-продажа до сих пор.
func (s StopSale) Active() bool {
	return s.EndedAt == nil
}

// StopSaleByIngredient — стоп-продажа конкретного ингредиента.
type StopSaleByIngredient struct {
	StopSale
	IngredientName string `json:"ingredientName"`
}

// StopSaleByProduct — стоп-продажа конкретного продукта.
type StopSaleByProduct struct {
	StopSale
	ProductName string `json:"productName"`
}

// StopSaleBySalesChannel — стоп-продажа канала продаж.
type StopSaleBySalesChannel struct {
	StopSale
	SalesChannelName string `json:"salesChannelName"`
}

// StopSaleBySector — стоп-продажа по сектору со страницы отчёта; значения
// остаются сырым текстом, как в разметке.
type StopSaleBySector struct {
	UnitName            string `json:"unit_name"`
	Sector              string `json:"sector"`
	StartedAt           string `json:"started_at"`
	StaffNameWhoStopped string `json:"staff_name_who_stopped"`
	StaffNameWhoResumed string `json:"staff_name_who_resumed"`
}

// StopSaleByStreet — стоп-продажа по улице со страницы отчёта.
type StopSaleByStreet struct {
	UnitName            string `json:"unit_name"`
	Sector              string `json:"sector"`
	Street              string `json:"street"`
	StartedAt           string `json:"started_at"`
	StaffNameWhoStopped string `json:"staff_name_who_stopped"`
	StaffNameWhoResumed string `json:"staff_name_who_resumed"`
}

// StopSaleEventType — тип предмета стоп-продажи в событии Kafka.
type StopSaleEventType string

const (
	StopSaleEventIngredient   StopSaleEventType = "ingredient"
	StopSaleEventProduct      StopSaleEventType = "product"
	StopSaleEventSalesChannel StopSaleEventType = "sales_channel"
)

// StopSaleEvent публикуется в Kafka для каждой действующей стоп-продажи.
type StopSaleEvent struct {
	ID                  uuid.UUID         `json:"id"`
	Type                StopSaleEventType `json:"type"`
	UnitUUID            uuid.UUID         `json:"unit_uuid"`
	UnitName            string            `json:"unit_name"`
	Subject             string            `json:"subject"`
	Reason              string            `json:"reason"`
	StartedAt           time.Time         `json:"started_at"`
	StaffNameWhoStopped string            `json:"staff_name_who_stopped"`
	OccurredAt          time.Time         `json:"occurred_at"`
}
