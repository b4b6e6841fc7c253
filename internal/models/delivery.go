package models

// DeliveryPerformance — производительность доставки: заказов на курьера в час
// сегодня и неделей раньше, дельта в процентах.
type DeliveryPerformance struct {
	OrdersForCourierCountPerHourToday      float64 `json:"orders_for_courier_count_per_hour_today"`
	DeltaFromWeekBefore                    int     `json:"delta_from_week_before"`
	OrdersForCourierCountPerHourWeekBefore float64 `json:"orders_for_courier_count_per_hour_week_before"`
}

// HeatedShelf — заказы на тепловой полке и их суммарное время ожидания в секундах.
type HeatedShelf struct {
	OrdersCount        int `json:"orders_count"`
	OrdersAwaitingTime int `json:"orders_awaiting_time"`
}

// Couriers — счётчики курьеров: всего на смене и в очереди.
type Couriers struct {
	InQueueCount int `json:"in_queue_count"`
	TotalCount   int `json:"total_count"`
}

// DeliveryPartialStatistics — срез операционной статистики доставки одной
// пиццерии, извлечённый со страницы офис-менеджера.
type DeliveryPartialStatistics struct {
	UnitID      UnitID              `json:"unit_id"`
	Performance DeliveryPerformance `json:"performance"`
	HeatedShelf HeatedShelf         `json:"heated_shelf"`
	Couriers    Couriers            `json:"couriers"`
}

// DeliveryStatisticsBatch — результаты по набору пиццерий с изоляцией сбоев по юнитам.
type DeliveryStatisticsBatch struct {
	Units        []DeliveryPartialStatistics `json:"units"`
	ErrorUnitIDs []UnitID                    `json:"error_unit_ids"`
}
