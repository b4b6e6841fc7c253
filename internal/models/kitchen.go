package models

// KitchenRevenue — выручка кухни за час и дельта к прошлой неделе в процентах.
type KitchenRevenue struct {
	PerHour             int `json:"per_hour"`
	DeltaFromWeekBefore int `json:"delta_from_week_before"`
}

// ProductSpending — расход продуктов за час и дельта к прошлой неделе.
type ProductSpending struct {
	PerHour             int `json:"per_hour"`
	DeltaFromWeekBefore int `json:"delta_from_week_before"`
}

// KitchenTracking — счётчики трекинга продуктов на кухне.
type KitchenTracking struct {
	Postponed int `json:"postponed"`
	InQueue   int `json:"in_queue"`
	InWork    int `json:"in_work"`
}

// KitchenPartialStatistics — срез операционной статистики кухни одной пиццерии,
// извлечённый со страницы офис-менеджера.
type KitchenPartialStatistics struct {
	UnitID             UnitID          `json:"unit_id"`
	Revenue            KitchenRevenue  `json:"revenue"`
	ProductSpending    ProductSpending `json:"product_spending"`
	AverageCookingTime int             `json:"average_cooking_time"`
	Tracking           KitchenTracking `json:"tracking"`
}

// KitchenStatisticsBatch — результаты по набору пиццерий с изоляцией сбоев по юнитам.
type KitchenStatisticsBatch struct {
	Units        []KitchenPartialStatistics `json:"units"`
	ErrorUnitIDs []UnitID                   `json:"error_unit_ids"`
}
