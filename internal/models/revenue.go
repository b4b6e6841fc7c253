package models

// DayOperationalStatistics — показатели публичного API за один день.
type DayOperationalStatistics struct {
	Revenue     int `json:"revenue"`
	OrdersCount int `json:"orderCount"`
}

// OperationalStatistics — ответ публичного API «сегодня и неделей раньше»
// по одной пиццерии.
type OperationalStatistics struct {
	UnitID     UnitID                   `json:"unitId"`
	Today      DayOperationalStatistics `json:"today"`
	WeekBefore DayOperationalStatistics `json:"weekBefore"`
}

// OperationalStatisticsBatch — успешные ответы плюс пиццерии, по которым
// публичный API вернул ошибку.
type OperationalStatisticsBatch struct {
	Units        []OperationalStatistics `json:"units"`
	ErrorUnitIDs []UnitID                `json:"error_unit_ids"`
}

// RevenueForTodayAndWeekBefore — выручка пиццерии сегодня и неделей раньше
// с дельтой в процентах.
type RevenueForTodayAndWeekBefore struct {
	UnitID              UnitID `json:"unit_id"`
	Today               int    `json:"today"`
	WeekBefore          int    `json:"week_before"`
	DeltaFromWeekBefore int    `json:"delta_from_week_before"`
}

// UnitsRevenueMetadata — суммарная выручка по всем пиццериям и дельта итогов.
type UnitsRevenueMetadata struct {
	TotalRevenueToday      int `json:"total_revenue_today"`
	TotalRevenueWeekBefore int `json:"total_revenue_week_before"`
	DeltaFromWeekBefore    int `json:"delta_from_week_before"`
}

// UnitsRevenueStatistics — выручка по пиццериям, итоги и пиццерии с ошибками.
type UnitsRevenueStatistics struct {
	Revenues     []RevenueForTodayAndWeekBefore `json:"revenues"`
	Metadata     UnitsRevenueMetadata           `json:"metadata"`
	ErrorUnitIDs []UnitID                       `json:"error_unit_ids"`
}
