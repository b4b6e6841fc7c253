package models

// StockBalance — остаток ингредиента по пиццерии в днях.
type StockBalance struct {
	UnitID         UnitID `json:"unit_id"`
	IngredientName string `json:"ingredient_name"`
	DaysLeft       int    `json:"days_left"`
}

// StockBalanceStatistics — остатки по набору пиццерий с изоляцией сбоев по юнитам.
type StockBalanceStatistics struct {
	Stocks       []StockBalance `json:"stocks"`
	ErrorUnitIDs []UnitID       `json:"error_unit_ids"`
}
