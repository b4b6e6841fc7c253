package database

import (
	"context"
	"fmt"

	"dodo-statistics/internal/models"

	"github.com/lib/pq"
)

// ListUnits возвращает справочник пиццерий, отсортированный по идентификатору.
func (db *DB) ListUnits(ctx context.Context) ([]models.Unit, error) {
	query := `
		SELECT id, name, uuid
		FROM units
		ORDER BY id ASC
	`

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load units: %w", err)
	}
	defer rows.Close()

	var units []models.Unit
	for rows.Next() {
		var unit models.Unit
		if err := rows.Scan(&unit.ID, &unit.Name, &unit.UUID); err != nil {
			return nil, fmt.Errorf("failed to scan unit: %w", err)
		}
		units = append(units, unit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate units: %w", err)
	}

	return units, nil
}

// GetUnitsByIDs возвращает пиццерии с перечисленными идентификаторами.
func (db *DB) GetUnitsByIDs(ctx context.Context, unitIDs []models.UnitID) ([]models.Unit, error) {
	if len(unitIDs) == 0 {
		return nil, nil
	}

	ids := make([]int64, 0, len(unitIDs))
	for _, unitID := range unitIDs {
		ids = append(ids, int64(unitID))
	}

	query := `
		SELECT id, name, uuid
		FROM units
		WHERE id = ANY($1)
		ORDER BY id ASC
	`

	rows, err := db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to load units by ids: %w", err)
	}
	defer rows.Close()

	var units []models.Unit
	for rows.Next() {
		var unit models.Unit
		if err := rows.Scan(&unit.ID, &unit.Name, &unit.UUID); err != nil {
			return nil, fmt.Errorf("failed to scan unit: %w", err)
		}
		units = append(units, unit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate units: %w", err)
	}

	return units, nil
}
