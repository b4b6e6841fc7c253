package services

import (
	"context"
	"fmt"

	"dodo-statistics/internal/apperror"
	"dodo-statistics/internal/database"
	"dodo-statistics/internal/logger"
	"dodo-statistics/internal/models"

	"github.com/google/uuid"
)

type unitsStore interface {
	ListUnits(ctx context.Context) ([]models.Unit, error)
	GetUnitsByIDs(ctx context.Context, unitIDs []models.UnitID) ([]models.Unit, error)
}

// UnitsService отдаёт справочник пиццерий из Postgres.
type UnitsService struct {
	db  unitsStore
	log *logger.Logger
}

// NewUnitsService создает новый сервис справочника пиццерий
func NewUnitsService(db *database.DB, log *logger.Logger) *UnitsService {
	return &UnitsService{db: db, log: log}
}

// GetUnits возвращает все пиццерии справочника.
func (s *UnitsService) GetUnits(ctx context.Context) ([]models.Unit, error) {
	return s.db.ListUnits(ctx)
}

// GetUnitsByIDs возвращает пиццерии по идентификаторам. Неизвестный
// идентификатор — это ошибка запроса, а не пустой результат.
func (s *UnitsService) GetUnitsByIDs(ctx context.Context, unitIDs []models.UnitID) ([]models.Unit, error) {
	if len(unitIDs) == 0 {
		return nil, apperror.Validation("at least one unit id is required")
	}

	units, err := s.db.GetUnitsByIDs(ctx, unitIDs)
	if err != nil {
		return nil, err
	}

	byID := models.UnitsByID(units)
	for _, unitID := range unitIDs {
		if _, ok := byID[unitID]; !ok {
			return nil, apperror.Validation(fmt.Sprintf("unknown unit id %d", unitID))
		}
	}
	return units, nil
}

// GetUnitUUIDs возвращает uuid приватного API для перечисленных пиццерий,
// сохраняя порядок запроса.
func (s *UnitsService) GetUnitUUIDs(ctx context.Context, unitIDs []models.UnitID) ([]uuid.UUID, error) {
	units, err := s.GetUnitsByIDs(ctx, unitIDs)
	if err != nil {
		return nil, err
	}

	byID := models.UnitsByID(units)
	uuids := make([]uuid.UUID, 0, len(unitIDs))
	for _, unitID := range unitIDs {
		uuids = append(uuids, byID[unitID].UUID)
	}
	return uuids, nil
}
