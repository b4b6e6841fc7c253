package database

import (
	"context"
	"testing"

	"dodo-statistics/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })
	return &DB{DB: sqlDB}, mock
}

func TestListUnits(t *testing.T) {
	db, mock := newTestDB(t)

	firstUUID := uuid.New()
	secondUUID := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "name", "uuid"}).
		AddRow(1, "Москва 1-1", firstUUID.String()).
		AddRow(2, "Москва 1-2", secondUUID.String())
	mock.ExpectQuery("SELECT id, name, uuid").WillReturnRows(rows)

	units, err := db.ListUnits(context.Background())
	if err != nil {
		t.Fatalf("list units failed: %v", err)
	}
	if len(units) != 2 {
		t.Fatalf("expected 2 units, got %d", len(units))
	}
	if units[0].ID != 1 || units[0].Name != "Москва 1-1" || units[0].UUID != firstUUID {
		t.Errorf("unexpected unit: %+v", units[0])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetUnitsByIDs(t *testing.T) {
	db, mock := newTestDB(t)

	unitUUID := uuid.New()
	rows := sqlmock.NewRows([]string{"id", "name", "uuid"}).
		AddRow(2, "Москва 1-2", unitUUID.String())
	mock.ExpectQuery("WHERE id = ANY").WillReturnRows(rows)

	units, err := db.GetUnitsByIDs(context.Background(), []models.UnitID{2})
	if err != nil {
		t.Fatalf("get units failed: %v", err)
	}
	if len(units) != 1 || units[0].ID != 2 {
		t.Fatalf("unexpected units: %+v", units)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetUnitsByIDs_Empty(t *testing.T) {
	db, _ := newTestDB(t)

	units, err := db.GetUnitsByIDs(context.Background(), nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if units != nil {
		t.Fatalf("expected nil result, got %+v", units)
	}
}
