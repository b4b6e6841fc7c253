package parsers

import (
	"testing"

	"dodo-statistics/internal/apperror"
)

const sectorStopSalesHTML = `
<html><body>
<table id="bootgrid-table">
  <thead><tr><th>Пиццерия</th><th>Сектор</th><th>Начало</th><th>Остановил</th><th>Конец</th><th>Возобновил</th></tr></thead>
  <tbody>
    <tr><td>Москва 1-1</td><td>Северный</td><td>07.02.2023 10:00</td><td>Иванов И.</td><td>07.02.2023 11:00</td><td>Петров П.</td></tr>
    <tr><td>Москва 1-2</td><td>Южный</td><td>07.02.2023 12:00</td><td>Сидоров С.</td><td></td><td></td></tr>
  </tbody>
</table>
</body></html>`

func TestSectorStopSalesParser(t *testing.T) {
	parser, err := NewSectorStopSalesParser(sectorStopSalesHTML)
	if err != nil {
		t.Fatalf("failed to build parser: %v", err)
	}

	stopSales, err := parser.Parse()
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(stopSales) != 2 {
		t.Fatalf("expected 2 stop sales, got %d", len(stopSales))
	}

	first := stopSales[0]
	if first.UnitName != "Москва 1-1" || first.Sector != "Северный" {
		t.Errorf("unexpected stop sale: %+v", first)
	}
	if first.StartedAt != "07.02.2023 10:00" || first.StaffNameWhoStopped != "Иванов И." || first.StaffNameWhoResumed != "Петров П." {
		t.Errorf("unexpected stop sale: %+v", first)
	}
	if stopSales[1].StaffNameWhoResumed != "" {
		t.Errorf("active stop sale must carry empty resumed name, got %q", stopSales[1].StaffNameWhoResumed)
	}
}

func TestSectorStopSalesParser_MissingTable(t *testing.T) {
	parser, err := NewSectorStopSalesParser(`<html><body><table></table></body></html>`)
	if err != nil {
		t.Fatalf("failed to build parser: %v", err)
	}

	if _, err := parser.Parse(); !apperror.Is(err, apperror.KindMarkupShape) {
		t.Fatalf("expected markup_shape error, got %v", err)
	}
}

const streetStopSalesHTML = `
<html><body>
<table id="bootgrid-table">
  <tr><th>Пиццерия</th><th>Сектор</th><th>Улица</th><th>Начало</th><th>Остановил</th><th>Конец</th><th>Возобновил</th></tr>
  <tr><td>Москва 1-1</td><td>Северный</td><td>Ленина</td><td>07.02.2023 10:00</td><td>Иванов И.</td><td></td><td></td></tr>
</table>
</body></html>`

func TestStreetStopSalesParser(t *testing.T) {
	parser, err := NewStreetStopSalesParser(streetStopSalesHTML)
	if err != nil {
		t.Fatalf("failed to build parser: %v", err)
	}

	stopSales, err := parser.Parse()
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(stopSales) != 1 {
		t.Fatalf("expected 1 stop sale, got %d", len(stopSales))
	}

	stopSale := stopSales[0]
	if stopSale.UnitName != "Москва 1-1" || stopSale.Sector != "Северный" || stopSale.Street != "Ленина" {
		t.Errorf("unexpected stop sale: %+v", stopSale)
	}
	if stopSale.StartedAt != "07.02.2023 10:00" || stopSale.StaffNameWhoStopped != "Иванов И." || stopSale.StaffNameWhoResumed != "" {
		t.Errorf("unexpected stop sale: %+v", stopSale)
	}
}

func TestStreetStopSalesParser_TooFewCells(t *testing.T) {
	html := `<html><body>
<table id="bootgrid-table">
  <tr><th>x</th></tr>
  <tr><td>Москва 1-1</td><td>Северный</td></tr>
</table>
</body></html>`

	parser, err := NewStreetStopSalesParser(html)
	if err != nil {
		t.Fatalf("failed to build parser: %v", err)
	}

	if _, err := parser.Parse(); !apperror.Is(err, apperror.KindMarkupShape) {
		t.Fatalf("expected markup_shape error, got %v", err)
	}
}
