package catalog

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

var catalogColumns = []string{"id", "prod_id", "name", "brand", "rating", "review_count", "image_url", "description", "category", "tags"}

func TestPostgresLoad(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows(catalogColumns).
		AddRow("1", "10", "Shampoo", "Acme", "4.0", "25", "http://img/a.jpg", "gentle", "hair care", "shampoo hair").
		AddRow("2", "11", "Soap", "Acme", "3.5", nil, "http://img/b.jpg", nil, nil, "soap bath")
	mock.ExpectQuery("FROM catalog").WillReturnRows(rows)

	table, err := repo.Load()
	if err != nil {
		t.Fatalf("expected load to succeed, got %v", err)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(table.Rows))
	}
	if table.Rows[1].ReviewCount != nil {
		t.Fatalf("NULL cell should read as missing")
	}
	if !table.Has(ColTags) {
		t.Fatalf("expected all columns present, got %v", table.Columns)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresLoad_LegacyFallback(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	// simulate modern query failing (table missing)
	mock.ExpectQuery("FROM catalog").WillReturnError(errors.New("no such table"))

	rows := sqlmock.NewRows(catalogColumns).
		AddRow("1", "10", "Shampoo", "Acme", "4.0", "25", "http://img/a.jpg", "", "", "shampoo")
	mock.ExpectQuery("FROM clean_data").WillReturnRows(rows)

	table, err := repo.Load()
	if err != nil {
		t.Fatalf("expected fallback load to succeed, got %v", err)
	}
	if len(table.Rows) != 1 || table.Rows[0].Name == nil || *table.Rows[0].Name != "Shampoo" {
		t.Fatalf("unexpected fallback rows %+v", table.Rows)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresLoad_BothTablesMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("FROM catalog").WillReturnError(errors.New("no such table"))
	mock.ExpectQuery("FROM clean_data").WillReturnError(errors.New("no such table"))

	if _, err := repo.Load(); err == nil {
		t.Fatalf("expected error when both tables are missing")
	}
}
