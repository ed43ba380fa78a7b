package catalog

import (
	"strings"
	"testing"
)

func TestReadCSV_MapsColumnsByHeader(t *testing.T) {
	src := `ID,ProdID,Name,Brand,Rating,ReviewCount,ImageURL,Description,Category,Tags
1,10,Shampoo,Acme,4.0,25,http://img/a.jpg,gentle,hair care,shampoo hair
2,11,Soap,Acme,3.5,,http://img/b.jpg,,,soap bath
`
	table, err := ReadCSV(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(table.Rows))
	}
	if !table.Has(ColTags) || !table.Has(ColImageURL) {
		t.Fatalf("expected all header columns to be recorded, got %v", table.Columns)
	}

	first := table.Rows[0]
	if first.ID == nil || *first.ID != "1" || first.Name == nil || *first.Name != "Shampoo" {
		t.Fatalf("unexpected first row %+v", first)
	}
	second := table.Rows[1]
	if second.ReviewCount != nil {
		t.Fatalf("empty cell should read as missing, got %q", *second.ReviewCount)
	}
	if second.Description != nil || second.Category != nil {
		t.Fatalf("empty text cells should read as missing: %+v", second)
	}
}

func TestReadCSV_DiscardsPositionalIndexColumn(t *testing.T) {
	src := `Unnamed: 0,ID,ProdID,Name,Brand,Rating
0,1,10,Shampoo,Acme,4.0
1,2,11,Soap,Acme,3.5
`
	table, err := ReadCSV(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if table.Has("Unnamed: 0") {
		t.Fatalf("positional index column must be discarded, got %v", table.Columns)
	}
	if table.Has(ColImageURL) {
		t.Fatalf("absent column reported present")
	}
	if table.Rows[1].ID == nil || *table.Rows[1].ID != "2" {
		t.Fatalf("column mapping shifted after dropping index column: %+v", table.Rows[1])
	}
}

func TestReadCSV_CleanPipeline(t *testing.T) {
	src := `ID,ProdID,Name,Brand,Rating,ReviewCount,ImageURL,Description,Category,Tags
1,10,Shampoo,Acme,4.0,25,http://img/a.jpg|http://img/x.jpg,,hair care,shampoo
2,-2147483648,Soap,Acme,3.5,10,http://img/b.jpg,,,soap
3,12,Lotion,Acme,4.2,abc,http://img/c.jpg,,,lotion
`
	table, err := ReadCSV(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rows := Clean(table)
	if len(rows) != 2 {
		t.Fatalf("expected sentinel row dropped, got %d rows", len(rows))
	}
	if rows[0].ImageURL != "http://img/a.jpg" {
		t.Fatalf("expected first URL of list, got %q", rows[0].ImageURL)
	}
	if rows[1].Name != "Lotion" || rows[1].ReviewCount != 0 {
		t.Fatalf("unexpected surviving row %+v", rows[1])
	}
}
