package catalog

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func seedProducts() []Product {
	return []Product{
		{UserID: 1, ProdID: 10, Name: "Shampoo", Brand: "Acme", Rating: 4, ReviewCount: 25, ImageURL: "http://img/a.jpg"},
		{UserID: 2, ProdID: 10, Name: "Shampoo", Brand: "Acme", Rating: 5, ReviewCount: 25, ImageURL: "http://img/a.jpg"},
		{UserID: 2, ProdID: 11, Name: "Soap", Brand: "Acme", Rating: 3.5, ReviewCount: 10, ImageURL: "http://img/b.jpg"},
	}
}

func TestGetProducts_DeduplicatesByProdID(t *testing.T) {
	store := NewStore(NewTable(seedProducts()))
	h := NewHandler(store, NewInMemoryRepository(RawTable{}), 12)
	app := fiber.New()
	h.RegisterPublicRoutes(app)

	res, err := app.Test(httptest.NewRequest("GET", "/api/v1/products", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	body, _ := io.ReadAll(res.Body)
	str := string(body)
	if strings.Count(str, `"Shampoo"`) != 1 {
		t.Fatalf("expected one Shampoo entry, body: %s", str)
	}
	if !strings.Contains(str, `"Soap"`) {
		t.Fatalf("missing Soap entry, body: %s", str)
	}
}

func TestGetProduct_Detail(t *testing.T) {
	store := NewStore(NewTable(seedProducts()))
	h := NewHandler(store, NewInMemoryRepository(RawTable{}), 12)
	app := fiber.New()
	h.RegisterPublicRoutes(app)

	res, err := app.Test(httptest.NewRequest("GET", "/api/v1/product/11", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	body, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(body), `"Soap"`) {
		t.Fatalf("unexpected body: %s", body)
	}

	res404, _ := app.Test(httptest.NewRequest("GET", "/api/v1/product/999", nil))
	if res404.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown product, got %d", res404.StatusCode)
	}
}

func TestReloadCatalog_SwapsTable(t *testing.T) {
	store := NewStore(NewTable(seedProducts()))
	repo := NewInMemoryRepository(RawTable{
		Columns: allColumns(),
		Rows: []RawProduct{{
			ID: sp("5"), ProdID: sp("20"), Name: sp("Lotion"), Brand: sp("Acme"),
			Rating: sp("4.8"), ReviewCount: sp("3"), ImageURL: sp("http://img/c.jpg"),
		}},
	})
	h := NewHandler(store, repo, 12)
	app := fiber.New()
	h.RegisterPublicRoutes(app)
	h.RegisterProtectedRoutes(app)

	res, err := app.Test(httptest.NewRequest("POST", "/api/v1/catalog/reload", nil))
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if res.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	if store.Table().Len() != 1 {
		t.Fatalf("expected reloaded table with 1 row, got %d", store.Table().Len())
	}
	if _, ok := store.Table().ProductRow(20); !ok {
		t.Fatalf("reloaded table missing new product")
	}
}
