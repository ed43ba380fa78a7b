package catalog

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	store    *Store
	repo     Repository
	pageSize int
}

func NewHandler(store *Store, repo Repository, pageSize int) *Handler {
	if pageSize <= 0 {
		pageSize = 12
	}
	return &Handler{store: store, repo: repo, pageSize: pageSize}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/products", h.getProducts)
	app.Get("/api/v1/product/:prodId<[0-9]+>", h.getProduct)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/catalog/reload", h.reloadCatalog)
}

// getProducts lists distinct products (one representative row per ProdID)
// with ?limit=12&offset=0 pagination.
func (h *Handler) getProducts(c *fiber.Ctx) error {
	limit := h.pageSize
	offset := 0
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 {
			limit = v
		}
	}
	if o := c.Query("offset"); o != "" {
		if v, err := strconv.Atoi(o); err == nil && v >= 0 {
			offset = v
		}
	}

	t := h.store.Table()
	seen := make(map[int64]bool)
	distinct := make([]Product, 0)
	for _, p := range t.Rows() {
		if seen[p.ProdID] {
			continue
		}
		seen[p.ProdID] = true
		distinct = append(distinct, p)
	}

	if offset >= len(distinct) {
		return c.JSON([]Product{})
	}
	end := offset + limit
	if end > len(distinct) {
		end = len(distinct)
	}
	return c.JSON(distinct[offset:end])
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	prodID, err := strconv.ParseInt(c.Params("prodId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	p, ok := h.store.Table().ProductRow(prodID)
	if !ok {
		return c.Status(fiber.StatusNotFound).SendString("Product not found")
	}
	return c.JSON(p)
}

// reloadCatalog re-reads the raw source, cleans it and swaps the canonical
// table in one step. Subsequent requests see the new snapshot.
func (h *Handler) reloadCatalog(c *fiber.Ctx) error {
	raw, err := h.repo.Load()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	rows := Clean(raw)
	h.store.Reload(NewTable(rows))

	return c.JSON(fiber.Map{
		"rawRows":     len(raw.Rows),
		"cleanRows":   len(rows),
		"droppedRows": len(raw.Rows) - len(rows),
	})
}
