package search

import (
	"strings"

	"github.com/wichananm65/shop-recommender-backend/internal/catalog"
)

// DefaultLimit caps search results the way the storefront grid does.
const DefaultLimit = 20

type Service struct {
	store *catalog.Store
}

func NewService(store *catalog.Store) *Service {
	return &Service{store: store}
}

// Search matches the query case-insensitively against name, brand and
// category, de-duplicates by product name and caps the result at limit.
// An empty query returns no results.
func (s *Service) Search(query string, limit int) []catalog.Product {
	query = strings.TrimSpace(query)
	if query == "" {
		return []catalog.Product{}
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	q := strings.ToLower(query)
	seen := make(map[string]bool)
	out := make([]catalog.Product, 0)
	for _, p := range s.store.Table().Rows() {
		if seen[p.Name] {
			continue
		}
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Brand), q) &&
			!strings.Contains(strings.ToLower(p.Category), q) {
			continue
		}
		seen[p.Name] = true
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out
}
