package profile

import (
	"github.com/wichananm65/shop-recommender-backend/internal/catalog"
)

// Profile summarizes a user's purchase history for the sidebar: whether the
// ID is known, how many distinct products they bought and which one last.
type Profile struct {
	UserID        int64    `json:"userId"`
	Found         bool     `json:"found"`
	PurchaseCount int      `json:"purchaseCount"`
	Products      []string `json:"products,omitempty"`
	LastPurchase  string   `json:"lastPurchase,omitempty"`
}

type Service struct {
	store *catalog.Store
}

func NewService(store *catalog.Store) *Service {
	return &Service{store: store}
}

// Get never fails: an unknown ID yields Found=false with zero counts.
func (s *Service) Get(userID int64) Profile {
	t := s.store.Table()
	rows := t.Rows()

	p := Profile{UserID: userID}
	seen := make(map[string]bool)
	for _, i := range t.UserRows(userID) {
		name := rows[i].Name
		if seen[name] {
			continue
		}
		seen[name] = true
		p.Products = append(p.Products, name)
	}
	if len(p.Products) > 0 {
		p.Found = true
		p.PurchaseCount = len(p.Products)
		p.LastPurchase = p.Products[len(p.Products)-1]
	}
	return p
}
