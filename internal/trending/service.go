package trending

import (
	"sort"

	"github.com/wichananm65/shop-recommender-backend/internal/catalog"
)

// DefaultMinVotes is the smoothing constant m: products need review counts
// of this order before their own average dominates the global mean.
const DefaultMinVotes = 50

type Service struct {
	store    *catalog.Store
	minVotes float64
}

func NewService(store *catalog.Store, minVotes float64) *Service {
	if minVotes <= 0 {
		minVotes = DefaultMinVotes
	}
	return &Service{store: store, minVotes: minVotes}
}

type productStats struct {
	rep       catalog.Product
	ratingSum float64
	rowCount  int64
	reviews   int64
	score     float64
}

// TopRated ranks distinct products by a Bayesian-average popularity score:
// score = (v/(v+m))*R + (m/(v+m))*C, where R is the product's mean rating,
// v its review count, C the global mean of per-product averages and m the
// smoothing constant. Ties break by review count (more first), then name.
func (s *Service) TopRated(topN int) []catalog.Recommendation {
	t := s.store.Table()
	if topN <= 0 || t.Len() == 0 {
		return []catalog.Recommendation{}
	}

	groups := make(map[int64]*productStats)
	order := make([]int64, 0)
	for _, p := range t.Rows() {
		g, ok := groups[p.ProdID]
		if !ok {
			g = &productStats{rep: p}
			groups[p.ProdID] = g
			order = append(order, p.ProdID)
		}
		g.ratingSum += p.Rating
		g.rowCount++
		// ReviewCount is a product-level figure repeated on every
		// interaction row, so keep the largest seen rather than summing.
		if p.ReviewCount > g.reviews {
			g.reviews = p.ReviewCount
		}
	}

	globalMean := 0.0
	for _, pid := range order {
		g := groups[pid]
		globalMean += g.ratingSum / float64(g.rowCount)
	}
	globalMean /= float64(len(order))

	ranked := make([]*productStats, 0, len(order))
	for _, pid := range order {
		g := groups[pid]
		avg := g.ratingSum / float64(g.rowCount)
		v := float64(g.reviews)
		m := s.minVotes
		g.score = (v/(v+m))*avg + (m/(v+m))*globalMean
		g.rep.Rating = avg
		g.rep.ReviewCount = g.reviews
		ranked = append(ranked, g)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		if ranked[i].reviews != ranked[j].reviews {
			return ranked[i].reviews > ranked[j].reviews
		}
		return ranked[i].rep.Name < ranked[j].rep.Name
	})

	if topN > len(ranked) {
		topN = len(ranked)
	}
	out := make([]catalog.Recommendation, 0, topN)
	for _, g := range ranked[:topN] {
		out = append(out, catalog.RecommendationFrom(g.rep))
	}
	return out
}
