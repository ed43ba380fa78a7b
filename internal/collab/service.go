package collab

import (
	"errors"
	"math"
	"sort"

	"github.com/wichananm65/shop-recommender-backend/internal/catalog"
)

var (
	ErrUnknownUser = errors.New("user has no purchase history")
	// ErrNoInteractions means the canonical table is empty, so no user-item
	// matrix can be built at all.
	ErrNoInteractions = errors.New("no interactions to compute on")
)

// DefaultNeighbors is K, the number of most similar users whose purchases
// feed the candidate set.
const DefaultNeighbors = 10

type Service struct {
	store     *catalog.Store
	neighbors int
}

func NewService(store *catalog.Store, neighbors int) *Service {
	if neighbors <= 0 {
		neighbors = DefaultNeighbors
	}
	return &Service{store: store, neighbors: neighbors}
}

// ForUser recommends products liked by the K users most similar to userID.
// Similarity is cosine over the users' rating vectors (mean rating per
// user-product pair); candidates are scored by the similarity-weighted sum
// of the neighbors' ratings, excluding anything the target user already
// purchased. A known user with no overlap against anyone yields an empty
// slice, not an error; the caller decides the fallback.
func (s *Service) ForUser(userID int64, topN int) ([]catalog.Recommendation, error) {
	t := s.store.Table()
	if t.Len() == 0 {
		return nil, ErrNoInteractions
	}

	ratings := buildRatings(t.Rows())
	target, ok := ratings[userID]
	if !ok {
		return nil, ErrUnknownUser
	}

	type userSim struct {
		id  int64
		sim float64
	}
	sims := make([]userSim, 0, len(ratings))
	targetNorm := norm(target)
	for id, vec := range ratings {
		if id == userID {
			continue
		}
		sim := cosine(target, vec, targetNorm, norm(vec))
		if sim > 0 {
			sims = append(sims, userSim{id: id, sim: sim})
		}
	}
	sort.Slice(sims, func(i, j int) bool {
		if sims[i].sim != sims[j].sim {
			return sims[i].sim > sims[j].sim
		}
		return sims[i].id < sims[j].id
	})
	if len(sims) > s.neighbors {
		sims = sims[:s.neighbors]
	}

	scores := make(map[int64]float64)
	for _, n := range sims {
		for pid, rating := range ratings[n.id] {
			if _, purchased := target[pid]; purchased {
				continue
			}
			scores[pid] += n.sim * rating
		}
	}

	candidates := make([]int64, 0, len(scores))
	for pid := range scores {
		candidates = append(candidates, pid)
	}
	sort.Slice(candidates, func(i, j int) bool {
		if scores[candidates[i]] != scores[candidates[j]] {
			return scores[candidates[i]] > scores[candidates[j]]
		}
		return candidates[i] < candidates[j]
	})

	if topN < 0 {
		topN = 0
	}
	if topN > len(candidates) {
		topN = len(candidates)
	}
	out := make([]catalog.Recommendation, 0, topN)
	for _, pid := range candidates[:topN] {
		if p, ok := t.ProductRow(pid); ok {
			out = append(out, catalog.RecommendationFrom(p))
		}
	}
	return out, nil
}

// buildRatings folds interaction rows into a sparse user-by-product matrix,
// averaging duplicate (user, product) pairs.
func buildRatings(rows []catalog.Product) map[int64]map[int64]float64 {
	sums := make(map[int64]map[int64]float64)
	counts := make(map[int64]map[int64]int)
	for _, p := range rows {
		if sums[p.UserID] == nil {
			sums[p.UserID] = make(map[int64]float64)
			counts[p.UserID] = make(map[int64]int)
		}
		sums[p.UserID][p.ProdID] += p.Rating
		counts[p.UserID][p.ProdID]++
	}
	for uid, products := range sums {
		for pid := range products {
			products[pid] /= float64(counts[uid][pid])
		}
	}
	return sums
}

func norm(vec map[int64]float64) float64 {
	sum := 0.0
	for _, v := range vec {
		sum += v * v
	}
	return math.Sqrt(sum)
}

func cosine(a, b map[int64]float64, normA, normB float64) float64 {
	if normA == 0 || normB == 0 {
		return 0
	}
	if len(b) < len(a) {
		a, b = b, a
	}
	dot := 0.0
	for pid, v := range a {
		dot += v * b[pid]
	}
	return dot / (normA * normB)
}
