package content

import (
	"errors"
	"sort"

	"github.com/wichananm65/shop-recommender-backend/internal/catalog"
)

var (
	ErrItemNotFound = errors.New("item not found in catalog")
	ErrNoHistory    = errors.New("user has no purchase history")
	// ErrNoVocabulary means no row produced a single usable tag term, so
	// there is nothing to compute similarity on.
	ErrNoVocabulary = errors.New("no tag vocabulary to compute similarity")
)

type Service struct {
	store *catalog.Store
}

func NewService(store *catalog.Store) *Service {
	return &Service{store: store}
}

// SimilarTo returns the topN rows most similar to the named item by TF-IDF
// cosine similarity over the Tags field. The vocabulary is rebuilt from the
// current table on every call; no index is persisted. Rows sharing the
// query item's name are excluded from the result. Ties keep table order.
func (s *Service) SimilarTo(itemName string, topN int) ([]catalog.Recommendation, error) {
	t := s.store.Table()
	targets := t.RowsByName(itemName)
	if len(targets) == 0 {
		return nil, ErrItemNotFound
	}

	rows := t.Rows()
	docs := make([]string, len(rows))
	for i, p := range rows {
		docs[i] = p.Tags
	}
	vectors, vocabSize := tfidfVectors(docs)
	if vocabSize == 0 {
		return nil, ErrNoVocabulary
	}

	target := vectors[targets[0]]
	type scored struct {
		idx int
		sim float64
	}
	ranked := make([]scored, 0, len(rows))
	for i := range rows {
		if rows[i].Name == itemName {
			continue
		}
		ranked = append(ranked, scored{idx: i, sim: dot(target, vectors[i])})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].sim > ranked[j].sim
	})

	if topN < 0 {
		topN = 0
	}
	if topN > len(ranked) {
		topN = len(ranked)
	}
	out := make([]catalog.Recommendation, 0, topN)
	for _, r := range ranked[:topN] {
		out = append(out, catalog.RecommendationFrom(rows[r.idx]))
	}
	return out, nil
}

// ForUserHistory seeds SimilarTo with the user's most recent distinct
// purchase, powering the "based on your last purchase" section.
func (s *Service) ForUserHistory(userID int64, topN int) (string, []catalog.Recommendation, error) {
	t := s.store.Table()
	userRows := t.UserRows(userID)
	if len(userRows) == 0 {
		return "", nil, ErrNoHistory
	}

	rows := t.Rows()
	seen := make(map[string]bool)
	last := ""
	for _, i := range userRows {
		name := rows[i].Name
		if !seen[name] {
			seen[name] = true
			last = name
		}
	}

	recs, err := s.SimilarTo(last, topN)
	if err != nil {
		return "", nil, err
	}
	return last, recs, nil
}
