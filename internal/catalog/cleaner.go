package catalog

import (
	"math"
	"strconv"
	"strings"
)

// sentinelMissing is the invalid-integer marker some exports write into
// ID/ProdID instead of leaving the cell empty. Compared after parsing so
// the "-2147483648.0" float spelling of round-tripped exports is caught too.
const sentinelMissing = math.MinInt32

// Clean normalizes a raw catalog into canonical product rows. It is total:
// malformed rows are silently dropped, never reported. Rows that survive
// satisfy: UserID != 0, ProdID != 0, Name and Brand non-empty, Rating
// present, ReviewCount >= 0 and ImageURL either absent from the source or a
// trimmed single http(s) URL.
func Clean(raw RawTable) []Product {
	out := make([]Product, 0, len(raw.Rows))

	for _, r := range raw.Rows {
		// ID and ProdID are required; zero is reserved as "unset".
		if r.ID == nil || r.ProdID == nil {
			continue
		}
		uid, ok := parseInt64(*r.ID)
		if !ok {
			continue
		}
		pid, ok := parseInt64(*r.ProdID)
		if !ok {
			continue
		}
		if uid == 0 || pid == 0 || uid == sentinelMissing || pid == sentinelMissing {
			continue
		}

		p := Product{
			UserID:      uid,
			ProdID:      pid,
			ReviewCount: parseReviewCount(r.ReviewCount),
			Description: orEmpty(r.Description),
			Category:    orEmpty(r.Category),
			Brand:       orEmpty(r.Brand),
			Tags:        orEmpty(r.Tags),
		}

		if raw.Has(ColImageURL) {
			url := cleanImageURL(orEmpty(r.ImageURL))
			if url == "" {
				continue
			}
			p.ImageURL = url
		}

		if raw.Has(ColName) {
			if r.Name == nil || *r.Name == "" {
				continue
			}
			p.Name = *r.Name
		}
		if raw.Has(ColBrand) && p.Brand == "" {
			continue
		}
		if raw.Has(ColRating) {
			if r.Rating == nil {
				continue
			}
			rating, err := strconv.ParseFloat(strings.TrimSpace(*r.Rating), 64)
			if err != nil || math.IsNaN(rating) || math.IsInf(rating, 0) {
				continue
			}
			p.Rating = rating
		}

		out = append(out, p)
	}

	return out
}

// parseInt64 accepts plain integers plus the "123.0" float form that
// round-tripped exports produce for integer columns.
func parseInt64(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int64(f)) {
		return 0, false
	}
	return int64(f), true
}

// parseReviewCount coerces to a non-negative count; unparseable values
// default to 0 rather than dropping the row.
func parseReviewCount(v *string) int64 {
	if v == nil {
		return 0
	}
	n, ok := parseInt64(*v)
	if !ok || n < 0 {
		return 0
	}
	return n
}

// cleanImageURL keeps the first entry of a pipe- or comma-delimited URL
// list and rejects anything that does not look like an http(s) URL.
func cleanImageURL(url string) string {
	if i := strings.IndexByte(url, '|'); i >= 0 {
		url = url[:i]
	}
	if i := strings.IndexByte(url, ','); i >= 0 {
		url = url[:i]
	}
	url = strings.TrimSpace(url)
	if url != "" && !strings.HasPrefix(url, "http") {
		return ""
	}
	return url
}

func orEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
