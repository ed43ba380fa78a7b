package content

import (
	"math"
	"strings"
	"unicode"
)

// english stop words excluded from the tag vocabulary
var stopWords = map[string]bool{}

func init() {
	for _, w := range strings.Fields(`a about above after again against all am an and any are as at be because
		been before being below between both but by can did do does doing down during each few for from further
		had has have having he her here hers herself him himself his how i if in into is it its itself just me
		more most my myself no nor not now of off on once only or other our ours ourselves out over own same she
		should so some such than that the their theirs them themselves then there these they this those through
		to too under until up very was we were what when where which while who whom why will with you your yours
		yourself yourselves`) {
		stopWords[w] = true
	}
}

// tokenize lowercases and splits on non-alphanumerics, keeping terms of at
// least two characters that are not stop words.
func tokenize(s string) []string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	out := fields[:0]
	for _, w := range fields {
		if len(w) < 2 || stopWords[w] {
			continue
		}
		out = append(out, w)
	}
	return out
}

// tfidfVectors builds one sparse, L2-normalized TF-IDF vector per document.
// IDF is smoothed: idf(t) = ln((1+n)/(1+df(t))) + 1. The vocabulary size is
// returned so callers can tell "no terms at all" apart from sparse data.
func tfidfVectors(docs []string) ([]map[int]float64, int) {
	vocab := make(map[string]int)
	df := make([]int, 0)
	counts := make([]map[int]int, len(docs))

	for i, doc := range docs {
		tf := make(map[int]int)
		for _, term := range tokenize(doc) {
			id, ok := vocab[term]
			if !ok {
				id = len(vocab)
				vocab[term] = id
				df = append(df, 0)
			}
			if tf[id] == 0 {
				df[id]++
			}
			tf[id]++
		}
		counts[i] = tf
	}

	n := float64(len(docs))
	idf := make([]float64, len(df))
	for id, d := range df {
		idf[id] = math.Log((1+n)/(1+float64(d))) + 1
	}

	vectors := make([]map[int]float64, len(docs))
	for i, tf := range counts {
		vec := make(map[int]float64, len(tf))
		norm := 0.0
		for id, c := range tf {
			w := float64(c) * idf[id]
			vec[id] = w
			norm += w * w
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for id := range vec {
				vec[id] /= norm
			}
		}
		vectors[i] = vec
	}
	return vectors, len(vocab)
}

// dot is the cosine similarity of two L2-normalized sparse vectors.
func dot(a, b map[int]float64) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	sum := 0.0
	for id, w := range a {
		sum += w * b[id]
	}
	return sum
}
