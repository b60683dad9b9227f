package search

import (
	"math"
	"strings"

	"github.com/dshills/cargostow/pkg/cargo"
)

// tokenize lowercases and whitespace-splits the pseudo-document for an
// item: name, id, and preferred zone concatenated.
func tokenize(item *cargo.Item) []string {
	doc := strings.Join([]string{item.Name, item.ID, item.PreferredZone}, " ")
	return strings.Fields(strings.ToLower(doc))
}

func termFrequencies(tokens []string) map[string]int {
	tf := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		tf[tok]++
	}
	return tf
}

// scorer precomputes the corpus-wide statistics BM25 needs (document
// frequencies, average document length) once per query; score tokenizes
// each candidate itself.
type scorer struct {
	k1, b      float64
	avgDocLen  float64
	docFreq    map[string]int
	corpusSize int
}

func newScorer(items []*cargo.Item, k1, b float64) *scorer {
	docFreq := make(map[string]int)
	var totalLen int
	for _, item := range items {
		seen := make(map[string]bool)
		tokens := tokenize(item)
		totalLen += len(tokens)
		for _, tok := range tokens {
			if !seen[tok] {
				docFreq[tok]++
				seen[tok] = true
			}
		}
	}

	avgDocLen := 1.0
	if len(items) > 0 {
		avgDocLen = math.Max(1, float64(totalLen)/float64(len(items)))
	}

	return &scorer{
		k1:         k1,
		b:          b,
		avgDocLen:  avgDocLen,
		docFreq:    docFreq,
		corpusSize: len(items),
	}
}

func (s *scorer) idf(term string) float64 {
	df := s.docFreq[term]
	return math.Log((float64(s.corpusSize)+1)/(float64(df)+1)) + 1
}

// score computes BM25 score(d,q) for one item against the query terms.
func (s *scorer) score(item *cargo.Item, queryTerms []string) float64 {
	tf := termFrequencies(tokenize(item))
	docLen := 0
	for _, n := range tf {
		docLen += n
	}

	var total float64
	for _, term := range queryTerms {
		freq, ok := tf[term]
		if !ok {
			continue
		}
		numerator := float64(freq) * (s.k1 + 1)
		denominator := float64(freq) + s.k1*(1-s.b+s.b*float64(docLen)/s.avgDocLen)
		total += s.idf(term) * (numerator / denominator)
	}
	return total
}
