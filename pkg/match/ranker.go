package match

import (
	"sort"

	"support-helpline-be/pkg/kb"
)

// DefaultTopK is how many candidates a turn considers.
const DefaultTopK = 3

// Candidate pairs a knowledge-base entry with its relevance score for one
// query. Candidates are transient; they are never persisted.
type Candidate struct {
	Entry kb.FAQ
	Score float64
}

// TopK scores every entry against the query and returns the k best,
// sorted by score descending. The sort is stable, so entries that tie
// keep their knowledge-base order.
func TopK(query string, entries []kb.FAQ, k int) []Candidate {
	candidates := make([]Candidate, 0, len(entries))
	for _, entry := range entries {
		candidates = append(candidates, Candidate{Entry: entry, Score: Score(query, entry)})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if len(candidates) > k {
		candidates = candidates[:k]
	}
	return candidates
}
