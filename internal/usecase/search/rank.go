package search

import (
	"sort"
	"strings"

	"github.com/oku-lab/wikisearch/internal/domain/search/hit"
	"github.com/oku-lab/wikisearch/internal/domain/search/result"
)

// occurrenceCount sums, per whitespace-separated keyword term, the
// case-insensitive non-overlapping substring count of the term in body.
// Substring counting, not word matching: "wiki" counts inside "wikipedia".
func occurrenceCount(body, keyword string) int {
	lowered := strings.ToLower(body)
	total := 0
	for _, term := range strings.Fields(keyword) {
		total += strings.Count(lowered, strings.ToLower(term))
	}
	return total
}

// rankHits turns hits into ranked entries sorted by (score, occurrence
// count), both descending. The sort is stable: residual ties keep engine
// order. A hit without a body ranks with count 0 rather than failing.
func rankHits(hits []hit.Hit, keyword string) []result.Entry {
	entries := make([]result.Entry, 0, len(hits))
	for i := range hits {
		h := &hits[i]
		count := 0
		if body, ok := h.BodyText(); ok {
			count = occurrenceCount(body, keyword)
		}
		entries = append(entries, result.NewEntry(h.ID(), h.Title(), count, h.Score()))
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score() != entries[j].Score() {
			return entries[i].Score() > entries[j].Score()
		}
		return entries[i].Count() > entries[j].Count()
	})
	return entries
}
