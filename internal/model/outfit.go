package model

import (
	"sort"
	"strings"
)

// Outfit is a scored candidate combination of one to four garments.
// Outfits are produced transiently for a single request and never persisted
// by the engine.
type Outfit struct {
	Items []Garment
	Score float64
}

// Key returns a stable identifier for the combination, used for ordering
// ties and deduplication in tests.
func (o *Outfit) Key() string {
	ids := make([]string, len(o.Items))
	for i, item := range o.Items {
		ids[i] = item.ID
	}
	return strings.Join(ids, "+")
}

// Outfits is a slice of Outfit that supports sorting and top-N selection.
type Outfits []Outfit

// Len implements sort.Interface.
func (o Outfits) Len() int {
	return len(o)
}

// Less implements sort.Interface - higher scores come first.
func (o Outfits) Less(i, j int) bool {
	if o[i].Score != o[j].Score {
		return o[i].Score > o[j].Score
	}
	// Equal scores order by key for deterministic sorting
	return o[i].Key() < o[j].Key()
}

// Swap implements sort.Interface.
func (o Outfits) Swap(i, j int) {
	o[i], o[j] = o[j], o[i]
}

// Sort sorts the outfits by score in descending order.
func (o Outfits) Sort() {
	sort.Sort(o)
}

// TopN returns the N highest-scoring outfits.
func (o Outfits) TopN(n int) Outfits {
	if n <= 0 {
		return Outfits{}
	}

	o.Sort()

	if n > len(o) {
		n = len(o)
	}

	result := make(Outfits, n)
	copy(result, o[:n])
	return result
}
