package outfit

import "github.com/fernwood/dresscode/internal/model"

// topPool is the size of the near-equal slice that gets shuffled before
// slicing off the requested count. Trading strict optimality for variety:
// re-requesting the same occasion should usually yield a different but
// comparably good outfit.
const topPool = 20

// Selector applies the randomized top-K selection policy. Stateless apart
// from its shuffler; every call is independent and reentrant.
type Selector struct {
	shuffler Shuffler
}

// NewSelector creates a selector with the given shuffler.
func NewSelector(shuffler Shuffler) *Selector {
	return &Selector{shuffler: shuffler}
}

// Select sorts candidates by score descending, shuffles the top twenty,
// and returns the first count of the shuffled slice.
func (s *Selector) Select(candidates model.Outfits, count int) []model.Outfit {
	if len(candidates) == 0 || count <= 0 {
		return nil
	}

	top := candidates.TopN(topPool)
	s.shuffler.Shuffle(len(top), func(i, j int) {
		top[i], top[j] = top[j], top[i]
	})

	if count > len(top) {
		count = len(top)
	}
	return top[:count]
}
