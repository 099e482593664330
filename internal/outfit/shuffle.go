package outfit

import (
	"math/rand"
	"sync"
	"time"
)

// Shuffler abstracts the randomness used by the selection policy so tests
// can inject a deterministic seed. Implementations must be safe for
// concurrent use; one generator serves many requests.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type randShuffler struct {
	rng *rand.Rand
	mu  sync.Mutex
}

// NewShuffler returns a time-seeded shuffler for production use.
func NewShuffler() Shuffler {
	return &randShuffler{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSeededShuffler returns a deterministic shuffler for tests.
func NewSeededShuffler(seed int64) Shuffler {
	return &randShuffler{rng: rand.New(rand.NewSource(seed))}
}

func (s *randShuffler) Shuffle(n int, swap func(i, j int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rng.Shuffle(n, swap)
}
