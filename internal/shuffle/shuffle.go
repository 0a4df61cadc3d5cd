// Package shuffle produces uniformly random permutations with Fisher–Yates.
package shuffle

import (
	"math/rand/v2"
	"sync"
	"time"
)

// NewRand returns a PCG-backed source; equal seeds yield equal sequences.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Shuffle returns a permuted copy of items. items is left untouched.
// A nil rng falls back to a time-seeded source.
func Shuffle[T any](items []T, rng *rand.Rand) []T {
	out := make([]T, len(items))
	copy(out, items)

	if rng == nil {
		rng = NewRand(uint64(time.Now().UnixNano()))
	}
	for i := len(out) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Shuffler shares one source between concurrent requests.
type Shuffler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func New(seed uint64) *Shuffler {
	return &Shuffler{rng: NewRand(seed)}
}

func NewTimeSeeded() *Shuffler {
	return New(uint64(time.Now().UnixNano()))
}

// Using shuffles items with s's source. A nil s behaves like Shuffle with a nil rng.
func Using[T any](s *Shuffler, items []T) []T {
	if s == nil {
		return Shuffle(items, nil)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return Shuffle(items, s.rng)
}
