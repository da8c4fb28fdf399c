// Package selector picks jokes uniformly at random from a catalog category.
package selector

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/zhubert/gigglegen/internal/catalog"
	"github.com/zhubert/gigglegen/internal/errors"
)

// Source is the randomness a Selector draws from. *rand.Rand satisfies it.
type Source interface {
	// IntN returns a value in [0, n). n is always > 0.
	IntN(n int) int
}

// Selector chooses a joke from a category with a uniform distribution and no
// memory of earlier picks, so the same joke may come up twice in a row.
type Selector struct {
	catalog *catalog.Catalog

	mu  sync.Mutex
	rng Source
}

// New returns a Selector drawing from rng.
func New(c *catalog.Catalog, rng Source) *Selector {
	return &Selector{catalog: c, rng: rng}
}

// NewSeeded returns a Selector whose sequence of picks is fully determined by seed.
func NewSeeded(c *catalog.Catalog, seed uint64) *Selector {
	return New(c, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// NewRandom returns a Selector seeded from the clock.
func NewRandom(c *catalog.Catalog) *Selector {
	return NewSeeded(c, uint64(time.Now().UnixNano()))
}

// Select returns one joke from category id.
func (s *Selector) Select(id catalog.CategoryID) (string, error) {
	if !id.Valid() {
		return "", errors.InvalidCategory(string(id))
	}
	n := s.catalog.Count(id)
	if n == 0 {
		return "", errors.EmptyCategory(string(id))
	}

	s.mu.Lock()
	idx := s.rng.IntN(n)
	s.mu.Unlock()

	return s.catalog.At(id, idx)
}

// Catalog returns the catalog the selector draws from.
func (s *Selector) Catalog() *catalog.Catalog {
	return s.catalog
}
