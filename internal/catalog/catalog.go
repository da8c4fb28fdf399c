// Package catalog holds the category-tagged joke table. A Catalog is built once
// at startup and never mutated afterwards.
package catalog

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/zhubert/gigglegen/internal/errors"
)

// CategoryID names one of the fixed joke categories.
type CategoryID string

const (
	General     CategoryID = "general"
	Programming CategoryID = "programming"
	Dad         CategoryID = "dad"
	Dank        CategoryID = "dank"
	Thala       CategoryID = "thala"
)

// DefaultCategory is selected when a session starts.
const DefaultCategory = General

// order is the display order of the category bar.
var order = []CategoryID{General, Programming, Dad, Dank, Thala}

// Categories returns every category in display order.
func Categories() []CategoryID {
	return append([]CategoryID(nil), order...)
}

// Valid reports whether id is one of the known categories.
func (id CategoryID) Valid() bool {
	return lo.Contains(order, id)
}

// Label is the text shown on the category button.
func (id CategoryID) Label() string {
	if id == Thala {
		return "🦁 Thala"
	}
	s := string(id)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (id CategoryID) String() string {
	return string(id)
}

// Parse maps user input such as " Dad " to a CategoryID.
func Parse(s string) (CategoryID, error) {
	id := CategoryID(strings.ToLower(strings.TrimSpace(s)))
	if !id.Valid() {
		return "", errors.InvalidCategory(s)
	}
	return id, nil
}

// Next returns the category after id in display order, wrapping around.
func Next(id CategoryID) CategoryID {
	return step(id, 1)
}

// Prev returns the category before id in display order, wrapping around.
func Prev(id CategoryID) CategoryID {
	return step(id, -1)
}

func step(id CategoryID, delta int) CategoryID {
	idx := lo.IndexOf(order, id)
	if idx < 0 {
		return DefaultCategory
	}
	n := len(order)
	return order[((idx+delta)%n+n)%n]
}

// Catalog maps every category to an ordered list of jokes.
type Catalog struct {
	jokes map[CategoryID][]string
}

// New builds a catalog from jokes. Every known category must be present and
// non-empty, and no unknown category may appear.
func New(jokes map[CategoryID][]string) (*Catalog, error) {
	c := &Catalog{jokes: make(map[CategoryID][]string, len(order))}
	for id, list := range jokes {
		if !id.Valid() {
			return nil, errors.InvalidCategory(string(id))
		}
		c.jokes[id] = append([]string(nil), list...)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Default returns the catalog of builtin jokes.
func Default() *Catalog {
	c, err := New(builtin)
	if err != nil {
		// The builtin table is covered by tests; reaching this is a programming error.
		panic(err)
	}
	return c
}

// Validate checks that every category has at least one joke.
func (c *Catalog) Validate() error {
	for _, id := range order {
		if len(c.jokes[id]) == 0 {
			return errors.EmptyCategory(string(id))
		}
	}
	return nil
}

// Get returns a copy of the jokes in category id.
func (c *Catalog) Get(id CategoryID) ([]string, error) {
	if !id.Valid() {
		return nil, errors.InvalidCategory(string(id))
	}
	return append([]string(nil), c.jokes[id]...), nil
}

// Count returns the number of jokes in id, or 0 for an unknown category.
func (c *Catalog) Count(id CategoryID) int {
	return len(c.jokes[id])
}

// At returns joke i of category id without copying the list.
func (c *Catalog) At(id CategoryID, i int) (string, error) {
	if !id.Valid() {
		return "", errors.InvalidCategory(string(id))
	}
	list := c.jokes[id]
	if i < 0 || i >= len(list) {
		return "", errors.E(errors.Op("catalog.At"), errors.KindInvalid,
			fmt.Sprintf("index %d out of range for %q (%d jokes)", i, id, len(list)))
	}
	return list[i], nil
}

// Contains reports whether joke is one of the jokes in category id.
func (c *Catalog) Contains(id CategoryID, joke string) bool {
	return lo.Contains(c.jokes[id], joke)
}
