package catalog

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/zhubert/gigglegen/internal/errors"
	"github.com/zhubert/gigglegen/internal/logger"
)

// Overlay is extra jokes keyed by category name, as read from a JSON file:
//
//	{"programming": ["There are 10 kinds of people..."], "dad": ["..."]}
type Overlay map[string][]string

// LoadOverlay reads an overlay file.
func LoadOverlay(path string) (Overlay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.CatalogLoadFailed(path, err)
	}
	var o Overlay
	if err := json.Unmarshal(data, &o); err != nil {
		return nil, errors.CatalogLoadFailed(path, err)
	}
	return o, nil
}

// Merge returns a new catalog with the overlay's jokes appended to c.
// Blank entries are dropped and each category keeps only the first copy of a joke.
// c itself is not modified.
func (c *Catalog) Merge(o Overlay) (*Catalog, error) {
	log := logger.ComponentLogger("catalog")

	merged := make(map[CategoryID][]string, len(order))
	for id, list := range c.jokes {
		merged[id] = list
	}

	for name, extra := range o {
		id, err := Parse(name)
		if err != nil {
			return nil, err
		}
		cleaned := lo.Compact(lo.Map(extra, func(s string, _ int) string {
			return strings.TrimSpace(s)
		}))
		before := len(merged[id])
		merged[id] = lo.Uniq(append(append([]string(nil), merged[id]...), cleaned...))
		log.Debug("merged overlay jokes", "category", id, "added", len(merged[id])-before)
	}

	return New(merged)
}

// Load returns the builtin catalog, merged with the overlay at path when path is set.
func Load(path string) (*Catalog, error) {
	base := Default()
	if path == "" {
		return base, nil
	}
	o, err := LoadOverlay(path)
	if err != nil {
		return nil, err
	}
	return base.Merge(o)
}
