package app

import (
	"context"
	"time"

	"github.com/zhubert/gigglegen/internal/catalog"
	"github.com/zhubert/gigglegen/internal/emoji"
	"github.com/zhubert/gigglegen/internal/session"
	"github.com/zhubert/gigglegen/internal/share"
)

// Sharer publishes a joke. *share.Service satisfies it.
type Sharer interface {
	Share(ctx context.Context, joke string) share.Result
}

// Option configures a Model
type Option func(*Model)

// WithCatalog replaces the built-in joke catalog
func WithCatalog(c *catalog.Catalog) Option {
	return func(m *Model) {
		if c != nil {
			m.catalog = c
		}
	}
}

// WithPicker replaces the joke selector
func WithPicker(p session.Picker) Option {
	return func(m *Model) { m.picker = p }
}

// WithSharer replaces the share service
func WithSharer(s Sharer) Option {
	return func(m *Model) { m.sharer = s }
}

// WithClipboard replaces the native clipboard writer
func WithClipboard(fn func(string) error) Option {
	return func(m *Model) { m.writeClip = fn }
}

// WithRand sets the source used for marker and backdrop placement
func WithRand(rng emoji.Rand) Option {
	return func(m *Model) { m.rng = rng }
}

// WithClock sets the time source used for animations
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}
