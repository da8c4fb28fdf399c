// Package emoji manages the decorative emoji drawn over the joke card: short-lived
// markers spawned by fetches and ratings, and a backdrop of slowly drifting faces.
package emoji

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Lifetime is how long a spawned marker stays on screen.
const Lifetime = 2 * time.Second

// Glyphs are the faces markers and the backdrop choose from.
var Glyphs = []string{"😂", "🤣", "😆", "😄", "😅", "🤪", "😜", "🤓", "😎", "🤩"}

// Rand is the randomness the package draws from. *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// NewRand returns a Rand seeded from seed.
func NewRand(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed+1))
}

// Marker is one transient emoji. X and Y are offsets from the card centre
// in the range [-50, 50).
type Marker struct {
	ID      string
	Glyph   string
	X, Y    int
	Expires time.Time
}

// Manager owns the live markers in spawn order.
type Manager struct {
	mu      sync.Mutex
	rng     Rand
	now     func() time.Time
	markers []Marker
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithClock sets the clock used to stamp marker deadlines. It should be the
// same clock later passed to Expire.
func WithClock(now func() time.Time) ManagerOption {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// NewManager returns a Manager drawing glyphs and positions from rng.
func NewManager(rng Rand, opts ...ManagerOption) *Manager {
	m := &Manager{rng: rng, now: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Spawn adds a marker with a fresh id, a random glyph and a random offset.
func (m *Manager) Spawn() Marker {
	m.mu.Lock()
	defer m.mu.Unlock()

	mk := Marker{
		ID:      uuid.NewString(),
		Glyph:   Glyphs[m.rng.IntN(len(Glyphs))],
		X:       m.rng.IntN(100) - 50,
		Y:       m.rng.IntN(100) - 50,
		Expires: m.now().Add(Lifetime),
	}
	m.markers = append(m.markers, mk)
	return mk
}

// Remove deletes the marker with id. It reports whether a marker was removed;
// removing an id that is already gone is a no-op.
func (m *Manager) Remove(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, mk := range m.markers {
		if mk.ID == id {
			m.markers = append(m.markers[:i], m.markers[i+1:]...)
			return true
		}
	}
	return false
}

// Expire removes every marker whose lifetime ended at or before now and
// returns their ids.
func (m *Manager) Expire(now time.Time) []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	var removed []string
	kept := m.markers[:0]
	for _, mk := range m.markers {
		if !now.Before(mk.Expires) {
			removed = append(removed, mk.ID)
			continue
		}
		kept = append(kept, mk)
	}
	m.markers = kept
	return removed
}

// Active returns a snapshot of the live markers in spawn order.
func (m *Manager) Active() []Marker {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Marker(nil), m.markers...)
}

// Len returns the number of live markers.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.markers)
}
