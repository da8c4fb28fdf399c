package emoji

import (
	"math"
	"time"
)

const (
	// BackdropSize is the number of drifting emoji behind the card.
	BackdropSize = 15

	minPathPoints = 4
	maxPathPoints = 6

	minPeriod = 20 * time.Second
	maxPeriod = 30 * time.Second
)

// Point is a position in a 0-100 by 0-100 space scaled to the screen at draw time.
type Point struct {
	X, Y float64
}

// Drifter is one backdrop emoji looping along a closed path.
type Drifter struct {
	Glyph  string
	Path   []Point
	Period time.Duration

	elapsed time.Duration
}

// Position returns where the drifter currently is, interpolating linearly
// between path points and wrapping from the last point back to the first.
func (d *Drifter) Position() Point {
	n := len(d.Path)
	if n == 0 {
		return Point{}
	}
	if n == 1 || d.Period <= 0 {
		return d.Path[0]
	}

	t := float64(d.elapsed%d.Period) / float64(d.Period) * float64(n)
	seg := int(math.Floor(t))
	frac := t - float64(seg)
	a := d.Path[seg%n]
	b := d.Path[(seg+1)%n]
	return Point{
		X: a.X + (b.X-a.X)*frac,
		Y: a.Y + (b.Y-a.Y)*frac,
	}
}

// Backdrop is the full set of drifting emoji.
type Backdrop struct {
	Drifters []Drifter
}

// NewBackdrop builds BackdropSize drifters with random glyphs, paths and speeds.
func NewBackdrop(rng Rand) *Backdrop {
	b := &Backdrop{Drifters: make([]Drifter, BackdropSize)}
	for i := range b.Drifters {
		b.Drifters[i] = Drifter{
			Glyph:  Glyphs[rng.IntN(len(Glyphs))],
			Path:   randomPath(rng),
			Period: minPeriod + time.Duration(rng.Float64()*float64(maxPeriod-minPeriod)),
		}
	}
	return b
}

func randomPath(rng Rand) []Point {
	n := minPathPoints + rng.IntN(maxPathPoints-minPathPoints+1)
	path := make([]Point, n)
	for i := range path {
		path[i] = Point{X: rng.Float64() * 100, Y: rng.Float64() * 100}
	}
	return path
}

// Advance moves every drifter forward by dt.
func (b *Backdrop) Advance(dt time.Duration) {
	for i := range b.Drifters {
		b.Drifters[i].elapsed += dt
	}
}
