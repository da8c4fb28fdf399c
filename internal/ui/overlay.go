package ui

import (
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mattn/go-runewidth"
	"github.com/zhubert/gigglegen/internal/emoji"
)

// HelicopterGlyph crosses the card after a thala joke
const HelicopterGlyph = "🚁"

// Overlay draws decorative emojis on top of a rendered frame. Backdrop
// drifters only land on blank cells; markers and the helicopter are drawn
// over anything.
type Overlay struct {
	// Backdrop positions in a 0-100 space over the whole frame
	Backdrop []emoji.Point
	// BackdropGlyphs pairs with Backdrop
	BackdropGlyphs []string
	// Markers are placed relative to the frame center, offsets in [-50, 50)
	Markers []emoji.Marker
	// Helicopter is the crossing progress in [0, 1], or negative when hidden
	Helicopter float64
}

// NewOverlay returns an empty overlay with the helicopter hidden
func NewOverlay() Overlay {
	return Overlay{Helicopter: -1}
}

// SetBackdrop copies the current drifter positions from b
func (o *Overlay) SetBackdrop(b *emoji.Backdrop) {
	o.Backdrop = o.Backdrop[:0]
	o.BackdropGlyphs = o.BackdropGlyphs[:0]
	if b == nil {
		return
	}
	for i := range b.Drifters {
		o.Backdrop = append(o.Backdrop, b.Drifters[i].Position())
		o.BackdropGlyphs = append(o.BackdropGlyphs, b.Drifters[i].Glyph)
	}
}

// Empty reports whether there is nothing to draw
func (o Overlay) Empty() bool {
	return len(o.Backdrop) == 0 && len(o.Markers) == 0 && o.Helicopter < 0
}

// Compose draws the overlay onto view, which is width x height cells.
func (o Overlay) Compose(view string, width, height int) string {
	if o.Empty() || width <= 0 || height <= 0 {
		return view
	}

	area := uv.Rect(0, 0, width, height)
	scr := uv.NewScreenBuffer(area.Dx(), area.Dy())
	uv.NewStyledString(view).Draw(scr, area)

	for i, p := range o.Backdrop {
		if i >= len(o.BackdropGlyphs) {
			break
		}
		x, y := scale(p.X, width), scale(p.Y, height)
		if blankAt(scr, x, y, runewidth.StringWidth(o.BackdropGlyphs[i])) {
			putGlyph(scr, x, y, o.BackdropGlyphs[i])
		}
	}

	cx, cy := width/2, height/2
	for _, m := range o.Markers {
		x := cx + m.X*width/100
		y := cy + m.Y*height/100
		putGlyph(scr, x, y, m.Glyph)
	}

	if o.Helicopter >= 0 {
		w := runewidth.StringWidth(HelicopterGlyph)
		x := int(o.Helicopter * float64(width-w))
		putGlyph(scr, x, height/3, HelicopterGlyph)
	}

	return scr.Render()
}

// scale maps a 0-100 coordinate onto n cells.
func scale(v float64, n int) int {
	i := int(v * float64(n) / 100)
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

func blankAt(scr uv.ScreenBuffer, x, y, w int) bool {
	for i := 0; i < w; i++ {
		cell := scr.CellAt(x+i, y)
		if cell == nil || cell.Content != " " {
			return false
		}
	}
	return true
}

// putGlyph writes a glyph at x, y, keeping it fully inside the row.
func putGlyph(scr uv.ScreenBuffer, x, y int, glyph string) {
	w := runewidth.StringWidth(glyph)
	bounds := scr.Bounds()
	if y < 0 || y >= bounds.Dy() || w <= 0 {
		return
	}
	if x+w > bounds.Dx() {
		x = bounds.Dx() - w
	}
	if x < 0 {
		x = 0
	}
	scr.SetCell(x, y, &uv.Cell{Content: glyph, Width: w})
}
