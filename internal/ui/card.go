package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/rivo/uniseg"
	"github.com/zhubert/gigglegen/internal/catalog"
	"github.com/zhubert/gigglegen/internal/session"
)

// EmptyPrompt is shown in the card before the first joke
const EmptyPrompt = "Press enter to get a joke!"

// RatingPrompt labels the rating row
const RatingPrompt = "How funny was it?"

// Card renders the main panel: category bar, joke text, rating row and
// action hints.
type Card struct {
	width int
}

// NewCard creates a new card
func NewCard() *Card {
	return &Card{width: DefaultWrapWidth + CardPaddingWidth + BorderSize}
}

// SetWidth sets the outer card width
func (c *Card) SetWidth(width int) {
	c.width = width
}

// Width returns the outer card width
func (c *Card) Width() int {
	return c.width
}

// View renders the card for the given session state
func (c *Card) View(s session.State) string {
	inner := max(c.width-BorderSize-CardPaddingWidth, 1)

	var body string
	if s.HasJoke() {
		body = CardJokeStyle.Render(ansi.Wordwrap(s.CurrentJoke, inner, ""))
	} else {
		body = CardPromptStyle.Render(EmptyPrompt)
	}

	style := CardStyle.Width(c.width)
	if s.SelectedCategory == catalog.Thala {
		style = style.BorderForeground(ColorThala)
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		body,
		"",
		CardCounterStyle.Render(RatingPrompt),
		c.ratingRow(s.Rating),
	)

	return lipgloss.JoinVertical(lipgloss.Center,
		c.categoryBar(s.SelectedCategory),
		style.Render(lipgloss.PlaceHorizontal(inner, lipgloss.Center, content)),
		c.buttons(s.HasJoke()),
	)
}

// categoryBar lists every category with the active one highlighted. When
// the full bar does not fit, only the active label is shown between arrows.
func (c *Card) categoryBar(active catalog.CategoryID) string {
	parts := make([]string, 0, len(catalog.Categories()))
	for _, id := range catalog.Categories() {
		parts = append(parts, categoryStyle(id, active).Render(id.Label()))
	}
	bar := strings.Join(parts, " ")
	if lipgloss.Width(bar) <= c.width {
		return bar
	}

	label := TruncateGraphemes(active.Label(), max(c.width-6, 1), "…")
	return "‹ " + categoryStyle(active, active).Render(label) + " ›"
}

func categoryStyle(id, active catalog.CategoryID) lipgloss.Style {
	switch {
	case id != active:
		return CategoryStyle
	case id == catalog.Thala:
		return CategoryThalaStyle
	default:
		return CategoryActiveStyle
	}
}

func (c *Card) ratingRow(current session.Rating) string {
	parts := make([]string, 0, len(session.Ratings))
	for _, r := range session.Ratings {
		style := RatingStyle
		if r == current {
			style = RatingActiveStyle
		}
		parts = append(parts, style.Render(r.Glyph()))
	}
	return strings.Join(parts, " ")
}

func (c *Card) buttons(hasJoke bool) string {
	btns := []string{ButtonPrimaryStyle.Render("⏎ Get Joke")}
	if hasJoke {
		btns = append(btns,
			ButtonStyle.Render("s Share"),
			ButtonStyle.Render("y Copy"),
		)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center, btns...)
	if lipgloss.Width(row) > c.width {
		return lipgloss.JoinVertical(lipgloss.Center, btns...)
	}
	return row
}

// TruncateGraphemes cuts s to at most width cells without splitting a
// grapheme cluster, appending tail when anything was removed.
func TruncateGraphemes(s string, width int, tail string) string {
	if uniseg.StringWidth(s) <= width {
		return s
	}
	limit := width - uniseg.StringWidth(tail)
	if limit <= 0 {
		return tail
	}

	var b strings.Builder
	used := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		w := gr.Width()
		if used+w > limit {
			break
		}
		b.WriteString(gr.Str())
		used += w
	}
	return b.String() + tail
}
