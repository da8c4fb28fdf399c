package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// Title and Subtitle are the app's branding lines
const (
	Title    = "😂 GiggleGen"
	Subtitle = "Your Daily Dose of Laughter"
)

// Header represents the top header: a gradient title bar with the jokes
// counter and theme toggle, followed by the subtitle line.
type Header struct {
	width     int
	jokeCount int
	dark      bool
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetJokeCount sets the jokes-served counter
func (h *Header) SetJokeCount(n int) {
	h.jokeCount = n
}

// SetDark sets which theme icon to show
func (h *Header) SetDark(dark bool) {
	h.dark = dark
}

// View renders the header
func (h *Header) View() string {
	titleText := " " + Title
	rightText := fmt.Sprintf("Jokes: %d  %s ", h.jokeCount, ThemeIcon(h.dark))

	paddingLen := h.width - ansi.StringWidth(titleText) - ansi.StringWidth(rightText)
	if paddingLen < 1 {
		paddingLen = 1
	}

	bar := h.renderGradient(titleText+strings.Repeat(" ", paddingLen)+rightText, len([]rune(titleText)))
	subtitle := lipgloss.PlaceHorizontal(max(h.width, 0), lipgloss.Center, HeaderSubtitleStyle.Render(Subtitle))

	return bar + "\n" + subtitle
}

// parseHexColor parses a hex color string (e.g., "#667EEA") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders content over a background that fades from the
// theme's primary color to its gradient color. The first boldRunes runes
// are bold.
func (h *Header) renderGradient(content string, boldRunes int) string {
	if len(content) == 0 {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	endR, endG, endB := parseHexColor(theme.Gradient)
	textColor := lipgloss.Color("#FFFFFF")

	runes := []rune(content)
	width := len(runes)
	var result strings.Builder

	for i, r := range runes {
		t := float64(i) / float64(width)

		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		style := lipgloss.NewStyle().
			Background(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))).
			Foreground(textColor).
			Bold(i < boldRunes)

		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
