package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/zhubert/gigglegen/internal/ui"
)

// WindowTitle is the terminal title while the app runs
const WindowTitle = "GiggleGen"

// View renders the app
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.WindowTitle = WindowTitle
	v.BackgroundColor = ui.ColorBg
	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current frame as a string.
// This is useful for the one-shot CLI and for testing.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	ctx := ui.GetViewContext()
	width, height := ctx.TerminalWidth, ctx.TerminalHeight

	if m.modal.IsVisible() {
		return m.modal.View(width, height)
	}

	content := lipgloss.Place(
		width, ctx.ContentHeight,
		lipgloss.Center, lipgloss.Center,
		m.card.View(m.state),
	)

	overlay := ui.NewOverlay()
	overlay.SetBackdrop(m.backdrop)
	overlay.Markers = m.markers.Active()
	overlay.Helicopter = m.helicopterProgress()
	content = overlay.Compose(content, width, ctx.ContentHeight)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		content,
		m.footer.View(),
	)
}
