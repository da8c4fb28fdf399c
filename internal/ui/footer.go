package ui

import (
	"time"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
)

// FlashType identifies the severity of a flash message
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashSuccess
	FlashWarning
	FlashError
)

// DefaultFlashDuration is how long a flash message stays in the footer
const DefaultFlashDuration = 3 * time.Second

// flashTickInterval is how often the app checks for expired flashes
const flashTickInterval = 500 * time.Millisecond

// FlashMessage is a short-lived footer notice
type FlashMessage struct {
	Text      string
	Type      FlashType
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired reports whether the message has outlived its duration
func (f *FlashMessage) IsExpired() bool {
	return time.Since(f.CreatedAt) > f.Duration
}

// FlashTickMsg triggers an expiry check for the footer flash
type FlashTickMsg time.Time

// FlashTick returns a command that fires a FlashTickMsg
func FlashTick() tea.Cmd {
	return tea.Tick(flashTickInterval, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

// Footer represents the bottom bar: key hints, or a flash message when one is set
type Footer struct {
	width        int
	keys         KeyMap
	help         help.Model
	flashMessage *FlashMessage
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	f := &Footer{
		keys: DefaultKeyMap(),
		help: help.New(),
	}
	f.help.ShortSeparator = "  |  "
	f.RefreshStyles()
	return f
}

// RefreshStyles re-reads the footer colors after a theme change
func (f *Footer) RefreshStyles() {
	s := f.help.Styles
	s.ShortKey = FooterKeyStyle
	s.ShortDesc = FooterDescStyle
	s.ShortSeparator = FooterSepStyle
	s.Ellipsis = FooterSepStyle
	f.help.Styles = s
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
	f.help.SetWidth(max(width-FooterStyle.GetHorizontalFrameSize(), 0))
}

// SetKeyMap replaces the bindings shown in the footer
func (f *Footer) SetKeyMap(k KeyMap) {
	f.keys = k
}

// SetFlash shows a message with the default duration
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.SetFlashWithDuration(text, flashType, DefaultFlashDuration)
}

// SetFlashWithDuration shows a message for the given duration
func (f *Footer) SetFlashWithDuration(text string, flashType FlashType, d time.Duration) {
	f.flashMessage = &FlashMessage{
		Text:      text,
		Type:      flashType,
		CreatedAt: time.Now(),
		Duration:  d,
	}
}

// ClearFlash removes the current flash message
func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

// HasFlash reports whether a flash message is set
func (f *Footer) HasFlash() bool {
	return f.flashMessage != nil
}

// Flash returns the current flash message, or nil
func (f *Footer) Flash() *FlashMessage {
	return f.flashMessage
}

// ClearIfExpired clears an expired flash. Returns true if one was cleared.
func (f *Footer) ClearIfExpired() bool {
	if f.flashMessage != nil && f.flashMessage.IsExpired() {
		f.flashMessage = nil
		return true
	}
	return false
}

// View renders the footer
func (f *Footer) View() string {
	if f.flashMessage != nil {
		return FooterStyle.Width(f.width).Render(renderFlash(f.flashMessage))
	}
	return FooterStyle.Width(f.width).Render(f.help.View(f.keys))
}

func renderFlash(msg *FlashMessage) string {
	switch msg.Type {
	case FlashSuccess:
		return FlashSuccessStyle.Render("✓ " + msg.Text)
	case FlashWarning:
		return FlashWarningStyle.Render("⚠ " + msg.Text)
	case FlashError:
		return FlashErrorStyle.Render("✕ " + msg.Text)
	default:
		return FlashInfoStyle.Render("ℹ " + msg.Text)
	}
}
