package modals

import (
	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// HelpState shows every key binding in columns.
type HelpState struct {
	keys help.KeyMap
	help help.Model
}

func (*HelpState) modalState() {}

func (s *HelpState) Title() string { return "Keyboard Shortcuts" }

func (s *HelpState) Help() string { return "Esc or ? to close" }

func (s *HelpState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	content := s.help.FullHelpView(s.keys.FullHelp())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, content, help)
}

func (s *HelpState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	return s, nil
}

// PreferredWidth widens the modal so three help columns fit.
func (s *HelpState) PreferredWidth() int {
	return ModalWidth + 16
}

// NewHelpState creates a help modal for the given key map
func NewHelpState(k help.KeyMap) *HelpState {
	h := help.New()
	h.ShowAll = true
	h.FullSeparator = "   "

	st := h.Styles
	st.FullKey = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	st.FullDesc = lipgloss.NewStyle().Foreground(ColorText)
	st.FullSeparator = lipgloss.NewStyle().Foreground(ColorTextMuted)
	h.Styles = st

	return &HelpState{keys: k, help: h}
}
