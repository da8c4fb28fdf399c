package app

import (
	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/gigglegen/internal/keys"
	"github.com/zhubert/gigglegen/internal/session"
	"github.com/zhubert/gigglegen/internal/ui"
)

// showCategoryPicker opens the category modal on the current category
func (m *Model) showCategoryPicker() {
	m.modal.Show(ui.NewCategoryPickerState(m.catalog, m.state.SelectedCategory))
}

func (m *Model) showHelp() {
	m.modal.Show(ui.NewHelpState(m.keys))
}

// handleModalKey routes a key press to the visible modal
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch s := m.modal.State.(type) {
	case *ui.CategoryPickerState:
		return m.handleCategoryPickerModal(msg, s)
	case *ui.HelpState:
		return m.handleHelpModal(msg)
	}
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

func (m *Model) handleCategoryPickerModal(msg tea.KeyPressMsg, state *ui.CategoryPickerState) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		m.modal.Hide()
		if !state.Changed() {
			return m, nil
		}
		return m, m.apply(session.SelectCategory{Category: state.Selected()})
	}
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

func (m *Model) handleHelpModal(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.Escape, "?", "q":
		m.modal.Hide()
	}
	return m, nil
}
