package modals

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/zhubert/gigglegen/internal/catalog"
)

// CategoryPickerState lets the user jump straight to a category.
type CategoryPickerState struct {
	form     *huh.Form
	selected catalog.CategoryID
	current  catalog.CategoryID
}

func (*CategoryPickerState) modalState() {}

func (s *CategoryPickerState) Title() string { return "Pick a Category" }

func (s *CategoryPickerState) Help() string {
	return "↑/↓ to choose, Enter to select, Esc to cancel"
}

func (s *CategoryPickerState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *CategoryPickerState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// Selected returns the highlighted category
func (s *CategoryPickerState) Selected() catalog.CategoryID {
	if !s.selected.Valid() {
		return s.current
	}
	return s.selected
}

// Changed reports whether the highlighted category differs from the one
// that was active when the picker opened
func (s *CategoryPickerState) Changed() bool {
	return s.Selected() != s.current
}

// NewCategoryPickerState builds a picker over every category in c,
// preselecting current.
func NewCategoryPickerState(c *catalog.Catalog, current catalog.CategoryID) *CategoryPickerState {
	s := &CategoryPickerState{selected: current, current: current}

	ids := catalog.Categories()
	options := make([]huh.Option[catalog.CategoryID], len(ids))
	for i, id := range ids {
		options[i] = huh.NewOption(optionLabel(id, c.Count(id)), id)
	}

	s.form = huh.NewForm(huh.NewGroup(
		huh.NewSelect[catalog.CategoryID]().
			Title("Category").
			Options(options...).
			Height(len(options) + 1).
			Value(&s.selected),
	)).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalWidth - 6)

	initHuhForm(s.form)
	return s
}

func optionLabel(id catalog.CategoryID, count int) string {
	noun := "jokes"
	if count == 1 {
		noun = "joke"
	}
	return fmt.Sprintf("%s (%d %s)", id.Label(), count, noun)
}
