package ui

import (
	"charm.land/bubbles/v2/key"
	"github.com/zhubert/gigglegen/internal/keys"
)

// KeyMap holds every binding the joke screen responds to. It implements
// help.KeyMap so the footer and help modal render from one source.
type KeyMap struct {
	Fetch     key.Binding
	Meh       key.Binding
	Good      key.Binding
	Hilarious key.Binding
	NextCat   key.Binding
	PrevCat   key.Binding
	PickCat   key.Binding
	Theme     key.Binding
	Share     key.Binding
	Copy      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Fetch: key.NewBinding(
			key.WithKeys(keys.Enter, keys.Space),
			key.WithHelp("enter", "get joke"),
		),
		Meh: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "😴 meh"),
		),
		Good: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "😊 good"),
		),
		Hilarious: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "😂 hilarious"),
		),
		NextCat: key.NewBinding(
			key.WithKeys(keys.Right, keys.Tab, "l"),
			key.WithHelp("→/tab", "next category"),
		),
		PrevCat: key.NewBinding(
			key.WithKeys(keys.Left, keys.ShiftTab, "h"),
			key.WithHelp("←", "prev category"),
		),
		PickCat: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "categories"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t", keys.CtrlT),
			key.WithHelp("t", "theme"),
		),
		Share: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "share"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", keys.CtrlC),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Fetch, k.NextCat, k.Share, k.Copy, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Fetch, k.Meh, k.Good, k.Hilarious},
		{k.NextCat, k.PrevCat, k.PickCat},
		{k.Share, k.Copy, k.Theme, k.Help, k.Quit},
	}
}
