package ui

import (
	"testing"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
)

var _ help.KeyMap = KeyMap{}

func TestDefaultKeyMap_Matches(t *testing.T) {
	k := DefaultKeyMap()

	tests := []struct {
		name    string
		msg     tea.KeyPressMsg
		binding key.Binding
	}{
		{"enter fetches", tea.KeyPressMsg{Code: tea.KeyEnter}, k.Fetch},
		{"space fetches", tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}, k.Fetch},
		{"1 is meh", tea.KeyPressMsg{Code: '1', Text: "1"}, k.Meh},
		{"2 is good", tea.KeyPressMsg{Code: '2', Text: "2"}, k.Good},
		{"3 is hilarious", tea.KeyPressMsg{Code: '3', Text: "3"}, k.Hilarious},
		{"right is next", tea.KeyPressMsg{Code: tea.KeyRight}, k.NextCat},
		{"tab is next", tea.KeyPressMsg{Code: tea.KeyTab}, k.NextCat},
		{"left is prev", tea.KeyPressMsg{Code: tea.KeyLeft}, k.PrevCat},
		{"c picks", tea.KeyPressMsg{Code: 'c', Text: "c"}, k.PickCat},
		{"t themes", tea.KeyPressMsg{Code: 't', Text: "t"}, k.Theme},
		{"s shares", tea.KeyPressMsg{Code: 's', Text: "s"}, k.Share},
		{"y copies", tea.KeyPressMsg{Code: 'y', Text: "y"}, k.Copy},
		{"? helps", tea.KeyPressMsg{Code: '?', Text: "?"}, k.Help},
		{"q quits", tea.KeyPressMsg{Code: 'q', Text: "q"}, k.Quit},
		{"ctrl+c quits", tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}, k.Quit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !key.Matches(tt.msg, tt.binding) {
				t.Errorf("%q did not match %v", tt.msg.String(), tt.binding.Keys())
			}
		})
	}
}

func TestKeyMap_HelpGroups(t *testing.T) {
	k := DefaultKeyMap()

	if len(k.ShortHelp()) == 0 {
		t.Error("ShortHelp should not be empty")
	}

	total := 0
	for _, group := range k.FullHelp() {
		total += len(group)
	}
	if total != 12 {
		t.Errorf("FullHelp lists %d bindings, want all 12", total)
	}
}
