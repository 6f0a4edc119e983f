package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the demo application keybindings. The widget's own keys
// (typing, arrows, enter) are not listed here; it handles them itself.
type KeyMap struct {
	CycleList key.Binding
	Copy      key.Binding
	Detach    key.Binding
	Attach    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the stock bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		CycleList: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next list"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy input"),
		),
		Detach: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "destroy widget"),
		),
		Attach: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "re-init widget"),
		),
		Help: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.CycleList, k.Copy, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.CycleList, k.Copy},
		{k.Detach, k.Attach},
		{k.Help, k.Quit},
	}
}
