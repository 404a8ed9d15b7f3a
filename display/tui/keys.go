package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all key bindings for the dashboard.
type keyMap struct {
	Quit   key.Binding
	Pause  key.Binding
	Theme  key.Binding
	Glitch key.Binding
	Help   key.Binding
}

// ShortHelp returns the compact set of keybindings shown in the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Pause, k.Theme, k.Quit}
}

// FullHelp returns the expanded keybinding groups shown when help is toggled.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pause, k.Theme, k.Glitch},
		{k.Help, k.Quit},
	}
}

// keys holds the default key bindings used by the application.
var keys = keyMap{
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	Pause:  key.NewBinding(key.WithKeys("p", " "), key.WithHelp("p/space", "pause")),
	Theme:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
	Glitch: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "glitch")),
	Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
}
