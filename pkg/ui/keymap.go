package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Open       key.Binding
	Parent     key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Home       key.Binding
	End        key.Binding
	Chart      key.Binding
	Icons      key.Binding
	Refresh    key.Binding
	History    key.Binding
	Startup    key.Binding
	GoHome     key.Binding
	ExportPNG  key.Binding
	ExportHTML key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑/↓", "navigate"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Parent: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("bksp", "parent"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("k"),
			key.WithHelp("j/k", "scroll"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("j"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("u", "pgup"),
			key.WithHelp("u/d", "page"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("d", "pgdown"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home/end", "jump"),
		),
		End: key.NewBinding(
			key.WithKeys("end"),
		),
		Chart: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "chart"),
		),
		Icons: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "icons"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		History: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "history"),
		),
		Startup: key.NewBinding(
			key.WithKeys("."),
			key.WithHelp(".", "startup dir"),
		),
		GoHome: key.NewBinding(
			key.WithKeys("~"),
			key.WithHelp("~", "home dir"),
		),
		ExportPNG: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "export png"),
		),
		ExportHTML: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "export html"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Open, k.Parent, k.ScrollUp, k.PageUp, k.Chart, k.History, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Open, k.Parent, k.Refresh},
		{k.ScrollUp, k.PageUp, k.Home, k.End},
		{k.Chart, k.ExportPNG, k.ExportHTML, k.Icons},
		{k.History, k.Startup, k.GoHome, k.Quit},
	}
}
