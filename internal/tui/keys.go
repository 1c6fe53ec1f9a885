package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Restart    key.Binding
	TryAgain   key.Binding
	Mode       key.Binding
	Language   key.Binding
	Duration   key.Binding
	DeleteWord key.Binding
	Quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Restart: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reset"),
		),
		TryAgain: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "try again"),
		),
		Mode: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "mode"),
		),
		Language: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "language"),
		),
		Duration: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "duration"),
		),
		DeleteWord: key.NewBinding(
			key.WithKeys("ctrl+w"),
			key.WithHelp("ctrl+w", "delete word"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Restart, k.Mode, k.Language, k.Duration, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Restart, k.TryAgain, k.DeleteWord},
		{k.Mode, k.Language, k.Duration, k.Quit},
	}
}

// finishedHelp is shown on the results screen.
type finishedHelp struct {
	keyMap
}

func (k finishedHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.TryAgain, k.Mode, k.Language, k.Duration, k.Quit}
}
