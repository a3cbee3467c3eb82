package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the feed key bindings. Advance and Retreat drive the
// navigator directly, independent of the gesture path.
type keyMap struct {
	Advance key.Binding
	Retreat key.Binding
	Like    key.Binding
	Share   key.Binding
	Remix   key.Binding
	Retry   key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Advance: key.NewBinding(
			key.WithKeys("down", "j", "pgdown", " "),
			key.WithHelp("↓/j", "next post"),
		),
		Retreat: key.NewBinding(
			key.WithKeys("up", "k", "pgup"),
			key.WithHelp("↑/k", "previous post"),
		),
		Like: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "like/unlike"),
		),
		Share: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "share"),
		),
		Remix: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "remix"),
		),
		Retry: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "retry load"),
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

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Advance, k.Retreat, k.Like, k.Share, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Advance, k.Retreat},
		{k.Like, k.Share, k.Remix},
		{k.Retry, k.Help, k.Quit},
	}
}
