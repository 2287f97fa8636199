package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Search   key.Binding
	Blur     key.Binding
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Prev     key.Binding
	Next     key.Binding
	Slide    key.Binding
	Quit     key.Binding
	ForceQ   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Blur:     key.NewBinding(key.WithKeys("esc", "enter"), key.WithHelp("esc", "done")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", " ", "f"), key.WithHelp("pgdn", "page down")),
		Prev:     key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev banner")),
		Next:     key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next banner")),
		Slide:    key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "go to banner")),
		Quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQ:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Down, k.Up, k.Prev, k.Next, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Search, k.Blur},
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Prev, k.Next, k.Slide},
		{k.Quit},
	}
}

// searchHelp is shown while the search bar has focus.
type searchHelp struct{ k keyMap }

func (s searchHelp) ShortHelp() []key.Binding { return []key.Binding{s.k.Blur, s.k.ForceQ} }
func (s searchHelp) FullHelp() [][]key.Binding { return [][]key.Binding{s.ShortHelp()} }
