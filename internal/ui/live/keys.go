package live

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the quiz key bindings.
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Submit  key.Binding
	Prev    key.Binding
	Next    key.Binding
	Finish  key.Binding
	Reset   key.Binding
	Quit    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Prev:    key.NewBinding(key.WithKeys("left", "p", "shift+tab"), key.WithHelp("←/p", "previous")),
		Next:    key.NewBinding(key.WithKeys("right", "n", "tab"), key.WithHelp("→/n", "next")),
		Finish:  key.NewBinding(key.WithKeys("f", "ctrl+f"), key.WithHelp("f", "finish")),
		Reset:   key.NewBinding(key.WithKeys("r", "ctrl+r"), key.WithHelp("r", "new quiz")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
		Confirm: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "finish anyway")),
		Cancel:  key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "keep going")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Prev, k.Next, k.Finish, k.Reset, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Submit}, {k.Prev, k.Next}, {k.Finish, k.Reset, k.Quit}}
}

// textKeys are the bindings that still apply while typing a free-text answer:
// letters belong to the input, so only control keys navigate.
func textKeys(k keyMap) keyMap {
	k.Prev = key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous"))
	k.Next = key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next"))
	k.Finish = key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "finish"))
	k.Reset = key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "new quiz"))
	k.Quit = key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit"))
	return k
}
