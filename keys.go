package main

import "github.com/charmbracelet/bubbles/key"

// ---------------------------------------------------------------------------
// Key bindings
// ---------------------------------------------------------------------------

type keyMap struct {
	Next     key.Binding
	Prev     key.Binding
	First    key.Binding
	Last     key.Binding
	Jump     key.Binding
	Decks    key.Binding
	AutoPlay key.Binding
	Axis     key.Binding
	Quit     key.Binding
	Enter    key.Binding
	Close    key.Binding
	UpDown   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Next:     key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("h/l", "flip")),
		Prev:     key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/l", "flip")),
		First:    key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g/G", "first/last")),
		Last:     key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("g/G", "first/last")),
		Jump:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "jump")),
		Decks:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "decks")),
		AutoPlay: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "present")),
		Axis:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "axis")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		UpDown:   key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "navigate")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Jump, k.Decks, k.AutoPlay, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.First, k.Jump, k.Decks, k.AutoPlay, k.Axis, k.Quit}}
}

type modalKeyMap struct {
	keyMap
}

func (k modalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.UpDown, k.Close, k.Quit}
}

func (k modalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Enter, k.UpDown, k.Close, k.Quit}}
}
