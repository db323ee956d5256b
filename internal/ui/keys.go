package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextView  key.Binding
	Stats     key.Binding
	Inventory key.Binding
	Up        key.Binding
	Down      key.Binding
	Select    key.Binding
	Drop      key.Binding
	PickUp    key.Binding
	Command   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		NextView:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next view")),
		Stats:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stats")),
		Inventory: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "inventory")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "drop/pick up")),
		Drop:      key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "drop")),
		PickUp:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pick up")),
		Command:   key.NewBinding(key.WithKeys(":", "/"), key.WithHelp(":", "command")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextView, k.Drop, k.PickUp, k.Command, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextView, k.Stats, k.Inventory},
		{k.Up, k.Down, k.Select, k.Drop, k.PickUp},
		{k.Command, k.Help, k.Quit},
	}
}
