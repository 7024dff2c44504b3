package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	newItem   key.Binding
	refresh   key.Binding
	edit      key.Binding
	delete    key.Binding
	copy      key.Binding
	buildInfo key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab", "down")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab", "up")),
	quit:      key.NewBinding(key.WithKeys("q")),
	newItem:   key.NewBinding(key.WithKeys("n")),
	refresh:   key.NewBinding(key.WithKeys("r")),
	edit:      key.NewBinding(key.WithKeys("e", "enter")),
	delete:    key.NewBinding(key.WithKeys("d", "delete")),
	copy:      key.NewBinding(key.WithKeys("c")),
	buildInfo: key.NewBinding(key.WithKeys("v")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n", "esc")),
}
