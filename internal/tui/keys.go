package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	quit      key.Binding
	upload    key.Binding
	download  key.Binding
	snapshots key.Binding
	yes       key.Binding
	no        key.Binding
	cloud     key.Binding
	device    key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	upload:    key.NewBinding(key.WithKeys("u")),
	download:  key.NewBinding(key.WithKeys("d")),
	snapshots: key.NewBinding(key.WithKeys("s")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n")),
	cloud:     key.NewBinding(key.WithKeys("c")),
	device:    key.NewBinding(key.WithKeys("l")),
}
