package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	enter      key.Binding
	esc        key.Binding
	tab        key.Binding
	backtab    key.Binding
	quit       key.Binding
	capture    key.Binding
	analyze    key.Binding
	paste      key.Binding
	history    key.Binding
	logout     key.Binding
	about      key.Binding
	transcript key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "k")),
	down:       key.NewBinding(key.WithKeys("down", "j")),
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	tab:        key.NewBinding(key.WithKeys("tab")),
	backtab:    key.NewBinding(key.WithKeys("shift+tab")),
	quit:       key.NewBinding(key.WithKeys("ctrl+c")),
	capture:    key.NewBinding(key.WithKeys("ctrl+s")),
	analyze:    key.NewBinding(key.WithKeys("ctrl+a")),
	paste:      key.NewBinding(key.WithKeys("ctrl+v")),
	history:    key.NewBinding(key.WithKeys("ctrl+r")),
	logout:     key.NewBinding(key.WithKeys("ctrl+l")),
	about:      key.NewBinding(key.WithKeys("f1")),
	transcript: key.NewBinding(key.WithKeys("ctrl+t")),
}
