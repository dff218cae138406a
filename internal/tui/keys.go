package tui

import "charm.land/bubbles/v2/key"

// keyMap declares the editor keybindings. Navigation bindings come in two
// flavors: the vim-style pair is only active outside text entry so typed
// characters are never swallowed.
type keyMap struct {
	Up       key.Binding // navigation, includes "k"
	Down     key.Binding // navigation, includes "j"
	ArrowUp  key.Binding // text-entry safe
	ArrowDn  key.Binding // text-entry safe
	Confirm  key.Binding
	Accept   key.Binding // confirmation modal, enter or space
	Cancel   key.Binding
	Toggle   key.Binding
	Save     key.Binding
	Search   key.Binding
	Quit     key.Binding
	Language key.Binding
}

var keys = keyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k")),
	Down:     key.NewBinding(key.WithKeys("down", "j")),
	ArrowUp:  key.NewBinding(key.WithKeys("up")),
	ArrowDn:  key.NewBinding(key.WithKeys("down")),
	Confirm:  key.NewBinding(key.WithKeys("enter")),
	Accept:   key.NewBinding(key.WithKeys("enter", "space")),
	Cancel:   key.NewBinding(key.WithKeys("esc")),
	Toggle:   key.NewBinding(key.WithKeys("t")),
	Save:     key.NewBinding(key.WithKeys("s")),
	Search:   key.NewBinding(key.WithKeys("/")),
	Quit:     key.NewBinding(key.WithKeys("q")),
	Language: key.NewBinding(key.WithKeys("f2")),
}
