package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application
type KeyMap struct {
	// Pages
	Registration key.Binding
	Login        key.Binding
	Catalog      key.Binding
	NextPage     key.Binding
	PrevPage     key.Binding

	// Form navigation
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding

	// Catalog
	Filter      key.Binding
	ClearFilter key.Binding
	GetBooks    key.Binding

	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Registration: key.NewBinding(
			key.WithKeys("f1", "ctrl+r"),
			key.WithHelp("F1", "registration"),
		),
		Login: key.NewBinding(
			key.WithKeys("f2", "ctrl+l"),
			key.WithHelp("F2", "login"),
		),
		Catalog: key.NewBinding(
			key.WithKeys("f3", "ctrl+b"),
			key.WithHelp("F3", "books"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("C-n", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("C-p", "previous page"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("S-tab", "previous field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Filter: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("C-f", "filter"),
		),
		ClearFilter: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear filter"),
		),
		GetBooks: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("C-g", "get books"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+q"),
			key.WithHelp("C-c", "quit"),
		),
	}
}
