package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Platform  key.Binding
	Enter     key.Binding
	Back      key.Binding
	Stats     key.Binding
	Export    key.Binding
	Theme     key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

var keys = keyMap{
	Platform:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "platform")),
	Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search/open")),
	Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Stats:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stats")),
	Export:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "export PDF")),
	Theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
	Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
}
