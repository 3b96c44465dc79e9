package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	First      key.Binding
	Previous   key.Binding
	Next       key.Binding
	Last       key.Binding
	PageSize   key.Binding
	PageSizeDn key.Binding
	Filter     key.Binding
	NextInput  key.Binding
	PrevInput  key.Binding
	Done       key.Binding
	Quit       key.Binding
}

var keys = keyMap{
	First:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first")),
	Previous:   key.NewBinding(key.WithKeys("left", "h", "pgup"), key.WithHelp("←/h", "previous")),
	Next:       key.NewBinding(key.WithKeys("right", "l", "pgdown"), key.WithHelp("→/l", "next")),
	Last:       key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last")),
	PageSize:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s/S", "page size")),
	PageSizeDn: key.NewBinding(key.WithKeys("S")),
	Filter:     key.NewBinding(key.WithKeys("/", "tab"), key.WithHelp("/", "filter")),
	NextInput:  key.NewBinding(key.WithKeys("tab", "down")),
	PrevInput:  key.NewBinding(key.WithKeys("shift+tab", "up")),
	Done:       key.NewBinding(key.WithKeys("enter", "esc")),
	Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// helpBindings are listed in the footer, in order.
var helpBindings = []key.Binding{keys.First, keys.Previous, keys.Next, keys.Last, keys.PageSize, keys.Filter, keys.Quit}
