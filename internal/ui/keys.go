package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the bindings handled while a menu level is active. Text keys
// that are not bound here edit the filter.
type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Home       key.Binding
	End        key.Binding
	Enter      key.Binding
	Back       key.Binding
	Pin        key.Binding
	NextFilter key.Binding
	PrevFilter key.Binding
	Quit       key.Binding
	Confirm    key.Binding
	Cancel     key.Binding
	Filter     filterKeyMap
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("up", "ctrl+k"), key.WithHelp("↑", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "ctrl+j"), key.WithHelp("↓", "down")),
		PageUp:     key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Home:       key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first")),
		End:        key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last")),
		Enter:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Pin:        key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "pin")),
		NextFilter: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next category")),
		PrevFilter: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev category")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Confirm:    key.NewBinding(key.WithKeys("y", "Y", "enter"), key.WithHelp("y", "confirm")),
		Cancel:     key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "cancel")),
		Filter:     defaultFilterKeyMap(),
	}
}

// footerKeys adapts the key map to the help footer for the active level.
type footerKeys struct {
	keys     keyMap
	pinnable bool
	chips    bool
	confirm  bool
}

func (f footerKeys) ShortHelp() []key.Binding {
	if f.confirm {
		return []key.Binding{f.keys.Confirm, f.keys.Cancel}
	}
	bindings := []key.Binding{f.keys.Up, f.keys.Down, f.keys.Enter}
	if f.pinnable {
		bindings = append(bindings, f.keys.Pin)
	}
	if f.chips {
		bindings = append(bindings, f.keys.NextFilter)
	}
	return append(bindings, f.keys.Back, f.keys.Quit)
}

func (f footerKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		f.ShortHelp(),
		{f.keys.PageUp, f.keys.PageDown, f.keys.Home, f.keys.End, f.keys.PrevFilter},
		{f.keys.Filter.Clear, f.keys.Filter.DeleteWord},
	}
}
