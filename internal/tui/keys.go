package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every binding the budget screen reacts to.
type keyMap struct {
	Next      key.Binding
	Prev      key.Binding
	CatNext   key.Binding
	CatPrev   key.Binding
	Add       key.Binding
	Calculate key.Binding
	Export    key.Binding
	Help      key.Binding
	Dismiss   key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab ↓", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("S-tab ↑", "previous field"),
		),
		CatNext: key.NewBinding(
			key.WithKeys("ctrl+right", "]"),
			key.WithHelp("] ^→", "next category"),
		),
		CatPrev: key.NewBinding(
			key.WithKeys("ctrl+left", "["),
			key.WithHelp("[ ^←", "previous category"),
		),
		Add: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("^a", "add expense"),
		),
		Calculate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "calculate budget"),
		),
		Export: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("^e", "export workbook"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "dismiss"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("^c", "quit"),
		),
	}
}

// shortHelp is shown in the status bar.
func (k keyMap) shortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Calculate, k.Export, k.Help, k.Quit}
}

// fullHelp groups bindings for the help overlay.
func (k keyMap) fullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.CatNext, k.CatPrev},
		{k.Add, k.Calculate, k.Export, k.Dismiss, k.Help, k.Quit},
	}
}
