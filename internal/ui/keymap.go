package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextTile  key.Binding
	PrevTile  key.Binding
	CycleMode key.Binding
	ResetMode key.Binding
	SwapLeft  key.Binding
	SwapRight key.Binding
	Layout    key.Binding
	Theme     key.Binding
	Autostart key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextTile: key.NewBinding(
			key.WithKeys("tab", "right"),
			key.WithHelp("tab", "next tile"),
		),
		PrevTile: key.NewBinding(
			key.WithKeys("shift+tab", "left"),
			key.WithHelp("shift+tab", "prev tile"),
		),
		CycleMode: key.NewBinding(
			key.WithKeys("enter", "m"),
			key.WithHelp("m", "cycle mode"),
		),
		ResetMode: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset mode"),
		),
		SwapLeft: key.NewBinding(
			key.WithKeys("<", "H"),
			key.WithHelp("<", "move tile left"),
		),
		SwapRight: key.NewBinding(
			key.WithKeys(">", "L"),
			key.WithHelp(">", "move tile right"),
		),
		Layout: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "layout"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Autostart: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "autostart"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp is the single footer line; FullHelp is the expanded view
// behind "?".
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.CycleMode, k.Layout, k.Theme, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTile, k.PrevTile, k.SwapLeft, k.SwapRight},
		{k.CycleMode, k.ResetMode, k.Layout, k.Theme},
		{k.Autostart, k.Help, k.Quit},
	}
}
