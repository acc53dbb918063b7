package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit      key.Binding
	Focus     key.Binding
	Fetch     key.Binding
	Open      key.Binding
	Create    key.Binding
	Save      key.Binding
	Close     key.Binding
	ExportPNG key.Binding
	ExportPDF key.Binding
	CopyWKT   key.Binding
	Import    key.Binding
	Help      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Focus:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "author/list")),
		Fetch:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "fetch")),
		Open:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Create:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "create new")),
		Save:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save")),
		Close:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		ExportPNG: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "png")),
		ExportPDF: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pdf")),
		CopyWKT:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy wkt")),
		Import:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "append wkt")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Focus, k.Fetch, k.Open, k.Create, k.Save, k.Close,
		k.ExportPNG, k.ExportPDF, k.CopyWKT, k.Import, k.Help, k.Quit,
	}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Focus, k.Fetch, k.Open, k.Create},
		{k.Save, k.Close, k.Import},
		{k.ExportPNG, k.ExportPDF, k.CopyWKT},
		{k.Help, k.Quit},
	}
}
