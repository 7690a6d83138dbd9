package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Submit   key.Binding
	Share    key.Binding
	History  key.Binding
	Practice key.Binding
	Reset    key.Binding
	Results  key.Binding
	Intro    key.Binding
	Close    key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Share:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "share")),
		History:  key.NewBinding(key.WithKeys("ctrl+h"), key.WithHelp("ctrl+h", "history")),
		Practice: key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "practice")),
		Reset:    key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset")),
		Results:  key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "results")),
		Intro:    key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "how it works")),
		Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Share, k.History, k.Practice, k.Reset, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Share, k.History},
		{k.Practice, k.Reset, k.Results},
		{k.Intro, k.Close, k.Quit},
	}
}
