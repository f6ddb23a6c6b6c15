package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Pick     key.Binding
	NextZone key.Binding
	PrevZone key.Binding
	Drop     key.Binding
	Front    key.Binding
	Cancel   key.Binding
	Display  key.Binding
	Indent   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		Pick:     key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "pick up")),
		NextZone: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next zone")),
		PrevZone: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev zone")),
		Drop:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "drop")),
		Front:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "to front")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Display:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "display")),
		Indent:   key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "indent")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// idleKeys and dragKeys feed the footer (bubbles/help ShortHelp).
type idleKeys struct{ k keyMap }

func (h idleKeys) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Down, h.k.Up, h.k.Pick, h.k.Front, h.k.Display, h.k.Indent, h.k.Help, h.k.Quit}
}
func (h idleKeys) FullHelp() [][]key.Binding { return [][]key.Binding{h.ShortHelp()} }

type dragKeys struct{ k keyMap }

func (h dragKeys) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Down, h.k.Up, h.k.NextZone, h.k.Drop, h.k.Cancel}
}
func (h dragKeys) FullHelp() [][]key.Binding { return [][]key.Binding{h.ShortHelp()} }
