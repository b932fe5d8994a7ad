package keys

import "github.com/charmbracelet/bubbles/key"

// HoldKeys are the bindings shown while a pin is held.
// Any key releases; the bindings only describe that in the help line.
type HoldKeys struct {
	Release key.Binding
	Quit    key.Binding
}

func NewHoldKeys() HoldKeys {
	return HoldKeys{
		Release: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("any key", "release and close"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "release and quit"),
		),
	}
}

func (k HoldKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Release, k.Quit}
}

func (k HoldKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
