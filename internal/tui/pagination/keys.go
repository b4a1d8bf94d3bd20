package pagination

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings that activate the two buttons.
type KeyMap struct {
	Previous key.Binding
	Next     key.Binding
}

// DefaultKeyMap binds left/h to previous and right/l to next.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(nil, nil)
}

// NewKeyMap builds a key map from key names as understood by bubbles/key.
// An empty list keeps the default keys for that button.
func NewKeyMap(previous, next []string) KeyMap {
	if len(previous) == 0 {
		previous = []string{"left", "h"}
	}
	if len(next) == 0 {
		next = []string{"right", "l"}
	}
	return KeyMap{
		Previous: key.NewBinding(
			key.WithKeys(previous...),
			key.WithHelp(previous[0], "previous page"),
		),
		Next: key.NewBinding(
			key.WithKeys(next...),
			key.WithHelp(next[0], "next page"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Previous, k.Next}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
