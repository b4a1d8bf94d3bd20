package browser

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/rshade/resultpager/internal/tui/pagination"
)

// KeyMap holds the browser-level bindings.
type KeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default browser bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "dismiss error"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// helpKeys combines the pagination and browser bindings for bubbles/help.
type helpKeys struct {
	pager   pagination.KeyMap
	browser KeyMap
}

func (h helpKeys) ShortHelp() []key.Binding {
	return append(h.pager.ShortHelp(), h.browser.Up, h.browser.Down, h.browser.Quit)
}

func (h helpKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
