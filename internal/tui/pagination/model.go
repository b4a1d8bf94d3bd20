package pagination

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

// Model is the pagination control. It is a value type; Update returns the
// (unchanged) model together with the command produced by a PageFunc.
type Model struct {
	props  Props
	keys   KeyMap
	theme  Theme
	logger zerolog.Logger

	// width is the width the control is right-aligned in. Zero disables
	// alignment.
	width int

	// originX and originY locate the control's top-left cell on screen, for
	// mouse hit testing.
	originX int
	originY int
}

// Option configures a Model.
type Option func(*Model)

// WithKeyMap replaces the default key bindings.
func WithKeyMap(k KeyMap) Option {
	return func(m *Model) { m.keys = k }
}

// WithTheme replaces the default theme.
func WithTheme(t Theme) Option {
	return func(m *Model) { m.theme = t }
}

// WithLogger sets the logger used for label diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(m *Model) { m.logger = l }
}

// WithWidth sets the alignment width.
func WithWidth(w int) Option {
	return func(m *Model) { m.width = w }
}

// WithOrigin sets the screen position of the control's top-left cell.
func WithOrigin(x, y int) Option {
	return func(m *Model) {
		m.originX = x
		m.originY = y
	}
}

// New validates props and builds a Model.
func New(props Props, opts ...Option) (Model, error) {
	if err := props.Validate(); err != nil {
		return Model{}, err
	}

	m := Model{
		props:  props,
		keys:   DefaultKeyMap(),
		theme:  DefaultTheme(),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.keys.Previous.SetEnabled(m.PreviousEnabled())
	m.keys.Next.SetEnabled(m.NextEnabled())

	return m, nil
}

// Props returns the props the model was built from.
func (m Model) Props() Props {
	return m.props
}

// KeyMap returns the active key bindings. Bindings of disabled buttons are
// disabled, so bubbles/help hides them.
func (m Model) KeyMap() KeyMap {
	return m.keys
}

// PreviousEnabled reports whether the "previous" button is enabled.
func (m Model) PreviousEnabled() bool {
	return m.props.Previous != ""
}

// NextEnabled reports whether the "next" button is enabled.
func (m Model) NextEnabled() bool {
	return m.props.Next != ""
}

// SetWidth sets the alignment width.
func (m *Model) SetWidth(w int) {
	m.width = w
}

// SetOrigin sets the screen position of the control's top-left cell.
func (m *Model) SetOrigin(x, y int) {
	m.originX = x
	m.originY = y
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update activates a button on its key binding or on a left mouse press
// within its bounds.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Previous):
			return m, m.activate(buttonPrevious)
		case key.Matches(msg, m.keys.Next):
			return m, m.activate(buttonNext)
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		return m, m.activate(m.hit(msg.X, msg.Y))
	}

	return m, nil
}

// View renders the button group and, when a next cursor is present, the
// range label beneath it.
func (m Model) View() string {
	buttons := m.align(m.buttonGroup())
	if !m.NextEnabled() {
		return buttons
	}

	label := m.align(m.theme.Label.Render(m.Label()))
	return lipgloss.JoinVertical(lipgloss.Right, buttons, label)
}

// Label returns the range label text. It is only meaningful when a next
// cursor is present.
func (m Model) Label() string {
	m.logger.Debug().Int("data_length", m.props.DataLength).Msg("computing range label")

	label, err := RangeLabel(m.props.Next, m.props.PageLimit, m.props.DataLength)
	if err != nil {
		m.logger.Warn().Err(err).Str("next", m.props.Next).Msg("rendering fallback range label")
	}
	return label
}

type button int

const (
	buttonNone button = iota
	buttonPrevious
	buttonNext
)

func (b button) String() string {
	switch b {
	case buttonPrevious:
		return "previous"
	case buttonNext:
		return "next"
	case buttonNone:
		return "none"
	default:
		return fmt.Sprintf("button(%d)", int(b))
	}
}

func (m Model) activate(b button) tea.Cmd {
	switch b {
	case buttonPrevious:
		if !m.PreviousEnabled() {
			return nil
		}
		m.logger.Debug().Str("button", b.String()).Str("cursor", m.props.Previous).Msg("page requested")
		return m.props.GetPreviousPage()
	case buttonNext:
		if !m.NextEnabled() {
			return nil
		}
		m.logger.Debug().Str("button", b.String()).Str("cursor", m.props.Next).Msg("page requested")
		return m.props.GetNextPage()
	case buttonNone:
		return nil
	default:
		return nil
	}
}

func (m Model) renderButton(icon string, enabled bool) string {
	if enabled {
		return m.theme.Button.Render(icon)
	}
	return m.theme.DisabledButton.Render(icon)
}

func (m Model) buttonGroup() string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderButton(IconPrevious, m.PreviousEnabled()),
		m.renderButton(IconNext, m.NextEnabled()),
	)
}

func (m Model) align(s string) string {
	if m.width <= 0 {
		return s
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Right, s)
}

// hit maps a screen cell to the button drawn there. Buttons occupy the
// first row of the control.
func (m Model) hit(x, y int) button {
	if y != m.originY {
		return buttonNone
	}

	prevWidth := lipgloss.Width(m.renderButton(IconPrevious, m.PreviousEnabled()))
	groupWidth := lipgloss.Width(m.buttonGroup())

	start := m.originX
	if m.width > groupWidth {
		start += m.width - groupWidth
	}

	switch {
	case x >= start && x < start+prevWidth:
		return buttonPrevious
	case x >= start+prevWidth && x < start+groupWidth:
		return buttonNext
	default:
		return buttonNone
	}
}
