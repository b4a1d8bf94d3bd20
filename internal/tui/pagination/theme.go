package pagination

import "github.com/charmbracelet/lipgloss"

// Default palette.
const (
	ColorAccent   = lipgloss.Color("63")
	ColorMuted    = lipgloss.Color("245")
	ColorDisabled = lipgloss.Color("240")
)

// Button glyphs.
const (
	IconPrevious = "‹"
	IconNext     = "›"
)

// Theme holds the styles used to draw the control.
type Theme struct {
	Button         lipgloss.Style
	DisabledButton lipgloss.Style
	Label          lipgloss.Style
}

// NewTheme builds a theme from three colors.
func NewTheme(accent, muted, disabled lipgloss.Color) Theme {
	return Theme{
		Button: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true).
			Padding(0, 1),
		DisabledButton: lipgloss.NewStyle().
			Foreground(disabled).
			Faint(true).
			Padding(0, 1),
		Label: lipgloss.NewStyle().
			Foreground(muted),
	}
}

// DefaultTheme returns the theme built from the default palette.
func DefaultTheme() Theme {
	return NewTheme(ColorAccent, ColorMuted, ColorDisabled)
}
