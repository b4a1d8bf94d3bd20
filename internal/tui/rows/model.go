package rows

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// halfViewportDivisor is used to calculate half the viewport height for centering.
const halfViewportDivisor = 2

// columnGap separates adjacent cells.
const columnGap = "  "

// Selection markers.
const (
	markerSelected   = "> "
	markerUnselected = "  "
)

// Model is a scrollable table of string cells.
type Model struct {
	columns []string
	rows    [][]string

	// widths is the display width of each column, header included.
	widths []int

	// selected is the currently selected row index (0-based).
	selected int

	// visibleFrom is the first visible row index.
	visibleFrom int

	// visibleTo is the last visible row index (exclusive).
	visibleTo int

	// height is the number of row lines, header excluded.
	height int

	// width is the viewport width in columns. Zero disables truncation.
	width int

	headerStyle   lipgloss.Style
	selectedStyle lipgloss.Style
}

// New creates a row table.
func New(columns []string, rows [][]string, height, width int) *Model {
	m := &Model{
		columns:       columns,
		rows:          rows,
		height:        height,
		width:         width,
		headerStyle:   lipgloss.NewStyle().Bold(true).Underline(true),
		selectedStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
	}

	m.widths = columnWidths(columns, rows)
	m.updateVisibleRange()
	return m
}

func columnWidths(columns []string, rows [][]string) []int {
	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = lipgloss.Width(c)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}
	return widths
}

// Init initializes the model (required for tea.Model interface).
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles vertical navigation keys.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKeyMsg(msg), nil
	}
	return m, nil
}

// handleKeyMsg processes keyboard input for navigation.
//
//nolint:exhaustive // Only vertical navigation keys are handled here.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) tea.Model {
	if len(m.rows) == 0 {
		return m
	}

	switch msg.Type {
	case tea.KeyUp:
		m.SetSelected(m.selected - 1)
	case tea.KeyDown:
		m.SetSelected(m.selected + 1)
	case tea.KeyPgUp:
		m.SetSelected(m.selected - m.height)
	case tea.KeyPgDown:
		m.SetSelected(m.selected + m.height)
	case tea.KeyHome:
		m.SetSelected(0)
	case tea.KeyEnd:
		m.SetSelected(len(m.rows) - 1)
	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "j":
			m.SetSelected(m.selected + 1)
		case "k":
			m.SetSelected(m.selected - 1)
		}
	default:
	}

	return m
}

// updateVisibleRange keeps the selected row inside [visibleFrom, visibleTo).
func (m *Model) updateVisibleRange() {
	if len(m.rows) == 0 || m.height <= 0 {
		m.visibleFrom = 0
		m.visibleTo = 0
		return
	}

	halfViewport := m.height / halfViewportDivisor

	from := m.selected - halfViewport
	to := from + m.height

	if from < 0 {
		from = 0
		to = m.height
	}

	if to > len(m.rows) {
		to = len(m.rows)
		from = max(to-m.height, 0)
	}

	m.visibleFrom = from
	m.visibleTo = to
}

// View renders the header and the visible rows.
func (m *Model) View() string {
	var sb strings.Builder

	sb.WriteString(m.headerStyle.Render(m.truncate(markerUnselected + m.formatRow(m.columns))))

	for i := m.visibleFrom; i < m.visibleTo; i++ {
		sb.WriteString("\n")
		if i == m.selected {
			sb.WriteString(m.selectedStyle.Render(m.truncate(markerSelected + m.formatRow(m.rows[i]))))
			continue
		}
		sb.WriteString(m.truncate(markerUnselected + m.formatRow(m.rows[i])))
	}

	return sb.String()
}

func (m *Model) formatRow(cells []string) string {
	padded := make([]string, len(m.widths))
	for i, w := range m.widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		padded[i] = cell + strings.Repeat(" ", w-lipgloss.Width(cell))
	}
	return strings.TrimRight(strings.Join(padded, columnGap), " ")
}

func (m *Model) truncate(line string) string {
	if m.width <= 0 || lipgloss.Width(line) <= m.width {
		return line
	}
	return lipgloss.NewStyle().MaxWidth(m.width).Render(line)
}

// RowCount returns the number of rows on the page.
func (m *Model) RowCount() int {
	return len(m.rows)
}

// Selected returns the selected row index.
func (m *Model) Selected() int {
	return m.selected
}

// SetSelected sets the selected row index, capping to valid bounds.
func (m *Model) SetSelected(index int) {
	switch {
	case len(m.rows) == 0, index < 0:
		m.selected = 0
	case index >= len(m.rows):
		m.selected = len(m.rows) - 1
	default:
		m.selected = index
	}

	m.updateVisibleRange()
}

// SetSize resizes the viewport.
func (m *Model) SetSize(height, width int) {
	m.height = height
	m.width = width
	m.updateVisibleRange()
}

// VisibleFrom returns the first visible row index (inclusive).
func (m *Model) VisibleFrom() int {
	return m.visibleFrom
}

// VisibleTo returns the last visible row index (exclusive).
func (m *Model) VisibleTo() int {
	return m.visibleTo
}

// SelectedRow returns the selected row, or nil when the page is empty.
func (m *Model) SelectedRow() []string {
	if len(m.rows) == 0 {
		return nil
	}
	return m.rows[m.selected]
}
