package rows_test

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/resultpager/internal/tui/rows"
)

var columns = []string{"slug", "status"}

func makeRows(n int) [][]string {
	out := make([][]string, n)
	for i := range out {
		out[i] = []string{fmt.Sprintf("app-%d", i), "published"}
	}
	return out
}

// TestModel_New tests initialization.
func TestModel_New(t *testing.T) {
	m := rows.New(columns, makeRows(5), 20, 80)

	assert.Equal(t, 5, m.RowCount())
	assert.Equal(t, 0, m.Selected())
	assert.Equal(t, 0, m.VisibleFrom())
	assert.Equal(t, 5, m.VisibleTo())
	assert.Equal(t, []string{"app-0", "published"}, m.SelectedRow())
}

// TestModel_VisibleRangeCalculation tests visible range logic.
func TestModel_VisibleRangeCalculation(t *testing.T) {
	tests := []struct {
		name          string
		totalRows     int
		height        int
		selectedIndex int
		expectFrom    int
		expectTo      int
	}{
		{name: "top", totalRows: 100, height: 20, selectedIndex: 0, expectFrom: 0, expectTo: 20},
		{name: "middle", totalRows: 100, height: 20, selectedIndex: 50, expectFrom: 40, expectTo: 60},
		{name: "bottom", totalRows: 100, height: 20, selectedIndex: 99, expectFrom: 80, expectTo: 100},
		{name: "fewer rows than viewport", totalRows: 10, height: 20, selectedIndex: 5, expectFrom: 0, expectTo: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := rows.New(columns, makeRows(tt.totalRows), tt.height, 80)
			m.SetSelected(tt.selectedIndex)

			assert.Equal(t, tt.expectFrom, m.VisibleFrom())
			assert.Equal(t, tt.expectTo, m.VisibleTo())
		})
	}
}

// TestModel_Navigation tests vertical key handling.
func TestModel_Navigation(t *testing.T) {
	m := rows.New(columns, makeRows(50), 10, 80)

	tests := []struct {
		name   string
		msg    tea.Msg
		expect int
	}{
		{name: "down", msg: tea.KeyMsg{Type: tea.KeyDown}, expect: 1},
		{name: "j", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")}, expect: 2},
		{name: "k", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")}, expect: 1},
		{name: "page down", msg: tea.KeyMsg{Type: tea.KeyPgDown}, expect: 11},
		{name: "end", msg: tea.KeyMsg{Type: tea.KeyEnd}, expect: 49},
		{name: "down at end stays", msg: tea.KeyMsg{Type: tea.KeyDown}, expect: 49},
		{name: "page up", msg: tea.KeyMsg{Type: tea.KeyPgUp}, expect: 39},
		{name: "home", msg: tea.KeyMsg{Type: tea.KeyHome}, expect: 0},
		{name: "up at start stays", msg: tea.KeyMsg{Type: tea.KeyUp}, expect: 0},
		{name: "horizontal keys ignored", msg: tea.KeyMsg{Type: tea.KeyRight}, expect: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, cmd := m.Update(tt.msg)
			assert.Nil(t, cmd)
			assert.Equal(t, tt.expect, m.Selected())
		})
	}
}

// TestModel_ViewRendersVisibleRows tests that only visible rows are drawn.
func TestModel_ViewRendersVisibleRows(t *testing.T) {
	m := rows.New(columns, makeRows(1000), 20, 80)

	lines := strings.Split(m.View(), "\n")
	require.Len(t, lines, 21)
	assert.Contains(t, lines[0], "slug")
	assert.Contains(t, lines[0], "status")
	assert.Contains(t, lines[1], "> app-0")
	assert.Contains(t, lines[2], "  app-1")
	assert.NotContains(t, m.View(), "app-20")
}

// TestModel_ViewAlignsColumns tests column padding.
func TestModel_ViewAlignsColumns(t *testing.T) {
	m := rows.New([]string{"id", "name"}, [][]string{{"1", "a"}, {"100", "b"}}, 5, 0)

	lines := strings.Split(m.View(), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Index(lines[1], "a"), strings.Index(lines[2], "b"))
}

// TestModel_ViewTruncates tests width capping.
func TestModel_ViewTruncates(t *testing.T) {
	long := [][]string{{strings.Repeat("x", 100), "published"}}
	m := rows.New(columns, long, 5, 30)

	for _, line := range strings.Split(m.View(), "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 30)
	}
}

// TestModel_Empty tests the empty page.
func TestModel_Empty(t *testing.T) {
	m := rows.New(columns, nil, 5, 80)

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 0, m.Selected())
	assert.Nil(t, m.SelectedRow())
	assert.Equal(t, 1, lipgloss.Height(m.View()))
}
