package pagination

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nextPageMsg struct{}

type previousPageMsg struct{}

// counter records how often each callback ran.
type counter struct {
	next     int
	previous int
}

func (c *counter) props(previous, next string, pageLimit, dataLength int) Props {
	return Props{
		GetNextPage: func() tea.Cmd {
			c.next++
			return func() tea.Msg { return nextPageMsg{} }
		},
		GetPreviousPage: func() tea.Cmd {
			c.previous++
			return func() tea.Msg { return previousPageMsg{} }
		},
		Previous:   previous,
		Next:       next,
		PageLimit:  pageLimit,
		DataLength: dataLength,
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_ButtonsEnabled(t *testing.T) {
	tests := []struct {
		name         string
		previous     string
		next         string
		wantPrevious bool
		wantNext     bool
	}{
		{name: "no cursors"},
		{name: "first page", next: "0:20:0", wantNext: true},
		{name: "middle page", previous: "0:0:1", next: "0:40:0", wantPrevious: true, wantNext: true},
		{name: "last page", previous: "0:20:1", wantPrevious: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c counter
			m, err := New(c.props(tt.previous, tt.next, 20, 20))
			require.NoError(t, err)

			assert.Equal(t, tt.wantPrevious, m.PreviousEnabled())
			assert.Equal(t, tt.wantNext, m.NextEnabled())
			assert.Equal(t, tt.wantPrevious, m.KeyMap().Previous.Enabled())
			assert.Equal(t, tt.wantNext, m.KeyMap().Next.Enabled())
		})
	}
}

func TestModel_ViewLabel(t *testing.T) {
	var c counter

	m, err := New(c.props("", "cursor:40", 20, 20))
	require.NoError(t, err)
	assert.Contains(t, m.View(), "Results 21 - 40")
	assert.Contains(t, m.View(), IconPrevious)
	assert.Contains(t, m.View(), IconNext)

	m, err = New(c.props("", "cursor:40", 20, 0))
	require.NoError(t, err)
	assert.Contains(t, m.View(), "0 Results")

	m, err = New(c.props("0:0:1", "", 20, 20))
	require.NoError(t, err)
	view := m.View()
	assert.NotContains(t, view, "Results")
	assert.Equal(t, 1, lipgloss.Height(view))
}

func TestModel_ViewRightAligned(t *testing.T) {
	var c counter

	m, err := New(c.props("0:0:1", "0:40:0", 20, 20), WithWidth(40))
	require.NoError(t, err)

	lines := strings.Split(m.View(), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Equal(t, 40, lipgloss.Width(line))
		assert.True(t, strings.HasPrefix(line, " "), "expected left padding in %q", line)
	}
	assert.True(t, strings.HasSuffix(lines[1], "Results 21 - 40"))
}

func TestModel_KeyActivation(t *testing.T) {
	var c counter
	m, err := New(c.props("0:0:1", "0:40:0", 20, 20))
	require.NoError(t, err)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.NotNil(t, cmd)
	assert.IsType(t, nextPageMsg{}, cmd())
	assert.Equal(t, 1, c.next)
	assert.Equal(t, 0, c.previous)

	_, cmd = m.Update(keyRunes("h"))
	require.NotNil(t, cmd)
	assert.IsType(t, previousPageMsg{}, cmd())
	assert.Equal(t, 1, c.next)
	assert.Equal(t, 1, c.previous)

	_, cmd = m.Update(keyRunes("l"))
	require.NotNil(t, cmd)
	assert.Equal(t, 2, c.next)
}

func TestModel_DisabledButtonsDoNothing(t *testing.T) {
	var c counter
	m, err := New(c.props("", "", 20, 20))
	require.NoError(t, err)

	for _, msg := range []tea.Msg{
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyLeft},
		keyRunes("h"),
		keyRunes("l"),
	} {
		_, cmd := m.Update(msg)
		assert.Nil(t, cmd)
	}

	assert.Equal(t, 0, c.next)
	assert.Equal(t, 0, c.previous)
}

func TestModel_CustomKeyMap(t *testing.T) {
	var c counter
	m, err := New(c.props("0:0:1", "0:40:0", 20, 20),
		WithKeyMap(NewKeyMap([]string{"p"}, []string{"n"})))
	require.NoError(t, err)

	_, cmd := m.Update(keyRunes("n"))
	require.NotNil(t, cmd)
	_, cmd = m.Update(keyRunes("l"))
	assert.Nil(t, cmd)

	assert.Equal(t, 1, c.next)
}

func TestModel_MouseActivation(t *testing.T) {
	const width, originX, originY = 30, 2, 5

	var c counter
	m, err := New(c.props("0:0:1", "0:40:0", 20, 20), WithWidth(width), WithOrigin(originX, originY))
	require.NoError(t, err)

	groupWidth := lipgloss.Width(strings.TrimLeft(strings.Split(m.View(), "\n")[0], " "))
	press := func(x, y int) tea.MouseMsg {
		return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	}

	// Rightmost cell is the next button.
	_, cmd := m.Update(press(originX+width-1, originY))
	require.NotNil(t, cmd)
	assert.Equal(t, 1, c.next)

	// Leftmost cell of the group is the previous button.
	_, cmd = m.Update(press(originX+width-groupWidth, originY))
	require.NotNil(t, cmd)
	assert.Equal(t, 1, c.previous)

	// Padding left of the group, the label row and releases are ignored.
	for _, msg := range []tea.MouseMsg{
		press(originX, originY),
		press(originX+width-1, originY+1),
		{X: originX + width - 1, Y: originY, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft},
		{X: originX + width - 1, Y: originY, Action: tea.MouseActionPress, Button: tea.MouseButtonRight},
	} {
		_, cmd = m.Update(msg)
		assert.Nil(t, cmd)
	}

	assert.Equal(t, 1, c.next)
	assert.Equal(t, 1, c.previous)
}

func TestModel_MouseOnDisabledButton(t *testing.T) {
	var c counter
	m, err := New(c.props("", "0:20:0", 20, 20), WithWidth(10))
	require.NoError(t, err)

	groupWidth := lipgloss.Width(strings.TrimLeft(strings.Split(m.View(), "\n")[0], " "))
	_, cmd := m.Update(tea.MouseMsg{X: 10 - groupWidth, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, c.previous)
}

func TestModel_LabelLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	var c counter
	m, err := New(c.props("", "not-a-cursor", 20, 5), WithLogger(logger))
	require.NoError(t, err)

	assert.Contains(t, m.View(), LabelNoResults)
	assert.Contains(t, buf.String(), `"data_length":5`)
	assert.Contains(t, buf.String(), `"level":"warn"`)
}
