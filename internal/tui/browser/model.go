package browser

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/resultpager/internal/fixture"
	"github.com/rshade/resultpager/internal/logging"
	"github.com/rshade/resultpager/internal/tui/pagination"
	"github.com/rshade/resultpager/internal/tui/rows"
)

// Default terminal size used until the first WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Layout: status line, table header, rows, two pagination lines, help line.
const (
	statusLines = 1
	headerLines = 1
	pagerLines  = 2
	helpLines   = 1
	chromeLines = statusLines + headerLines + pagerLines + helpLines
	minRowLines = 1
)

// printer formats row counts with thousands separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// Source serves pages by cursor. An empty cursor selects the first page.
type Source interface {
	Name() string
	Columns() []string
	PageLimit() int
	Page(ctx context.Context, cursor string) (fixture.Page, error)
}

// ViewState is the browser's current mode.
type ViewState int

// View states.
const (
	ViewStateLoading ViewState = iota
	ViewStateList
	ViewStateError
	ViewStateQuitting
)

// Model is the Bubble Tea model for the page browser.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type Model struct {
	ctx    context.Context
	source Source
	logger zerolog.Logger

	state   ViewState
	page    fixture.Page
	hasPage bool
	err     error

	table   *rows.Model
	pager   pagination.Model
	spinner spinner.Model
	help    help.Model
	keys    KeyMap

	pagerOpts []pagination.Option

	width  int
	height int
}

// NewModel creates a browser over source. pagerOpts are applied to every
// pagination control the browser builds.
func NewModel(ctx context.Context, source Source, pagerOpts ...pagination.Option) Model {
	return Model{
		ctx:       ctx,
		source:    source,
		logger:    logging.ComponentLogger(logging.FromContext(ctx), "browser"),
		state:     ViewStateLoading,
		table:     rows.New(source.Columns(), nil, defaultHeight-chromeLines, defaultWidth),
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:      help.New(),
		keys:      DefaultKeyMap(),
		pagerOpts: pagerOpts,
		width:     defaultWidth,
		height:    defaultHeight,
	}
}

// Init starts the spinner and loads the first page.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetch(""))
}

// State returns the current view state.
func (m Model) State() ViewState {
	return m.state
}

// Page returns the page on screen.
func (m Model) Page() fixture.Page {
	return m.page
}

// Err returns the last page lookup error.
func (m Model) Err() error {
	return m.err
}

// Pager returns the pagination control for the page on screen.
func (m Model) Pager() pagination.Model {
	return m.pager
}

// fetch returns a command that looks cursor up in the source.
func (m Model) fetch(cursor string) tea.Cmd {
	ctx, src := m.ctx, m.source
	return func() tea.Msg {
		page, err := src.Page(ctx, cursor)
		if err != nil {
			return PageErrorMsg{Cursor: cursor, Err: err}
		}
		return PageLoadedMsg{Page: page}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case PageLoadedMsg:
		return m.handlePageLoaded(msg)

	case PageErrorMsg:
		m.logger.Error().Err(msg.Err).Str("cursor", msg.Cursor).Msg("page lookup failed")
		m.state = ViewStateError
		m.err = msg.Err
		return m, nil

	case spinner.TickMsg:
		if m.state != ViewStateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.state != ViewStateList {
			return m, nil
		}
		return m.handlePager(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.state = ViewStateQuitting
		return m, tea.Quit
	}

	switch m.state {
	case ViewStateList:
		if model, cmd := m.handlePager(msg); cmd != nil {
			return model, cmd
		}
		_, _ = m.table.Update(msg)
		return m, nil

	case ViewStateError:
		if key.Matches(msg, m.keys.Back) && m.hasPage {
			m.state = ViewStateList
			m.err = nil
		}
		return m, nil

	case ViewStateLoading, ViewStateQuitting:
		return m, nil

	default:
		return m, nil
	}
}

// handlePager routes msg to the pagination control. A non-nil command means
// a page was requested; the browser shows the spinner until it arrives.
func (m Model) handlePager(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.pager, cmd = m.pager.Update(msg)
	if cmd == nil {
		return m, nil
	}

	m.state = ViewStateLoading
	return m, tea.Batch(cmd, m.spinner.Tick)
}

func (m Model) handlePageLoaded(msg PageLoadedMsg) (tea.Model, tea.Cmd) {
	pager, err := m.buildPager(msg.Page)
	if err != nil {
		m.logger.Error().Err(err).Str("cursor", msg.Page.Cursor).Msg("building pagination control")
		m.state = ViewStateError
		m.err = err
		return m, nil
	}

	m.page = msg.Page
	m.hasPage = true
	m.err = nil
	m.pager = pager
	m.table = rows.New(m.source.Columns(), msg.Page.Rows, m.rowLines(), m.width)
	m.state = ViewStateList
	m.layout()

	m.logger.Debug().
		Str("cursor", msg.Page.Cursor).
		Int("rows", len(msg.Page.Rows)).
		Msg("page displayed")

	return m, nil
}

// buildPager creates the pagination control for page. The callbacks capture
// the page's cursors.
func (m Model) buildPager(page fixture.Page) (pagination.Model, error) {
	previous, next := page.Previous, page.Next

	props := pagination.Props{
		GetNextPage:     func() tea.Cmd { return m.fetch(next) },
		GetPreviousPage: func() tea.Cmd { return m.fetch(previous) },
		Previous:        previous,
		Next:            next,
		PageLimit:       m.source.PageLimit(),
		DataLength:      len(page.Rows),
	}

	opts := append([]pagination.Option{
		pagination.WithLogger(logging.ComponentLogger(m.logger, "pagination")),
	}, m.pagerOpts...)

	pager, err := pagination.New(props, opts...)
	if err != nil {
		return pagination.Model{}, fmt.Errorf("page %s: %w", page.Cursor, err)
	}
	return pager, nil
}

func (m Model) rowLines() int {
	return max(m.height-chromeLines, minRowLines)
}

// layout sizes the table and places the pagination control under it.
func (m *Model) layout() {
	m.table.SetSize(m.rowLines(), m.width)
	m.pager.SetWidth(m.width)
	m.pager.SetOrigin(0, statusLines+headerLines+m.rowLines())
	m.help.Width = m.width
}

// View renders the browser.
func (m Model) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateError:
		return m.errorView()
	case ViewStateLoading:
		if !m.hasPage {
			return fmt.Sprintf("%s Loading %s...", m.spinner.View(), m.source.Name())
		}
		return m.listView()
	case ViewStateList:
		return m.listView()
	default:
		return ""
	}
}

func (m Model) statusLine() string {
	status := printer.Sprintf("%s · %d rows", m.source.Name(), len(m.page.Rows))
	if m.state == ViewStateLoading {
		status = m.spinner.View() + " " + status
	}
	return lipgloss.NewStyle().Bold(true).Render(status)
}

func (m Model) listView() string {
	table := lipgloss.NewStyle().
		Height(headerLines + m.rowLines()).
		Render(m.table.View())

	pager := lipgloss.NewStyle().
		Height(pagerLines).
		Render(m.pager.View())

	helpView := m.help.View(helpKeys{pager: m.pager.KeyMap(), browser: m.keys})

	return lipgloss.JoinVertical(lipgloss.Left, m.statusLine(), table, pager, helpView)
}

func (m Model) errorView() string {
	var sb strings.Builder
	sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true).Render("Error"))
	sb.WriteString("\n")
	if m.err != nil {
		sb.WriteString(m.err.Error())
	}
	sb.WriteString("\n\n")
	if m.hasPage {
		sb.WriteString(m.help.ShortHelpView([]key.Binding{m.keys.Back, m.keys.Quit}))
	} else {
		sb.WriteString(m.help.ShortHelpView([]key.Binding{m.keys.Quit}))
	}
	return sb.String()
}
