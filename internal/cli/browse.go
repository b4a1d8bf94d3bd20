package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/resultpager/internal/fixture"
	"github.com/rshade/resultpager/internal/logging"
	"github.com/rshade/resultpager/internal/tui/browser"
	"github.com/rshade/resultpager/internal/tui/pagination"
	"github.com/rshade/resultpager/internal/tui/rows"
)

// printer formats counts with thousands separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// newBrowseCmd creates the browse command.
func newBrowseCmd() *cobra.Command {
	var (
		plain  bool
		cursor string
	)

	cmd := &cobra.Command{
		Use:   "browse FIXTURE",
		Short: "Browse a recorded result set",
		Long: `Opens a recorded result set and shows one page at a time with previous/next
pagination controls.

When stdout is not a terminal, or with --plain, the requested page is printed
once together with a static render of the pagination control.`,
		Example: `  # Interactive browser
  resultpager browse fixtures/sentry_apps.yaml

  # Print the page recorded for a cursor
  resultpager browse fixtures/sentry_apps.yaml --plain --cursor 0:20:0`,
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{annotationTUI: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, args[0], cursor, plain)
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print the page instead of starting the interactive browser")
	cmd.Flags().StringVar(&cursor, "cursor", "", "cursor of the page to print in plain mode (default: start page)")

	return cmd
}

func runBrowse(cmd *cobra.Command, path, cursor string, plain bool) error {
	ctx := cmd.Context()
	cfg := configFromContext(ctx)

	src, err := fixture.Load(path)
	if err != nil {
		return err
	}

	opts := pagerOptions(cfg.Pagination)

	if plain || !isTerminal(os.Stdout) {
		return renderPlainPage(ctx, cmd.OutOrStdout(), src, cursor, opts)
	}

	p := tea.NewProgram(
		browser.NewModel(ctx, src, opts...),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run interactive browser: %w", err)
	}
	return nil
}

// renderPlainPage prints one page and a static render of its pagination
// control. The control's callbacks are inert since nothing can be clicked.
func renderPlainPage(
	ctx context.Context,
	w io.Writer,
	src *fixture.Source,
	cursor string,
	opts []pagination.Option,
) error {
	page, err := src.Page(ctx, cursor)
	if err != nil {
		return err
	}

	inert := func() tea.Cmd { return nil }
	opts = append([]pagination.Option{
		pagination.WithLogger(logging.ComponentLogger(logging.FromContext(ctx), "pagination")),
	}, opts...)

	pager, err := pagination.New(pagination.Props{
		GetNextPage:     inert,
		GetPreviousPage: inert,
		Previous:        page.Previous,
		Next:            page.Next,
		PageLimit:       src.PageLimit(),
		DataLength:      len(page.Rows),
	}, opts...)
	if err != nil {
		return err
	}

	table := rows.New(src.Columns(), page.Rows, len(page.Rows), 0)

	fmt.Fprintln(w, printer.Sprintf("%s · %d rows", src.Name(), len(page.Rows)))
	fmt.Fprintln(w, table.View())
	fmt.Fprintln(w, pager.View())
	return nil
}
