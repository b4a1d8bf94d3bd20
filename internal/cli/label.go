package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/resultpager/internal/tui/pagination"
)

// labelFlags holds the inputs of the label command.
type labelFlags struct {
	Next       string
	PageLimit  int
	DataLength int
	Strict     bool
}

// newLabelCmd creates the label command.
func newLabelCmd() *cobra.Command {
	var flags labelFlags

	cmd := &cobra.Command{
		Use:   "label",
		Short: "Print the results range label for a page",
		Long: `Prints the "Results X - Y" label the pagination control shows for a page.

Nothing is printed when --next is empty. A malformed --next cursor prints
"0 Results", or fails with --strict.`,
		Example: `  resultpager label --next 0:40:0 --page-limit 20 --data-length 20
  # Results 21 - 40`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLabel(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.Next, "next", "", "next page cursor, <value>:<offset>[:<is_prev>]")
	cmd.Flags().IntVar(&flags.PageLimit, "page-limit", 0, "page size the page was requested with")
	cmd.Flags().IntVar(&flags.DataLength, "data-length", 0, "number of items on the page")
	cmd.Flags().BoolVar(&flags.Strict, "strict", false, "fail on a malformed --next cursor")
	_ = cmd.MarkFlagRequired("page-limit")
	_ = cmd.MarkFlagRequired("data-length")

	return cmd
}

func runLabel(cmd *cobra.Command, flags labelFlags) error {
	inert := func() tea.Cmd { return nil }
	props := pagination.Props{
		GetNextPage:     inert,
		GetPreviousPage: inert,
		Next:            flags.Next,
		PageLimit:       flags.PageLimit,
		DataLength:      flags.DataLength,
	}
	if err := props.Validate(); err != nil {
		return err
	}

	if flags.Next == "" {
		logger.Debug().Msg("no next cursor, label hidden")
		return nil
	}

	label, err := pagination.RangeLabel(flags.Next, flags.PageLimit, flags.DataLength)
	if err != nil {
		if flags.Strict {
			return err
		}
		logger.Warn().Err(err).Msg("rendering fallback range label")
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), label)
	return err
}
