package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/resultpager/internal/fixture"
)

// ErrValidationFailed is returned when at least one fixture is invalid.
var ErrValidationFailed = errors.New("fixture validation failed")

// newValidateCmd creates the validate command.
func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "validate FIXTURE...",
		Short:   "Validate recorded result set files",
		Example: `  resultpager validate fixtures/*.yaml`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args)
		},
	}
}

func runValidate(cmd *cobra.Command, paths []string) error {
	results, err := fixture.ValidateFiles(cmd.Context(), paths)
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			logger.Warn().Err(r.Err).Str("path", r.Path).Msg("fixture invalid")
			cmd.Printf("FAIL %s: %v\n", r.Path, r.Err)
			continue
		}
		cmd.Println(printer.Sprintf("ok   %s (%s, %d pages)", r.Path, r.Name, r.Pages))
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d files", ErrValidationFailed, failed, len(results))
	}
	return nil
}
