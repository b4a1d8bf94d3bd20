package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/resultpager/internal/logging"
)

// Command annotations.
const (
	// annotationTUI marks commands that take over the terminal.
	annotationTUI = "tui"
	// annotationDefaultConfig marks commands that must run with the built-in
	// configuration, such as those that rewrite a broken config file.
	annotationDefaultConfig = "default-config"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the resultpager CLI.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithEnv(ver, os.LookupEnv)
}

// NewRootCmdWithEnv creates the root command with an explicit env lookup for testability.
func NewRootCmdWithEnv(ver string, lookupEnv func(string) (string, bool)) *cobra.Command {
	var logResult *logging.Result

	cmd := &cobra.Command{
		Use:          "resultpager",
		Short:        "Page through recorded result sets",
		Long:         "resultpager: browse cursor-paginated result pages with a previous/next pagination control",
		Version:      ver,
		Example:      rootCmdExample,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, lookupEnv)
			if err != nil {
				return err
			}

			result := setupLogging(cmd, cfg)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file (default $RESULTPAGER_CONFIG or ~/.resultpager/config.yaml)")
	cmd.AddCommand(newBrowseCmd(), newLabelCmd(), newValidateCmd(), newConfigCmd(lookupEnv))

	return cmd
}

const rootCmdExample = `  # Browse a recorded result set interactively
  resultpager browse testdata/sentry_apps.yaml

  # Print the first page without the interactive UI
  resultpager browse testdata/sentry_apps.yaml --plain

  # Compute the range label for a page
  resultpager label --next 0:40:0 --page-limit 20 --data-length 20

  # Validate fixture files
  resultpager validate fixtures/*.yaml

  # Write the default configuration
  resultpager config init`

// newConfigCmd creates the config command group.
func newConfigCmd(lookupEnv func(string) (string, bool)) *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(newConfigInitCmd(lookupEnv), newConfigValidateCmd(lookupEnv))
	return cmd
}

// ownsTerminal reports whether cmd is about to run a full-screen TUI.
func ownsTerminal(cmd *cobra.Command) bool {
	if cmd.Annotations[annotationTUI] != "true" {
		return false
	}
	if plain, err := cmd.Flags().GetBool("plain"); err == nil && plain {
		return false
	}
	return isTerminal(os.Stdout)
}

// warnf writes a warning to the command's stderr.
func warnf(cmd *cobra.Command, format string, args ...any) {
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: "+format+"\n", args...)
}
