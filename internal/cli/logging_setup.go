package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/resultpager/internal/config"
	"github.com/rshade/resultpager/internal/logging"
)

// setupLogging configures logging based on config file, environment, and CLI flags.
func setupLogging(cmd *cobra.Command, cfg config.Config) logging.Result {
	loggingCfg := cfg.Logging

	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		loggingCfg = loggingCfg.WithDebug()
	}

	tui := ownsTerminal(cmd)

	result, err := logging.Setup(loggingCfg.ToLoggingConfig(tui), cmd.ErrOrStderr())
	if err != nil && !tui {
		warnf(cmd, "%v", err)
	}
	if result.UsingFile && debug {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	}

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)

	base := result.Logger.With().Str("trace_id", traceID).Logger()
	logger = logging.ComponentLogger(base, "cli")
	ctx = base.WithContext(ctx)
	ctx = contextWithConfig(ctx, cfg)
	cmd.SetContext(ctx)

	logger.Info().Str("command", cmd.Name()).Bool("tui", tui).Msg("command started")

	return result
}

// cleanupLogging closes the log file handle.
func cleanupLogging(logResult *logging.Result) error {
	if logResult != nil {
		return logResult.Close()
	}
	return nil
}
