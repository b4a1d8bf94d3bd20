package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/rshade/resultpager/internal/config"
	"github.com/rshade/resultpager/internal/tui/pagination"
)

type configKey struct{}

func contextWithConfig(ctx context.Context, cfg config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// configFromContext returns the config stored by setupLogging, or the defaults.
func configFromContext(ctx context.Context) config.Config {
	if cfg, ok := ctx.Value(configKey{}).(config.Config); ok {
		return cfg
	}
	return config.Default()
}

// configPath resolves --config, falling back to the default location.
func configPath(cmd *cobra.Command, lookupEnv func(string) (string, bool)) (string, bool) {
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		return p, true
	}
	return config.DefaultPath(lookupEnv), false
}

// loadConfig reads the config file and applies environment overrides.
func loadConfig(cmd *cobra.Command, lookupEnv func(string) (string, bool)) (config.Config, error) {
	if cmd.Annotations[annotationDefaultConfig] == "true" {
		return applyEnv(config.Default(), lookupEnv)
	}

	path, explicit := configPath(cmd, lookupEnv)

	cfg, err := config.Load(path, explicit)
	if err != nil {
		return config.Config{}, err
	}

	return applyEnv(cfg, lookupEnv)
}

// applyEnv applies environment overrides and validates the outcome, so a bad
// RESULTPAGER_LOG_LEVEL fails instead of silently logging at info.
func applyEnv(cfg config.Config, lookupEnv func(string) (string, bool)) (config.Config, error) {
	cfg.ApplyEnv(lookupEnv)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("environment overrides: %w", err)
	}
	return cfg, nil
}

// pagerOptions translates the pagination section into control options.
func pagerOptions(cfg config.PaginationConfig) []pagination.Option {
	theme := pagination.NewTheme(
		lipgloss.Color(cfg.Theme.Accent),
		lipgloss.Color(cfg.Theme.Muted),
		lipgloss.Color(cfg.Theme.Disabled),
	)

	return []pagination.Option{
		pagination.WithKeyMap(pagination.NewKeyMap(cfg.Keys.Previous, cfg.Keys.Next)),
		pagination.WithTheme(theme),
	}
}
