package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/resultpager/internal/config"
)

// newConfigInitCmd creates the config init command.
func newConfigInitCmd(lookupEnv func(string) (string, bool)) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Example: `  # Create ~/.resultpager/config.yaml
  resultpager config init

  # Overwrite an existing file
  resultpager config init --force`,
		Annotations: map[string]string{annotationDefaultConfig: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := configPath(cmd, lookupEnv)

			if !force {
				_, err := os.Stat(path)
				if err == nil {
					return errors.New("configuration file already exists, use --force to overwrite")
				}
				if !os.IsNotExist(err) {
					return fmt.Errorf("cannot access config path %s: %w", path, err)
				}
			}

			if err := config.Save(path, config.Default()); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			cmd.Printf("Configuration initialized at %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")

	return cmd
}

// newConfigValidateCmd creates the config validate command.
func newConfigValidateCmd(lookupEnv func(string) (string, bool)) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			// The root pre-run already loaded and validated the file.
			path, _ := configPath(cmd, lookupEnv)
			cmd.Printf("Configuration valid: %s\n", path)
			return nil
		},
	}
}
