package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/rshade/resultpager/internal/logging"
)

// Environment variables read by ApplyEnv and DefaultPath.
const (
	EnvConfig   = "RESULTPAGER_CONFIG"
	EnvLogLevel = "RESULTPAGER_LOG_LEVEL"
)

// dirName is the per-user configuration directory under $HOME.
const dirName = ".resultpager"

// fileName is the configuration file inside dirName.
const fileName = "config.yaml"

// ErrInvalidConfig is returned when a configuration fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the resultpager configuration file.
type Config struct {
	Logging    LoggingConfig    `yaml:"logging"`
	Pagination PaginationConfig `yaml:"pagination"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `yaml:"level"  validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
	Format string `yaml:"format" validate:"omitempty,oneof=json console"`
	File   string `yaml:"file"`
}

// PaginationConfig customizes the pagination control.
type PaginationConfig struct {
	Keys  KeysConfig  `yaml:"keys"`
	Theme ThemeConfig `yaml:"theme"`
}

// KeysConfig lists the keys bound to each button.
type KeysConfig struct {
	Previous []string `yaml:"previous" validate:"dive,required"`
	Next     []string `yaml:"next"     validate:"dive,required"`
}

// ThemeConfig holds ANSI 256 or hex colors.
type ThemeConfig struct {
	Accent   string `yaml:"accent"   validate:"omitempty,hexcolor|numeric"`
	Muted    string `yaml:"muted"    validate:"omitempty,hexcolor|numeric"`
	Disabled string `yaml:"disabled" validate:"omitempty,hexcolor|numeric"`
}

//nolint:gochecknoglobals // validator caches struct metadata and is safe for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: logging.FormatJSON,
		},
		Pagination: PaginationConfig{
			Keys: KeysConfig{
				Previous: []string{"left", "h"},
				Next:     []string{"right", "l"},
			},
			Theme: ThemeConfig{
				Accent:   "63",
				Muted:    "245",
				Disabled: "240",
			},
		},
	}
}

// DefaultPath returns $RESULTPAGER_CONFIG, or ~/.resultpager/config.yaml.
func DefaultPath(lookupEnv func(string) (string, bool)) string {
	if p, ok := lookupEnv(EnvConfig); ok && p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(dirName, fileName)
	}
	return filepath.Join(home, dirName, fileName)
}

// Load reads the file at path over the defaults. A missing file is not an
// error unless required is set.
func Load(path string, required bool) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: decoding %s: %w", ErrInvalidConfig, path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks field constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// ApplyEnv overrides fields from the environment. Callers validate the
// result.
func (c *Config) ApplyEnv(lookupEnv func(string) (string, bool)) {
	if lvl, ok := lookupEnv(EnvLogLevel); ok && lvl != "" {
		c.Logging.Level = lvl
	}
}

// configFilePerm is the permission used when writing config files.
const configFilePerm = 0o600

// configDirPerm is the permission used when creating the config directory.
const configDirPerm = 0o750

// Save writes cfg to path as YAML, creating the parent directory.
func Save(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), configDirPerm); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(path, data, configFilePerm); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}
