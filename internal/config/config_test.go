package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/resultpager/internal/logging"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), false)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MissingRequiredFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), true)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
logging:
  level: debug
  file: /tmp/resultpager-test.log
pagination:
  keys:
    previous: ["p"]
  theme:
    muted: "#888888"
`)

	cfg, err := Load(path, true)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, logging.FormatJSON, cfg.Logging.Format)
	assert.Equal(t, "/tmp/resultpager-test.log", cfg.Logging.File)
	assert.Equal(t, []string{"p"}, cfg.Pagination.Keys.Previous)
	assert.Equal(t, []string{"right", "l"}, cfg.Pagination.Keys.Next)
	assert.Equal(t, "#888888", cfg.Pagination.Theme.Muted)
	assert.Equal(t, "63", cfg.Pagination.Theme.Accent)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "bad level", content: "logging:\n  level: loud\n"},
		{name: "bad format", content: "logging:\n  format: xml\n"},
		{name: "bad color", content: "pagination:\n  theme:\n    accent: purple\n"},
		{name: "empty key", content: "pagination:\n  keys:\n    next: [\"\"]\n"},
		{name: "bad yaml", content: "logging: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content), true)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	cfg.ApplyEnv(func(key string) (string, bool) {
		if key == EnvLogLevel {
			return "warn", true
		}
		return "", false
	})
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestDefaultPath_Env(t *testing.T) {
	lookup := func(key string) (string, bool) {
		if key == EnvConfig {
			return "/etc/resultpager.yaml", true
		}
		return "", false
	}
	assert.Equal(t, "/etc/resultpager.yaml", DefaultPath(lookup))

	none := func(string) (string, bool) { return "", false }
	assert.Equal(t, fileName, filepath.Base(DefaultPath(none)))
	assert.Equal(t, dirName, filepath.Base(filepath.Dir(DefaultPath(none))))
}

func TestLoggingConfig(t *testing.T) {
	lc := LoggingConfig{Level: "info", Format: logging.FormatJSON, File: "/var/log/rp.log"}

	got := lc.ToLoggingConfig(true)
	assert.Equal(t, logging.Config{Level: "info", Format: logging.FormatJSON, File: "/var/log/rp.log", Discard: true}, got)

	debug := lc.WithDebug()
	assert.Equal(t, "debug", debug.Level)
	assert.Equal(t, logging.FormatConsole, debug.Format)
	assert.Empty(t, debug.File)
	assert.Equal(t, "info", lc.Level)
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Pagination.Keys.Next = []string{"n", "right"}
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSave_RejectsInvalid(t *testing.T) {
	cfg := Default()
	cfg.Logging.Format = "xml"
	assert.ErrorIs(t, Save(filepath.Join(t.TempDir(), "c.yaml"), cfg), ErrInvalidConfig)
}
