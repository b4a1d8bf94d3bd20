package config

import (
	"github.com/rshade/resultpager/internal/logging"
)

// ToLoggingConfig converts the logging section for the logging package.
// discard is set while a full-screen TUI owns the terminal, so that logs
// without a configured file are dropped instead of corrupting the screen.
func (lc LoggingConfig) ToLoggingConfig(discard bool) logging.Config {
	return logging.Config{
		Level:   lc.Level,
		Format:  lc.Format,
		File:    lc.File,
		Discard: discard,
	}
}

// WithDebug returns a copy of lc forced to debug level console output on
// stderr, as requested by --debug.
func (lc LoggingConfig) WithDebug() LoggingConfig {
	lc.Level = "debug"
	lc.Format = logging.FormatConsole
	lc.File = ""
	return lc
}
