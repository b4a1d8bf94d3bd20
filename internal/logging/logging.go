package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// Output formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// logFilePerm is the permission used for newly created log files.
const logFilePerm = 0o600

// logDirPerm is the permission used for newly created log directories.
const logDirPerm = 0o750

// Config describes where and how to log.
type Config struct {
	Level  string
	Format string
	// File, when set, receives all log output instead of Stderr.
	File string
	// Discard drops all output when File is empty. Used while a full-screen
	// TUI owns the terminal.
	Discard bool
}

// Result is the outcome of Setup.
type Result struct {
	Logger    zerolog.Logger
	UsingFile bool
	FilePath  string

	file *os.File
}

// Close releases the log file, if one was opened.
func (r *Result) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// Setup builds a logger from cfg. Console output is written to stderr.
// When the log file cannot be opened the logger falls back to stderr and
// the returned error describes why.
func Setup(cfg Config, stderr io.Writer) (Result, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	if cfg.File != "" {
		f, openErr := openLogFile(cfg.File)
		if openErr == nil {
			return Result{
				Logger:    build(f, cfg.Format, lvl),
				UsingFile: true,
				FilePath:  cfg.File,
				file:      f,
			}, nil
		}
		err = fmt.Errorf("opening log file %s: %w", cfg.File, openErr)
		if cfg.Discard {
			return Result{Logger: zerolog.Nop()}, err
		}
		return Result{Logger: build(stderr, cfg.Format, lvl)}, err
	}

	if cfg.Discard {
		return Result{Logger: zerolog.Nop()}, nil
	}

	return Result{Logger: build(stderr, cfg.Format, lvl)}, nil
}

func build(w io.Writer, format string, lvl zerolog.Level) zerolog.Logger {
	if format == FormatConsole {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), logDirPerm); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, logFilePerm)
}

// ComponentLogger returns a child logger tagged with the component name.
func ComponentLogger(l zerolog.Logger, component string) zerolog.Logger {
	return l.With().Str("component", component).Logger()
}

// FromContext returns the logger stored in ctx, or a disabled logger.
func FromContext(ctx context.Context) zerolog.Logger {
	return *zerolog.Ctx(ctx)
}

type traceIDKey struct{}

// ContextWithTraceID stores traceID in ctx.
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceIDFromContext returns the trace id stored in ctx, if any.
func TraceIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(traceIDKey{}).(string); ok {
		return id
	}
	return ""
}

// GetOrGenerateTraceID returns the trace id in ctx or a fresh ULID.
func GetOrGenerateTraceID(ctx context.Context) string {
	if id := TraceIDFromContext(ctx); id != "" {
		return id
	}
	return ulid.Make().String()
}

// PrintLogPathMessage tells the user where logs are written.
func PrintLogPathMessage(w io.Writer, path string) {
	_, _ = fmt.Fprintf(w, "Logging to %s\n", path)
}
