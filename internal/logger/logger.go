// Package logger configures the process-wide slog logger. Text output goes
// through tint (coloured only when writing to a terminal); json output uses
// the standard slog JSON handler.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"

	"github.com/iliyamo/gym-management/internal/config"
)

var (
	mu      sync.Mutex
	current *slog.Logger
	level   = new(slog.LevelVar)
)

// Init installs the logger described by cfg as the slog default.
func Init(cfg config.LoggerConfig) error {
	lvl, err := ParseLevel(cfg.Level)
	if err != nil {
		return err
	}
	level.Set(lvl)

	w, err := openOutput(cfg.OutputPath)
	if err != nil {
		return err
	}

	var base slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		base = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	} else {
		base = newTint(w, level)
	}
	set(slog.New(newSourceHandler(base, slog.LevelWarn, slog.LevelError)))
	return nil
}

// ParseLevel converts a LOG_LEVEL value into a slog.Level. Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

func openOutput(path string) (io.Writer, error) {
	switch strings.ToLower(path) {
	case "", "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log output: %w", err)
	}
	return f, nil
}

func newTint(w io.Writer, lvl slog.Leveler) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      lvl,
		TimeFormat: time.DateTime,
		NoColor:    !isTerminal(w),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == "error" && a.Value.Kind() == slog.KindAny {
				if err, ok := a.Value.Any().(error); ok {
					return tint.Err(err)
				}
			}
			return a
		},
	})
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func set(l *slog.Logger) {
	mu.Lock()
	current = l
	mu.Unlock()
	slog.SetDefault(l)
}

// Get returns the configured logger, installing a tint stdout logger at
// info level when Init has not run yet.
func Get() *slog.Logger {
	mu.Lock()
	l := current
	mu.Unlock()
	if l != nil {
		return l
	}
	l = slog.New(newSourceHandler(newTint(os.Stdout, level), slog.LevelWarn, slog.LevelError))
	set(l)
	return l
}

// WithComponent tags every record with component=name.
func WithComponent(name string) *slog.Logger {
	return Get().With("component", name)
}
