package main

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"

	"github.com/young1lin/pillrow/internal/config"
)

// fileLogger logs to the configured log file, or nowhere.
func fileLogger(deps *AppDependencies, cfg *config.Config) (*slog.Logger, func(), error) {
	if cfg.Log.File == "" || deps.LogOpener == nil {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	w, err := deps.LogOpener(cfg.Log.File)
	if err != nil {
		return nil, nil, err
	}
	return newLogger(w, cfg.LogLevel()), func() { w.Close() }, nil
}

// stderrLogger logs to stderr for the commands that do not own the terminal.
func stderrLogger(deps *AppDependencies, cfg *config.Config) (*slog.Logger, func(), error) {
	if cfg.Log.File != "" {
		return fileLogger(deps, cfg)
	}
	return newLogger(deps.Stderr, cfg.LogLevel()), func() {}, nil
}

// newLogger creates a tint logger, colored only when w is a terminal.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	color := false
	if f, ok := w.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd())
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
		NoColor:    !color,
	}))
}
