package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/young1lin/pillrow/internal/config"
	"github.com/young1lin/pillrow/internal/observe"
	"github.com/young1lin/pillrow/internal/store"
	"github.com/young1lin/pillrow/internal/update"
	"github.com/young1lin/pillrow/internal/watch"
)

// exitFunc is the function to call for exiting (can be mocked for testing)
var exitFunc = os.Exit

func main() {
	initConsole()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCmd(defaultDependencies())
	if err := root.ExecuteContext(ctx); err != nil {
		logAndExit(os.Stderr, err)
	}
}

// defaultDependencies wires the real implementations
func defaultDependencies() *AppDependencies {
	return &AppDependencies{
		Getwd:        os.Getwd,
		ConfigLoader: config.Load,
		DBOpener:     store.Open,
		WatcherCreator: func(paths []string) (watch.WatcherInterface, error) {
			return watch.NewWatcher(paths, watch.DefaultQuiet)
		},
		ProgramRunner: func(p *tea.Program) error {
			_, err := p.Run()
			return err
		},
		LogOpener: func(path string) (io.WriteCloser, error) {
			return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		},
		UpdateChecker: func() UpdateChecker {
			return update.NewChecker(update.Version, config.CacheDir())
		},
		Terminal: func() SizeSource {
			// stdout may be piped to a host; stderr still reaches the terminal
			return observe.NewTerminal(os.Stderr)
		},
		StdoutIsTerminal: func() bool {
			fd := os.Stdout.Fd()
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

func logAndExit(w io.Writer, err error) {
	// This is a separate function to allow testing of error handling
	if err != nil {
		fmt.Fprintf(w, "pillrow: %v\n", err)
		exitFunc(1)
	}
}
