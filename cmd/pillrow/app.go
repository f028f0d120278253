package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/young1lin/pillrow/internal/config"
	"github.com/young1lin/pillrow/internal/layout"
	"github.com/young1lin/pillrow/internal/measure"
	"github.com/young1lin/pillrow/internal/observe"
	"github.com/young1lin/pillrow/internal/pill"
	"github.com/young1lin/pillrow/internal/reactor"
	"github.com/young1lin/pillrow/internal/store"
	"github.com/young1lin/pillrow/internal/update"
	"github.com/young1lin/pillrow/internal/watch"
	"github.com/young1lin/pillrow/tui"
)

// ProgramSender is an interface for sending messages to a Bubbletea program
type ProgramSender interface {
	Send(msg tea.Msg)
}

// PillSetter receives reloaded pills
type PillSetter interface {
	SetPills(pills []pill.Pill)
}

// UpdateChecker looks for newer releases
type UpdateChecker interface {
	Check(ctx context.Context) (*update.ReleaseInfo, error)
	CheckNow(ctx context.Context) (*update.ReleaseInfo, error)
}

// SizeSource is a terminal that knows its size and reports resizes
type SizeSource interface {
	observe.SizeSource
	observe.Sizer
}

// AppDependencies contains the dependencies for the main application
type AppDependencies struct {
	Getwd            func() (string, error)
	ConfigLoader     func(explicit, projectDir string) (*config.Config, error)
	DBOpener         func(string) (*store.DB, error)
	WatcherCreator   func([]string) (watch.WatcherInterface, error)
	ProgramRunner    func(*tea.Program) error
	LogOpener        func(string) (io.WriteCloser, error)
	UpdateChecker    func() UpdateChecker
	Terminal         func() SizeSource
	StdoutIsTerminal func() bool
	Stdout           io.Writer
	Stderr           io.Writer
}

// loadConfig loads the configuration and applies the command line overrides
func loadConfig(deps *AppDependencies, opts Options) (*config.Config, error) {
	dir, err := deps.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	cfg, err := deps.ConfigLoader(opts.ConfigPath, dir)
	if err != nil {
		return nil, err
	}
	if opts.Mode != "" {
		mode, err := layout.ParseMode(opts.Mode)
		if err != nil {
			return nil, err
		}
		cfg.Layout.BinPacking = mode == layout.ModeBinPacking
	}
	if opts.BinPacking {
		cfg.Layout.BinPacking = true
	}
	if opts.NoPersist {
		cfg.State.Persist = false
	}
	if opts.LogFile != "" {
		cfg.Log.File = opts.LogFile
	}
	return cfg, nil
}

func run(ctx context.Context, deps *AppDependencies, opts Options) error {
	cfg, err := loadConfig(deps, opts)
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs only go to a file
	logger, closeLog, err := fileLogger(deps, cfg)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Info("starting", "version", update.Version, "config", cfg.Path, "mode", cfg.Mode().String())

	pills, err := cfg.LoadPills()
	if err != nil {
		return fmt.Errorf("failed to load pills: %w", err)
	}

	var db *store.DB
	var toggles pill.ToggleSet
	if cfg.State.Persist {
		db, err = deps.DBOpener(cfg.StatePath())
		if err != nil {
			return fmt.Errorf("failed to open state database: %w", err)
		}
		defer db.Close()

		toggles, err = db.LoadToggles()
		if err != nil {
			// Warning, not fatal
			logger.Warn("failed to load toggles", "err", err)
		}
	}

	styles := tui.DefaultStyles(cfg.Display.Decoration)
	oracle, err := measure.NewProbeOracle(styles)
	if err != nil {
		return err
	}

	mailbox := reactor.NewMailbox()
	hub := observe.NewHub()
	r := reactor.New(oracle, mailbox,
		reactor.WithDebounce(cfg.Layout.Debounce),
		reactor.WithLogger(logger),
		reactor.WithMode(cfg.Mode()),
		reactor.WithToggles(toggles),
	)
	r.SetPills(pills)
	r.Mount(hub)
	defer r.Close()

	updates := checkForUpdate(ctx, deps, logger)

	p := tea.NewProgram(tui.NewModel(r, mailbox, hub, styles), programOptions(ctx)...)

	if watcher := startWatcher(deps, cfg, logger); watcher != nil {
		defer watcher.Close()
		reload := func() ([]pill.Pill, error) {
			fresh, err := loadConfig(deps, opts)
			if err != nil {
				return nil, err
			}
			return fresh.LoadPills()
		}
		go runWatchLoop(p, watcher, reload, r, logger)
	}

	runErr := deps.ProgramRunner(p)
	if errors.Is(runErr, tea.ErrProgramKilled) {
		runErr = nil
	}

	// No layout passes after the program is gone
	r.Close()
	if db != nil {
		if err := db.SaveToggles(r.Toggles()); err != nil {
			logger.Warn("failed to save toggles", "err", err)
		}
	}

	select {
	case release := <-updates:
		fmt.Fprintf(deps.Stderr, "Update available: %s → %s\nVisit %s to download\n",
			update.Version, release.TagName, release.HTMLURL)
	default:
	}

	return runErr
}

// startWatcher watches the config and pill files. Failure to watch is not fatal.
func startWatcher(deps *AppDependencies, cfg *config.Config, logger *slog.Logger) watch.WatcherInterface {
	if deps.WatcherCreator == nil {
		return nil
	}
	paths, err := cfg.WatchPaths()
	if err != nil || len(paths) == 0 {
		return nil
	}
	watcher, err := deps.WatcherCreator(paths)
	if err != nil {
		logger.Warn("not watching pill files", "err", err)
		return nil
	}
	logger.Debug("watching pill files", "paths", paths)
	return watcher
}

// runWatchLoop reloads pills after each change until the watcher is closed
func runWatchLoop(sender ProgramSender, watcher watch.WatcherInterface, reload func() ([]pill.Pill, error), r PillSetter, logger *slog.Logger) {
	changes := watcher.Changes()
	errs := watcher.Errors()

	for changes != nil || errs != nil {
		select {
		case _, ok := <-changes:
			if !ok {
				changes = nil
				continue
			}
			pills, err := reload()
			if err != nil {
				logger.Warn("pill reload failed", "err", err)
				sender.Send(tui.ErrorMsg{Err: err})
				continue
			}
			logger.Info("pills reloaded", "count", len(pills))
			r.SetPills(pills)

		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			logger.Warn("watcher error", "err", err)
		}
	}
}

// checkForUpdate checks for a newer release in the background
func checkForUpdate(ctx context.Context, deps *AppDependencies, logger *slog.Logger) <-chan *update.ReleaseInfo {
	found := make(chan *update.ReleaseInfo, 1)
	if deps.UpdateChecker == nil {
		return found
	}
	checker := deps.UpdateChecker()
	go func() {
		release, err := checker.Check(ctx)
		if err != nil {
			// Silent failure, does not affect the main program
			logger.Debug("update check failed", "err", err)
			return
		}
		if release != nil {
			found <- release
		}
	}()
	return found
}

// programOptions runs the TUI full screen. Click hit-testing assumes the first
// row is drawn on the terminal's top line, which only the alternate screen
// guarantees.
func programOptions(ctx context.Context) []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	}
}
