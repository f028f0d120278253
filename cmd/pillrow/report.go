package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/young1lin/pillrow/internal/config"
	"github.com/young1lin/pillrow/internal/frame"
	"github.com/young1lin/pillrow/internal/layout"
	"github.com/young1lin/pillrow/internal/measure"
	"github.com/young1lin/pillrow/internal/observe"
	"github.com/young1lin/pillrow/internal/pill"
	"github.com/young1lin/pillrow/tui"
)

// defaultWidth is used when the terminal size is unknown
const defaultWidth = 80

var errNoTerminal = errors.New("terminal size unknown")

// pillBlock is the rendered pill layout at a given width
type pillBlock struct {
	pills   []pill.Pill
	toggles pill.ToggleSet
	mode    layout.Mode
	styles  tui.Styles
	oracle  layout.WidthOracle
}

// Render lays out and renders the pills, one string per row
func (b *pillBlock) Render(width int) []string {
	elements := layout.Plan(b.pills, b.toggles, width, b.mode, b.oracle)
	return layout.NewRenderer(b.styles, b.toggles).Render(elements)
}

// Size is the size of the rendered block
func (b *pillBlock) Size(width int) observe.Size {
	lines := b.Render(width)
	size := observe.Size{Height: len(lines)}
	for _, line := range lines {
		size.Width = max(size.Width, measure.Width(line))
	}
	return size
}

func newPillBlock(deps *AppDependencies, cfg *config.Config) (*pillBlock, error) {
	pills, err := cfg.LoadPills()
	if err != nil {
		return nil, fmt.Errorf("failed to load pills: %w", err)
	}

	var toggles pill.ToggleSet
	if cfg.State.Persist {
		db, err := deps.DBOpener(cfg.StatePath())
		if err != nil {
			return nil, fmt.Errorf("failed to open state database: %w", err)
		}
		toggles, err = db.LoadToggles()
		db.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to load toggles: %w", err)
		}
	}

	styles := tui.DefaultStyles(cfg.Display.Decoration)
	oracle, err := measure.NewProbeOracle(styles)
	if err != nil {
		return nil, err
	}
	return &pillBlock{pills: pills, toggles: toggles, mode: cfg.Mode(), styles: styles, oracle: oracle}, nil
}

// runReport is the embedded side: it posts the block size to the host on stdout
// until ctx is done.
func runReport(ctx context.Context, deps *AppDependencies, opts Options) error {
	cfg, err := loadConfig(deps, opts)
	if err != nil {
		return err
	}
	logger, closeLog, err := stderrLogger(deps, cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	block, err := newPillBlock(deps, cfg)
	if err != nil {
		return err
	}

	term := deps.Terminal()
	self := frame.NewWindow("pillrow report")
	host := frame.NewWindow("host")

	reporter := &frame.Reporter{
		Self: self,
		// A terminal on stdout means nobody embeds us
		Top: func() (*frame.Window, error) {
			if deps.StdoutIsTerminal() {
				return self, nil
			}
			return host, nil
		},
		Parent: frame.NewEncoder(deps.Stdout).StreamBus(),
		Measure: func() (observe.Size, error) {
			size, ok := term.Current()
			if !ok {
				return observe.Size{}, errNoTerminal
			}
			return block.Size(size.Width), nil
		},
		Log: logger,
	}

	if !reporter.Embedded() {
		width := defaultWidth
		if size, ok := term.Current(); ok {
			width = size.Width
		}
		for _, line := range block.Render(width) {
			fmt.Fprintln(deps.Stdout, line)
		}
		return nil
	}

	logger.Debug("reporting frame size", "mode", cfg.Mode().String())
	stop := reporter.Start(term)
	defer stop()

	<-ctx.Done()
	return nil
}
