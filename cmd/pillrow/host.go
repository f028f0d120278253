package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"

	"github.com/young1lin/pillrow/internal/frame"
)

// runHost runs the embedded command and follows the size it reports on stdout.
func runHost(ctx context.Context, deps *AppDependencies, opts Options, args []string) error {
	cfg, err := loadConfig(deps, opts)
	if err != nil {
		return err
	}
	logger, closeLog, err := stderrLogger(deps, cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stderr = deps.Stderr
	out, err := cmd.StdoutPipe()
	if err != nil {
		return err
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", args[0], err)
	}

	hostErr := hostLoop(ctx, out, args[0], deps.Stdout, logger)
	// Wait closes the pipe; keep it drained so the child never blocks on a full one.
	_, _ = io.Copy(io.Discard, out)
	waitErr := cmd.Wait()

	if hostErr != nil && !errors.Is(hostErr, context.Canceled) {
		return hostErr
	}
	if waitErr != nil && ctx.Err() == nil {
		return fmt.Errorf("%s: %w", args[0], waitErr)
	}
	return nil
}

// hostLoop attaches a host to the frame messages read from r and prints each
// slot resize to out. It returns when r is exhausted.
func hostLoop(ctx context.Context, r io.Reader, name string, out io.Writer, logger *slog.Logger) error {
	child := frame.NewWindow(name)
	bus := frame.NewBus()

	var slot *frame.Slot
	slot = frame.NewSlot(func(height int) {
		logger.Info("slot resized", "frame", child.String(), "width", slot.Width(), "height", height)
		fmt.Fprintf(out, "%s x %d\n", slot.Width(), height)
	})

	host := &frame.Host{Frame: child, Slot: slot, Log: logger}
	stop := host.Attach(bus)
	defer stop()

	return frame.Pump(ctx, r, child, bus)
}
