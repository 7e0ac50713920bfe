// Command stackview plays a scripted demo game through the board viewer.
//
// Headless mode runs the ticks unpaced and prints the final board. The other
// modes draw every tick, with ebiten in a window or with tcell in the
// terminal.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/plus3/stackview/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Getenv, os.Stdout, os.Stderr))
}

func run(args []string, getenv func(string) string, stdout, stderr io.Writer) int {
	cfg, err := parseArgs(args, getenv, stderr)
	if errors.Is(err, errUsage) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "stackview: %v\n", err)
		return 2
	}

	logger, err := logging.New(stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "stackview: %v\n", err)
		return 2
	}

	v, err := newViewer(logger, cfg.Mode != ModeHeadless)
	if err != nil {
		logger.Error("failed to build viewer", "error", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("starting", "mode", cfg.Mode, "tps", cfg.TPS, "ticks", cfg.Ticks)

	switch cfg.Mode {
	case ModeHeadless:
		err = runHeadless(ctx, cfg, v, stdout)
	case ModeTerm:
		err = runTerm(ctx, cfg, v)
	case ModeWindow:
		err = runWindow(cfg, v)
	}
	if err != nil {
		logger.Error("viewer stopped", "error", err)
		return 1
	}

	logger.Info("stopped", "ticks", v.scheduler.Ticks())
	return 0
}
