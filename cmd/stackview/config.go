package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/plus3/stackview/internal/logging"
)

// Mode selects the output backend.
type Mode string

const (
	ModeWindow   Mode = "window"
	ModeTerm     Mode = "term"
	ModeHeadless Mode = "headless"
)

// Config holds the parsed command line.
type Config struct {
	Mode     Mode
	TPS      int
	Ticks    int
	Scale    float64
	Debug    bool
	LogLevel string
}

var errUsage = errors.New("usage")

// parseArgs parses args into a Config. Flags take precedence over the
// STACKVIEW_MODE and LOG_LEVEL environment variables.
func parseArgs(args []string, getenv func(string) string, output io.Writer) (*Config, error) {
	fs := flag.NewFlagSet("stackview", flag.ContinueOnError)
	fs.SetOutput(output)

	cfg := &Config{}
	var mode string
	fs.StringVar(&mode, "mode", "", "output backend: window, term or headless (default window)")
	fs.IntVar(&cfg.TPS, "tps", 60, "ticks per second")
	fs.IntVar(&cfg.Ticks, "ticks", 0, "stop after this many ticks; 0 runs until closed (headless default 2000)")
	fs.Float64Var(&cfg.Scale, "scale", 32, "window mode cell size in pixels")
	fs.BoolVar(&cfg.Debug, "debug", false, "show the imgui inspector in window mode")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "log level: debug, info, warn or error (default info)")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, errUsage
		}
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	if mode == "" {
		mode = getenv("STACKVIEW_MODE")
	}
	if mode == "" {
		mode = string(ModeWindow)
	}
	cfg.Mode = Mode(strings.ToLower(mode))

	if cfg.LogLevel == "" {
		cfg.LogLevel = getenv("LOG_LEVEL")
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if cfg.Mode == ModeHeadless && cfg.Ticks == 0 {
		cfg.Ticks = 2000
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Mode {
	case ModeWindow, ModeTerm, ModeHeadless:
	default:
		return fmt.Errorf("invalid mode %q (must be window, term or headless)", c.Mode)
	}
	if c.TPS < 1 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	if c.Ticks < 0 {
		return fmt.Errorf("ticks must be non-negative, got %d", c.Ticks)
	}
	if c.Scale < 4 {
		return fmt.Errorf("scale must be at least 4, got %g", c.Scale)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}
