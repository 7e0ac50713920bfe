package main

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) func(string) string {
	return func(key string) string {
		return vars[key]
	}
}

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		env      map[string]string
		expected Config
	}{
		{
			name:     "defaults",
			expected: Config{Mode: ModeWindow, TPS: 60, Scale: 32, LogLevel: "info"},
		},
		{
			name:     "headless gets a tick limit",
			args:     []string{"-mode", "headless"},
			expected: Config{Mode: ModeHeadless, TPS: 60, Ticks: 2000, Scale: 32, LogLevel: "info"},
		},
		{
			name:     "explicit ticks",
			args:     []string{"-mode=headless", "-ticks", "50", "-tps", "30"},
			expected: Config{Mode: ModeHeadless, TPS: 30, Ticks: 50, Scale: 32, LogLevel: "info"},
		},
		{
			name:     "debug window",
			args:     []string{"-debug", "-scale", "24"},
			expected: Config{Mode: ModeWindow, TPS: 60, Scale: 24, Debug: true, LogLevel: "info"},
		},
		{
			name:     "environment",
			env:      map[string]string{"STACKVIEW_MODE": "TERM", "LOG_LEVEL": "Debug"},
			expected: Config{Mode: ModeTerm, TPS: 60, Scale: 32, LogLevel: "debug"},
		},
		{
			name:     "flags win over environment",
			args:     []string{"-mode", "window", "-log-level", "warn"},
			env:      map[string]string{"STACKVIEW_MODE": "term", "LOG_LEVEL": "debug"},
			expected: Config{Mode: ModeWindow, TPS: 60, Scale: 32, LogLevel: "warn"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseArgs(tt.args, env(tt.env), io.Discard)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, *cfg)
		})
	}
}

func TestParseArgsInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{"unknown mode", []string{"-mode", "vr"}, nil},
		{"unknown mode from environment", nil, map[string]string{"STACKVIEW_MODE": "vr"}},
		{"zero tps", []string{"-tps", "0"}, nil},
		{"negative ticks", []string{"-ticks", "-1"}, nil},
		{"tiny scale", []string{"-scale", "1"}, nil},
		{"bad log level", []string{"-log-level", "loud"}, nil},
		{"bad log level from environment", nil, map[string]string{"LOG_LEVEL": "loud"}},
		{"unknown flag", []string{"-fullscreen"}, nil},
		{"positional argument", []string{"demo.txt"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseArgs(tt.args, env(tt.env), io.Discard)
			assert.Error(t, err)
		})
	}
}

func TestParseArgsHelp(t *testing.T) {
	_, err := parseArgs([]string{"-h"}, env(nil), io.Discard)
	assert.ErrorIs(t, err, errUsage)
}
