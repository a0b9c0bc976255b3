// Package logging builds the zerolog loggers shared by custody processes.
package logging

import (
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	EnvLogLevel   = "CUSTODY_LOG_LEVEL"
	EnvLogFormat  = "CUSTODY_LOG_FORMAT"
	EnvLogNoColor = "CUSTODY_LOG_NOCOLOR"
)

// Config controls logger construction.
type Config struct {
	Level   zerolog.Level
	JSON    bool
	NoColor bool
	Out     io.Writer
}

// DefaultConfig returns the runtime defaults with environment overrides applied.
func DefaultConfig() Config {
	cfg := Config{Level: zerolog.InfoLevel, Out: os.Stderr}
	applyEnvOverrides(&cfg, os.Getenv)
	return cfg
}

// New returns a logger tagged with the service name.
func New(service string) zerolog.Logger {
	return NewWithConfig(service, DefaultConfig())
}

// NewWithConfig returns a logger built from cfg.
func NewWithConfig(service string, cfg Config) zerolog.Logger {
	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}
	if !cfg.JSON {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
			NoColor:    cfg.NoColor,
		}
	}
	logger := zerolog.New(out).Level(cfg.Level).With().Timestamp()
	if service = strings.TrimSpace(service); service != "" {
		logger = logger.Str("service", service)
	}
	return logger.Logger()
}

// Nop returns a disabled logger for tests and optional wiring.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

func applyEnvOverrides(cfg *Config, getenv func(string) string) {
	if lvl, ok := ParseLevel(getenv(EnvLogLevel)); ok {
		cfg.Level = lvl
	}
	switch strings.ToLower(strings.TrimSpace(getenv(EnvLogFormat))) {
	case "json":
		cfg.JSON = true
	case "console", "text":
		cfg.JSON = false
	}
	if v, err := strconv.ParseBool(strings.TrimSpace(getenv(EnvLogNoColor))); err == nil {
		cfg.NoColor = v
	}
}

// ParseLevel maps a human level name onto a zerolog level.
func ParseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.InfoLevel, false
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}
