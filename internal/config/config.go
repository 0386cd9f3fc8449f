// Package config reads the generator's environment settings and builds its logger.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/joeshaw/envdecode"
)

// Defaults applied when the environment leaves a setting empty.
const (
	DefaultConfigPath = "rowmap.yaml"
	DefaultLogLevel   = "info"
)

// Env holds the settings read from the environment. Command-line flags take
// precedence over every field.
type Env struct {
	// Config is the mapping file used when --config is not given.
	Config string `env:"ROWMAP_CONFIG,default=rowmap.yaml"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"ROWMAP_LOG_LEVEL,default=info"`
	// Output overrides the output directory of the mapping file.
	Output string `env:"ROWMAP_OUTPUT"`
}

// FromEnv decodes Env from the process environment.
func FromEnv() (Env, error) {
	var env Env

	if err := envdecode.Decode(&env); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Env{}, fmt.Errorf("reading environment: %w", err)
	}

	if env.Config == "" {
		env.Config = DefaultConfigPath
	}

	if env.LogLevel == "" {
		env.LogLevel = DefaultLogLevel
	}

	return env, nil
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}

// NewLogger returns a text logger writing to w at level.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
