// Package logging builds the structured logger used by the command line tool.
package logging

import (
	"fmt"
	"strings"

	"github.com/segmentio/ksuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config contains logger initialization inputs.
type Config struct {
	// Level is a zap level name ("debug", "info", "warn", "error"). Empty means info.
	Level string
	// OutputPaths are zap sinks; empty means stderr.
	OutputPaths []string
}

// New creates a JSON logger tagged with a fresh run_id.
func New(cfg Config) (*zap.Logger, error) {
	level, err := resolveLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	base := zap.NewProductionConfig()
	base.Encoding = "json"
	base.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	base.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	base.Level = level
	base.DisableStacktrace = true
	base.Sampling = nil
	base.OutputPaths = []string{"stderr"}
	if len(cfg.OutputPaths) > 0 {
		base.OutputPaths = cfg.OutputPaths
	}

	built, err := base.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return built.With(zap.String("run_id", NewRunID())), nil
}

// NewRunID returns a sortable unique id for one invocation.
func NewRunID() string {
	return ksuid.New().String()
}

func resolveLevel(name string) (zap.AtomicLevel, error) {
	if strings.TrimSpace(name) == "" {
		return zap.NewAtomicLevelAt(zapcore.InfoLevel), nil
	}
	var parsed zapcore.Level
	if err := parsed.Set(name); err != nil {
		return zap.AtomicLevel{}, fmt.Errorf("invalid level %q: %w", name, err)
	}
	return zap.NewAtomicLevelAt(parsed), nil
}
