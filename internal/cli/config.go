// Package cli wires the account scanner pipeline to the command line.
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// Config holds configuration for one run.
type Config struct {
	Input    string `env:"BANKOCR_INPUT" envDefault:"entries.txt"`
	Output   string `env:"BANKOCR_OUTPUT" envDefault:"accounts_status.txt"`
	LogLevel string `env:"BANKOCR_LOG_LEVEL" envDefault:"info"`
	DryRun   bool   `env:"BANKOCR_DRY_RUN"`
}

// ParseConfig loads defaults from the environment, then applies flags.
// A single positional argument overrides -input.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.Input, "input", cfg.Input, "scanner file with 4-line account records")
	fs.StringVar(&cfg.Output, "output", cfg.Output, "status summary file")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.BoolVar(&cfg.DryRun, "dry-run", cfg.DryRun, "print the summary instead of writing it")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	switch fs.NArg() {
	case 0:
	case 1:
		cfg.Input = fs.Arg(0)
	default:
		return Config{}, fmt.Errorf("expected at most one input file, got %d", fs.NArg())
	}
	if cfg.Input == "" {
		return Config{}, fmt.Errorf("input is required")
	}
	if cfg.Output == "" && !cfg.DryRun {
		return Config{}, fmt.Errorf("output is required")
	}

	return cfg, nil
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
