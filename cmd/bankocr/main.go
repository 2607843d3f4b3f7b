// Package main runs the account number scanner.
package main

import (
	"flag"
	"os"

	"github.com/katalvlaran/bankocr/internal/cli"
	"github.com/katalvlaran/bankocr/internal/logging"
)

func main() {
	cfg, err := cli.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		cli.Exitf("parse config: %v", err)
	}

	logger, err := logging.New(logging.Config{Level: cfg.LogLevel})
	if err != nil {
		cli.Exitf("init logger: %v", err)
	}

	runErr := cli.Run(cfg, os.Stdout, logger)
	_ = logger.Sync()
	if runErr != nil {
		cli.Exitf("Error: %v", runErr)
	}
}
