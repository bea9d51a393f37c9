// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// The demo binary walks through the module's collections, logging what it
// observes: an unbounded Fibonacci cursor, and a FIFO queue that is traversed
// by position before being drained.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log := newLogger(cfg.level)
	if err := run(context.Background(), log, cfg); err != nil {
		log.Fatal("demo failed", zap.Error(err))
		os.Exit(1)
	}
}

func newLogger(level logging.Level) logging.Logger {
	return logging.NewLogger("", logging.NewWrappedCore(
		level, os.Stderr, zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
			MessageKey: "msg",
			TimeKey:    "time",
			LevelKey:   "level",
		}),
	))
}

type config struct {
	level    logging.Level
	count    int
	fibTerms int
	literal  []int
}

func parseFlags(args []string) (*config, error) {
	fs := pflag.NewFlagSet("demo", pflag.ContinueOnError)
	var (
		cfg   config
		level string
	)
	fs.StringVar(&level, "log-level", "info", "Minimum level of logs to emit")
	fs.IntVar(&cfg.count, "count", 10, "Number of elements pushed onto the queue")
	fs.IntVar(&cfg.fibTerms, "fib-terms", 10, "Number of Fibonacci terms to print")
	fs.IntSliceVar(&cfg.literal, "literal", []int{11, 12, 13, 14}, "Elements of the queue constructed from a literal")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	lvl, err := logging.ToLevel(level)
	if err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}
	cfg.level = lvl
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *config) validate() error {
	if c.count < 0 {
		return fmt.Errorf("--count must be non-negative; got %d", c.count)
	}
	if c.fibTerms < 0 {
		return fmt.Errorf("--fib-terms must be non-negative; got %d", c.fibTerms)
	}
	return nil
}
