// Copyright 2024 Marc-Antoine Ruel. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// l-mul quantizes matrices to FP8 and multiplies them with the L-Mul
// approximation.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

func initLog(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05.000",
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	})))
}

const usage = `usage: l-mul <command> [flags]

commands:
  demo     multiply random matrices with L-Mul and compare with float32
  analyze  quantize the tensors of a safetensors file and report bit usage
           and L-Mul error

Use "l-mul <command> -help" for the flags of a command.
`

var errUsage = errors.New("unknown command; run \"l-mul help\"")

func run(ctx context.Context, args []string, w io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(w, usage)
		return errUsage
	}
	switch args[0] {
	case "demo":
		return cmdDemo(args[1:], w)
	case "analyze":
		return cmdAnalyze(ctx, args[1:], w)
	case "help", "-help", "-h":
		fmt.Fprint(w, usage)
		return nil
	default:
		return fmt.Errorf("%q: %w", args[0], errUsage)
	}
}

func mainImpl() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	initLog(false)
	return run(ctx, os.Args[1:], os.Stdout)
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "l-mul: %s\n", err)
		os.Exit(1)
	}
}
