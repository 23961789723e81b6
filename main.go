// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// @title quickly-plan API
// @version 1.0
// @description Schedule, survey and signup polls with live tallies.
// @BasePath /

//go:generate swag init --generalInfo main.go --output docs --outputTypes go --parseDependency

package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/danielhkuo/quickly-plan/cliparse"
)

// Flags are parsed by cliparse so the server keeps its -p/-d style flags.
var rootCmd = &cobra.Command{
	Use:                "quickly-plan",
	Short:              "Scheduling, survey and signup polls",
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	RunE:               runServe,
}

func main() {
	if err := cliparse.LoadEnv(); err != nil {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	if err := rootCmd.Execute(); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

// newLogHandler picks text output for terminals and JSON otherwise, unless
// format forces one.
func newLogHandler(w io.Writer, format string) slog.Handler {
	if format == cliparse.LogFormatAuto {
		format = cliparse.LogFormatJSON
		if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
			format = cliparse.LogFormatText
		}
	}

	if format == cliparse.LogFormatJSON {
		return slog.NewJSONHandler(w, nil)
	}
	return slog.NewTextHandler(w, nil)
}
