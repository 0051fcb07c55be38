// Copyright 2026 wasmdump authors
// SPDX-License-Identifier: Apache-2.0

// Package cmd implements the wasmdump command-line interface: flag
// parsing, the error-prefix coloring, and wiring the CLI's
// options into an internal/module.Driver run.
package cmd

import (
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/wasmforensics/wasmdump/internal/logger"
)

// Version is set by main from the binary's build-time ldflags.
var Version = "dev"

var (
	widthFlag        int
	indentFlag       int
	maxDepthFlag     int
	noColorFlag      bool
	verboseFlag      bool
	otlpEndpointFlag string
)

var rootCmd = &cobra.Command{
	Use:   "wasmdump <file>",
	Short: "Forensic byte-aligned disassembler for WebAssembly modules",
	Long: `wasmdump decodes a WebAssembly binary module and emits a complete,
byte-aligned dump: for every byte consumed, the absolute file offset, the raw
hex bytes, and a semantic annotation (section header, field name, decoded
value, instruction mnemonic, operand).

It covers the Wasm 1.0 binary format plus the SIMD, bulk-memory,
reference-types, sign-extension, and saturating-conversion proposals.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		color.NoColor = !colorsEnabled()
		if verboseFlag {
			logger.SetLevel(slog.LevelDebug)
		}
	},
	RunE: runDump,
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&widthFlag, "width", "w", 8, "bytes per hex row")
	rootCmd.PersistentFlags().IntVar(&indentFlag, "indent", 2, "indentation step (spaces) for nested control flow")
	rootCmd.PersistentFlags().IntVar(&maxDepthFlag, "max-depth", 1024, "maximum block/loop/if nesting depth")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable ANSI coloring of the error prefix")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "emit debug-level JSON logs to stderr alongside the dump")
	rootCmd.PersistentFlags().StringVar(&otlpEndpointFlag, "otlp-endpoint", "", "OTLP/HTTP endpoint for optional per-section tracing (default: tracing disabled, no network calls)")
}

// Execute runs the root command. Called once from main.
func Execute() error {
	return rootCmd.Execute()
}

// colorsEnabled honors NO_COLOR/--no-color/non-TTY the same way
// fatih/color's own NoColor switch does, without hand-rolling a
// TTY check at every call site.
func colorsEnabled() bool {
	if noColorFlag || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}
