// Copyright 2026 wasmdump authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/wasmforensics/wasmdump/internal/disasm"
	wasmerrors "github.com/wasmforensics/wasmdump/internal/errors"
	"github.com/wasmforensics/wasmdump/internal/logger"
	"github.com/wasmforensics/wasmdump/internal/module"
	"github.com/wasmforensics/wasmdump/internal/telemetry"
)

func runDump(cmd *cobra.Command, args []string) error {
	path := args[0]
	log := logger.ForPath(path)

	buf, err := os.ReadFile(path)
	if err != nil {
		printErr(log, fmt.Errorf("reading %s: %w", path, err))
		return err
	}

	ctx := context.Background()
	shutdown, err := telemetry.Init(ctx, telemetry.Config{
		Enabled:     otlpEndpointFlag != "",
		ExporterURL: otlpEndpointFlag,
		ServiceName: "wasmdump",
	})
	if err != nil {
		printErr(log, fmt.Errorf("initializing telemetry: %w", err))
		return err
	}
	defer shutdown()

	driver := module.New(module.Options{
		Width: widthFlag,
		Disasm: disasm.Config{
			IndentStep: indentFlag,
			MaxDepth:   maxDepthFlag,
		},
	})

	log.Debug("starting dump", "size", len(buf))

	if err := driver.Dump(ctx, path, buf, os.Stdout); err != nil {
		printErr(log, err)
		return err
	}
	return nil
}

// printErr reports a decode failure to stderr. The offending offset
// and/or triggering bytes are whatever the Wrap* helper already
// embedded in the error text.
func printErr(log *slog.Logger, err error) {
	bold := color.New(color.FgRed, color.Bold).SprintFunc()
	fmt.Fprintf(os.Stderr, "%s %v\n", bold("error:"), err)

	var sentinel error
	for _, s := range []error{
		wasmerrors.ErrTruncatedInput,
		wasmerrors.ErrBadMagic,
		wasmerrors.ErrInvalidUTF8,
		wasmerrors.ErrUnknownSectionID,
		wasmerrors.ErrUnknownOpcode,
		wasmerrors.ErrUnknownValType,
		wasmerrors.ErrUnknownRefType,
		wasmerrors.ErrMalformedLimits,
		wasmerrors.ErrMalformedMutability,
		wasmerrors.ErrMalformedFuncType,
		wasmerrors.ErrUnknownImportKind,
		wasmerrors.ErrUnknownExportKind,
		wasmerrors.ErrUnknownElementMode,
		wasmerrors.ErrUnknownDataMode,
	} {
		if errors.Is(err, s) {
			sentinel = s
			break
		}
	}
	if sentinel != nil {
		log.Error("decode failed", "kind", sentinel.Error())
	}
}
