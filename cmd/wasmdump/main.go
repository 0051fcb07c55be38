// Copyright 2026 wasmdump authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"

	"github.com/wasmforensics/wasmdump/internal/cmd"
)

// Version is overridden at build time via -ldflags.
var Version = "dev"

func main() {
	cmd.Version = Version

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
