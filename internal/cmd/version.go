// Copyright 2026 wasmdump authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

var (
	// CommitSHA and BuildDate are populated by ldflags at build time.
	CommitSHA = "unknown"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		goVersion := "unknown"
		if info, ok := debug.ReadBuildInfo(); ok {
			goVersion = info.GoVersion
		}
		fmt.Printf("wasmdump version %s\n", Version)
		fmt.Printf("commit:  %s\n", CommitSHA)
		fmt.Printf("built:   %s\n", BuildDate)
		fmt.Printf("go:      %s\n", goVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
