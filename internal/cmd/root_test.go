// Copyright 2026 wasmdump authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorsEnabledRespectsNoColorFlag(t *testing.T) {
	noColorFlag = true
	defer func() { noColorFlag = false }()
	assert.False(t, colorsEnabled())
}

func TestColorsEnabledRespectsEnvVar(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	noColorFlag = false
	assert.False(t, colorsEnabled())
}

func TestRunDumpSucceedsOnEmptyModule(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.wasm")
	require.NoError(t, os.WriteFile(path, []byte{0x00, 'a', 's', 'm', 0x01, 0x00, 0x00, 0x00}, 0o644))

	widthFlag = 8
	indentFlag = 2
	maxDepthFlag = 1024
	otlpEndpointFlag = ""

	rootCmd.SetArgs([]string{path})
	var out bytes.Buffer
	rootCmd.SetOut(&out)

	err := rootCmd.Execute()
	require.NoError(t, err)
}

func TestRunDumpReturnsErrorOnMissingFile(t *testing.T) {
	rootCmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing.wasm")})
	err := rootCmd.Execute()
	require.Error(t, err)
}
