// Copyright (c) 2026 wasmdump authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logger

import (
	"io"
	"log/slog"
	"os"
)

// Logger is the package-wide logger shared by the module driver and
// the CLI. It emits one JSON line per call, never interleaved with
// the dump's own stdout output.
var Logger *slog.Logger

// Level is the current log level, adjustable at runtime via SetLevel
// (wired to the CLI's --verbose flag).
var Level = new(slog.LevelVar)

func init() {
	// A working logger must exist before cmd.Execute parses flags.
	Init(slog.LevelInfo, os.Stderr)
}

// Init (re)builds Logger to write JSON to output at the given level.
// Tests call this directly to capture output into a buffer.
func Init(level slog.Level, output io.Writer) {
	if output == nil {
		output = os.Stderr
	}

	handler := slog.NewJSONHandler(output, &slog.HandlerOptions{
		Level:     Level,
		AddSource: true,
	})

	Logger = slog.New(handler)
	Level.Set(level)
}

// SetLevel adjusts the active log level without rebuilding the handler.
func SetLevel(level slog.Level) {
	Level.Set(level)
}

// ForPath returns Logger scoped to one input file, so every decode
// log line from a single dump run carries the same "path" field
// without repeating it at each call site.
func ForPath(path string) *slog.Logger {
	return Logger.With("path", path)
}
