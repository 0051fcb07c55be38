// Copyright 2026 wasmdump authors
// SPDX-License-Identifier: Apache-2.0

// Package emit renders the dual-column dump: a left hex/offset column
// wrapped every W bytes beside a right column of annotation lines,
// joined row by row.
package emit

import (
	"fmt"
	"io"
	"strings"

	"github.com/wasmforensics/wasmdump/internal/cursor"
)

// FormatConfig is the immutable layout configuration passed to an
// Emitter at construction time. There is no global mutable state.
type FormatConfig struct {
	// Width is the number of hex bytes printed per row (default 8).
	Width int
	// OffsetWidth is the number of hex digits used to render an offset,
	// derived once from the input file's size.
	OffsetWidth int
}

// NewFormatConfig derives OffsetWidth from fileSize as
// ceil(log16(fileSize)), matching the width needed to print the
// highest valid offset in the file.
func NewFormatConfig(width int, fileSize int64) FormatConfig {
	if width <= 0 {
		width = 8
	}
	n := fileSize - 1
	if n < 0 {
		n = 0
	}
	digits := len(fmt.Sprintf("%x", n))
	return FormatConfig{Width: width, OffsetWidth: digits}
}

// Emitter writes the dual-column dump to an output stream.
type Emitter struct {
	cfg FormatConfig
	out io.Writer
}

// New creates an Emitter writing to out with the given layout config.
func New(out io.Writer, cfg FormatConfig) *Emitter {
	return &Emitter{cfg: cfg, out: out}
}

// columnWidth is the left column's fixed width: offset + ": " + W
// space-separated two-digit hex bytes, minus the final separator.
func (e *Emitter) columnWidth() int {
	return e.cfg.OffsetWidth + 2 + e.cfg.Width*3 - 1
}

// Emit prints one Span (or none, for a spanless structural line)
// alongside one or more annotation lines, row by row.
func (e *Emitter) Emit(span *cursor.Span, lines []string) {
	left := e.hexRows(span)
	right := lines

	rows := len(left)
	if len(right) > rows {
		rows = len(right)
	}

	pad := strings.Repeat(" ", e.columnWidth())
	for i := 0; i < rows; i++ {
		l := pad
		if i < len(left) {
			l = left[i]
		}
		r := ""
		if i < len(right) {
			r = right[i]
		}
		fmt.Fprintln(e.out, l+" | "+r)
	}
}

func (e *Emitter) hexRows(span *cursor.Span) []string {
	if span == nil || len(span.Bytes) == 0 {
		return nil
	}
	w := e.cfg.Width
	var rows []string
	for p := 0; p < len(span.Bytes); p += w {
		end := p + w
		if end > len(span.Bytes) {
			end = len(span.Bytes)
		}
		chunk := span.Bytes[p:end]
		hex := make([]string, len(chunk))
		for i, b := range chunk {
			hex[i] = fmt.Sprintf("%02x", b)
		}
		row := fmt.Sprintf("%0*x: %s", e.cfg.OffsetWidth, span.Offset+uint64(p), strings.Join(hex, " "))
		rows = append(rows, padOrTruncate(row, e.columnWidth()))
	}
	return rows
}

func padOrTruncate(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}

// ASCIIRows renders a byte slice as one ASCII-preview row per Width
// bytes, printable bytes verbatim and everything else as '.'. Used by
// section decoders to annotate "unknown data" trailers row-for-row
// against the Emitter's own hex chunking.
func ASCIIRows(data []byte, width int) []string {
	if width <= 0 {
		width = 8
	}
	var rows []string
	for p := 0; p < len(data); p += width {
		end := p + width
		if end > len(data) {
			end = len(data)
		}
		rows = append(rows, asciiPreview(data[p:end]))
	}
	return rows
}

func asciiPreview(b []byte) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, c := range b {
		if c >= 0x20 && c < 0x7F {
			sb.WriteByte(c)
		} else {
			sb.WriteByte('.')
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
