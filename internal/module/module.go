// Copyright 2026 wasmdump authors
// SPDX-License-Identifier: Apache-2.0

// Package module implements the top-level driver: it validates the
// module header, then loops over framed sections, delegating each to
// its handler and threading every decoded byte through the Emitter.
package module

import (
	"context"
	"fmt"
	"io"

	"go.opentelemetry.io/otel/attribute"

	"github.com/wasmforensics/wasmdump/internal/cursor"
	"github.com/wasmforensics/wasmdump/internal/disasm"
	"github.com/wasmforensics/wasmdump/internal/emit"
	wasmerrors "github.com/wasmforensics/wasmdump/internal/errors"
	"github.com/wasmforensics/wasmdump/internal/logger"
	"github.com/wasmforensics/wasmdump/internal/section"
	"github.com/wasmforensics/wasmdump/internal/telemetry"
)

var wasmMagic = [4]byte{0x00, 'a', 's', 'm'}

// Options configures a single Dump run.
type Options struct {
	Width  int
	Disasm disasm.Config
}

// Driver dumps one Wasm module to an output stream.
type Driver struct {
	Options Options
}

// New builds a Driver with the given options.
func New(opts Options) *Driver {
	if opts.Width <= 0 {
		opts.Width = 8
	}
	return &Driver{Options: opts}
}

// Dump decodes path's contents (already read into buf) to out, driving
// the Emitter with a format config sized to buf's length. It validates
// the header first, then dispatches every framed section in turn,
// halting on the first decode error.
func (d *Driver) Dump(ctx context.Context, path string, buf []byte, out io.Writer) error {
	fmtCfg := emit.NewFormatConfig(d.Options.Width, int64(len(buf)))
	e := emit.New(out, fmtCfg)

	e.Emit(nil, []string{fmt.Sprintf("%s: %d bytes", path, len(buf))})

	cur := cursor.New(path, buf, 0)

	magic, err := cur.Require(4)
	if err != nil {
		return err
	}
	if magic.Value[0] != wasmMagic[0] || magic.Value[1] != wasmMagic[1] ||
		magic.Value[2] != wasmMagic[2] || magic.Value[3] != wasmMagic[3] {
		return wasmerrors.WrapBadMagic(magic.Value)
	}
	e.Emit(&magic.Span, []string{fmt.Sprintf("magic = %q", magic.Value)})

	version, err := cur.U32LE()
	if err != nil {
		return err
	}
	e.Emit(&version.Span, []string{fmt.Sprintf("version = %d", version.Value)})

	logger.ForPath(path).Debug("decoding wasm module", "size", len(buf), "version", version.Value)

	var dataCount *uint64
	var dataSectionActualCount *uint64

	for cur.Remaining() > 0 {
		id, err := cur.Require(1)
		if err != nil {
			return err
		}
		size, err := cur.LEB128U()
		if err != nil {
			return err
		}

		name := "unknown"
		if int(id.Value[0]) < len(section.Names) {
			name = section.Names[id.Value[0]]
		}
		e.Emit(&id.Span, []string{fmt.Sprintf("section id = %d (%s)", id.Value[0], name)})
		e.Emit(&size.Span, []string{fmt.Sprintf("section size = %d", size.Value)})

		payloadBytes, err := cur.Require(int(size.Value))
		if err != nil {
			return err
		}
		payload := cursor.New(path, payloadBytes.Value, payloadBytes.Span.Offset)

		// DataCount and Data both start with a LEB128u count; peek it
		// from an independent cursor over the same bytes before the
		// section handler consumes the primary one, so the declared
		// count can be compared against the Data section's actual
		// segment count once both have been seen.
		if id.Value[0] == 12 {
			if v, ok := peekCount(path, payloadBytes.Value, payloadBytes.Span.Offset); ok {
				dataCount = &v
			}
		}
		if id.Value[0] == 11 {
			if v, ok := peekCount(path, payloadBytes.Value, payloadBytes.Span.Offset); ok {
				dataSectionActualCount = &v
			}
		}

		if err := d.dispatchTraced(ctx, id.Value[0], payload, e.Emit); err != nil {
			return err
		}
	}

	if dataCount != nil && dataSectionActualCount != nil && *dataCount != *dataSectionActualCount {
		e.Emit(nil, []string{fmt.Sprintf(
			"warning: data count section declares %d, data section has %d",
			*dataCount, *dataSectionActualCount)})
	}

	return nil
}

// peekCount reads the leading LEB128u count from an independent cursor
// over a section's raw bytes, without disturbing the cursor the
// section's own handler will decode from.
func peekCount(path string, raw []byte, base uint64) (uint64, bool) {
	d, err := cursor.New(path, raw, base).LEB128U()
	if err != nil {
		return 0, false
	}
	return d.Value, true
}

// dispatchTraced wraps one section's decode in an OpenTelemetry span
// (a no-op unless telemetry was enabled via --otlp-endpoint).
func (d *Driver) dispatchTraced(ctx context.Context, id byte, payload *cursor.Cursor, emitFn disasm.EmitFunc) error {
	tracer := telemetry.GetTracer()
	name := "unknown"
	if int(id) < len(section.Names) {
		name = section.Names[id]
	}
	_, span := tracer.Start(ctx, "decode_section")
	span.SetAttributes(
		attribute.Int("section.id", int(id)),
		attribute.String("section.name", name),
	)
	defer span.End()

	return section.Dispatch(id, payload, d.Options.Disasm, d.Options.Width, emitFn)
}
