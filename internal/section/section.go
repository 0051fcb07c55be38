// Copyright 2026 wasmdump authors
// SPDX-License-Identifier: Apache-2.0

// Package section decodes each Wasm section kind (Custom, Type, Import,
// Function, Table, Memory, Global, Export, Start, Element, Code, Data,
// DataCount), driving the type and instruction decoders over each
// section's framed sub-cursor.
package section

import (
	"fmt"

	"github.com/wasmforensics/wasmdump/internal/cursor"
	"github.com/wasmforensics/wasmdump/internal/disasm"
	emitfmt "github.com/wasmforensics/wasmdump/internal/emit"
	wasmerrors "github.com/wasmforensics/wasmdump/internal/errors"
)

// Handler decodes one section's framed payload, reporting via emit.
type Handler func(cur *cursor.Cursor, disasmCfg disasm.Config, width int, emit disasm.EmitFunc) error

// Names gives the display name for each recognized section id, 0..=12.
var Names = [13]string{
	"Custom", "Type", "Import", "Function", "Table", "Memory",
	"Global", "Export", "Start", "Element", "Code", "Data", "Data Count",
}

var handlers = [13]Handler{
	decodeCustom,
	decodeType,
	decodeImport,
	decodeFunction,
	decodeTable,
	decodeMemory,
	decodeGlobal,
	decodeExport,
	decodeStart,
	decodeElement,
	decodeCode,
	decodeData,
	decodeDataCount,
}

// Dispatch routes a section to its handler by id. Ids outside 0..=12
// fail UnknownSectionId.
func Dispatch(id byte, cur *cursor.Cursor, disasmCfg disasm.Config, width int, emit disasm.EmitFunc) error {
	if int(id) >= len(handlers) {
		return wasmerrors.WrapUnknownSectionID(cur.Offset(), id)
	}
	return handlers[id](cur, disasmCfg, width, emit)
}

// emitTrailing reports any bytes left in cur after a section (or code
// entry) has decoded all of its defined content. Never an error.
func emitTrailing(cur *cursor.Cursor, width int, emit disasm.EmitFunc) {
	d := cur.Take(cur.Remaining())
	if len(d.Value) == 0 {
		return
	}
	emit(nil, []string{fmt.Sprintf("unknown data: size = %d", len(d.Value))})
	emit(&d.Span, emitfmt.ASCIIRows(d.Value, width))
}
