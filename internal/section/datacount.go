// Copyright 2026 wasmdump authors
// SPDX-License-Identifier: Apache-2.0

package section

import (
	"fmt"

	"github.com/wasmforensics/wasmdump/internal/cursor"
	"github.com/wasmforensics/wasmdump/internal/disasm"
)

// decodeDataCount reads the count as LEB128u per the Wasm binary format
// spec. (The reference dumper this table was transcribed from reads a
// fixed 4-byte little-endian value here; that does not match the
// format and is not reproduced.)
func decodeDataCount(cur *cursor.Cursor, _ disasm.Config, width int, emit disasm.EmitFunc) error {
	count, err := cur.LEB128U()
	if err != nil {
		return err
	}
	emit(&count.Span, []string{fmt.Sprintf("data count = %d", count.Value)})
	emitTrailing(cur, width, emit)
	return nil
}
