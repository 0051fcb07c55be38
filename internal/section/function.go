// Copyright 2026 wasmdump authors
// SPDX-License-Identifier: Apache-2.0

package section

import (
	"fmt"

	"github.com/wasmforensics/wasmdump/internal/cursor"
	"github.com/wasmforensics/wasmdump/internal/disasm"
)

func decodeFunction(cur *cursor.Cursor, _ disasm.Config, width int, emit disasm.EmitFunc) error {
	count, err := cur.LEB128U()
	if err != nil {
		return err
	}
	emit(&count.Span, []string{fmt.Sprintf("typeidx count = %d", count.Value)})

	for i := uint64(0); i < count.Value; i++ {
		typeidx, err := cur.LEB128U()
		if err != nil {
			return err
		}
		emit(&typeidx.Span, []string{fmt.Sprintf("  typeidx[%d] = %d", i, typeidx.Value)})
	}
	emitTrailing(cur, width, emit)
	return nil
}
