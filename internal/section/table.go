// Copyright 2026 wasmdump authors
// SPDX-License-Identifier: Apache-2.0

package section

import (
	"fmt"

	"github.com/wasmforensics/wasmdump/internal/cursor"
	"github.com/wasmforensics/wasmdump/internal/disasm"
	"github.com/wasmforensics/wasmdump/internal/wasmtype"
)

func decodeTable(cur *cursor.Cursor, _ disasm.Config, width int, emit disasm.EmitFunc) error {
	count, err := cur.LEB128U()
	if err != nil {
		return err
	}
	emit(&count.Span, []string{fmt.Sprintf("table count = %d", count.Value)})

	for i := uint64(0); i < count.Value; i++ {
		emit(nil, []string{fmt.Sprintf("table[%d]", i)})
		rt, err := wasmtype.DecodeRefType(cur)
		if err != nil {
			return err
		}
		emit(&rt.Span, []string{"  " + rt.Value.String()})
		if err := emitLimits(cur, "  ", emit); err != nil {
			return err
		}
	}
	emitTrailing(cur, width, emit)
	return nil
}
