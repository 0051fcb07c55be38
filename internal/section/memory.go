// Copyright 2026 wasmdump authors
// SPDX-License-Identifier: Apache-2.0

package section

import (
	"fmt"

	"github.com/wasmforensics/wasmdump/internal/cursor"
	"github.com/wasmforensics/wasmdump/internal/disasm"
)

func decodeMemory(cur *cursor.Cursor, _ disasm.Config, width int, emit disasm.EmitFunc) error {
	count, err := cur.LEB128U()
	if err != nil {
		return err
	}
	emit(&count.Span, []string{fmt.Sprintf("mem count = %d", count.Value)})

	for i := uint64(0); i < count.Value; i++ {
		emit(nil, []string{fmt.Sprintf("mem[%d]", i)})
		if err := emitLimits(cur, "  ", emit); err != nil {
			return err
		}
	}
	emitTrailing(cur, width, emit)
	return nil
}
