// Copyright 2026 wasmdump authors
// SPDX-License-Identifier: Apache-2.0

package section

import (
	"fmt"

	"github.com/wasmforensics/wasmdump/internal/cursor"
	"github.com/wasmforensics/wasmdump/internal/disasm"
	"github.com/wasmforensics/wasmdump/internal/wasmtype"
)

func decodeGlobal(cur *cursor.Cursor, disasmCfg disasm.Config, width int, emit disasm.EmitFunc) error {
	count, err := cur.LEB128U()
	if err != nil {
		return err
	}
	emit(&count.Span, []string{fmt.Sprintf("global count = %d", count.Value)})

	for i := uint64(0); i < count.Value; i++ {
		emit(nil, []string{fmt.Sprintf("global[%d]", i)})
		vt, err := wasmtype.DecodeValType(cur)
		if err != nil {
			return err
		}
		emit(&vt.Span, []string{"  " + vt.Value.String()})

		mut, err := wasmtype.DecodeMutability(cur)
		if err != nil {
			return err
		}
		emit(&mut.Span, []string{"  " + mut.Value.String()})

		emit(nil, []string{"  expr"})
		if err := disasm.DecodeExpr(cur, disasmCfg, emit); err != nil {
			return err
		}
	}
	emitTrailing(cur, width, emit)
	return nil
}
