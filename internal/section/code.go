// Copyright 2026 wasmdump authors
// SPDX-License-Identifier: Apache-2.0

package section

import (
	"fmt"

	"github.com/wasmforensics/wasmdump/internal/cursor"
	"github.com/wasmforensics/wasmdump/internal/disasm"
	"github.com/wasmforensics/wasmdump/internal/wasmtype"
)

func decodeCode(cur *cursor.Cursor, disasmCfg disasm.Config, width int, emit disasm.EmitFunc) error {
	count, err := cur.LEB128U()
	if err != nil {
		return err
	}
	emit(&count.Span, []string{fmt.Sprintf("code count = %d", count.Value)})

	for i := uint64(0); i < count.Value; i++ {
		emit(nil, []string{fmt.Sprintf("code[%d]", i)})

		size, err := cur.LEB128U()
		if err != nil {
			return err
		}
		emit(&size.Span, []string{fmt.Sprintf("  size = %d", size.Value)})

		body, err := cur.Sub(int(size.Value))
		if err != nil {
			return err
		}

		groupCount, err := body.LEB128U()
		if err != nil {
			return err
		}
		emit(&groupCount.Span, []string{fmt.Sprintf("  local group count = %d", groupCount.Value)})

		for j := uint64(0); j < groupCount.Value; j++ {
			typeCount, err := body.LEB128U()
			if err != nil {
				return err
			}
			emit(&typeCount.Span, []string{fmt.Sprintf("    local[%d] count = %d", j, typeCount.Value)})

			vt, err := wasmtype.DecodeValType(body)
			if err != nil {
				return err
			}
			emit(&vt.Span, []string{"      " + vt.Value.String()})
		}

		emit(nil, []string{"  expr"})
		if err := disasm.DecodeExpr(body, disasmCfg, emit); err != nil {
			return err
		}
		emitTrailing(body, width, emit)
	}
	emitTrailing(cur, width, emit)
	return nil
}
