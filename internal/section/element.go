// Copyright 2026 wasmdump authors
// SPDX-License-Identifier: Apache-2.0

package section

import (
	"fmt"

	"github.com/wasmforensics/wasmdump/internal/cursor"
	"github.com/wasmforensics/wasmdump/internal/disasm"
	wasmerrors "github.com/wasmforensics/wasmdump/internal/errors"
	"github.com/wasmforensics/wasmdump/internal/wasmtype"
)

// decodeElement follows the mode bit layout: bit 0 = declarative vs
// active-table, bit 1 = has explicit tableidx, bit 2 = expression form
// vs funcidx-kind form.
func decodeElement(cur *cursor.Cursor, disasmCfg disasm.Config, width int, emit disasm.EmitFunc) error {
	count, err := cur.LEB128U()
	if err != nil {
		return err
	}
	emit(&count.Span, []string{fmt.Sprintf("elem count = %d", count.Value)})

	for i := uint64(0); i < count.Value; i++ {
		emit(nil, []string{fmt.Sprintf("elem[%d]", i)})

		mode, err := cur.Require(1)
		if err != nil {
			return err
		}
		m := mode.Value[0]
		if m >= 8 {
			return wasmerrors.WrapUnknownElementMode(mode.Span.Offset, m)
		}
		emit(&mode.Span, []string{fmt.Sprintf("  mode = %d", m)})

		bit0 := m&0x1 != 0
		bit1 := m&0x2 != 0
		bit2 := m&0x4 != 0

		if m == 2 || m == 6 {
			tableidx, err := cur.LEB128U()
			if err != nil {
				return err
			}
			emit(&tableidx.Span, []string{fmt.Sprintf("  tableidx = %d", tableidx.Value)})
		}

		if !bit0 {
			emit(nil, []string{"  offset expr"})
			if err := disasm.DecodeExpr(cur, disasmCfg, emit); err != nil {
				return err
			}
		}

		if bit2 {
			if bit0 || bit1 {
				rt, err := wasmtype.DecodeRefType(cur)
				if err != nil {
					return err
				}
				emit(&rt.Span, []string{"  " + rt.Value.String()})
			}
			exprCount, err := cur.LEB128U()
			if err != nil {
				return err
			}
			emit(&exprCount.Span, []string{fmt.Sprintf("  expr count = %d", exprCount.Value)})
			for j := uint64(0); j < exprCount.Value; j++ {
				emit(nil, []string{fmt.Sprintf("  expr[%d]", j)})
				if err := disasm.DecodeExpr(cur, disasmCfg, emit); err != nil {
					return err
				}
			}
		} else {
			if bit0 || bit1 {
				elemkind, err := cur.Require(1)
				if err != nil {
					return err
				}
				emit(&elemkind.Span, []string{fmt.Sprintf("  elemkind = %d", elemkind.Value[0])})
			}
			funcCount, err := cur.LEB128U()
			if err != nil {
				return err
			}
			emit(&funcCount.Span, []string{fmt.Sprintf("  funcidx count = %d", funcCount.Value)})
			for j := uint64(0); j < funcCount.Value; j++ {
				funcidx, err := cur.LEB128U()
				if err != nil {
					return err
				}
				emit(&funcidx.Span, []string{fmt.Sprintf("    funcidx[%d] = %d", j, funcidx.Value)})
			}
		}
	}
	emitTrailing(cur, width, emit)
	return nil
}
