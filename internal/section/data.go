// Copyright 2026 wasmdump authors
// SPDX-License-Identifier: Apache-2.0

package section

import (
	"fmt"

	"github.com/wasmforensics/wasmdump/internal/cursor"
	"github.com/wasmforensics/wasmdump/internal/disasm"
	"github.com/wasmforensics/wasmdump/internal/emit"
	wasmerrors "github.com/wasmforensics/wasmdump/internal/errors"
)

func decodeData(cur *cursor.Cursor, disasmCfg disasm.Config, width int, emitLine disasm.EmitFunc) error {
	count, err := cur.LEB128U()
	if err != nil {
		return err
	}
	emitLine(&count.Span, []string{fmt.Sprintf("data count = %d", count.Value)})

	for i := uint64(0); i < count.Value; i++ {
		emitLine(nil, []string{fmt.Sprintf("data[%d]", i)})

		mode, err := cur.LEB128U()
		if err != nil {
			return err
		}
		if mode.Value >= 3 {
			return wasmerrors.WrapUnknownDataMode(mode.Span.Offset, mode.Value)
		}
		emitLine(&mode.Span, []string{fmt.Sprintf("  mode = %d", mode.Value)})

		switch mode.Value {
		case 0:
			emitLine(nil, []string{"  memidx = 0"})
			emitLine(nil, []string{"  offset expr"})
			if err := disasm.DecodeExpr(cur, disasmCfg, emitLine); err != nil {
				return err
			}
		case 2:
			memidx, err := cur.LEB128U()
			if err != nil {
				return err
			}
			emitLine(&memidx.Span, []string{fmt.Sprintf("  memidx = %d", memidx.Value)})
			emitLine(nil, []string{"  offset expr"})
			if err := disasm.DecodeExpr(cur, disasmCfg, emitLine); err != nil {
				return err
			}
		}

		size, err := cur.LEB128U()
		if err != nil {
			return err
		}
		emitLine(&size.Span, []string{fmt.Sprintf("  size = %d", size.Value)})

		payload, err := cur.Require(int(size.Value))
		if err != nil {
			return err
		}
		emitLine(&payload.Span, emit.ASCIIRows(payload.Value, width))
	}
	emitTrailing(cur, width, emitLine)
	return nil
}
