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

func decodeType(cur *cursor.Cursor, _ disasm.Config, width int, emit disasm.EmitFunc) error {
	count, err := cur.LEB128U()
	if err != nil {
		return err
	}
	emit(&count.Span, []string{fmt.Sprintf("functype count = %d", count.Value)})

	for i := uint64(0); i < count.Value; i++ {
		emit(nil, []string{fmt.Sprintf("typeidx[%d]", i)})
		prefix, err := cur.Require(1)
		if err != nil {
			return err
		}
		if prefix.Value[0] != 0x60 {
			return wasmerrors.WrapMalformedFuncType(prefix.Span.Offset, prefix.Value[0])
		}
		emit(&prefix.Span, []string{"  functype"})
		if err := emitResultType(cur, "param", emit); err != nil {
			return err
		}
		if err := emitResultType(cur, "result", emit); err != nil {
			return err
		}
	}
	emitTrailing(cur, width, emit)
	return nil
}

func emitResultType(cur *cursor.Cursor, label string, emit disasm.EmitFunc) error {
	count, err := cur.LEB128U()
	if err != nil {
		return err
	}
	emit(&count.Span, []string{fmt.Sprintf("  %s[%d]", label, count.Value)})
	for i := uint64(0); i < count.Value; i++ {
		vt, err := wasmtype.DecodeValType(cur)
		if err != nil {
			return err
		}
		emit(&vt.Span, []string{"    " + vt.Value.String()})
	}
	return nil
}
