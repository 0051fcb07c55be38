// Copyright 2026 wasmdump authors
// SPDX-License-Identifier: Apache-2.0

package section

import (
	"fmt"

	"github.com/wasmforensics/wasmdump/internal/cursor"
	"github.com/wasmforensics/wasmdump/internal/disasm"
	wasmerrors "github.com/wasmforensics/wasmdump/internal/errors"
)

func decodeExport(cur *cursor.Cursor, _ disasm.Config, width int, emit disasm.EmitFunc) error {
	count, err := cur.LEB128U()
	if err != nil {
		return err
	}
	emit(&count.Span, []string{fmt.Sprintf("export count = %d", count.Value)})

	for i := uint64(0); i < count.Value; i++ {
		emit(nil, []string{fmt.Sprintf("export[%d]", i)})

		name, err := cur.UTF8Name()
		if err != nil {
			return err
		}
		emit(&name.Span, []string{fmt.Sprintf("  name = %q", name.Value)})

		kind, err := cur.Require(1)
		if err != nil {
			return err
		}
		if int(kind.Value[0]) >= len(entityKindNames) {
			return wasmerrors.WrapUnknownExportKind(kind.Span.Offset, kind.Value[0])
		}
		emit(&kind.Span, []string{"  " + entityKindNames[kind.Value[0]]})

		idx, err := cur.LEB128U()
		if err != nil {
			return err
		}
		emit(&idx.Span, []string{fmt.Sprintf("    %sidx = %d", entityKindNames[kind.Value[0]], idx.Value)})
	}
	emitTrailing(cur, width, emit)
	return nil
}
