// Copyright 2026 wasmdump authors
// SPDX-License-Identifier: Apache-2.0

package section

import (
	"fmt"

	"github.com/wasmforensics/wasmdump/internal/cursor"
	"github.com/wasmforensics/wasmdump/internal/disasm"
)

func decodeStart(cur *cursor.Cursor, _ disasm.Config, width int, emit disasm.EmitFunc) error {
	funcidx, err := cur.LEB128U()
	if err != nil {
		return err
	}
	emit(&funcidx.Span, []string{fmt.Sprintf("funcidx = %d", funcidx.Value)})
	emitTrailing(cur, width, emit)
	return nil
}
