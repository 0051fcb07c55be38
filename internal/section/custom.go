// Copyright 2026 wasmdump authors
// SPDX-License-Identifier: Apache-2.0

package section

import (
	"fmt"

	"github.com/wasmforensics/wasmdump/internal/cursor"
	"github.com/wasmforensics/wasmdump/internal/disasm"
)

func decodeCustom(cur *cursor.Cursor, _ disasm.Config, width int, emit disasm.EmitFunc) error {
	name, err := cur.UTF8Name()
	if err != nil {
		return err
	}
	emit(&name.Span, []string{fmt.Sprintf("name = %q", name.Value)})
	emitTrailing(cur, width, emit)
	return nil
}
