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

// entityKindNames is the shared func/table/mem/global vocabulary used
// by both the Import and Export sections.
var entityKindNames = [4]string{"func", "table", "mem", "global"}

func decodeImport(cur *cursor.Cursor, _ disasm.Config, width int, emit disasm.EmitFunc) error {
	count, err := cur.LEB128U()
	if err != nil {
		return err
	}
	emit(&count.Span, []string{fmt.Sprintf("import count = %d", count.Value)})

	for i := uint64(0); i < count.Value; i++ {
		emit(nil, []string{fmt.Sprintf("import[%d]", i)})

		mod, err := cur.UTF8Name()
		if err != nil {
			return err
		}
		emit(&mod.Span, []string{fmt.Sprintf("  module = %q", mod.Value)})

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
			return wasmerrors.WrapUnknownImportKind(kind.Span.Offset, kind.Value[0])
		}
		emit(&kind.Span, []string{"  " + entityKindNames[kind.Value[0]]})

		switch kind.Value[0] {
		case 0:
			typeidx, err := cur.LEB128U()
			if err != nil {
				return err
			}
			emit(&typeidx.Span, []string{fmt.Sprintf("    typeidx = %d", typeidx.Value)})
		case 1:
			rt, err := wasmtype.DecodeRefType(cur)
			if err != nil {
				return err
			}
			emit(&rt.Span, []string{"    " + rt.Value.String()})
			if err := emitLimits(cur, "    ", emit); err != nil {
				return err
			}
		case 2:
			if err := emitLimits(cur, "    ", emit); err != nil {
				return err
			}
		case 3:
			vt, err := wasmtype.DecodeValType(cur)
			if err != nil {
				return err
			}
			emit(&vt.Span, []string{"    " + vt.Value.String()})
			mut, err := wasmtype.DecodeMutability(cur)
			if err != nil {
				return err
			}
			emit(&mut.Span, []string{"    " + mut.Value.String()})
		}
	}
	emitTrailing(cur, width, emit)
	return nil
}

// emitLimits decodes a limits entry field by field so each line in the
// dump is tied to the exact bytes that produced it, rather than the
// single aggregate Span wasmtype.DecodeLimits would give the whole entry.
func emitLimits(cur *cursor.Cursor, prefix string, emit disasm.EmitFunc) error {
	flag, err := cur.Require(1)
	if err != nil {
		return err
	}
	if flag.Value[0] != 0 && flag.Value[0] != 1 {
		return wasmerrors.WrapMalformedLimits(flag.Span.Offset, flag.Value[0])
	}
	emit(&flag.Span, []string{prefix + "limits"})

	min, err := cur.LEB128U()
	if err != nil {
		return err
	}
	emit(&min.Span, []string{fmt.Sprintf("%s  min = %d", prefix, min.Value)})

	if flag.Value[0] == 1 {
		max, err := cur.LEB128U()
		if err != nil {
			return err
		}
		emit(&max.Span, []string{fmt.Sprintf("%s  max = %d", prefix, max.Value)})
	}
	return nil
}
