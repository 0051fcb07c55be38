// Copyright 2026 wasmdump authors
// SPDX-License-Identifier: Apache-2.0

// Package disasm implements the instruction decoder: opcode dispatch
// across the three planes, per-operand decoding, and the recursive
// structured-control-flow walker that drives indentation for nested
// block/loop/if bodies.
package disasm

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/wasmforensics/wasmdump/internal/cursor"
	wasmerrors "github.com/wasmforensics/wasmdump/internal/errors"
	"github.com/wasmforensics/wasmdump/internal/opcode"
	"github.com/wasmforensics/wasmdump/internal/wasmtype"
)

// ErrMaxDepthExceeded is returned when nested block/loop/if control flow
// exceeds Config.MaxDepth. It guards against unbounded recursion on
// pathological or adversarial inputs; it is not part of the module's
// decode-error taxonomy proper.
var ErrMaxDepthExceeded = errors.New("block nesting exceeds maximum depth")

// Config parameterizes the expression walker.
type Config struct {
	// IndentStep is the number of spaces per nesting level.
	IndentStep int
	// MaxDepth bounds block/loop/if nesting depth.
	MaxDepth int
}

// DefaultConfig matches the defaults named in the design notes.
func DefaultConfig() Config {
	return Config{IndentStep: 2, MaxDepth: 1024}
}

// EmitFunc receives one decoded unit: the Span it came from (nil for
// spanless structural lines) and the annotation line(s) describing it.
type EmitFunc func(span *cursor.Span, lines []string)

// DecodeExpr walks a function body or init expression from cur,
// recursing into nested block/loop/if scopes, until it consumes a
// depth-0 "end" or the cursor runs out of bytes.
func DecodeExpr(cur *cursor.Cursor, cfg Config, emit EmitFunc) error {
	return decodeBody(cur, cfg, 0, emit)
}

func decodeBody(cur *cursor.Cursor, cfg Config, depth int, emit EmitFunc) error {
	for cur.Remaining() > 0 {
		mnemonic, err := decodeInstruction(cur, cfg, depth, emit)
		if err != nil {
			return err
		}
		if mnemonic == "end" {
			return nil
		}
		if mnemonic == "block" || mnemonic == "loop" || mnemonic == "if" {
			if depth+1 > cfg.MaxDepth {
				return fmt.Errorf("%w: depth %d at offset %d", ErrMaxDepthExceeded, depth+1, cur.Offset())
			}
			if err := decodeBody(cur, cfg, depth+1, emit); err != nil {
				return err
			}
		}
	}
	return nil
}

func decodeInstruction(cur *cursor.Cursor, cfg Config, depth int, emit EmitFunc) (string, error) {
	start := cur.Mark()

	first, err := cur.Require(1)
	if err != nil {
		return "", err
	}
	c1 := first.Value[0]

	var entry *opcode.Entry
	switch c1 {
	case 0xFC:
		sub, err := cur.LEB128U()
		if err != nil {
			return "", err
		}
		if sub.Value < 256 {
			entry = opcode.PlaneFC[sub.Value]
		}
	case 0xFD:
		sub, err := cur.LEB128U()
		if err != nil {
			return "", err
		}
		if sub.Value < 256 {
			entry = opcode.PlaneFD[sub.Value]
		}
	default:
		entry = opcode.PlaneA[c1]
	}

	opcodeBytes := cur.RewindAndRequire(start)
	if entry == nil {
		return "", wasmerrors.WrapUnknownOpcode(opcodeBytes.Span.Offset, opcodeBytes.Span.Bytes)
	}

	dispDepth := depth
	if entry.Mnemonic == "else" || entry.Mnemonic == "end" {
		dispDepth--
		if dispDepth < 0 {
			dispDepth = 0
		}
	}
	indent := strings.Repeat(" ", dispDepth*cfg.IndentStep)
	emit(&opcodeBytes.Span, []string{indent + entry.Mnemonic})

	operandIndent := indent
	for _, op := range entry.Operands {
		if err := decodeOperand(cur, op, operandIndent, emit); err != nil {
			return "", err
		}
	}

	return entry.Mnemonic, nil
}

func decodeOperand(cur *cursor.Cursor, op opcode.Operand, indent string, emit EmitFunc) error {
	switch op.Kind {
	case opcode.Idx:
		d, err := cur.LEB128U()
		if err != nil {
			return err
		}
		emit(&d.Span, []string{indent + strconv.FormatUint(d.Value, 10)})

	case opcode.I32, opcode.I64:
		d, err := cur.LEB128S()
		if err != nil {
			return err
		}
		emit(&d.Span, []string{indent + strconv.FormatInt(d.Value, 10)})

	case opcode.F32:
		d, err := cur.Require(4)
		if err != nil {
			return err
		}
		v := math.Float32frombits(binary.LittleEndian.Uint32(d.Value))
		emit(&d.Span, []string{indent + strconv.FormatFloat(float64(v), 'g', -1, 32)})

	case opcode.F64:
		d, err := cur.Require(8)
		if err != nil {
			return err
		}
		v := math.Float64frombits(binary.LittleEndian.Uint64(d.Value))
		emit(&d.Span, []string{indent + strconv.FormatFloat(v, 'g', -1, 64)})

	case opcode.Mao:
		align, err := cur.LEB128U()
		if err != nil {
			return err
		}
		emit(&align.Span, []string{indent + "align = " + strconv.FormatUint(align.Value, 10)})
		offset, err := cur.LEB128U()
		if err != nil {
			return err
		}
		emit(&offset.Span, []string{indent + "offset = " + strconv.FormatUint(offset.Value, 10)})

	case opcode.Bt:
		raw, err := cur.LEB128Raw()
		if err != nil {
			return err
		}
		emit(&raw.Span, []string{indent + describeBlockType(raw.Value)})

	case opcode.TPlus:
		count, err := cur.LEB128U()
		if err != nil {
			return err
		}
		emit(&count.Span, []string{indent + fmt.Sprintf("(types=%d)", count.Value)})
		for i := uint64(0); i < count.Value; i++ {
			vt, err := wasmtype.DecodeValType(cur)
			if err != nil {
				return err
			}
			emit(&vt.Span, []string{indent + vt.Value.String()})
		}

	case opcode.LidPlus:
		count, err := cur.LEB128U()
		if err != nil {
			return err
		}
		emit(&count.Span, []string{indent + fmt.Sprintf("(types=%d)", count.Value)})
		for i := uint64(0); i < count.Value; i++ {
			lid, err := cur.LEB128U()
			if err != nil {
				return err
			}
			emit(&lid.Span, []string{indent + strconv.FormatUint(lid.Value, 10)})
		}

	case opcode.Ref:
		rt, err := wasmtype.DecodeRefType(cur)
		if err != nil {
			return err
		}
		emit(&rt.Span, []string{indent + rt.Value.String()})

	case opcode.Vb16, opcode.Vlt:
		d, err := cur.Require(16)
		if err != nil {
			return err
		}
		emit(&d.Span, []string{indent + hexBytes(d.Value)})

	case opcode.Vl:
		d, err := cur.Require(1)
		if err != nil {
			return err
		}
		emit(&d.Span, []string{indent + fmt.Sprintf("lane = 0x%02x", d.Value[0])})

	case opcode.Literal:
		d, err := cur.Require(1)
		if err != nil {
			return err
		}
		if d.Value[0] != op.LiteralValue {
			return wasmerrors.WrapUnknownOpcode(d.Span.Offset, d.Value)
		}
		emit(&d.Span, []string{indent + fmt.Sprintf("(code:0x%02x)", op.LiteralValue)})
	}
	return nil
}

func describeBlockType(raw []byte) string {
	first := raw[0]
	if first&0x40 != 0 {
		if first == 0x40 {
			return "(empty)"
		}
		return wasmtype.ValType(first).String()
	}
	return strconv.FormatInt(cursor.DecodeSLEB128Bytes(raw), 10)
}

func hexBytes(b []byte) string {
	parts := make([]string, len(b))
	for i, v := range b {
		parts[i] = fmt.Sprintf("0x%02x", v)
	}
	return strings.Join(parts, " ")
}
