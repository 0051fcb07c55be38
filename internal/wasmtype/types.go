// Copyright 2026 wasmdump authors
// SPDX-License-Identifier: Apache-2.0

// Package wasmtype decodes the value types, reference types, function
// types, limits, and mutability flags that appear throughout a module's
// type and import/global sections.
package wasmtype

import (
	"github.com/wasmforensics/wasmdump/internal/cursor"
	wasmerrors "github.com/wasmforensics/wasmdump/internal/errors"
)

// ValType identifies a WebAssembly value type by its encoded byte.
type ValType byte

const (
	I32       ValType = 0x7F
	I64       ValType = 0x7E
	F32       ValType = 0x7D
	F64       ValType = 0x7C
	V128      ValType = 0x7B
	FuncRef   ValType = 0x70
	ExternRef ValType = 0x6F
)

func (v ValType) String() string {
	switch v {
	case I32:
		return "i32"
	case I64:
		return "i64"
	case F32:
		return "f32"
	case F64:
		return "f64"
	case V128:
		return "v128"
	case FuncRef:
		return "funcref"
	case ExternRef:
		return "externref"
	default:
		return "unknown"
	}
}

// DecodeValType reads a single value-type byte.
func DecodeValType(cur *cursor.Cursor) (cursor.Decoded[ValType], error) {
	d, err := cur.Require(1)
	if err != nil {
		return cursor.Decoded[ValType]{}, err
	}
	code := d.Value[0]
	switch ValType(code) {
	case I32, I64, F32, F64, V128, FuncRef, ExternRef:
		return cursor.Decoded[ValType]{Value: ValType(code), Span: d.Span}, nil
	default:
		return cursor.Decoded[ValType]{}, wasmerrors.WrapUnknownValType(d.Span.Offset, code)
	}
}

// RefType identifies a reference type, a restricted subset of ValType
// that appears in table and element-segment encodings.
type RefType byte

const (
	RefFunc   RefType = 0x70
	RefExtern RefType = 0x6F
)

func (r RefType) String() string {
	switch r {
	case RefFunc:
		return "funcref"
	case RefExtern:
		return "externref"
	default:
		return "unknown"
	}
}

// DecodeRefType reads a reference-type byte via the LEB128u path, as it
// appears in table and element-segment headers.
func DecodeRefType(cur *cursor.Cursor) (cursor.Decoded[RefType], error) {
	d, err := cur.LEB128U()
	if err != nil {
		return cursor.Decoded[RefType]{}, err
	}
	switch RefType(d.Value) {
	case RefFunc, RefExtern:
		return cursor.Decoded[RefType]{Value: RefType(d.Value), Span: d.Span}, nil
	default:
		return cursor.Decoded[RefType]{}, wasmerrors.WrapUnknownRefType(d.Span.Offset, byte(d.Value))
	}
}

// ResultType is a vector of value types, as used for both a function's
// parameters and its results.
type ResultType struct {
	Types []ValType
}

// DecodeResultType reads a LEB128u count followed by that many value-type
// bytes. The returned Span covers the count prefix and the payload.
func DecodeResultType(cur *cursor.Cursor) (cursor.Decoded[ResultType], error) {
	start := cur.Mark()
	n, err := cur.LEB128U()
	if err != nil {
		return cursor.Decoded[ResultType]{}, err
	}
	types := make([]ValType, 0, n.Value)
	for i := uint64(0); i < n.Value; i++ {
		vt, err := DecodeValType(cur)
		if err != nil {
			return cursor.Decoded[ResultType]{}, err
		}
		types = append(types, vt.Value)
	}
	whole := cur.RewindAndRequire(start)
	return cursor.Decoded[ResultType]{Value: ResultType{Types: types}, Span: whole.Span}, nil
}

// FuncType is a function signature: a 0x60 prefix followed by a
// parameter ResultType and a result ResultType.
type FuncType struct {
	Params  []ValType
	Results []ValType
}

// DecodeFuncType reads a function type entry from a module's type section.
func DecodeFuncType(cur *cursor.Cursor) (cursor.Decoded[FuncType], error) {
	start := cur.Mark()
	prefix, err := cur.Require(1)
	if err != nil {
		return cursor.Decoded[FuncType]{}, err
	}
	if prefix.Value[0] != 0x60 {
		return cursor.Decoded[FuncType]{}, wasmerrors.WrapMalformedFuncType(prefix.Span.Offset, prefix.Value[0])
	}
	params, err := DecodeResultType(cur)
	if err != nil {
		return cursor.Decoded[FuncType]{}, err
	}
	results, err := DecodeResultType(cur)
	if err != nil {
		return cursor.Decoded[FuncType]{}, err
	}
	whole := cur.RewindAndRequire(start)
	return cursor.Decoded[FuncType]{
		Value: FuncType{Params: params.Value.Types, Results: results.Value.Types},
		Span:  whole.Span,
	}, nil
}

// Limits describes the min/max bounds of a table or memory.
type Limits struct {
	Min uint32
	Max *uint32
}

// DecodeLimits reads a limits entry: a flag byte (0 = min only, 1 = min
// and max) followed by one or two LEB128u bounds.
func DecodeLimits(cur *cursor.Cursor) (cursor.Decoded[Limits], error) {
	start := cur.Mark()
	flag, err := cur.Require(1)
	if err != nil {
		return cursor.Decoded[Limits]{}, err
	}
	if flag.Value[0] != 0 && flag.Value[0] != 1 {
		return cursor.Decoded[Limits]{}, wasmerrors.WrapMalformedLimits(flag.Span.Offset, flag.Value[0])
	}
	min, err := cur.LEB128U()
	if err != nil {
		return cursor.Decoded[Limits]{}, err
	}
	lim := Limits{Min: uint32(min.Value)}
	if flag.Value[0] == 1 {
		max, err := cur.LEB128U()
		if err != nil {
			return cursor.Decoded[Limits]{}, err
		}
		m := uint32(max.Value)
		lim.Max = &m
	}
	whole := cur.RewindAndRequire(start)
	return cursor.Decoded[Limits]{Value: lim, Span: whole.Span}, nil
}

// Mutability records whether a global is constant or mutable.
type Mutability byte

const (
	Const Mutability = 0
	Var   Mutability = 1
)

func (m Mutability) String() string {
	if m == Var {
		return "var"
	}
	return "const"
}

// DecodeMutability reads a global's mutability flag.
func DecodeMutability(cur *cursor.Cursor) (cursor.Decoded[Mutability], error) {
	d, err := cur.Require(1)
	if err != nil {
		return cursor.Decoded[Mutability]{}, err
	}
	switch Mutability(d.Value[0]) {
	case Const, Var:
		return cursor.Decoded[Mutability]{Value: Mutability(d.Value[0]), Span: d.Span}, nil
	default:
		return cursor.Decoded[Mutability]{}, wasmerrors.WrapMalformedMutability(d.Span.Offset, d.Value[0])
	}
}
