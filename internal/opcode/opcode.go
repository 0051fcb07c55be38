// Copyright 2026 wasmdump authors
// SPDX-License-Identifier: Apache-2.0

// Package opcode holds the static, three-plane instruction dispatch
// table: one array of 256 entries for single-byte opcodes, and one each
// for the 0xFC (misc/bulk-memory/table) and 0xFD (vector/SIMD) extended
// prefixes. The table is built once at init time and never mutated.
package opcode

// OperandKind is the closed set of operand decoding rules an
// instruction's immediates can draw from.
type OperandKind int

const (
	// Idx is a LEB128u index (local, global, function, table, memory,
	// type, data, or element index), displayed as a decimal.
	Idx OperandKind = iota
	// I32 is a LEB128s-encoded 32-bit constant, displayed as a decimal.
	I32
	// I64 is a LEB128s-encoded 64-bit constant, displayed as a decimal.
	I64
	// F32 is a 4-byte IEEE-754 binary32 little-endian constant.
	F32
	// F64 is an 8-byte IEEE-754 binary64 little-endian constant.
	F64
	// Mao is a memory argument: two LEB128u values, align then offset.
	Mao
	// Bt is a block type.
	Bt
	// TPlus is a LEB128u count followed by that many value-type bytes.
	TPlus
	// LidPlus is a LEB128u count followed by that many LEB128u label
	// indices (a br_table target vector).
	LidPlus
	// Ref is a single-byte reference type.
	Ref
	// Vb16 is 16 raw bytes: a v128.const literal.
	Vb16
	// Vlt is 16 raw bytes: i8x16.shuffle lane selectors.
	Vlt
	// Vl is a single byte SIMD lane index.
	Vl
	// Literal is a fixed one-byte immediate that must equal LiteralValue,
	// else the opcode is malformed.
	Literal
)

// Operand is one immediate of an instruction: a decoding Kind and, for
// Kind == Literal, the expected byte value.
type Operand struct {
	Kind         OperandKind
	LiteralValue byte
}

// Entry is a live opcode slot: its display mnemonic and the ordered
// list of operands that follow it. A nil *Entry marks an
// empty/reserved/unassigned slot.
type Entry struct {
	Mnemonic string
	Operands []Operand
}

// PlaneA holds the 256 single-byte opcodes.
var PlaneA [256]*Entry

// PlaneFC holds the 256 sub-opcodes addressed by the 0xFC prefix
// (misc numeric conversions, bulk memory, reference types, table ops).
var PlaneFC [256]*Entry

// PlaneFD holds the 256 sub-opcodes addressed by the 0xFD prefix
// (vector/SIMD).
var PlaneFD [256]*Entry

func idx() Operand       { return Operand{Kind: Idx} }
func i32() Operand       { return Operand{Kind: I32} }
func i64() Operand       { return Operand{Kind: I64} }
func f32() Operand       { return Operand{Kind: F32} }
func f64() Operand       { return Operand{Kind: F64} }
func mao() Operand       { return Operand{Kind: Mao} }
func bt() Operand        { return Operand{Kind: Bt} }
func tPlus() Operand     { return Operand{Kind: TPlus} }
func lidPlus() Operand   { return Operand{Kind: LidPlus} }
func ref() Operand       { return Operand{Kind: Ref} }
func vb16() Operand      { return Operand{Kind: Vb16} }
func vlt() Operand       { return Operand{Kind: Vlt} }
func vl() Operand        { return Operand{Kind: Vl} }
func lit(v byte) Operand { return Operand{Kind: Literal, LiteralValue: v} }

func set(plane *[256]*Entry, code byte, mnemonic string, operands ...Operand) {
	plane[code] = &Entry{Mnemonic: mnemonic, Operands: operands}
}

func init() {
	initPlaneAControl()
	initPlaneAVariable()
	initPlaneAMemory()
	initPlaneANumericConst()
	initPlaneAComparison()
	initPlaneAArithmetic()
	initPlaneAConversion()
	initPlaneARefType()
	initPlaneFC()
	initPlaneFDLoadStoreConst()
	initPlaneFDLaneOps()
	initPlaneFDComparison()
	initPlaneFDBitwise()
	initPlaneFDI8x16()
	initPlaneFDI16x8()
	initPlaneFDI32x4()
	initPlaneFDI64x2()
	initPlaneFDF32x4()
	initPlaneFDF64x2()
	initPlaneFDConvert()
}
