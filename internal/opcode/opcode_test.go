// Copyright 2026 wasmdump authors
// SPDX-License-Identifier: Apache-2.0

package opcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaneAKnownEntries(t *testing.T) {
	cases := map[byte]string{
		0x00: "unreachable",
		0x02: "block",
		0x0B: "end",
		0x20: "local.get",
		0x28: "i32.load",
		0x41: "i32.const",
		0x6A: "i32.add",
		0xC0: "i32.extend8_s",
		0xD0: "ref.null",
	}
	for code, mnemonic := range cases {
		entry := PlaneA[code]
		if assert.NotNil(t, entry, "0x%02x", code) {
			assert.Equal(t, mnemonic, entry.Mnemonic)
		}
	}
}

func TestPlaneAReservedSlotsEmpty(t *testing.T) {
	for _, code := range []byte{0x06, 0x12, 0x1D, 0xC5} {
		assert.Nil(t, PlaneA[code], "0x%02x", code)
	}
}

func TestPlaneFCEntries(t *testing.T) {
	assert.Equal(t, "memory.copy", PlaneFC[0x0A].Mnemonic)
	assert.Equal(t, "elem.drop", PlaneFC[0x0D].Mnemonic)
	assert.Equal(t, []Operand{{Kind: Idx}}, PlaneFC[0x0D].Operands)
	assert.Nil(t, PlaneFC[0x12])
}

func TestPlaneFDLoadAndLaneImmediate(t *testing.T) {
	entry := PlaneFD[0x54]
	if assert.NotNil(t, entry) {
		assert.Equal(t, "v128.load8_lane", entry.Mnemonic)
		assert.Equal(t, []Operand{{Kind: Mao}, {Kind: Vl}}, entry.Operands)
	}
}

func TestPlaneFDNarrowTypoSlotsLeftEmpty(t *testing.T) {
	assert.Nil(t, PlaneFD[0xA5])
	assert.Nil(t, PlaneFD[0xA6])
}

func TestPlaneFDi16x8NarrowPresent(t *testing.T) {
	assert.Equal(t, "i16x8.narrow_i32x4_s", PlaneFD[0x85].Mnemonic)
	assert.Equal(t, "i16x8.narrow_i32x4_u", PlaneFD[0x86].Mnemonic)
}

func TestPlaneFDConvertTail(t *testing.T) {
	assert.Equal(t, "f64x2.convert_low_i32x4_u", PlaneFD[0xFF].Mnemonic)
}

func TestMemorySizeGrowUseLiteralZeroOperand(t *testing.T) {
	entry := PlaneA[0x3F]
	if assert.NotNil(t, entry) {
		assert.Equal(t, []Operand{{Kind: Literal, LiteralValue: 0x00}}, entry.Operands)
	}
}
