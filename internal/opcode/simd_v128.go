// Copyright 2026 wasmdump authors
// SPDX-License-Identifier: Apache-2.0

package opcode

// initPlaneFDLoadStoreConst populates the vector load, store, and
// literal-construction opcodes at the head of the 0xFD plane.
func initPlaneFDLoadStoreConst() {
	set(&PlaneFD, 0x00, "v128.load", mao())
	set(&PlaneFD, 0x01, "v128.load8x8_s", mao())
	set(&PlaneFD, 0x02, "v128.load8x8_u", mao())
	set(&PlaneFD, 0x03, "v128.load16x4_s", mao())
	set(&PlaneFD, 0x04, "v128.load16x4_u", mao())
	set(&PlaneFD, 0x05, "v128.load32x2_s", mao())
	set(&PlaneFD, 0x06, "v128.load32x2_u", mao())
	set(&PlaneFD, 0x07, "v128.load8_splat", mao())
	set(&PlaneFD, 0x08, "v128.load16_splat", mao())
	set(&PlaneFD, 0x09, "v128.load32_splat", mao())
	set(&PlaneFD, 0x0A, "v128.load64_splat", mao())
	set(&PlaneFD, 0x0B, "v128.store", mao())
	set(&PlaneFD, 0x0C, "v128.const", vb16())
	set(&PlaneFD, 0x0D, "i8x16.shuffle", vlt())
}
