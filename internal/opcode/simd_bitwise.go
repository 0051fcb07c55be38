// Copyright 2026 wasmdump authors
// SPDX-License-Identifier: Apache-2.0

package opcode

// initPlaneFDBitwise populates the generic v128 bitwise operators.
func initPlaneFDBitwise() {
	set(&PlaneFD, 0x4D, "v128.not")
	set(&PlaneFD, 0x4E, "v128.and")
	set(&PlaneFD, 0x4F, "v128.andnot")
	set(&PlaneFD, 0x50, "v128.or")
	set(&PlaneFD, 0x51, "v128.xor")
	set(&PlaneFD, 0x52, "v128.bitselect")
	set(&PlaneFD, 0x53, "v128.any_true")
}
