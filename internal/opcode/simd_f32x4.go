// Copyright 2026 wasmdump authors
// SPDX-License-Identifier: Apache-2.0

package opcode

// initPlaneFDF32x4 populates the f32x4 lane-wise floating-point operators.
func initPlaneFDF32x4() {
	set(&PlaneFD, 0xE0, "f32x4.abs")
	set(&PlaneFD, 0xE1, "f32x4.neg")
	set(&PlaneFD, 0xE3, "f32x4.sqrt")
	set(&PlaneFD, 0xE4, "f32x4.add")
	set(&PlaneFD, 0xE5, "f32x4.sub")
	set(&PlaneFD, 0xE6, "f32x4.mul")
	set(&PlaneFD, 0xE7, "f32x4.div")
	set(&PlaneFD, 0xE8, "f32x4.min")
	set(&PlaneFD, 0xE9, "f32x4.max")
	set(&PlaneFD, 0xEA, "f32x4.pmin")
	set(&PlaneFD, 0xEB, "f32x4.pmax")
}
