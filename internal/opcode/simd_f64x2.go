// Copyright 2026 wasmdump authors
// SPDX-License-Identifier: Apache-2.0

package opcode

// initPlaneFDF64x2 populates the f64x2 lane-wise floating-point operators.
func initPlaneFDF64x2() {
	set(&PlaneFD, 0xEC, "f64x2.abs")
	set(&PlaneFD, 0xED, "f64x2.neg")
	set(&PlaneFD, 0xEF, "f64x2.sqrt")
	set(&PlaneFD, 0xF0, "f64x2.add")
	set(&PlaneFD, 0xF1, "f64x2.sub")
	set(&PlaneFD, 0xF2, "f64x2.mul")
	set(&PlaneFD, 0xF3, "f64x2.div")
	set(&PlaneFD, 0xF4, "f64x2.min")
	set(&PlaneFD, 0xF5, "f64x2.max")
	set(&PlaneFD, 0xF6, "f64x2.pmin")
	set(&PlaneFD, 0xF7, "f64x2.pmax")
}
