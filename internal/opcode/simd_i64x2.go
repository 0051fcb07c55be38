// Copyright 2026 wasmdump authors
// SPDX-License-Identifier: Apache-2.0

package opcode

// initPlaneFDI64x2 populates the i64x2 lane-wise operators.
func initPlaneFDI64x2() {
	set(&PlaneFD, 0xC0, "i64x2.abs")
	set(&PlaneFD, 0xC1, "i64x2.neg")
	set(&PlaneFD, 0xC3, "i64x2.all_true")
	set(&PlaneFD, 0xC4, "i64x2.bitmask")
	set(&PlaneFD, 0xC7, "i64x2.extend_low_i32x4_s")
	set(&PlaneFD, 0xC8, "i64x2.extend_high_i32x4_s")
	set(&PlaneFD, 0xC9, "i64x2.extend_low_i32x4_u")
	set(&PlaneFD, 0xCA, "i64x2.extend_high_i32x4_u")
	set(&PlaneFD, 0xCB, "i64x2.shl")
	set(&PlaneFD, 0xCC, "i64x2.shr_s")
	set(&PlaneFD, 0xCD, "i64x2.shr_u")
	set(&PlaneFD, 0xCE, "i64x2.add")
	set(&PlaneFD, 0xD1, "i64x2.sub")
	set(&PlaneFD, 0xD5, "i64x2.mul")
	set(&PlaneFD, 0xD6, "i64x2.eq")
	set(&PlaneFD, 0xD7, "i64x2.ne")
	set(&PlaneFD, 0xD8, "i64x2.lt_s")
	set(&PlaneFD, 0xD9, "i64x2.gt_s")
	set(&PlaneFD, 0xDA, "i64x2.le_s")
	set(&PlaneFD, 0xDB, "i64x2.ge_s")
	set(&PlaneFD, 0xDC, "i64x2.extmul_low_i8x16_s")
	set(&PlaneFD, 0xDD, "i64x2.extmul_high_i8x16_s")
	set(&PlaneFD, 0xDE, "i64x2.extmul_low_i8x16_u")
	set(&PlaneFD, 0xDF, "i64x2.extmul_high_i8x16_u")
}
