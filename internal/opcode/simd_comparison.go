// Copyright 2026 wasmdump authors
// SPDX-License-Identifier: Apache-2.0

package opcode

// initPlaneFDComparison populates the per-lane equality and ordering
// opcodes shared by the integer and float vector types.
func initPlaneFDComparison() {
	set(&PlaneFD, 0x23, "i8x16.eq")
	set(&PlaneFD, 0x24, "i8x16.ne")
	set(&PlaneFD, 0x25, "i8x16.lt_s")
	set(&PlaneFD, 0x26, "i8x16.lt_u")
	set(&PlaneFD, 0x27, "i8x16.gt_s")
	set(&PlaneFD, 0x28, "i8x16.gt_u")
	set(&PlaneFD, 0x29, "i8x16.le_s")
	set(&PlaneFD, 0x2A, "i8x16.le_u")
	set(&PlaneFD, 0x2B, "i8x16.ge_s")
	set(&PlaneFD, 0x2C, "i8x16.ge_u")
	set(&PlaneFD, 0x2D, "i16x8.eq")
	set(&PlaneFD, 0x2E, "i16x8.ne")
	set(&PlaneFD, 0x2F, "i16x8.lt_s")
	set(&PlaneFD, 0x30, "i16x8.lt_u")
	set(&PlaneFD, 0x31, "i16x8.gt_s")
	set(&PlaneFD, 0x32, "i16x8.gt_u")
	set(&PlaneFD, 0x33, "i16x8.le_s")
	set(&PlaneFD, 0x34, "i16x8.le_u")
	set(&PlaneFD, 0x35, "i16x8.ge_s")
	set(&PlaneFD, 0x36, "i16x8.ge_u")
	set(&PlaneFD, 0x37, "i32x4.eq")
	set(&PlaneFD, 0x38, "i32x4.ne")
	set(&PlaneFD, 0x39, "i32x4.lt_s")
	set(&PlaneFD, 0x3A, "i32x4.lt_u")
	set(&PlaneFD, 0x3B, "i32x4.gt_s")
	set(&PlaneFD, 0x3C, "i32x4.gt_u")
	set(&PlaneFD, 0x3D, "i32x4.le_s")
	set(&PlaneFD, 0x3E, "i32x4.le_u")
	set(&PlaneFD, 0x3F, "i32x4.ge_s")
	set(&PlaneFD, 0x40, "i32x4.ge_u")
	set(&PlaneFD, 0x41, "f32x4.eq")
	set(&PlaneFD, 0x42, "f32x4.ne")
	set(&PlaneFD, 0x43, "f32x4.lt")
	set(&PlaneFD, 0x44, "f32x4.gt")
	set(&PlaneFD, 0x45, "f32x4.le")
	set(&PlaneFD, 0x46, "f32x4.ge")
	set(&PlaneFD, 0x47, "f64x2.eq")
	set(&PlaneFD, 0x48, "f64x2.ne")
	set(&PlaneFD, 0x49, "f64x2.lt")
	set(&PlaneFD, 0x4A, "f64x2.gt")
	set(&PlaneFD, 0x4B, "f64x2.le")
	set(&PlaneFD, 0x4C, "f64x2.ge")
}
