// Copyright 2026 wasmdump authors
// SPDX-License-Identifier: Apache-2.0

package opcode

// initPlaneFDI16x8 populates the i16x8 lane-wise operators.
func initPlaneFDI16x8() {
	set(&PlaneFD, 0x80, "i16x8.abs")
	set(&PlaneFD, 0x81, "i16x8.neg")
	set(&PlaneFD, 0x82, "i16x8.q15mulr_sat_s")
	set(&PlaneFD, 0x83, "i16x8.all_true")
	set(&PlaneFD, 0x84, "i16x8.bitmask")
	set(&PlaneFD, 0x85, "i16x8.narrow_i32x4_s")
	set(&PlaneFD, 0x86, "i16x8.narrow_i32x4_u")
	set(&PlaneFD, 0x87, "i16x8.extend_low_i8x16_s")
	set(&PlaneFD, 0x88, "i16x8.extend_high_i8x16_s")
	set(&PlaneFD, 0x89, "i16x8.extend_low_i8x16_u")
	set(&PlaneFD, 0x8A, "i16x8.extend_high_i8x16_u")
	set(&PlaneFD, 0x8B, "i16x8.shl")
	set(&PlaneFD, 0x8C, "i16x8.shr_s")
	set(&PlaneFD, 0x8D, "i16x8.shr_u")
	set(&PlaneFD, 0x8E, "i16x8.add")
	set(&PlaneFD, 0x8F, "i16x8.add_sat_s")
	set(&PlaneFD, 0x90, "i16x8.add_sat_u")
	set(&PlaneFD, 0x91, "i16x8.sub")
	set(&PlaneFD, 0x92, "i16x8.sub_sat_s")
	set(&PlaneFD, 0x93, "i16x8.sub_sat_u")
	set(&PlaneFD, 0x94, "f64x2.nearest")
	set(&PlaneFD, 0x95, "i16x8.mul")
	set(&PlaneFD, 0x96, "i16x8.min_s")
	set(&PlaneFD, 0x97, "i16x8.min_u")
	set(&PlaneFD, 0x98, "i16x8.max_s")
	set(&PlaneFD, 0x99, "i16x8.max_u")
	set(&PlaneFD, 0x9B, "i16x8.avr_u")
	set(&PlaneFD, 0x9C, "i16x8.extmul_low_i8x16_s")
	set(&PlaneFD, 0x9D, "i16x8.extmul_high_i8x16_s")
	set(&PlaneFD, 0x9E, "i16x8.extmul_low_i8x16_u")
	set(&PlaneFD, 0x9F, "i16x8.extmul_high_i8x16_u")
}
