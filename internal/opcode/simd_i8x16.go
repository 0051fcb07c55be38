// Copyright 2026 wasmdump authors
// SPDX-License-Identifier: Apache-2.0

package opcode

// initPlaneFDI8x16 populates the i8x16 lane-wise operators, plus the
// zero-extending conversions and float rounding ops sharing this byte
// range in the source table.
func initPlaneFDI8x16() {
	set(&PlaneFD, 0x5E, "f32x4.demote_f64x2_zero")
	set(&PlaneFD, 0x5F, "f64x2.promote_low_f32x4")
	set(&PlaneFD, 0x60, "i8x16.abs")
	set(&PlaneFD, 0x61, "i8x16.neg")
	set(&PlaneFD, 0x62, "i8x16.popcnt")
	set(&PlaneFD, 0x63, "i8x16.all_true")
	set(&PlaneFD, 0x64, "i8x16.bitmask")
	set(&PlaneFD, 0x65, "i8x16.narrow_i16x8_s")
	set(&PlaneFD, 0x66, "i8x16.narrow_i16x8_u")
	set(&PlaneFD, 0x67, "f32x4.ceil")
	set(&PlaneFD, 0x68, "f32x4.floor")
	set(&PlaneFD, 0x69, "f32x4.trunc")
	set(&PlaneFD, 0x6A, "f32x4.nearest")
	set(&PlaneFD, 0x6B, "i8x16.shl")
	set(&PlaneFD, 0x6C, "i8x16.shr_s")
	set(&PlaneFD, 0x6D, "i8x16.shr_u")
	set(&PlaneFD, 0x6E, "i8x16.add")
	set(&PlaneFD, 0x6F, "i8x16.add_sat_s")
	set(&PlaneFD, 0x70, "i8x16.add_sat_u")
	set(&PlaneFD, 0x71, "i8x16.sub")
	set(&PlaneFD, 0x72, "i8x16.sub_sat_s")
	set(&PlaneFD, 0x73, "i8x16.sub_sat_u")
	set(&PlaneFD, 0x74, "f64x2.ceil")
	set(&PlaneFD, 0x75, "f64x2.floor")
	set(&PlaneFD, 0x76, "i8x16.min_s")
	set(&PlaneFD, 0x77, "i8x16.min_u")
	set(&PlaneFD, 0x78, "i8x16.max_s")
	set(&PlaneFD, 0x79, "i8x16.max_u")
	set(&PlaneFD, 0x7A, "f64x2.trunc")
	set(&PlaneFD, 0x7B, "i8x16.avr_u")
	set(&PlaneFD, 0x7C, "i16x8.extadd_pairwise_i8x16_s")
	set(&PlaneFD, 0x7D, "i16x8.extadd_pairwise_i8x16_u")
	set(&PlaneFD, 0x7E, "i32x4.extadd_pairwise_i16x8_s")
	set(&PlaneFD, 0x7F, "i32x4.extadd_pairwise_i16x8_u")
}
