// Copyright 2026 wasmdump authors
// SPDX-License-Identifier: Apache-2.0

package opcode

// initPlaneFDConvert populates the saturating-truncation and
// widening/narrowing conversions between i32x4 and f32x4/f64x2.
func initPlaneFDConvert() {
	set(&PlaneFD, 0xF8, "i32x4.trunc_sat_f32x4_s")
	set(&PlaneFD, 0xF9, "i32x4.trunc_sat_f32x4_u")
	set(&PlaneFD, 0xFA, "f32x4.convert_i32x4_s")
	set(&PlaneFD, 0xFB, "f32x4.convert_i32x4_u")
	set(&PlaneFD, 0xFC, "i32x4.trunc_sat_f64x2_s_zero")
	set(&PlaneFD, 0xFD, "i32x4.trunc_sat_f64x2_u_zero")
	set(&PlaneFD, 0xFE, "f64x2.convert_low_i32x4_s")
	set(&PlaneFD, 0xFF, "f64x2.convert_low_i32x4_u")
}
