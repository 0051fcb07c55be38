// Copyright 2026 wasmdump authors
// SPDX-License-Identifier: Apache-2.0

package opcode

// initPlaneFDI32x4 populates the i32x4 lane-wise operators.
//
// 0xA5 and 0xA6 are intentionally left unassigned: the source table
// names them i32x4.narrow_i32x4_s/_u, an operation that does not exist
// in the Wasm SIMD specification (i16x8.narrow_i32x4_s/_u at 0x85/0x86
// is almost certainly what was meant). Left empty per specification.
func initPlaneFDI32x4() {
	set(&PlaneFD, 0xA0, "i32x4.abs")
	set(&PlaneFD, 0xA1, "i32x4.neg")
	set(&PlaneFD, 0xA3, "i32x4.all_true")
	set(&PlaneFD, 0xA4, "i32x4.bitmask")
	set(&PlaneFD, 0xA7, "i32x4.extend_low_i16x8_s")
	set(&PlaneFD, 0xA8, "i32x4.extend_high_i16x8_s")
	set(&PlaneFD, 0xA9, "i32x4.extend_low_i16x8_u")
	set(&PlaneFD, 0xAA, "i32x4.extend_high_i16x8_u")
	set(&PlaneFD, 0xAB, "i32x4.shl")
	set(&PlaneFD, 0xAC, "i32x4.shr_s")
	set(&PlaneFD, 0xAD, "i32x4.shr_u")
	set(&PlaneFD, 0xAE, "i32x4.add")
	set(&PlaneFD, 0xB1, "i32x4.sub")
	set(&PlaneFD, 0xB5, "i32x4.mul")
	set(&PlaneFD, 0xB6, "i32x4.min_s")
	set(&PlaneFD, 0xB7, "i32x4.min_u")
	set(&PlaneFD, 0xB8, "i32x4.max_s")
	set(&PlaneFD, 0xB9, "i32x4.max_u")
	set(&PlaneFD, 0xBA, "i32x4.dot_i16x8_s")
	set(&PlaneFD, 0xBC, "i32x4.extmul_low_i16x8_s")
	set(&PlaneFD, 0xBD, "i32x4.extmul_high_i16x8_s")
	set(&PlaneFD, 0xBE, "i32x4.extmul_low_i16x8_u")
	set(&PlaneFD, 0xBF, "i32x4.extmul_high_i16x8_u")
}
