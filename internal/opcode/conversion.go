// Copyright 2026 wasmdump authors
// SPDX-License-Identifier: Apache-2.0

package opcode

func initPlaneAConversion() {
	set(&PlaneA, 0xA7, "i32.wrap")
	set(&PlaneA, 0xA8, "i32.trunc_f32_s")
	set(&PlaneA, 0xA9, "i32.trunc_f32_u")
	set(&PlaneA, 0xAA, "i32.trunc_f64_s")
	set(&PlaneA, 0xAB, "i32.trunc_f64_u")
	set(&PlaneA, 0xAC, "i64.extend_i32_s")
	set(&PlaneA, 0xAD, "i64.extend_i32_u")
	set(&PlaneA, 0xAE, "i64.trunc_f32_s")
	set(&PlaneA, 0xAF, "i64.trunc_f32_u")
	set(&PlaneA, 0xB0, "i64.trunc_f64_s")
	set(&PlaneA, 0xB1, "i64.trunc_f64_u")
	set(&PlaneA, 0xB2, "f32.convert_i32_s")
	set(&PlaneA, 0xB3, "f32.convert_i32_u")
	set(&PlaneA, 0xB4, "f32.convert_i64_s")
	set(&PlaneA, 0xB5, "f32.convert_i64_u")
	set(&PlaneA, 0xB6, "f32.demote_f64")
	set(&PlaneA, 0xB7, "f64.convert_i32_s")
	set(&PlaneA, 0xB8, "f64.convert_i32_u")
	set(&PlaneA, 0xB9, "f64.convert_i64_s")
	set(&PlaneA, 0xBA, "f64.convert_i64_u")
	set(&PlaneA, 0xBB, "f64.promote_f32")
	set(&PlaneA, 0xBC, "i32.reinterpret_f32")
	set(&PlaneA, 0xBD, "i64.reinterpret_f64")
	set(&PlaneA, 0xBE, "f32.reinterpret_i32")
	set(&PlaneA, 0xBF, "f64.reinterpret_i64")
}
