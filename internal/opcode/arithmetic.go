// Copyright 2026 wasmdump authors
// SPDX-License-Identifier: Apache-2.0

package opcode

func initPlaneAArithmetic() {
	set(&PlaneA, 0x67, "i32.clz")
	set(&PlaneA, 0x68, "i32.ctz")
	set(&PlaneA, 0x69, "i32.popcnt")
	set(&PlaneA, 0x6A, "i32.add")
	set(&PlaneA, 0x6B, "i32.sub")
	set(&PlaneA, 0x6C, "i32.mul")
	set(&PlaneA, 0x6D, "i32.div_s")
	set(&PlaneA, 0x6E, "i32.div_u")
	set(&PlaneA, 0x6F, "i32.rem_s")
	set(&PlaneA, 0x70, "i32.rem_u")
	set(&PlaneA, 0x71, "i32.and")
	set(&PlaneA, 0x72, "i32.or")
	set(&PlaneA, 0x73, "i32.xor")
	set(&PlaneA, 0x74, "i32.shl")
	set(&PlaneA, 0x75, "i32.shr_s")
	set(&PlaneA, 0x76, "i32.shr_u")
	set(&PlaneA, 0x77, "i32.rotl")
	set(&PlaneA, 0x78, "i32.rotr")
	set(&PlaneA, 0x79, "i64.clz")
	set(&PlaneA, 0x7A, "i64.ctz")
	set(&PlaneA, 0x7B, "i64.popcnt")
	set(&PlaneA, 0x7C, "i64.add")
	set(&PlaneA, 0x7D, "i64.sub")
	set(&PlaneA, 0x7E, "i64.mul")
	set(&PlaneA, 0x7F, "i64.div_s")
	set(&PlaneA, 0x80, "i64.div_u")
	set(&PlaneA, 0x81, "i64.rem_s")
	set(&PlaneA, 0x82, "i64.rem_u")
	set(&PlaneA, 0x83, "i64.and")
	set(&PlaneA, 0x84, "i64.or")
	set(&PlaneA, 0x85, "i64.xor")
	set(&PlaneA, 0x86, "i64.shl")
	set(&PlaneA, 0x87, "i64.shr_s")
	set(&PlaneA, 0x88, "i64.shr_u")
	set(&PlaneA, 0x89, "i64.rotl")
	set(&PlaneA, 0x8A, "i64.rotr")
	set(&PlaneA, 0x8B, "f32.abs")
	set(&PlaneA, 0x8C, "f32.neg")
	set(&PlaneA, 0x8D, "f32.ceil")
	set(&PlaneA, 0x8E, "f32.floor")
	set(&PlaneA, 0x8F, "f32.trunc")
	set(&PlaneA, 0x90, "f32.nearest")
	set(&PlaneA, 0x91, "f32.sqrt")
	set(&PlaneA, 0x92, "f32.add")
	set(&PlaneA, 0x93, "f32.sub")
	set(&PlaneA, 0x94, "f32.mul")
	set(&PlaneA, 0x95, "f32.div")
	set(&PlaneA, 0x96, "f32.min")
	set(&PlaneA, 0x97, "f32.max")
	set(&PlaneA, 0x98, "f32.copysign")
	set(&PlaneA, 0x99, "f64.abs")
	set(&PlaneA, 0x9A, "f64.neg")
	set(&PlaneA, 0x9B, "f64.ceil")
	set(&PlaneA, 0x9C, "f64.floor")
	set(&PlaneA, 0x9D, "f64.trunc")
	set(&PlaneA, 0x9E, "f64.nearest")
	set(&PlaneA, 0x9F, "f64.sqrt")
	set(&PlaneA, 0xA0, "f64.add")
	set(&PlaneA, 0xA1, "f64.sub")
	set(&PlaneA, 0xA2, "f64.mul")
	set(&PlaneA, 0xA3, "f64.div")
	set(&PlaneA, 0xA4, "f64.min")
	set(&PlaneA, 0xA5, "f64.max")
	set(&PlaneA, 0xA6, "f64.copysign")
	set(&PlaneA, 0xC0, "i32.extend8_s")
	set(&PlaneA, 0xC1, "i32.extend16_s")
	set(&PlaneA, 0xC2, "i64.extend8_s")
	set(&PlaneA, 0xC3, "i64.extend16_s")
	set(&PlaneA, 0xC4, "i64.extend32_s")
}
