// Copyright 2026 wasmdump authors
// SPDX-License-Identifier: Apache-2.0

package opcode

// initPlaneFDLaneOps populates splat/extract/replace-lane opcodes and
// the per-lane loads, stores, and zero-extending loads.
func initPlaneFDLaneOps() {
	set(&PlaneFD, 0x0E, "i8x16.swizzle")
	set(&PlaneFD, 0x0F, "i8x16.splat")
	set(&PlaneFD, 0x10, "i16x8.splat")
	set(&PlaneFD, 0x11, "i32x4.splat")
	set(&PlaneFD, 0x12, "i64x2.splat")
	set(&PlaneFD, 0x13, "f32x4.splat")
	set(&PlaneFD, 0x14, "f64x2.splat")
	set(&PlaneFD, 0x15, "i8x16.extract_lane_s", vl())
	set(&PlaneFD, 0x16, "i8x16.extract_lane_u", vl())
	set(&PlaneFD, 0x17, "i8x16.replace_lane", vl())
	set(&PlaneFD, 0x18, "i16x8.extract_lane_s", vl())
	set(&PlaneFD, 0x19, "i16x8.extract_lane_u", vl())
	set(&PlaneFD, 0x1A, "i16x8.replace_lane", vl())
	set(&PlaneFD, 0x1B, "i32x4.extract_lane", vl())
	set(&PlaneFD, 0x1C, "i32x4.replace_lane", vl())
	set(&PlaneFD, 0x1D, "i64x2.extract_lane", vl())
	set(&PlaneFD, 0x1E, "i64x2.replace_lane", vl())
	set(&PlaneFD, 0x1F, "f32x4.extract_lane", vl())
	set(&PlaneFD, 0x20, "f32x4.replace_lane", vl())
	set(&PlaneFD, 0x21, "f64x2.extract_lane", vl())
	set(&PlaneFD, 0x22, "f64x2.replace_lane", vl())

	set(&PlaneFD, 0x54, "v128.load8_lane", mao(), vl())
	set(&PlaneFD, 0x55, "v128.load16_lane", mao(), vl())
	set(&PlaneFD, 0x56, "v128.load32_lane", mao(), vl())
	set(&PlaneFD, 0x57, "v128.load64_lane", mao(), vl())
	set(&PlaneFD, 0x58, "v128.store8_lane", mao(), vl())
	set(&PlaneFD, 0x59, "v128.store16_lane", mao(), vl())
	set(&PlaneFD, 0x5A, "v128.store32_lane", mao(), vl())
	set(&PlaneFD, 0x5B, "v128.store64_lane", mao(), vl())
	set(&PlaneFD, 0x5C, "v128.load32_zero", mao())
	set(&PlaneFD, 0x5D, "v128.load64_zero", mao())
}
