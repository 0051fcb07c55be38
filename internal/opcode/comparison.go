// Copyright 2026 wasmdump authors
// SPDX-License-Identifier: Apache-2.0

package opcode

func initPlaneAComparison() {
	set(&PlaneA, 0x45, "i32.eqz")
	set(&PlaneA, 0x46, "i32.eq")
	set(&PlaneA, 0x47, "i32.ne")
	set(&PlaneA, 0x48, "i32.lt_s")
	set(&PlaneA, 0x49, "i32.lt_u")
	set(&PlaneA, 0x4A, "i32.gt_s")
	set(&PlaneA, 0x4B, "i32.gt_u")
	set(&PlaneA, 0x4C, "i32.le_s")
	set(&PlaneA, 0x4D, "i32.le_u")
	set(&PlaneA, 0x4E, "i32.ge_s")
	set(&PlaneA, 0x4F, "i32.ge_u")
	set(&PlaneA, 0x50, "i64.eqz")
	set(&PlaneA, 0x51, "i64.eq")
	set(&PlaneA, 0x52, "i64.ne")
	set(&PlaneA, 0x53, "i64.lt_s")
	set(&PlaneA, 0x54, "i64.lt_u")
	set(&PlaneA, 0x55, "i64.gt_s")
	set(&PlaneA, 0x56, "i64.gt_u")
	set(&PlaneA, 0x57, "i64.le_s")
	set(&PlaneA, 0x58, "i64.le_u")
	set(&PlaneA, 0x59, "i64.ge_s")
	set(&PlaneA, 0x5A, "i64.ge_u")
	set(&PlaneA, 0x5B, "f32.eq")
	set(&PlaneA, 0x5C, "f32.ne")
	set(&PlaneA, 0x5D, "f32.lt")
	set(&PlaneA, 0x5E, "f32.gt")
	set(&PlaneA, 0x5F, "f32.le")
	set(&PlaneA, 0x60, "f32.ge")
	set(&PlaneA, 0x61, "f64.eq")
	set(&PlaneA, 0x62, "f64.ne")
	set(&PlaneA, 0x63, "f64.lt")
	set(&PlaneA, 0x64, "f64.gt")
	set(&PlaneA, 0x65, "f64.le")
	set(&PlaneA, 0x66, "f64.ge")
}
