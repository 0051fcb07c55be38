// Copyright 2026 wasmdump authors
// SPDX-License-Identifier: Apache-2.0

package opcode

func initPlaneAMemory() {
	set(&PlaneA, 0x28, "i32.load", mao())
	set(&PlaneA, 0x29, "i64.load", mao())
	set(&PlaneA, 0x2A, "f32.load", mao())
	set(&PlaneA, 0x2B, "f64.load", mao())
	set(&PlaneA, 0x2C, "i32.load8_s", mao())
	set(&PlaneA, 0x2D, "i32.load8_u", mao())
	set(&PlaneA, 0x2E, "i32.load16_s", mao())
	set(&PlaneA, 0x2F, "i32.load16_u", mao())
	set(&PlaneA, 0x30, "i64.load8_s", mao())
	set(&PlaneA, 0x31, "i64.load8_u", mao())
	set(&PlaneA, 0x32, "i64.load16_s", mao())
	set(&PlaneA, 0x33, "i64.load16_u", mao())
	set(&PlaneA, 0x34, "i64.load32_s", mao())
	set(&PlaneA, 0x35, "i64.load32_u", mao())
	set(&PlaneA, 0x36, "i32.store", mao())
	set(&PlaneA, 0x37, "i64.store", mao())
	set(&PlaneA, 0x38, "f32.store", mao())
	set(&PlaneA, 0x39, "f64.store", mao())
	set(&PlaneA, 0x3A, "i32.store8", mao())
	set(&PlaneA, 0x3B, "i32.store16", mao())
	set(&PlaneA, 0x3C, "i64.store8", mao())
	set(&PlaneA, 0x3D, "i64.store16", mao())
	set(&PlaneA, 0x3E, "i64.store32", mao())
	set(&PlaneA, 0x3F, "memory.size", lit(0x00))
	set(&PlaneA, 0x40, "memory.grow", lit(0x00))
}
