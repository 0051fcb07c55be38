// Copyright 2026 wasmdump authors
// SPDX-License-Identifier: Apache-2.0

package opcode

func initPlaneANumericConst() {
	set(&PlaneA, 0x41, "i32.const", i32())
	set(&PlaneA, 0x42, "i64.const", i64())
	set(&PlaneA, 0x43, "f32.const", f32())
	set(&PlaneA, 0x44, "f64.const", f64())
}
