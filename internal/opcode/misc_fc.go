// Copyright 2026 wasmdump authors
// SPDX-License-Identifier: Apache-2.0

package opcode

// initPlaneFC populates the 0xFC-prefixed plane: saturating truncation,
// bulk memory, and reference/table operations.
func initPlaneFC() {
	set(&PlaneFC, 0x00, "i32.trunc_sat_f32_s")
	set(&PlaneFC, 0x01, "i32.trunc_sat_f32_u")
	set(&PlaneFC, 0x02, "i32.trunc_sat_f64_s")
	set(&PlaneFC, 0x03, "i32.trunc_sat_f64_u")
	set(&PlaneFC, 0x04, "i64.trunc_sat_f32_s")
	set(&PlaneFC, 0x05, "i64.trunc_sat_f32_u")
	set(&PlaneFC, 0x06, "i64.trunc_sat_f64_s")
	set(&PlaneFC, 0x07, "i64.trunc_sat_f64_u")
	set(&PlaneFC, 0x08, "memory.init", idx(), lit(0x00))
	set(&PlaneFC, 0x09, "data.drop", idx())
	set(&PlaneFC, 0x0A, "memory.copy", lit(0x00), lit(0x00))
	set(&PlaneFC, 0x0B, "memory.fill", lit(0x00))
	set(&PlaneFC, 0x0C, "table.init", idx(), idx())
	// elem.drop's operand is named elemidx in the Wasm specification,
	// unlike the source's mid label; it is still a plain index decode.
	set(&PlaneFC, 0x0D, "elem.drop", idx())
	set(&PlaneFC, 0x0E, "table.copy", idx(), idx())
	set(&PlaneFC, 0x0F, "table.grow", idx())
	set(&PlaneFC, 0x10, "table.size", idx())
	set(&PlaneFC, 0x11, "table.fill", idx())
}
