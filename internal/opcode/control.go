// Copyright 2026 wasmdump authors
// SPDX-License-Identifier: Apache-2.0

package opcode

func initPlaneAControl() {
	set(&PlaneA, 0x00, "unreachable")
	set(&PlaneA, 0x01, "nop")
	set(&PlaneA, 0x02, "block", bt())
	set(&PlaneA, 0x03, "loop", bt())
	set(&PlaneA, 0x04, "if", bt())
	set(&PlaneA, 0x05, "else")
	set(&PlaneA, 0x0B, "end")
	set(&PlaneA, 0x0C, "br", idx())
	set(&PlaneA, 0x0D, "br_if", idx())
	set(&PlaneA, 0x0E, "br_table", lidPlus())
	set(&PlaneA, 0x0F, "return")
	set(&PlaneA, 0x10, "call", idx())
	set(&PlaneA, 0x11, "call_indirect", idx(), idx())
	set(&PlaneA, 0x1A, "drop")
	set(&PlaneA, 0x1B, "select")
	set(&PlaneA, 0x1C, "select", tPlus())
}
