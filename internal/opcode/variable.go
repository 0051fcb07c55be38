// Copyright 2026 wasmdump authors
// SPDX-License-Identifier: Apache-2.0

package opcode

func initPlaneAVariable() {
	set(&PlaneA, 0x20, "local.get", idx())
	set(&PlaneA, 0x21, "local.set", idx())
	set(&PlaneA, 0x22, "local.tee", idx())
	set(&PlaneA, 0x23, "global.get", idx())
	set(&PlaneA, 0x24, "global.set", idx())
	set(&PlaneA, 0x25, "table.get", idx())
	set(&PlaneA, 0x26, "table.set", idx())
}
