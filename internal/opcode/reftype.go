// Copyright 2026 wasmdump authors
// SPDX-License-Identifier: Apache-2.0

package opcode

func initPlaneARefType() {
	set(&PlaneA, 0xD0, "ref.null", ref())
	set(&PlaneA, 0xD1, "ref.is_null")
	set(&PlaneA, 0xD2, "ref.func", idx())
}
