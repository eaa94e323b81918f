package vcxml

import "github.com/klauspost/cpuid/v2"

// The scan kernel needs SSE2 for the byte compare and BMI1 for TZCNT.
var canUseSIMD = cpuid.CPU.Has(cpuid.SSE2) && cpuid.CPU.Has(cpuid.BMI1)

// openAngleIndex16 returns the index of the first '<' within the first
// 16 bytes at b, or 16 if there is none. It always reads 16 bytes, so the
// caller must guarantee scanSlack readable bytes past len(b).
//
//go:noescape
func openAngleIndex16(b []byte) int

// indexOpenAngle returns the index of the first '<' in b, or -1.
// b must be backed by a buffer with scanSlack readable bytes past its end.
func indexOpenAngle(b []byte) int {
	if !canUseSIMD {
		return indexOpenAngleGeneric(b)
	}
	for i := 0; i < len(b); i += 16 {
		if j := openAngleIndex16(b[i:]); j != 16 {
			// the slack is zeroed, so a hit is always in range
			return i + j
		}
	}
	return -1
}
