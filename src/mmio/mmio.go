// Package mmio is the one place where register addresses turn into bus
// transactions. A driver holds a Bus and never touches memory directly,
// so the same driver code runs against the real peripheral window on the
// metal and against a simulated device on a development host.
package mmio

// Bus issues single 32-bit loads and stores at absolute addresses. An
// implementation must perform exactly one bus transaction per call:
// no caching, no merging, no reordering against other calls made from
// the same flow of control. Repeated reads of the same address may
// legitimately return different values.
//
// Nothing here knows which addresses are real. Pointing a Bus at the
// wrong window produces silent garbage, not an error.
type Bus interface {
	Read32(addr uintptr) uint32
	Write32(addr uintptr, v uint32)
}
