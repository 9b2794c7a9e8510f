// Package boot owns the handoff from hardware reset to the kernel entry.
// On the metal the work is done by metal/start.S before any Go runs:
// stack below the load address, bss cleared, registers passed through,
// terminal wait loop on return. This package carries the same semantics
// in Go so a hosted run boots the identical way and the clear loop's
// properties can be checked without a board.
package boot

// ChunkSize is the granularity of the trampoline's clear loop (one
// 4-register store multiple on the ARM).
const ChunkSize = 16

// Wipe zeroes mem in ChunkSize steps, front to back, exactly as the
// trampoline does. len(mem) must be a multiple of ChunkSize; the layout's
// page alignment guarantees that for the bss region, and it is not
// re-checked here.
func Wipe(mem []byte) {
	for i := 0; i < len(mem); i += ChunkSize {
		chunk := mem[i : i+ChunkSize]
		for j := range chunk {
			chunk[j] = 0
		}
	}
}
