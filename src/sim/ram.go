package sim

// RAM is a flat block of memory standing in for the board's DRAM from
// Base up. The hosted boot path clears its bss region the same way the
// trampoline clears the real one.
type RAM struct {
	Base  uintptr
	bytes []byte
}

// NewRAM allocates size bytes of simulated memory starting at base,
// filled with junk so a missed clear shows up instead of passing by
// luck.
func NewRAM(base uintptr, size int) *RAM {
	r := &RAM{Base: base, bytes: make([]byte, size)}
	for i := range r.bytes {
		r.bytes[i] = 0xA5
	}
	return r
}

// Bytes exposes the whole block, index 0 at Base.
func (r *RAM) Bytes() []byte { return r.bytes }

// Slice returns the memory backing the half-open address span
// [start, end). Panics if the span falls outside the block, which in a
// test is the right outcome.
func (r *RAM) Slice(start, end uintptr) []byte {
	return r.bytes[start-r.Base : end-r.Base]
}
