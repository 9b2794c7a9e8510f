//go:build baremetal

package mmio

// The two primitives are implemented in assembly (mmio_arm.s) so the
// compiler can neither elide a load whose result looks unused nor fold
// two stores to the same register into one. Device memory on the ARM is
// strongly ordered per peripheral, so no explicit barrier is needed
// between accesses to the same block.

//go:noescape
func Read32(addr uintptr) uint32

//go:noescape
func Write32(addr uintptr, v uint32)

// Hardware is the Bus that talks to the real peripheral window.
type Hardware struct{}

func (Hardware) Read32(addr uintptr) uint32     { return Read32(addr) }
func (Hardware) Write32(addr uintptr, v uint32) { Write32(addr, v) }
