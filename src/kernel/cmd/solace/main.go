//go:build baremetal

package main

import (
	"solace/src/hardware/rpi"
	"solace/src/kernel"
	"solace/src/mmio"
	"solace/src/uart"
)

// kmain is where metal/start.S lands after the stack is planted below the
// load address and the bss is cleared. The link step globalizes this
// symbol so the trampoline can reach it; r0-r2 arrive exactly as the
// firmware left them.
//
//go:nosplit
func kmain(r0, r1, atags uint32) {
	con := uart.New(mmio.Hardware{}, rpi.MemoryMappedIO)
	kernel.Main(r0, r1, atags, con)
}

func main() {
	// control normally arrives via kmain straight from the trampoline;
	// this reference also keeps the symbol alive through the link
	kmain(0, 0, 0)
}
