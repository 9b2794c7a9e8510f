// Package bcm2835 holds the register-level description of the Broadcom
// peripherals this kernel touches. Everything here is an offset or a bit
// pattern; the actual bus transactions are issued through solace/src/mmio
// so the same description serves the metal and the hosted simulator.
package bcm2835

//Offsets of the peripheral blocks from the model's memory mapped I/O
//window (rpi.MemoryMappedIO).
const (
	GPIOOffset  = uintptr(0x200000)
	UART0Offset = uintptr(0x201000)
)
