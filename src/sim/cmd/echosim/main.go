package main

import (
	"flag"
	"os"

	"solace/src/boot"
	"solace/src/hardware/rpi"
	"solace/src/kernel"
	"solace/src/layout"
	"solace/src/sim"
	"solace/src/uart"
)

//image sizes for the simulated boot; arbitrary but nonzero so the bss
//clear has something to chew on
var imageSizes = [4]uintptr{0x3000, 0x1000, 0x1000, 0x2000}

// echosim runs the whole boot path off-hardware: simulated RAM, hosted
// trampoline, kernel main loop, simulated PL011 wired to stdin/stdout.
// It exits when stdin runs dry.
func main() {
	flag.Parse()

	dev := sim.NewDevice(rpi.MemoryMappedIO, os.Stdin, os.Stdout)
	dev.Stall = func() {
		dev.Drain()
		os.Exit(0)
	}
	con := uart.New(dev, rpi.MemoryMappedIO)

	l := layout.New(rpi.KernelLoadAddress, imageSizes)
	ram := sim.NewRAM(l.LoadAddress, int(l.End()-l.LoadAddress))

	boot.Boot(ram.Bytes(), l, 0, 0, 0, func(r0, r1, atags uint32) {
		kernel.Main(r0, r1, atags, con)
	})
}
