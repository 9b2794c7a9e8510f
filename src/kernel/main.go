// Package kernel is everything the board does once it is alive: bring up
// the console uart, say hello, and echo bytes until the power goes away.
package kernel

import (
	"solace/src/uart"
)

// Banner goes out exactly once, right after the uart comes up.
const Banner = "solace: pl011 console up\r\n"

//NUL terminated so it can ride through Puts untouched
var bannerBytes = []byte(Banner + "\x00")

// Main is the C-level entry. The trampoline hands over the bootloader's
// three registers; atags points at the hardware description block, which
// is kept for a future consumer and otherwise ignored. On the metal Main
// never returns. Hosted, it runs until the simulated device declares the
// input dry.
func Main(r0, r1, atags uint32, con *uart.PL011) {
	con.Configure(uart.Config{Clock: uart.Crystal, Baud: uart.DefaultBaud})
	con.Puts(bannerBytes)

	for {
		c := con.ReadByte()
		con.WriteByte(c)
		con.WriteByte('\n')
	}
}
