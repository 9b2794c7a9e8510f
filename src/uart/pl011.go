// Package uart drives the PL011 serial controller in fully polled mode.
// This is the better-behaved of the two rpi uarts: unlike the "mini" uart
// it has a proper fractional baud generator and does not share its clock
// with the core.
package uart

import (
	"solace/src/hardware/bcm2835"
	"solace/src/mmio"
)

// Crystal is the rpi board oscillator. The firmware feeds the PL011 from
// this crystal through a fixed /16 stage, so it is the only clock figure
// a caller needs to know.
const Crystal = uint32(48_000_000)

// DefaultBaud is what the rest of the world expects on the rpi serial
// header.
const DefaultBaud = uint32(115200)

// PL011 owns one controller instance: the bus it issues transactions on
// and the peripheral window the controller lives behind. Construct it
// once at boot and pass it by reference; the register file is a singleton
// and two owners would trample each other.
type PL011 struct {
	bus  mmio.Bus
	uart uintptr //base of the PL011 register block
	gpio uintptr //base of the GPIO block, for the pin pull controls
}

// New points a controller at the peripheral window of the running board
// (rpi.MemoryMappedIO on the metal, the simulated device's base in tests).
func New(bus mmio.Bus, peripheralBase uintptr) *PL011 {
	return &PL011{
		bus:  bus,
		uart: peripheralBase + bcm2835.UART0Offset,
		gpio: peripheralBase + bcm2835.GPIOOffset,
	}
}

// Config carries the two facts the baud generator needs. The zero value
// is not useful; use Crystal and DefaultBaud unless you know better.
type Config struct {
	Clock uint32 //board crystal frequency
	Baud  uint32 //target line rate
}

// Divisor computes the PL011 integer and fractional baud divisors for a
// board crystal frequency. The uart reference clock is the crystal after
// the firmware's /16 stage; the generator then divides that by 16 times
// the target rate. The fractional half is the remainder scaled to 64ths
// and rounded to nearest.
func Divisor(crystal, baud uint32) (integer, fractional uint32) {
	clock := crystal / 16
	den := 16 * baud
	integer = clock / den
	rem := clock % den
	fractional = (rem*64 + den/2) / den
	return
}

// Configure runs the one-time bring-up sequence: controller off, pin
// pulls released, pending interrupts dropped, baud divisors and line
// format programmed, every interrupt source masked, controller back on
// with both directions enabled. Running it a second time lands the
// hardware in the same state, so a double call is wasteful but harmless.
func (u *PL011) Configure(conf Config) error {
	b := u.bus

	//controller off while we poke at it
	b.Write32(u.uart+bcm2835.UARTControl, 0)

	//release the pull-up/down state on the two serial pins; the settle
	//waits are a datasheet requirement, not politeness
	b.Write32(u.gpio+bcm2835.GPIOPullUpDown, bcm2835.PullOff)
	settle(bcm2835.PullSettleCycles)
	b.Write32(u.gpio+bcm2835.GPIOPullUpDownClock0, bcm2835.UARTPinMask)
	settle(bcm2835.PullSettleCycles)
	b.Write32(u.gpio+bcm2835.GPIOPullUpDownClock0, 0)

	//drop anything pending from before the reset
	b.Write32(u.uart+bcm2835.UARTIntClear, bcm2835.AllInterruptClear)

	ibrd, fbrd := Divisor(conf.Clock, conf.Baud)
	b.Write32(u.uart+bcm2835.UARTIntBaud, ibrd)
	b.Write32(u.uart+bcm2835.UARTFracBaud, fbrd)

	//8 data bits, fifos on; with no parity bit set this implies 8N1
	b.Write32(u.uart+bcm2835.UARTLineControl, bcm2835.EnableFIFO|bcm2835.WordLength8)

	//we are polled only; mask every source rather than trust the reset state
	b.Write32(u.uart+bcm2835.UARTIntMask, bcm2835.AllInterruptMask)

	b.Write32(u.uart+bcm2835.UARTControl,
		bcm2835.UARTEnable|bcm2835.TransmitEnable|bcm2835.ReceiveEnable)
	return nil
}

//
// Writing a byte over serial. Blocking.
//
func (u *PL011) WriteByte(c byte) error {
	// wait until the transmit fifo has room
	for u.bus.Read32(u.uart+bcm2835.UARTFlags)&bcm2835.TransmitFIFOFull != 0 {
	}
	u.bus.Write32(u.uart+bcm2835.UARTData, uint32(c))
	return nil
}

//
// Reading a byte from serial. Blocking.
//
func (u *PL011) ReadByte() byte {
	for u.bus.Read32(u.uart+bcm2835.UARTFlags)&bcm2835.ReceiveFIFOEmpty != 0 {
	}
	return byte(u.bus.Read32(u.uart + bcm2835.UARTData))
}

// Puts sends each byte of p up to, but not including, the first NUL.
// A p with no NUL is sent whole.
func (u *PL011) Puts(p []byte) error {
	for _, c := range p {
		if c == 0 {
			break
		}
		if err := u.WriteByte(c); err != nil {
			return err
		}
	}
	return nil
}

//
// Put a whole string out to serial. Blocking.
//
func (u *PL011) WriteString(s string) error {
	for i := 0; i < len(s); i++ {
		if err := u.WriteByte(s[i]); err != nil {
			return err
		}
	}
	return nil
}

//
// Write a CR (and secretly an LF) to serial.
//
func (u *PL011) WriteCR() error {
	if err := u.WriteByte(13); err != nil {
		return err
	}
	return u.WriteByte(10)
}

// settle busy-waits for at least n iterations. Kept out of line so the
// compiler cannot decide the loop is pointless and drop it.
//
//go:noinline
func settle(n int) {
	for i := 0; i < n; i++ {
	}
}
