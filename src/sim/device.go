// Package sim stands in for the board when there is no board: a PL011
// register file wired to host streams, and a flat RAM block for the boot
// path. The uart driver runs against it unmodified, which is what makes
// the polled code paths testable at all.
package sim

import (
	"io"

	"solace/src/hardware/bcm2835"
)

// DefaultPollBudget bounds how many times a spin loop may poll a dry
// receiver before the device declares the run wedged. On hardware the
// equivalent situation is a permanent stall, which is accepted behavior;
// in a test it has to become a failure instead of a hang.
const DefaultPollBudget = 10000

// A Write records one store issued to the device, register offset
// relative to the peripheral window base.
type Write struct {
	Reg uintptr
	Val uint32
}

// State is a snapshot of the configuration registers, used to compare
// the outcome of one bring-up against two.
type State struct {
	Control     uint32
	LineControl uint32
	IntMask     uint32
	IntBaud     uint32
	FracBaud    uint32
	Pull        uint32
	PullClock   uint32
}

// Device models the PL011 block and the GPIO pull controls behind a
// peripheral window. Received bytes come from Input; transmitted bytes
// drain to Output, one per flag-register poll, the way a wire drains a
// fifo while software spins on it.
type Device struct {
	Base   uintptr
	Input  io.Reader
	Output io.Writer

	// Stall is called when a poll loop spins PollBudget times on an
	// exhausted Input. The default panics with ErrStalled.
	Stall      func()
	PollBudget int

	regs State

	tx       []byte
	rx       []byte
	dry      bool
	dryPolls int

	journal []Write
}

// NewDevice wires a device at base to the given streams.
func NewDevice(base uintptr, in io.Reader, out io.Writer) *Device {
	d := &Device{Base: base, Input: in, Output: out, PollBudget: DefaultPollBudget}
	d.Stall = func() { panic(ErrStalled) }
	return d
}

func (d *Device) Read32(addr uintptr) uint32 {
	switch addr - d.Base {
	case bcm2835.UART0Offset + bcm2835.UARTFlags:
		return d.flags()
	case bcm2835.UART0Offset + bcm2835.UARTData:
		if len(d.rx) == 0 {
			return 0
		}
		c := d.rx[0]
		d.rx = d.rx[1:]
		return uint32(c)
	case bcm2835.UART0Offset + bcm2835.UARTControl:
		return d.regs.Control
	case bcm2835.UART0Offset + bcm2835.UARTLineControl:
		return d.regs.LineControl
	case bcm2835.UART0Offset + bcm2835.UARTIntMask:
		return d.regs.IntMask
	case bcm2835.UART0Offset + bcm2835.UARTIntBaud:
		return d.regs.IntBaud
	case bcm2835.UART0Offset + bcm2835.UARTFracBaud:
		return d.regs.FracBaud
	}
	return 0
}

func (d *Device) Write32(addr uintptr, v uint32) {
	off := addr - d.Base
	d.journal = append(d.journal, Write{Reg: off, Val: v})
	switch off {
	case bcm2835.UART0Offset + bcm2835.UARTData:
		if len(d.tx) < d.txDepth() {
			d.tx = append(d.tx, byte(v))
		}
		//a full fifo drops the byte, as the hardware would
	case bcm2835.UART0Offset + bcm2835.UARTControl:
		d.regs.Control = v
	case bcm2835.UART0Offset + bcm2835.UARTLineControl:
		d.regs.LineControl = v
	case bcm2835.UART0Offset + bcm2835.UARTIntMask:
		d.regs.IntMask = v
	case bcm2835.UART0Offset + bcm2835.UARTIntBaud:
		d.regs.IntBaud = v
	case bcm2835.UART0Offset + bcm2835.UARTFracBaud:
		d.regs.FracBaud = v
	case bcm2835.UART0Offset + bcm2835.UARTIntClear:
		//nothing pending to clear in the model; recorded in the journal
	case bcm2835.GPIOOffset + bcm2835.GPIOPullUpDown:
		d.regs.Pull = v
	case bcm2835.GPIOOffset + bcm2835.GPIOPullUpDownClock0:
		d.regs.PullClock = v
	}
}

// flags computes FR, then advances the model one step: one pending
// transmit byte reaches the wire and the receiver is topped up from
// Input. The flags reflect the state at the moment of the poll, so a
// full fifo is visible as full exactly once before the wire relieves it,
// and a spinning poll loop always makes progress.
func (d *Device) flags() uint32 {
	if len(d.rx) == 0 && !d.dry && d.Input != nil {
		var buf [1]byte
		n, err := d.Input.Read(buf[:])
		if n == 1 {
			d.rx = append(d.rx, buf[0])
		} else if err != nil {
			d.dry = true
		}
	}

	var fr uint32
	if len(d.tx) >= d.txDepth() {
		fr |= bcm2835.TransmitFIFOFull
	}
	if len(d.rx) == 0 {
		fr |= bcm2835.ReceiveFIFOEmpty
		if d.dry {
			d.dryPolls++
			if d.dryPolls >= d.PollBudget {
				d.Stall()
			}
		}
	} else {
		d.dryPolls = 0
	}

	if len(d.tx) > 0 {
		c := d.tx[0]
		d.tx = d.tx[1:]
		if d.Output != nil {
			d.Output.Write([]byte{c})
		}
	}
	return fr
}

// txDepth is the modeled transmit fifo depth: 8 entries with the fifo
// enabled, a single holding register without.
func (d *Device) txDepth() int {
	if d.regs.LineControl&bcm2835.EnableFIFO != 0 {
		return bcm2835.FIFODepth
	}
	return 1
}

// Drain flushes any transmit bytes still in flight to Output. The flag
// poll drains one byte per read, so at the end of a run the last byte
// written is usually still pending.
func (d *Device) Drain() {
	for len(d.tx) > 0 {
		c := d.tx[0]
		d.tx = d.tx[1:]
		if d.Output != nil {
			d.Output.Write([]byte{c})
		}
	}
}

// Journal returns every store issued to the device in order.
func (d *Device) Journal() []Write { return d.journal }

// State snapshots the configuration registers.
func (d *Device) State() State { return d.regs }
