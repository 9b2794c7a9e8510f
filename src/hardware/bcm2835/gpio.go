package bcm2835

//GPIO pull-up/down control registers, as offsets from the GPIO block.
//Programming a pull state is a three-step dance: write the state to
//PullUpDown, clock it into the chosen pins through PullUpDownClock0, then
//clear the clock register. The datasheet demands 150 cycles of settle
//time between the steps.
const (
	GPIOPullUpDown       = uintptr(0x94)
	GPIOPullUpDownClock0 = uintptr(0x98)
)

//pull states for GPIOPullUpDown
const (
	PullOff  = uint32(0)
	PullDown = uint32(1)
	PullUp   = uint32(2)
)

//pins 14 and 15 carry the PL011's TXD0 and RXD0
const UARTPinMask = uint32(1<<14 | 1<<15)

//settle time, in busy-wait iterations, between pull programming steps
const PullSettleCycles = 150
