package bcm2835

//PL011 (UART0) registers, as offsets from the UART0 block.
const (
	UARTData        = uintptr(0x00) //DR
	UARTRecvStatus  = uintptr(0x04) //RSRECR
	UARTFlags       = uintptr(0x18) //FR
	UARTIrDA        = uintptr(0x20) //ILPR, unused on the rpi
	UARTIntBaud     = uintptr(0x24) //IBRD
	UARTFracBaud    = uintptr(0x28) //FBRD
	UARTLineControl = uintptr(0x2C) //LCRH
	UARTControl     = uintptr(0x30) //CR
	UARTFIFOLevel   = uintptr(0x34) //IFLS
	UARTIntMask     = uintptr(0x38) //IMSC
	UARTRawInt      = uintptr(0x3C) //RIS
	UARTMaskedInt   = uintptr(0x40) //MIS
	UARTIntClear    = uintptr(0x44) //ICR
	UARTDMAControl  = uintptr(0x48) //DMACR
)

//UARTFlags bits
const (
	TransmitFIFOFull = uint32(1 << 5)
	ReceiveFIFOEmpty = uint32(1 << 4)
	UARTBusy         = uint32(1 << 3)
)

//UARTLineControl bits
const (
	EnableFIFO  = uint32(1 << 4)
	WordLength8 = uint32(1<<5 | 1<<6)
)

//UARTControl bits
const (
	UARTEnable     = uint32(1 << 0)
	TransmitEnable = uint32(1 << 8)
	ReceiveEnable  = uint32(1 << 9)
)

//every interrupt source the PL011 can raise; written to UARTIntMask to
//run fully polled and to UARTIntClear to drop anything pending
const (
	AllInterruptMask  = uint32(1<<1 | 1<<4 | 1<<5 | 1<<6 | 1<<7 | 1<<8 | 1<<9 | 1<<10)
	AllInterruptClear = uint32(0x7FF)
)

//the PL011 transmit and receive FIFOs are 8 entries deep when EnableFIFO
//is set (the 16-entry figure in the ARM manual is for a different
//revision of the cell)
const FIFODepth = 8
