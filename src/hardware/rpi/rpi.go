package rpi

//This file is for properties shared by every model of Raspberry Pi. Model
//specific values (notably the peripheral window) live in per-model files
//selected by build tag.

//The GPU firmware reads the image off the card and drops it at this
//address, then jumps to its first instruction.
const KernelLoadAddress = uintptr(0x8000)

//The boot stack sits immediately below the loaded image and grows down,
//so it can never collide with the image itself.
const BootStackTop = KernelLoadAddress
