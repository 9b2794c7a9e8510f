//go:build !rpi2 && !rpi3

package rpi

//This file is for things that are specific to the *model* Raspberry Pi 1
//(and the Zero, which shares its SoC) and are different on other rpi
//models. This is the default model when no model tag is given.
const MemoryMappedIO = uintptr(0x20000000)
