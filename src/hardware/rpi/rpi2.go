//go:build rpi2 || rpi3

package rpi

//This file is for things that are specific to the *model* Raspberry Pi 2
//and 3 and are different on other rpi models. The two models share a
//peripheral window, so they share a file.
const MemoryMappedIO = uintptr(0x3F000000)
