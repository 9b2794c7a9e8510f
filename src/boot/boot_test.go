package boot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solace/src/boot"
	"solace/src/layout"
	"solace/src/sim"
)

func TestWipeClearsExactlyTheRegion(t *testing.T) {
	assert := assert.New(t)

	mem := make([]byte, 64)
	for i := range mem {
		mem[i] = 0xFF
	}

	boot.Wipe(mem[16:48])

	for i, b := range mem {
		if i >= 16 && i < 48 {
			assert.Zero(b, "byte %d inside the region", i)
		} else {
			assert.Equal(byte(0xFF), b, "byte %d outside the region", i)
		}
	}
}

func TestWipeZeroLength(t *testing.T) {
	//a zero-width bss is legal; the loop just never runs
	boot.Wipe(nil)
	boot.Wipe([]byte{})
}

func TestWipeChunkMultiples(t *testing.T) {
	for _, n := range []int{16, 32, 160, 4096} {
		mem := make([]byte, n)
		for i := range mem {
			mem[i] = 0xA5
		}
		boot.Wipe(mem)
		for i, b := range mem {
			require.Zero(t, b, "len %d byte %d", n, i)
		}
	}
}

func TestBootClearsBssAndPassesRegisters(t *testing.T) {
	assert := assert.New(t)

	l := layout.New(0x8000, [4]uintptr{16, 0, 16, 64})
	require.NoError(t, l.Check())

	ram := sim.NewRAM(l.LoadAddress, int(l.End()-l.LoadAddress))

	var gotR0, gotR1, gotAtags uint32
	called := 0
	boot.Boot(ram.Bytes(), l, 7, 0x0C42, 0x2000, func(r0, r1, atags uint32) {
		gotR0, gotR1, gotAtags = r0, r1, atags
		called++
	})

	assert.Equal(1, called)
	assert.Equal(uint32(7), gotR0)
	assert.Equal(uint32(0x0C42), gotR1)
	assert.Equal(uint32(0x2000), gotAtags)

	bss := l.Region("bss")
	for i, b := range ram.Slice(bss.Start, bss.End) {
		assert.Zero(b, "bss byte %d", i)
	}
	//the initialized-data region keeps whatever was loaded there
	data := l.Region("data")
	for i, b := range ram.Slice(data.Start, data.End) {
		assert.Equal(byte(0xA5), b, "data byte %d", i)
	}
}
