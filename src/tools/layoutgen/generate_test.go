package layoutgen_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solace/src/board"
	"solace/src/tools/layoutgen"
)

func TestCommittedScriptIsCurrent(t *testing.T) {
	//src/boot/metal/kernel.ld is a build artifact of this package; if
	//this fails, regenerate it instead of editing either side
	b, err := board.Load(filepath.Join("..", "..", "..", "boards", "rpi1.star"))
	require.NoError(t, err)

	var got bytes.Buffer
	require.NoError(t, layoutgen.WriteScript(&got, b, "boards/rpi1.star"))

	want, err := os.ReadFile(filepath.Join("..", "..", "boot", "metal", "kernel.ld"))
	require.NoError(t, err)
	assert.Equal(t, string(want), got.String())
}

func TestWriteScriptForOtherBoard(t *testing.T) {
	b := &board.Board{
		Name:           "rpi3",
		LoadAddress:    0x8000,
		PageSize:       4096,
		PeripheralBase: 0x3F000000,
		UARTClock:      48_000_000,
		Baud:           115200,
	}
	var buf bytes.Buffer
	require.NoError(t, layoutgen.WriteScript(&buf, b, "boards/rpi3.star"))
	assert.Contains(t, buf.String(), "generated by layoutgen from boards/rpi3.star")
	assert.Contains(t, buf.String(), "ENTRY(_start)")
}

func TestPageSizeMismatch(t *testing.T) {
	b := &board.Board{Name: "weird", LoadAddress: 0x10000, PageSize: 0x10000}
	_, err := layoutgen.FromBoard(b)
	assert.ErrorIs(t, err, layoutgen.ErrPageSize)

	var buf bytes.Buffer
	assert.ErrorIs(t, layoutgen.WriteScript(&buf, b, "x.star"), layoutgen.ErrPageSize)
}
