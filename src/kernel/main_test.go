package kernel_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solace/src/kernel"
	"solace/src/sim"
	"solace/src/uart"
)

const base = uintptr(0x20000000)

// run boots the main loop against a simulated device fed by input and
// returns everything that reached the wire. The loop itself never exits;
// the device ends the run by declaring the input dry.
func run(t *testing.T, input string) []byte {
	t.Helper()

	var out bytes.Buffer
	dev := sim.NewDevice(base, strings.NewReader(input), &out)
	con := uart.New(dev, base)

	require.PanicsWithValue(t, sim.ErrStalled, func() {
		kernel.Main(0, 0, 0, con)
	})
	dev.Drain()
	return out.Bytes()
}

func TestBannerAloneOnSilentLine(t *testing.T) {
	assert.Equal(t, []byte(kernel.Banner), run(t, ""))
}

func TestEchoAB(t *testing.T) {
	want := append([]byte(kernel.Banner), 0x41, 0x0A, 0x42, 0x0A)
	assert.Equal(t, want, run(t, "AB"))
}

func TestEchoPreservesArbitraryBytes(t *testing.T) {
	got := run(t, "\x00\x7F!")
	want := append([]byte(kernel.Banner), 0x00, 0x0A, 0x7F, 0x0A, '!', 0x0A)
	assert.Equal(t, want, got)
}
