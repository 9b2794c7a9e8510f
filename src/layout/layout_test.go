package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solace/src/layout"
)

func TestFourRegionsAt0x8000(t *testing.T) {
	assert := assert.New(t)

	l := layout.New(0x8000, [4]uintptr{0x5123, 0x800, 0x1001, 0x4000})
	require.NoError(t, l.Check())

	text := l.Region("text")
	rodata := l.Region("rodata")
	data := l.Region("data")
	bss := l.Region("bss")

	assert.Equal(uintptr(0x8000), text.Start)
	assert.True(text.End <= rodata.Start)
	assert.True(rodata.Start <= data.Start)
	assert.True(data.Start <= bss.Start)

	for _, r := range l.Regions {
		assert.Zero(r.End%layout.PageSize, "%s end %#x off the page grid", r.Name, r.End)
		assert.GreaterOrEqual(r.End, r.Start, r.Name)
	}
	assert.Equal(bss.End, l.End())
}

func TestRegionsContiguous(t *testing.T) {
	assert := assert.New(t)

	l := layout.New(0x8000, [4]uintptr{1, 1, 1, 1})
	at := l.LoadAddress
	for _, r := range l.Regions {
		assert.Equal(at, r.Start, r.Name)
		at = r.End
	}
}

func TestZeroSizedRegions(t *testing.T) {
	l := layout.New(0x8000, [4]uintptr{})
	assert.NoError(t, l.Check())
	assert.Equal(t, uintptr(0x8000), l.End())
}

func TestCheckRejectsBrokenLayouts(t *testing.T) {
	good := layout.New(0x8000, [4]uintptr{0x1000, 0x1000, 0x1000, 0x1000})

	t.Run("wrong anchor", func(t *testing.T) {
		l := good
		l.LoadAddress = 0x10000
		assert.ErrorIs(t, l.Check(), layout.ErrLoadAddress)
	})

	t.Run("gap between regions", func(t *testing.T) {
		l := good
		l.Regions[2].Start += layout.PageSize
		assert.ErrorIs(t, l.Check(), layout.ErrNotContiguous)
	})

	t.Run("unaligned end", func(t *testing.T) {
		l := good
		l.Regions[3].End += 8
		assert.ErrorIs(t, l.Check(), layout.ErrUnaligned)
	})

	t.Run("renamed region", func(t *testing.T) {
		l := good
		l.Regions[1].Name = "rom"
		assert.ErrorIs(t, l.Check(), layout.ErrRegionOrder)
	})
}

func TestSymbols(t *testing.T) {
	assert := assert.New(t)

	l := layout.New(0x8000, [4]uintptr{0x1000, 0x1000, 0x1000, 0x1000})
	syms := l.Symbols()
	require.Len(t, syms, 9)

	names := make([]string, len(syms))
	for i, s := range syms {
		names[i] = s.Name
	}
	assert.Equal([]string{
		"__text_start", "__text_end",
		"__rodata_start", "__rodata_end",
		"__data_start", "__data_end",
		"__bss_start", "__bss_end",
		"__end",
	}, names)

	//addresses never go backwards
	for i := 1; i < len(syms); i++ {
		assert.GreaterOrEqual(syms[i].Addr, syms[i-1].Addr, syms[i].Name)
	}
	assert.Equal(l.End(), syms[8].Addr)
}
