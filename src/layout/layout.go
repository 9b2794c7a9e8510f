// Package layout models the link-time memory contract the boot trampoline
// depends on: a fixed load address and four ordered, page-aligned regions.
// The linker script that enforces the contract on the metal is rendered
// from this model (see Script), so the model and the script cannot drift
// apart.
package layout

import "fmt"

const PageSize = uintptr(4096)

//the canonical region order; the trampoline's bss clear and any future
//memory manager both assume it
var regionNames = [4]string{"text", "rodata", "data", "bss"}

// Region is a half-open span [Start, End) of the loaded image.
type Region struct {
	Name  string
	Start uintptr
	End   uintptr
}

func (r Region) Size() uintptr { return r.End - r.Start }

// Layout is the fixed four-region image map: code, read-only data,
// initialized data, zero data, in that order, each end padded to a page
// boundary, packed with no gaps from the load address up.
type Layout struct {
	LoadAddress uintptr
	Regions     [4]Region
}

// New packs four raw region sizes (text, rodata, data, bss) into a
// contiguous page-aligned layout starting at loadAddress.
func New(loadAddress uintptr, sizes [4]uintptr) Layout {
	l := Layout{LoadAddress: loadAddress}
	at := loadAddress
	for i, size := range sizes {
		end := alignUp(at + size)
		l.Regions[i] = Region{Name: regionNames[i], Start: at, End: end}
		at = end
	}
	return l
}

// Region returns the named region. Asking for a name outside the four
// canonical ones is a programming error and panics.
func (l Layout) Region(name string) Region {
	for _, r := range l.Regions {
		if r.Name == name {
			return r
		}
	}
	panic("layout: no region named " + name)
}

// End is the first address past the image, also page aligned.
func (l Layout) End() uintptr { return l.Regions[3].End }

// Check verifies the whole contract: canonical names in order, first
// region anchored at the load address, regions contiguous, every
// boundary on a page. A layout built by New always passes; Check exists
// for layouts read back from somewhere else.
func (l Layout) Check() error {
	at := l.LoadAddress
	for i, r := range l.Regions {
		if r.Name != regionNames[i] {
			return fmt.Errorf("%w: region %d is %q, want %q", ErrRegionOrder, i, r.Name, regionNames[i])
		}
		if r.Start != at {
			if i == 0 {
				return fmt.Errorf("%w: %s starts at %#x, load address is %#x", ErrLoadAddress, r.Name, r.Start, l.LoadAddress)
			}
			return fmt.Errorf("%w: %s starts at %#x, previous region ends at %#x", ErrNotContiguous, r.Name, r.Start, at)
		}
		if r.End < r.Start {
			return fmt.Errorf("%w: %s ends before it starts", ErrRegionOrder, r.Name)
		}
		if r.End%PageSize != 0 {
			return fmt.Errorf("%w: %s ends at %#x", ErrUnaligned, r.Name, r.End)
		}
		at = r.End
	}
	return nil
}

// Symbol is one linker-visible boundary address.
type Symbol struct {
	Name string
	Addr uintptr
}

// Symbols lists the boundary symbols the layout publishes, in address
// order: __<name>_start and __<name>_end for each region, then __end.
// The trampoline consumes __bss_start and __bss_end; the rest are for
// whatever grows a memory manager later.
func (l Layout) Symbols() []Symbol {
	syms := make([]Symbol, 0, 2*len(l.Regions)+1)
	for _, r := range l.Regions {
		syms = append(syms,
			Symbol{Name: "__" + r.Name + "_start", Addr: r.Start},
			Symbol{Name: "__" + r.Name + "_end", Addr: r.End},
		)
	}
	return append(syms, Symbol{Name: "__end", Addr: l.End()})
}

func alignUp(p uintptr) uintptr {
	return (p + PageSize - 1) &^ (PageSize - 1)
}
