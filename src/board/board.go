// Package board reads the per-revision facts that get baked into a build:
// where the image loads, the page size, where the peripheral window sits,
// and how the console uart is clocked. The facts live in small Starlark
// files under boards/ so adding a hardware revision means adding a file,
// not editing driver code.
package board

import (
	"fmt"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Board is one validated hardware revision description.
type Board struct {
	Name           string
	LoadAddress    uintptr
	PageSize       uintptr
	PeripheralBase uintptr
	UARTClock      uint32
	Baud           uint32
}

// Load evaluates a Starlark board file and validates the globals it
// exports: name, load_address, page_size, peripheral_base, uart_clock,
// baud.
func Load(path string) (*Board, error) {
	opts := syntax.FileOptions{}
	thread := starlark.Thread{Name: "board"}
	globals, err := starlark.ExecFileOptions(&opts, &thread, path, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	b := &Board{}
	if b.Name, err = stringGlobal(globals, "name"); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	fields := []struct {
		name string
		dst  func(uint64)
	}{
		{"load_address", func(v uint64) { b.LoadAddress = uintptr(v) }},
		{"page_size", func(v uint64) { b.PageSize = uintptr(v) }},
		{"peripheral_base", func(v uint64) { b.PeripheralBase = uintptr(v) }},
		{"uart_clock", func(v uint64) { b.UARTClock = uint32(v) }},
		{"baud", func(v uint64) { b.Baud = uint32(v) }},
	}
	for _, f := range fields {
		v, err := uintGlobal(globals, f.name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		f.dst(v)
	}
	if err := b.check(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

func (b *Board) check() error {
	if b.PageSize == 0 || b.PageSize&(b.PageSize-1) != 0 {
		return fmt.Errorf("%w: page_size %#x", ErrBadValue, b.PageSize)
	}
	if b.LoadAddress%b.PageSize != 0 {
		return fmt.Errorf("%w: load_address %#x off the page grid", ErrBadValue, b.LoadAddress)
	}
	if b.UARTClock == 0 || b.Baud == 0 {
		return fmt.Errorf("%w: zero uart_clock or baud", ErrBadValue)
	}
	return nil
}

func stringGlobal(globals starlark.StringDict, name string) (string, error) {
	v, ok := globals[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissing, name)
	}
	s, ok := v.(starlark.String)
	if !ok {
		return "", fmt.Errorf("%w: %s is %s, want string", ErrBadValue, name, v.Type())
	}
	return string(s), nil
}

func uintGlobal(globals starlark.StringDict, name string) (uint64, error) {
	v, ok := globals[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissing, name)
	}
	i, ok := v.(starlark.Int)
	if !ok {
		return 0, fmt.Errorf("%w: %s is %s, want int", ErrBadValue, name, v.Type())
	}
	u, ok := i.Uint64()
	if !ok {
		return 0, fmt.Errorf("%w: %s out of range", ErrBadValue, name)
	}
	return u, nil
}
