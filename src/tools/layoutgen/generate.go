// Package layoutgen turns a board description into the linker script that
// enforces the kernel's memory contract. The committed
// src/boot/metal/kernel.ld is this package's output for boards/rpi1.star;
// regenerate it rather than editing it.
package layoutgen

import (
	"fmt"
	"io"

	"solace/src/board"
	"solace/src/layout"
)

// FromBoard builds the canonical four-region model for a board. The
// region sizes are left zero: what flows into the script is the load
// address and the alignment contract, section sizes are the linker's
// business.
func FromBoard(b *board.Board) (layout.Layout, error) {
	if b.PageSize != layout.PageSize {
		return layout.Layout{}, fmt.Errorf("%w: board wants %d, layout is built around %d",
			ErrPageSize, b.PageSize, layout.PageSize)
	}
	return layout.New(b.LoadAddress, [4]uintptr{}), nil
}

// WriteScript renders the linker script for a board. source names the
// board file in the generated-by comment so a reader of the artifact can
// find its input.
func WriteScript(w io.Writer, b *board.Board, source string) error {
	l, err := FromBoard(b)
	if err != nil {
		return err
	}
	comment := fmt.Sprintf("generated by layoutgen from %s; do not hand edit", source)
	return l.Script(w, comment)
}
