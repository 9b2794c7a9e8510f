package layout

import "errors"

var (
	ErrRegionOrder   = errors.New("regions out of canonical order")
	ErrLoadAddress   = errors.New("image not anchored at load address")
	ErrNotContiguous = errors.New("gap or overlap between regions")
	ErrUnaligned     = errors.New("region boundary off the page grid")
)
