package board

import "errors"

var (
	ErrMissing  = errors.New("board file missing required global")
	ErrBadValue = errors.New("board file global has a bad value")
)
