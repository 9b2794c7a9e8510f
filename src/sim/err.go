package sim

import "errors"

// ErrStalled reports a spin loop that polled a dry receiver past the
// device's budget. The metal equivalent is a core spinning forever.
var ErrStalled = errors.New("sim: receive poll stalled with input exhausted")
