package boot

import "solace/src/layout"

// EntryFunc receives the three machine words the bootloader leaves in the
// first argument registers. The third points at the boot-time hardware
// description block; nothing in this layer parses it.
type EntryFunc func(r0, r1, atags uint32)

// Boot is the hosted twin of the trampoline: given a block of memory that
// stands in for RAM from the load address up, it clears the bss region
// named by the layout and transfers control to entry with the bootloader
// registers untouched. Unlike the metal path it returns when entry does,
// so tests can run it.
func Boot(mem []byte, l layout.Layout, r0, r1, atags uint32, entry EntryFunc) {
	bss := l.Region("bss")
	Wipe(mem[bss.Start-l.LoadAddress : bss.End-l.LoadAddress])
	entry(r0, r1, atags)
}
