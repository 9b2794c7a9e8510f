//go:build !baremetal

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "solace is a bare-metal kernel: cross-build with -tags baremetal for the board,")
	fmt.Fprintln(os.Stderr, "or run echosim for a hosted session")
	os.Exit(2)
}
