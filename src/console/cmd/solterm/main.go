package main

import (
	"flag"
	"io"
	"log"
	"os"

	tty "github.com/mattn/go-tty"
)

var dev = flag.String("d", "/dev/ttyUSB0", "serial device wired to the board")

// solterm is the other end of the kernel's echo loop: raw keyboard on one
// side, the board's serial line on the other. Ctrl-] gets you out.
func main() {
	flag.Parse()

	port, err := tty.OpenDevice(*dev)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer port.Close()
	_ = port.MustRaw()

	kbd, err := tty.Open()
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer kbd.Close()

	//board to screen
	go io.Copy(os.Stdout, port.Input())

	for {
		r, err := kbd.ReadRune()
		if err != nil {
			log.Fatalf("%v", err)
		}
		if r == 0x1d { //Ctrl-], same escape as telnet
			return
		}
		if _, err := port.Output().WriteString(string(r)); err != nil {
			log.Fatalf("%v", err)
		}
	}
}
