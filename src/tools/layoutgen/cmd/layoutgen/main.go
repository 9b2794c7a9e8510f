package main

import (
	"flag"
	"log"
	"os"

	"solace/src/board"
	"solace/src/tools/layoutgen"
)

var outfile = flag.String("o", "", "output filename (default stdout)")

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		log.Fatalf("usage: layoutgen [-o kernel.ld] <board .star file>")
	}
	source := flag.Arg(0)

	b, err := board.Load(source)
	if err != nil {
		log.Fatal(err)
	}

	out := os.Stdout
	if *outfile != "" {
		out, err = os.Create(*outfile)
		if err != nil {
			log.Fatal(err)
		}
		defer out.Close()
	}

	if err := layoutgen.WriteScript(out, b, source); err != nil {
		log.Fatal(err)
	}
}
