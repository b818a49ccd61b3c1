// go run ./scripts/gen_domain --size=16 --bitreverse > domain.txt
//
// Prints the evaluation domain of the given size: the generator, the inverse
// of the size and every root of unity, as hex field elements.
package main

import (
	"fmt"
	"io"
	"math/bits"
	"os"

	flag "github.com/spf13/pflag"
	"github.com/vocdoni/davinci-kzg/crypto/fft"
)

func main() {
	size := flag.Uint64P("size", "n", 4096, "domain size, rounded up to a power of two")
	bitReverse := flag.BoolP("bitreverse", "b", false, "list the points in bit-reversed order")
	flag.Parse()

	if err := writeDomain(os.Stdout, *size, *bitReverse); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func writeDomain(w io.Writer, size uint64, bitReverse bool) error {
	d, err := fft.NewDomain(size)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "size %d\n", d.Size)
	fmt.Fprintf(w, "generator 0x%s\n", d.Generator.Text(16))
	fmt.Fprintf(w, "sizeInv 0x%s\n", d.SizeInv.Text(16))

	points := d.Points()
	for i := range points {
		idx := uint64(i)
		if bitReverse && d.LogSize > 0 {
			idx = bits.Reverse64(idx) >> (64 - d.LogSize)
		}
		fmt.Fprintf(w, "0x%s\n", points[idx].Text(16))
	}
	return nil
}
