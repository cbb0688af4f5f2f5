// Command blazcheck round-trips sample surfaces through a registered block
// codec and reports the worst absolute and relative reconstruction error.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/cocosip/go-blaz-codec/blaz/zonal"
	"github.com/cocosip/go-blaz-codec/codec"
)

var surfaces = map[string]func(x, y float64) float64{
	"cubic":    codec.CubicDifference,
	"linear":   codec.LinearSum,
	"constant": func(x, y float64) float64 { return 100 },
}

func main() {
	codecName := flag.String("codec", zonal.Name, "registered block codec")
	surface := flag.String("surface", "cubic", "sample surface: cubic, linear or constant")
	step := flag.Float64("step", 0.1, "grid spacing of the samples")
	scale := flag.Float64("scale", 1, "amplitude multiplier applied to the surface")
	dump := flag.Bool("dump", false, "print the packed bytes and both blocks")
	flag.Parse()

	f, ok := surfaces[*surface]
	if !ok {
		fmt.Printf("ERROR: unknown surface %q\n", *surface)
		os.Exit(2)
	}

	bc, err := codec.Get(*codecName)
	if err != nil {
		fmt.Printf("ERROR: %s: %v\n", *codecName, err)
		os.Exit(2)
	}

	amplitude := *scale
	samples := codec.SurfaceBlock(func(x, y float64) float64 {
		return amplitude * f(x, y)
	}, *step)

	buf := make([]byte, bc.PackedSize())
	if err := bc.EncodeBlock(samples, buf, 0); err != nil {
		fmt.Printf("ERROR encoding: %v\n", err)
		os.Exit(1)
	}

	decoded := make([]float64, len(samples))
	if err := bc.DecodeBlock(buf, 0, decoded); err != nil {
		fmt.Printf("ERROR decoding: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Codec: %s (%d bytes per block)\n", bc.Name(), bc.PackedSize())
	fmt.Printf("Surface: %s, step %g, scale %g\n", *surface, *step, *scale)

	if *dump {
		fmt.Println("\n=== PACKED ===")
		for i, b := range buf {
			fmt.Printf("%d ", int8(b))
			if i == 0 {
				fmt.Print("| ")
			}
		}
		fmt.Println()
		printBlock("ORIGINAL", samples)
		printBlock("DECODED", decoded)
	}

	absErr, relErr := -1.0, -1.0
	absAt, relAt := 0, 0
	for i := range samples {
		e := math.Abs(samples[i] - decoded[i])
		if e > absErr {
			absErr, absAt = e, i
		}
		if samples[i] != 0 {
			if r := e / math.Abs(samples[i]); r > relErr {
				relErr, relAt = r, i
			}
		}
	}

	fmt.Printf("\nWorst absolute error: %f (%d,%d)\n", absErr, absAt%8, absAt/8)
	if relErr >= 0 {
		fmt.Printf("Worst relative error: %f (%d,%d)\n", relErr, relAt%8, relAt/8)
	}
}

func printBlock(title string, block []float64) {
	fmt.Printf("\n=== %s ===\n", title)
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			fmt.Printf("%f ", block[i*8+j])
		}
		fmt.Println()
	}
}
