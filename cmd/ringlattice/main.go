// Package main provides the command-line entry point: it computes the
// lattice ring topology for a bound N and writes it as SVG or JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/ringlattice"
	"github.com/katalvlaran/ringlattice/distance"
	"github.com/katalvlaran/ringlattice/palette"
	"github.com/katalvlaran/ringlattice/render"
)

const (
	formatSVG  = "svg"
	formatJSON = "json"
)

type options struct {
	n         int
	tolerance float64
	palette   int
	format    string
	output    string
	labels    bool
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("ringlattice", flag.ContinueOnError)
	fs.IntVar(&o.n, "n", 20, "largest x coordinate (N)")
	fs.Float64Var(&o.tolerance, "tolerance", distance.DefaultTolerance, "distance quantization step")
	fs.IntVar(&o.palette, "palette", palette.DiscreteSize, "discrete palette size before switching to continuous hues (1-20)")
	fs.StringVar(&o.format, "format", formatSVG, "output format: svg or json")
	fs.StringVar(&o.output, "o", "", "output file (default stdout)")
	fs.BoolVar(&o.labels, "labels", true, "draw chain sequence labels (svg only)")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.format != formatSVG && o.format != formatJSON {
		return o, fmt.Errorf("unknown format %q", o.format)
	}
	if o.palette < 1 || o.palette > palette.DiscreteSize {
		return o, fmt.Errorf("palette size must be in [1, %d], got %d", palette.DiscreteSize, o.palette)
	}
	return o, nil
}

func run(o options, w io.Writer) error {
	res, err := ringlattice.Compute(o.n,
		ringlattice.WithTolerance(o.tolerance),
		ringlattice.WithPaletteSize(o.palette))
	if err != nil {
		return err
	}
	log.Printf("N=%d: %d points, %d classes, %d rings, %d regions, %d arcs, %d lines",
		res.N, len(res.Points), len(res.Keys), len(res.Topology.Rings),
		len(res.Regions()), res.Topology.ArcCount(), res.Topology.LineCount())

	switch o.format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res.Summary())
	default:
		return render.WriteSVG(w, res, render.WithLabels(o.labels))
	}
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	o, err := parseFlags(os.Args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			return
		}
		log.Fatalf("Invalid arguments: %v", err)
	}

	if o.output == "" {
		if err := run(o, os.Stdout); err != nil {
			log.Fatalf("Failed: %v", err)
		}
		return
	}
	if err := runToFile(o); err != nil {
		log.Fatalf("Failed: %v", err)
	}
	log.Printf("Wrote %s", o.output)
}

// runToFile writes the output to o.output. The file is closed before
// returning and removed when anything fails, so no partial output is left.
func runToFile(o options) (err error) {
	f, err := os.Create(o.output)
	if err != nil {
		return fmt.Errorf("create %s: %w", o.output, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", o.output, cerr)
		}
		if err != nil {
			os.Remove(o.output)
		}
	}()
	return run(o, f)
}
