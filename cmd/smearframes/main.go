/*
Command smearframes renders smear animations without a window.

A scripted pointer moves along a Lissajous figure across the canvas. Every
tick of the scene is written to the output directory, as SVG or PNG images
or as pages of a single PDF document:

	smearframes --frames=50 --format=png --out=frames

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/smear/config"
	"github.com/spf13/pflag"
)

// tracer writes to trace with key 'smear'
func tracer() tracing.Trace {
	return tracing.Select("smear")
}

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %s\n", err)
		os.Exit(1)
	}
	var job Job
	pflag.IntVar(&job.Frames, "frames", 30, "number of ticks to render")
	pflag.StringVar(&job.Format, "format", "svg", "output format (svg|png|pdf)")
	pflag.StringVar(&job.Dir, "out", "frames", "output directory")
	if err := cfg.BindFlags(pflag.CommandLine); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
	pflag.Parse()
	if err := job.Run(cfg); err != nil {
		tracer().Errorf("smearframes: %v", err)
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}
