/*
Package render draws scene frames to SVG documents, raster images and PDF pages.

All sinks fill the frame with a background color and then fill every layer's
path in order, back to front. Path data consists of a move, a quadratic curve
and a run of smooth quadratic continuations; the sinks resolve the implicit
control points of the continuations by reflection.

The crinkle effect (a turbulence displacement re-seeded per tick) is only
available with SVG output, where it is expressed as a filter.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package render

import (
	"image/color"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/smear/stroke"
)

// tracer writes to trace with key 'render'
func tracer() tracing.Trace {
	return tracing.Select("render")
}

// Options configure the output of a sink.
type Options struct {
	Width, Height    int
	Background       color.NRGBA
	CrinkleFrequency float64 // base frequency of the turbulence
	CrinkleAmplitude float64 // displacement scale; 0 switches crinkling off
	Scale            float64 // device pixels per unit; 0 means 1
}

// DefaultOptions returns options for a canvas of the given size with the
// default background.
func DefaultOptions(width, height int) Options {
	bg, _ := stroke.ParseColor(stroke.Background)
	return Options{
		Width:            width,
		Height:           height,
		Background:       bg,
		CrinkleFrequency: 0.1,
		CrinkleAmplitude: 5,
		Scale:            1,
	}
}

func (o Options) scale() float64 {
	if o.Scale <= 0 {
		return 1
	}
	return o.Scale
}
