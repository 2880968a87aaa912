// Package freehand computes outlines of variable-width strokes.
/*

A stroke is given as a list of weighted centerline samples (x, y, w), where w
acts as the pen pressure at that sample. The outline is a closed polygon which
walks along the left side of the stroke, around the end cap, back along the
right side and around the start cap.

The algorithm follows the approach of Steve Ruiz' "perfect-freehand":

	(1) streamline the input points, dropping points closer than the
	    stroke size at the beginning of the stroke,
	(2) derive a radius for every point from its pressure and the
	    thinning parameter (optionally simulating pressure from velocity),
	(3) offset every point perpendicular to its direction, rounding sharp
	    corners,
	(4) add start and end caps, optionally tapered.

Usage

	opts := freehand.DefaultOptions()
	opts.Size = 2
	opts.Thinning = 1
	pg := freehand.Outline(samples, opts)

A Stroker bundles a set of options and is suitable to be plugged into an
outline renderer.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package freehand

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'graphics'
func tracer() tracing.Trace {
	return tracing.Select("graphics")
}
