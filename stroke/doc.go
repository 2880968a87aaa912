// Package stroke generates animated paint strokes from input gestures.
/*

A gesture is reduced to two positions, the earliest and the latest of a short
history of pointer positions. From these, a Generator creates a Paint: an
ordered list of weighted samples along a centerline, a color, and a schedule of
keyframes which an animation driver uses to grow and fade each sample's width.

Two variants are available:

	Fan   a curled, frayed tail reminiscent of a flicked brush. Length rate
	      and curl are drawn once per stroke.
	Wave  a sinusoidal wave along the straight segment, with sparse random
	      wisps which make the samples drift apart while fading.

All randomness is drawn from an injected Random source. With a seeded source,
generation is deterministic.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package stroke

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'stroke'
func tracer() tracing.Trace {
	return tracing.Select("stroke")
}
