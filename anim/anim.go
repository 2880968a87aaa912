/*
Package anim drives the width and offset animation of paint samples.

Every sample of a paint is animated by a Track, an explicit state machine

	Pending ──delay──▶ Growing ──grow──▶ Fading ──fade──▶ Done

which is advanced by elapsed time on every tick. A paint is finished when all
of its tracks are Done; this is computed by folding over the track states, not
by completion callbacks. The Driver reports each finished paint exactly once.

All timing is cooperative: the driver never blocks and no goroutines are involved.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package anim

import (
	"math"
	"time"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'anim'
func tracer() tracing.Trace {
	return tracing.Select("anim")
}

// State is the animation state of a single sample.
type State int

// States of a track.
const (
	Pending State = iota
	Growing
	Fading
	Done
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Growing:
		return "growing"
	case Fading:
		return "fading"
	case Done:
		return "done"
	}
	return "unknown"
}

// Ease maps progress in [0,1] onto [0,1].
type Ease func(t float64) float64

// Linear easing.
func Linear(t float64) float64 {
	return t
}

// EaseOutQuad decelerates quadratically.
func EaseOutQuad(t float64) float64 {
	return t * (2 - t)
}

// EaseInOutSine accelerates and decelerates sinusoidally.
func EaseInOutSine(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

// progress computes the fraction of d covered by elapsed, in [0,1].
func progress(elapsed, d time.Duration) float64 {
	if d <= 0 {
		return 1
	}
	f := float64(elapsed) / float64(d)
	return math.Max(0, math.Min(1, f))
}
