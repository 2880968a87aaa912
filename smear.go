/*
Package smear implements vectors, affine transformations and weighted samples
for procedurally generated paint strokes.

Every vector operation returns a new value; vectors are never mutated in place.
Angles are always interpreted according to an explicit AngleUnit argument, there
is no package-wide angle mode.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package smear

import (
	"math"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'smear'
func tracer() tracing.Trace {
	return tracing.Select("smear")
}

// === Numeric Helpers =======================================================

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Tau is a full turn in radians.
const Tau = 2 * math.Pi

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Is1 is a predicate: is n = 1.0 ?
func Is1(n float64) bool {
	return math.Abs(1-n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// RoundTo rounds n to the given number of decimal digits. Negative zero
// is normalized to zero, so that formatting never yields "-0".
func RoundTo(n float64, digits int) float64 {
	if digits < 0 {
		digits = 0
	}
	scale := math.Pow(10, float64(digits))
	r := math.Round(n*scale) / scale
	if r == 0 {
		return 0
	}
	return r
}

// TauSin is the sine of a fraction of a full turn.
func TauSin(percent float64) float64 {
	return math.Sin(Tau * percent)
}

// TauCos is the cosine of a fraction of a full turn.
func TauCos(percent float64) float64 {
	return math.Cos(Tau * percent)
}

// Atan01 maps [0,∞) onto [0,1) by an arctangent. It is used to compress
// large stroke lengths into a bounded width.
func Atan01(x float64) float64 {
	return 4 * math.Atan(x) / Tau
}

// === Angle Units ===========================================================

// AngleUnit selects how angle arguments and results are interpreted.
type AngleUnit int

const (
	// Degrees interprets angles as degrees.
	Degrees AngleUnit = iota
	// Radians interprets angles as radians.
	Radians
)

const (
	deg2rad = math.Pi / 180
	rad2deg = 180 / math.Pi
)

func (u AngleUnit) String() string {
	if u == Radians {
		return "radians"
	}
	return "degrees"
}

// ToRadians converts an angle given in unit u to radians.
func (u AngleUnit) ToRadians(angle float64) float64 {
	if u == Degrees {
		return angle * deg2rad
	}
	return angle
}

// FromRadians converts an angle in radians to unit u.
func (u AngleUnit) FromRadians(angle float64) float64 {
	if u == Degrees {
		return angle * rad2deg
	}
	return angle
}

// Sin is the sine of an angle in unit u.
func (u AngleUnit) Sin(angle float64) float64 {
	return math.Sin(u.ToRadians(angle))
}

// Cos is the cosine of an angle in unit u.
func (u AngleUnit) Cos(angle float64) float64 {
	return math.Cos(u.ToRadians(angle))
}

// Atan2 returns atan2(y,x) in unit u. Atan2(0,0) is 0.
func (u AngleUnit) Atan2(y, x float64) float64 {
	return u.FromRadians(math.Atan2(y, x))
}

// === Weighted Samples ======================================================

// Sample is a point on a stroke's centerline together with its current
// half-width W.
type Sample struct {
	X, Y float64
	W    float64
}

// Pos returns the position of a sample.
func (s Sample) Pos() Vector {
	return Vector{s.X, s.Y}
}

// WithPos returns a copy of s moved to v.
func (s Sample) WithPos(v Vector) Sample {
	s.X, s.Y = v.X, v.Y
	return s
}
