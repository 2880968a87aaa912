package smear

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// === Vector Data Type ======================================================

// Vector is an immutable 2D vector.
type Vector struct {
	X float64
	Y float64
}

// Origin represents the frequently used constant (0,0).
var Origin = Vector{}

// V is a quick notation for contructing a vector from floats.
func V(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// FromPolar creates a vector from a length and an angle in unit u.
// It is the inverse of (Length(), Angle(u)).
func FromPolar(length, angle float64, u AngleUnit) Vector {
	return Vector{length * u.Cos(angle), length * u.Sin(angle)}
}

// Pretty Stringer for simple vectors.
func (v Vector) String() string {
	return fmt.Sprintf("(%g,%g)", v.X, v.Y)
}

// Format returns the coordinates with a fixed number of digits, trailing
// zero fractions removed, joined by sep.
func (v Vector) Format(precision int, sep string) string {
	f := func(n float64) string {
		s := strconv.FormatFloat(RoundTo(n, precision), 'f', precision, 64)
		if strings.Contains(s, ".") {
			s = strings.TrimRight(s, "0")
			s = strings.TrimSuffix(s, ".")
		}
		return s
	}
	return f(v.X) + sep + f(v.Y)
}

// F is a quick notation for getting float values from a vector.
func (v Vector) F() (float64, float64) {
	return v.X, v.Y
}

// Zap rounds x-part and y-part to Epsilon.
func (v Vector) Zap() Vector {
	return Vector{Zap(v.X), Zap(v.Y)}
}

// IsOrigin is a predicate: is this vector the origin?
func (v Vector) IsOrigin() bool {
	return v.Equal(Origin)
}

// IsValid is false if any coordinate is NaN or infinite.
func (v Vector) IsValid() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// Equal compares two vectors, tolerating differences below Epsilon.
func (v Vector) Equal(w Vector) bool {
	return Is0(v.X-w.X) && Is0(v.Y-w.Y)
}

// Add returns v + w.
func (v Vector) Add(w Vector) Vector {
	return Vector{v.X + w.X, v.Y + w.Y}
}

// Subtract returns v - w.
func (v Vector) Subtract(w Vector) Vector {
	return Vector{v.X - w.X, v.Y - w.Y}
}

// Scale returns a new vector scaled by factor a.
func (v Vector) Scale(a float64) Vector {
	return Vector{v.X * a, v.Y * a}
}

// Divide returns v scaled by 1/a. Division by zero yields the origin.
func (v Vector) Divide(a float64) Vector {
	if a == 0 {
		tracer().Debugf("division of %s by zero", v)
		return Origin
	}
	return Vector{v.X / a, v.Y / a}
}

// Hadamard multiplies componentwise.
func (v Vector) Hadamard(w Vector) Vector {
	return Vector{v.X * w.X, v.Y * w.Y}
}

// Negate returns -v.
func (v Vector) Negate() Vector {
	return Vector{-v.X, -v.Y}
}

// Length is the euclidean length of v.
func (v Vector) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// LengthSquared is the squared length of v.
func (v Vector) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// WithLength returns a vector in the direction of v with length l.
func (v Vector) WithLength(l float64) Vector {
	return v.Normalize().Scale(l)
}

// Dist is the distance between v and w.
func (v Vector) Dist(w Vector) float64 {
	return w.Subtract(v).Length()
}

// Angle is the direction of v in unit u. The angle of the zero vector is 0.
func (v Vector) Angle(u AngleUnit) float64 {
	if v.X == 0 && v.Y == 0 {
		return 0
	}
	return u.Atan2(v.Y, v.X)
}

// Polar returns length and angle of v.
func (v Vector) Polar(u AngleUnit) (float64, float64) {
	return v.Length(), v.Angle(u)
}

// Normalize returns the unit vector in the direction of v. The zero vector
// normalizes to itself.
func (v Vector) Normalize() Vector {
	l := v.Length()
	if l == 0 {
		return Origin
	}
	return Vector{v.X / l, v.Y / l}
}

// Perp returns v rotated by a quarter turn counter-clockwise. It is exact,
// contrary to Rotate(90, Degrees).
func (v Vector) Perp() Vector {
	return Vector{-v.Y, v.X}
}

// Rotate returns v rotated around the origin by theta (counter-clockwise).
func (v Vector) Rotate(theta float64, u AngleUnit) Vector {
	return Rotation(u.ToRadians(theta)).Transform(v)
}

// RotateAround returns v rotated around c by theta (counter-clockwise).
func (v Vector) RotateAround(c Vector, theta float64, u AngleUnit) Vector {
	T := Translation(c.Negate()).Combine(Rotation(u.ToRadians(theta))).Combine(Translation(c))
	return T.Transform(v)
}

// Mix interpolates linearly between v (ratio 0) and w (ratio 1).
// Ratios outside [0,1] extrapolate.
func (v Vector) Mix(w Vector, ratio float64) Vector {
	return Vector{v.X + ratio*(w.X-v.X), v.Y + ratio*(w.Y-v.Y)}
}

// Dot is the scalar product v · w.
func (v Vector) Dot(w Vector) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross is the z-component of v × w.
func (v Vector) Cross(w Vector) float64 {
	return v.X*w.Y - w.X*v.Y
}

// Project projects v onto w. Projection onto the zero vector is the origin.
func (v Vector) Project(w Vector) Vector {
	l := w.Length()
	if l == 0 {
		return Origin
	}
	return w.Normalize().Scale(v.Dot(w) / l)
}

// Bisect returns the unit vector halfway between the directions of v and w.
func (v Vector) Bisect(w Vector) Vector {
	return v.Normalize().Add(w.Normalize()).Normalize()
}

// Clamp limits each coordinate to [min,max] componentwise.
func (v Vector) Clamp(min, max Vector) Vector {
	return Vector{clamp(v.X, min.X, max.X), clamp(v.Y, min.Y, max.Y)}
}

// Clip limits the length of v to [min,max], keeping its direction.
func (v Vector) Clip(min, max float64) Vector {
	return v.WithLength(clamp(v.Length(), min, max))
}

func clamp(n, min, max float64) float64 {
	return math.Max(min, math.Min(max, n))
}
