/*
Package outline converts weighted stroke samples into compact smooth path data.

Each frame, the current samples of a stroke are handed to an Outliner, which
computes the outline polygon of the variable-width stroke. The polygon's vertices
are then smoothed by a running-midpoint quadratic scheme:

	M v0
	Q v1 mid(v1,v2)
	T mid(v2,v3) mid(v3,v4) ... mid(vn-2,vn-1)
	Z

Every coordinate is rounded to a fixed number of digits. Paths are always
recomputed from scratch, there is no state carried between frames.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package outline

import (
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/smear"
	"github.com/npillmayer/smear/polygon"
)

// tracer writes to trace with key 'outline'
func tracer() tracing.Trace {
	return tracing.Select("outline")
}

// DefaultPrecision is the default number of decimal digits for path coordinates.
const DefaultPrecision = 2

// MinVertices is the minimum number of outline vertices for a path.
const MinVertices = 4

// Op is a path command.
type Op byte

// Path commands, named after their SVG letters.
const (
	MoveTo     Op = 'M'
	QuadTo     Op = 'Q'
	SmoothQuad Op = 'T'
	ClosePath  Op = 'Z'
)

// Cmd is a single path command with its (rounded) coordinates.
// QuadTo carries a control point and an end point, MoveTo one point, SmoothQuad
// one or more end points and ClosePath none.
type Cmd struct {
	Op  Op
	Pts []smear.Vector
}

// Path is a sequence of commands. The zero Path is empty.
type Path struct {
	Cmds      []Cmd
	Precision int
}

// IsEmpty is a predicate: does this path contain no commands?
func (p Path) IsEmpty() bool {
	return len(p.Cmds) == 0
}

// String formats the path as SVG path data, e.g.
//
//	M 0.00 0.00 Q 1.00 0.00 1.50 0.00 T 2.50 0.00 Z
//
// An empty path yields the empty string.
func (p Path) String() string {
	if p.IsEmpty() {
		return ""
	}
	var b strings.Builder
	for i, c := range p.Cmds {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte(byte(c.Op))
		for _, pt := range c.Pts {
			b.WriteByte(' ')
			b.WriteString(strconv.FormatFloat(pt.X, 'f', p.Precision, 64))
			b.WriteByte(' ')
			b.WriteString(strconv.FormatFloat(pt.Y, 'f', p.Precision, 64))
		}
	}
	return b.String()
}

func round(v smear.Vector, precision int) smear.Vector {
	return smear.V(smear.RoundTo(v.X, precision), smear.RoundTo(v.Y, precision))
}

func mid(a, b smear.Vector) smear.Vector {
	return a.Mix(b, 0.5)
}

// Smooth converts outline vertices into a smooth path. Fewer than MinVertices
// vertices do not make up a path, and an empty Path is returned.
func Smooth(vertices []smear.Vector, closed bool, precision int) Path {
	if precision < 0 {
		precision = DefaultPrecision
	}
	if len(vertices) < MinVertices {
		tracer().Debugf("outline: %d vertices, no path", len(vertices))
		return Path{Precision: precision}
	}
	r := func(v smear.Vector) smear.Vector { return round(v, precision) }
	cmds := make([]Cmd, 0, 4)
	cmds = append(cmds, Cmd{Op: MoveTo, Pts: []smear.Vector{r(vertices[0])}})
	cmds = append(cmds, Cmd{Op: QuadTo, Pts: []smear.Vector{
		r(vertices[1]), r(mid(vertices[1], vertices[2])),
	}})
	t := Cmd{Op: SmoothQuad, Pts: make([]smear.Vector, 0, len(vertices)-3)}
	for i := 2; i+1 < len(vertices); i++ {
		t.Pts = append(t.Pts, r(mid(vertices[i], vertices[i+1])))
	}
	cmds = append(cmds, t)
	if closed {
		cmds = append(cmds, Cmd{Op: ClosePath})
	}
	return Path{Cmds: cmds, Precision: precision}
}

// Outliner computes the outline polygon of a variable-width stroke.
type Outliner interface {
	Outline(samples []smear.Sample) *polygon.Polygon
}

// Renderer turns stroke samples into paths, one frame at a time.
type Renderer struct {
	Outliner  Outliner
	Closed    bool
	Precision int
	Viewport  *polygon.Rect // if set, outlines outside of it are culled
}

// NewRenderer creates a renderer producing closed paths with default precision.
func NewRenderer(outliner Outliner) *Renderer {
	return &Renderer{
		Outliner:  outliner,
		Closed:    true,
		Precision: DefaultPrecision,
	}
}

// Render computes the path for the current state of a stroke's samples.
func (r *Renderer) Render(samples []smear.Sample) Path {
	if r.Outliner == nil {
		tracer().Errorf("outline: renderer without outliner")
		return Path{}
	}
	pg := r.Outliner.Outline(samples)
	if pg.N() < MinVertices {
		return Path{Precision: r.Precision}
	}
	if r.Viewport != nil && !pg.Overlaps(*r.Viewport) {
		tracer().Debugf("outline: culled outline with box %v", pg.BoundingBox())
		return Path{Precision: r.Precision}
	}
	return Smooth(pg.Points(), r.Closed, r.Precision)
}
