/*
Package polygon implements simple polygons, as produced by stroke outlining.

Polygons are built with a builder pattern:

	pg := NullPolygon().Knot(smear.V(0, 0)).Knot(smear.V(1, 3)).Knot(smear.V(3, 0)).Cycle()

Bounding boxes and overlap tests are delegated to package polyclip.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/smear"
)

// L traces to the graphics tracer.
func L() tracing.Trace {
	return tracing.Select("graphics")
}

// Polygon is an ordered list of vertices, either open or cyclic.
type Polygon struct {
	points []smear.Vector
	cycle  bool
}

// NullPolygon creates an empty polygon, to be extended by subsequent
// builder calls.
func NullPolygon() *Polygon {
	return &Polygon{}
}

// FromPoints creates an open polygon from a list of vertices. The
// vertices are copied.
func FromPoints(pts []smear.Vector) *Polygon {
	pg := &Polygon{points: make([]smear.Vector, len(pts))}
	copy(pg.points, pts)
	return pg
}

// Box creates a rectangular cyclic polygon from two opposite corners.
func Box(a, b smear.Vector) *Polygon {
	return NullPolygon().Knot(a).Knot(smear.V(b.X, a.Y)).Knot(b).Knot(smear.V(a.X, b.Y)).Cycle()
}

// Knot appends a vertex. Part of builder functionality.
func (pg *Polygon) Knot(p smear.Vector) *Polygon {
	pg.points = append(pg.points, p)
	return pg
}

// Knots appends a sequence of vertices. Part of builder functionality.
func (pg *Polygon) Knots(pts ...smear.Vector) *Polygon {
	pg.points = append(pg.points, pts...)
	return pg
}

// Cycle closes the polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	pg.cycle = true
	return pg
}

// End leaves the polygon open. Part of builder functionality.
func (pg *Polygon) End() *Polygon {
	return pg
}

// IsCycle is a predicate: is this polygon closed?
func (pg *Polygon) IsCycle() bool {
	return pg != nil && pg.cycle
}

// N returns the number of vertices. A nil polygon has no vertices.
func (pg *Polygon) N() int {
	if pg == nil {
		return 0
	}
	return len(pg.points)
}

// Pt returns vertex i (mod N).
func (pg *Polygon) Pt(i int) smear.Vector {
	n := pg.N()
	i = ((i % n) + n) % n
	return pg.points[i]
}

// Points returns the vertices. Clients must not modify the returned slice.
func (pg *Polygon) Points() []smear.Vector {
	if pg == nil {
		return nil
	}
	return pg.points
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	Min, Max smear.Vector
}

// Width of a rectangle.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height of a rectangle.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

func (pg *Polygon) contour() polyclip.Contour {
	c := make(polyclip.Contour, 0, pg.N())
	for _, p := range pg.Points() {
		c.Add(polyclip.Point{X: p.X, Y: p.Y})
	}
	return c
}

func fromRectangle(r polyclip.Rectangle) Rect {
	return Rect{
		Min: smear.V(r.Min.X, r.Min.Y),
		Max: smear.V(r.Max.X, r.Max.Y),
	}
}

func toRectangle(r Rect) polyclip.Rectangle {
	return polyclip.Rectangle{
		Min: polyclip.Point{X: r.Min.X, Y: r.Min.Y},
		Max: polyclip.Point{X: r.Max.X, Y: r.Max.Y},
	}
}

// BoundingBox returns the smallest axis-aligned rectangle containing every
// vertex. Empty polygons have an empty box at the origin.
func (pg *Polygon) BoundingBox() Rect {
	if pg.N() == 0 {
		return Rect{}
	}
	return fromRectangle(pg.contour().BoundingBox())
}

// Overlaps is a predicate: do the bounding boxes of pg and r overlap?
func (pg *Polygon) Overlaps(r Rect) bool {
	if pg.N() == 0 {
		return false
	}
	return pg.contour().BoundingBox().Overlaps(toRectangle(r))
}

// Contains is a predicate: is p inside of the closed polygon?
func (pg *Polygon) Contains(p smear.Vector) bool {
	if pg.N() < 3 {
		return false
	}
	return pg.contour().Contains(polyclip.Point{X: p.X, Y: p.Y})
}

// AsString returns a polygon as a (debugging) string.
func AsString(pg *Polygon) string {
	var b strings.Builder
	for i, p := range pg.Points() {
		if i > 0 {
			b.WriteString(" -- ")
		}
		b.WriteString(p.String())
	}
	if pg.IsCycle() {
		b.WriteString(" -- cycle")
	}
	return b.String()
}
