package freehand

import (
	"github.com/npillmayer/smear"
)

const (
	defaultPressure      = 0.5
	defaultStartPressure = 0.25
)

// StrokePoint is a streamlined input point.
type StrokePoint struct {
	Point         smear.Vector
	Pressure      float64
	Vector        smear.Vector // unit vector pointing back to the previous point
	Distance      float64      // distance to the previous point
	RunningLength float64      // length of the stroke up to this point
}

type rawPoint struct {
	p        smear.Vector
	pressure float64
}

func pressureOf(w, deflt float64) float64 {
	if w >= 0 {
		return w
	}
	return deflt
}

// StrokePoints streamlines weighted samples into stroke points. W of a sample
// is used as pressure; negative weights select a default pressure.
func StrokePoints(samples []smear.Sample, opts Options) []StrokePoint {
	if len(samples) == 0 {
		return nil
	}
	t := 0.15 + (1-opts.Streamline)*0.85
	pts := make([]rawPoint, 0, len(samples)+4)
	for _, s := range samples {
		pts = append(pts, rawPoint{p: s.Pos(), pressure: s.W})
	}
	if len(pts) == 2 {
		last := pts[1]
		pts = pts[:1]
		for i := 1; i < 5; i++ {
			f := float64(i) / 4
			pts = append(pts, rawPoint{
				p:        pts[0].p.Mix(last.p, f),
				pressure: pts[0].pressure + (last.pressure-pts[0].pressure)*f,
			})
		}
	}
	if len(pts) == 1 {
		pts = append(pts, rawPoint{p: pts[0].p.Add(smear.V(1, 1)), pressure: pts[0].pressure})
	}
	strokePoints := []StrokePoint{{
		Point:    pts[0].p,
		Pressure: pressureOf(pts[0].pressure, defaultStartPressure),
		Vector:   smear.V(1, 1),
	}}
	hasReachedMinimumLength := false
	runningLength := 0.0
	prev := strokePoints[0]
	lastIdx := len(pts) - 1
	for i := 1; i < len(pts); i++ {
		var point smear.Vector
		if opts.Last && i == lastIdx {
			point = pts[i].p
		} else {
			point = prev.Point.Mix(pts[i].p, t)
		}
		if point == prev.Point {
			continue
		}
		distance := point.Dist(prev.Point)
		runningLength += distance
		if i < lastIdx && !hasReachedMinimumLength {
			if runningLength < opts.Size {
				continue
			}
			hasReachedMinimumLength = true
		}
		prev = StrokePoint{
			Point:         point,
			Pressure:      pressureOf(pts[i].pressure, defaultPressure),
			Vector:        prev.Point.Subtract(point).Normalize(),
			Distance:      distance,
			RunningLength: runningLength,
		}
		strokePoints = append(strokePoints, prev)
	}
	if len(strokePoints) > 1 {
		strokePoints[0].Vector = strokePoints[1].Vector
	} else {
		strokePoints[0].Vector = smear.Origin
	}
	return strokePoints
}
