package freehand

import (
	"math"

	"github.com/npillmayer/smear"
	"github.com/npillmayer/smear/polygon"
)

const (
	rateOfPressureChange = 0.275
	fixedPi              = math.Pi + 0.0001
	cornerSteps          = 13
	endCapSteps          = 29
)

// per is the clockwise perpendicular of a.
func per(a smear.Vector) smear.Vector {
	return smear.V(a.Y, -a.X)
}

func rotAround(a, c smear.Vector, r float64) smear.Vector {
	s, co := math.Sincos(r)
	px, py := a.X-c.X, a.Y-c.Y
	return smear.V(px*co-py*s+c.X, px*s+py*co+c.Y)
}

func simulatedPressure(prev, distance, size float64) float64 {
	sp := math.Min(1, distance/size)
	rp := math.Min(1, 1-sp)
	return math.Min(1, prev+(rp-prev)*(sp*rateOfPressureChange))
}

// Outline computes the outline polygon of a variable-width stroke through
// the given samples. The result is cyclic and empty for degenerate input.
func Outline(samples []smear.Sample, opts Options) *polygon.Polygon {
	return OutlinePoints(StrokePoints(samples, opts), opts)
}

// OutlinePoints computes the outline polygon for streamlined stroke points.
func OutlinePoints(points []StrokePoint, opts Options) *polygon.Polygon {
	pg := polygon.NullPolygon()
	if len(points) == 0 || opts.Size <= 0 {
		tracer().Debugf("freehand: no outline for %d points, size %g", len(points), opts.Size)
		return pg.Cycle()
	}
	size := opts.Size
	easing := opts.easing()
	totalLength := points[len(points)-1].RunningLength
	taperStart := opts.Start.taperLength(size, totalLength)
	taperEnd := opts.End.taperLength(size, totalLength)
	taperStartEase := opts.Start.easing(EaseOutQuad)
	taperEndEase := opts.End.easing(EaseOutCubic)
	minDistance := math.Pow(size*opts.Smoothing, 2)

	var leftPts, rightPts []smear.Vector
	prevPressure := points[0].Pressure
	for i := 0; i < len(points) && i < 10; i++ {
		pressure := points[i].Pressure
		if opts.SimulatePressure {
			pressure = simulatedPressure(prevPressure, points[i].Distance, size)
		}
		prevPressure = (prevPressure + pressure) / 2
	}
	radius := StrokeRadius(size, opts.Thinning, points[len(points)-1].Pressure, easing)
	firstRadius := -1.0
	prevVector := points[0].Vector
	pl, pr := points[0].Point, points[0].Point
	tl, tr := pl, pr
	isPrevPointSharpCorner := false

	for i, sp := range points {
		pressure := sp.Pressure
		isLast := i == len(points)-1
		if !isLast && totalLength-sp.RunningLength < 3 {
			continue
		}
		if opts.Thinning != 0 {
			if opts.SimulatePressure {
				pressure = simulatedPressure(prevPressure, sp.Distance, size)
			}
			radius = StrokeRadius(size, opts.Thinning, pressure, easing)
		} else {
			radius = size / 2
		}
		if firstRadius < 0 {
			firstRadius = radius
		}
		ts, te := 1.0, 1.0
		if sp.RunningLength < taperStart {
			ts = taperStartEase(sp.RunningLength / taperStart)
		}
		if totalLength-sp.RunningLength < taperEnd {
			te = taperEndEase((totalLength - sp.RunningLength) / taperEnd)
		}
		radius = math.Max(0.01, radius*math.Min(ts, te))

		nextVector := sp.Vector
		nextDpr := 1.0
		if !isLast {
			nextVector = points[i+1].Vector
			nextDpr = sp.Vector.Dot(nextVector)
		}
		prevDpr := sp.Vector.Dot(prevVector)
		isPointSharpCorner := prevDpr < 0 && !isPrevPointSharpCorner
		isNextPointSharpCorner := nextDpr < 0
		if isPointSharpCorner || isNextPointSharpCorner {
			offset := per(prevVector).Scale(radius)
			for k := 0; k <= cornerSteps; k++ {
				t := float64(k) / cornerSteps
				tl = rotAround(sp.Point.Subtract(offset), sp.Point, fixedPi*t)
				leftPts = append(leftPts, tl)
				tr = rotAround(sp.Point.Add(offset), sp.Point, -fixedPi*t)
				rightPts = append(rightPts, tr)
			}
			pl, pr = tl, tr
			if isNextPointSharpCorner {
				isPrevPointSharpCorner = true
			}
			continue
		}
		isPrevPointSharpCorner = false
		if isLast {
			offset := per(sp.Vector).Scale(radius)
			leftPts = append(leftPts, sp.Point.Subtract(offset))
			rightPts = append(rightPts, sp.Point.Add(offset))
			continue
		}
		offset := per(nextVector.Mix(sp.Vector, nextDpr)).Scale(radius)
		tl = sp.Point.Subtract(offset)
		if i <= 1 || pl.Subtract(tl).LengthSquared() > minDistance {
			leftPts = append(leftPts, tl)
			pl = tl
		}
		tr = sp.Point.Add(offset)
		if i <= 1 || pr.Subtract(tr).LengthSquared() > minDistance {
			rightPts = append(rightPts, tr)
			pr = tr
		}
		prevPressure = pressure
		prevVector = sp.Vector
	}
	if firstRadius < 0 {
		firstRadius = radius
	}

	firstPoint := points[0].Point
	lastPoint := firstPoint.Add(smear.V(1, 1))
	if len(points) > 1 {
		lastPoint = points[len(points)-1].Point
	}
	if len(points) == 1 {
		if !(taperStart > 0 || taperEnd > 0) || opts.Last {
			start := firstPoint.Add(per(firstPoint.Subtract(lastPoint)).Normalize().Scale(-firstRadius))
			for k := 1; k <= cornerSteps; k++ {
				t := float64(k) / cornerSteps
				pg.Knot(rotAround(start, firstPoint, fixedPi*2*t))
			}
		}
		return pg.Cycle()
	}
	if len(leftPts) == 0 || len(rightPts) == 0 {
		tracer().Debugf("freehand: outline collapsed")
		return pg.Cycle()
	}

	var startCap, endCap []smear.Vector
	switch {
	case taperStart > 0:
		// tapered start, no cap
	case opts.Start.Cap:
		for k := 1; k <= cornerSteps; k++ {
			t := float64(k) / cornerSteps
			startCap = append(startCap, rotAround(rightPts[0], firstPoint, fixedPi*t))
		}
	default:
		corners := leftPts[0].Subtract(rightPts[0])
		offsetA := corners.Scale(0.5)
		offsetB := corners.Scale(0.51)
		startCap = append(startCap,
			firstPoint.Subtract(offsetA), firstPoint.Subtract(offsetB),
			firstPoint.Add(offsetB), firstPoint.Add(offsetA))
	}
	direction := per(points[len(points)-1].Vector.Negate())
	switch {
	case taperEnd > 0:
		endCap = append(endCap, lastPoint)
	case opts.End.Cap:
		start := lastPoint.Add(direction.Scale(radius))
		for k := 1; k < endCapSteps; k++ {
			t := float64(k) / endCapSteps
			endCap = append(endCap, rotAround(start, lastPoint, fixedPi*3*t))
		}
	default:
		endCap = append(endCap,
			lastPoint.Add(direction.Scale(radius)), lastPoint.Add(direction.Scale(radius*0.99)),
			lastPoint.Subtract(direction.Scale(radius*0.99)), lastPoint.Subtract(direction.Scale(radius)))
	}

	pg.Knots(leftPts...).Knots(endCap...)
	for i := len(rightPts) - 1; i >= 0; i-- {
		pg.Knot(rightPts[i])
	}
	pg.Knots(startCap...)
	return pg.Cycle()
}

// Stroker computes stroke outlines with a fixed set of options.
type Stroker struct {
	Options Options
}

// NewStroker creates a Stroker for the given options.
func NewStroker(opts Options) *Stroker {
	return &Stroker{Options: opts}
}

// Outline computes the outline polygon of samples.
func (s *Stroker) Outline(samples []smear.Sample) *polygon.Polygon {
	return Outline(samples, s.Options)
}
