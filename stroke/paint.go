package stroke

import (
	"image/color"
	"time"

	"github.com/google/uuid"
	"github.com/npillmayer/smear"
)

// Keyframes describe the animation of a single sample: after Delay, its
// width grows from 0 to Peak during Grow, then shrinks back to 0 during Fade
// while the sample moves by Drift.
type Keyframes struct {
	Delay time.Duration
	Grow  time.Duration
	Fade  time.Duration
	Peak  float64
	Drift smear.Vector
}

// Total is the duration from the start of the stroke to the end of the
// sample's animation.
func (k Keyframes) Total() time.Duration {
	return k.Delay + k.Grow + k.Fade
}

// Paint is one animated brush mark. Its samples are owned by the paint and
// mutated only by the animation driver.
type Paint struct {
	ID      uuid.UUID
	Points  []smear.Sample
	Keys    []Keyframes // one per point
	Color   color.NRGBA
	Variant Variant
}

// N returns the number of samples.
func (p *Paint) N() int {
	return len(p.Points)
}

// Snapshot copies the current samples.
func (p *Paint) Snapshot() []smear.Sample {
	s := make([]smear.Sample, len(p.Points))
	copy(s, p.Points)
	return s
}

// Length is the length of the centerline of p.
func (p *Paint) Length() float64 {
	l := 0.0
	for i := 1; i < len(p.Points); i++ {
		l += p.Points[i].Pos().Dist(p.Points[i-1].Pos())
	}
	return l
}
