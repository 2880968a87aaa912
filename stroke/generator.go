package stroke

import (
	"image/color"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/npillmayer/smear"
	"github.com/npillmayer/smear/sparse"
)

// Variant selects the shape of generated strokes.
type Variant int

const (
	// Fan creates curled tails.
	Fan Variant = iota
	// Wave creates sinusoidal strokes with wisps.
	Wave
)

func (v Variant) String() string {
	if v == Wave {
		return "wave"
	}
	return "fan"
}

// PeakMode selects how the peak width of a stroke is determined.
type PeakMode int

const (
	// PeakBulge makes the peak proportional to the gesture's length (length·Bulge).
	PeakBulge PeakMode = iota
	// PeakAtan compresses the gesture's length into [0,1) by atan(length/size/10).
	PeakAtan
	// PeakFixed uses Options.Peak for every stroke.
	PeakFixed
)

// Options configure a Generator.
type Options struct {
	Variant       Variant
	Steps         int     // number of samples of a fan
	Curve         float64 // maximum curl of a fan, in Units
	Size          float64 // sample spacing of a wave, scale for PeakAtan
	WaveAmplitude float64
	WaveFrequency float64 // waves per unit of distance
	WispEvery     int     // every n-th sample of a wave gets a random wisp
	WispAmount    float64 // maximum wisp offset per axis
	Bulge         float64
	Peak          float64
	PeakMode      PeakMode
	Grow          time.Duration
	Fade          time.Duration
	Stagger       time.Duration
	Palette       Palette
	Colors        ColorPolicy
	Boundary      sparse.Boundary
	Units         smear.AngleUnit
}

// DefaultOptions returns options for a fan of 10 samples, animated for 0.35
// seconds per phase.
func DefaultOptions() Options {
	return Options{
		Variant:       Fan,
		Steps:         10,
		Curve:         20,
		Size:          2,
		WaveAmplitude: 5,
		WaveFrequency: 0.05,
		WispEvery:     4,
		WispAmount:    3,
		Bulge:         0.01,
		Peak:          1,
		PeakMode:      PeakBulge,
		Grow:          350 * time.Millisecond,
		Fade:          350 * time.Millisecond,
		Stagger:       350 * time.Millisecond,
		Palette:       DefaultPalette(),
		Colors:        RandomColor,
		Boundary:      sparse.ZeroBoundary,
		Units:         smear.Degrees,
	}
}

// Generator creates paints from gestures.
type Generator struct {
	opts  Options
	rnd   Random
	next  int // round robin color index
	NewID func() uuid.UUID
}

// NewGenerator creates a generator drawing randomness from rnd.
// An empty palette is replaced by the default palette.
func NewGenerator(opts Options, rnd Random) *Generator {
	if len(opts.Palette) == 0 {
		opts.Palette = DefaultPalette()
	}
	if rnd == nil {
		rnd = NewSeeded(uint64(time.Now().UnixNano()))
	}
	return &Generator{opts: opts, rnd: rnd, NewID: uuid.New}
}

// Options returns the generator's options.
func (g *Generator) Options() Options {
	return g.opts
}

// Generate creates a paint for a gesture from one position to another.
// Degenerate gestures (zero length, no samples) produce no paint and nil is
// returned.
func (g *Generator) Generate(from, to smear.Vector) *Paint {
	length := to.Subtract(from).Length()
	if smear.Is0(length) || !from.IsValid() || !to.IsValid() {
		tracer().Debugf("stroke: degenerate gesture %s -> %s", from, to)
		return nil
	}
	var points []smear.Sample
	var drift []smear.Vector
	switch g.opts.Variant {
	case Wave:
		points, drift = g.wave(from, to, length)
	default:
		points = g.fan(from, to, length)
	}
	if len(points) == 0 {
		tracer().Debugf("stroke: no samples for gesture %s -> %s", from, to)
		return nil
	}
	paint := &Paint{
		ID:      g.NewID(),
		Points:  points,
		Color:   g.pickColor(),
		Variant: g.opts.Variant,
	}
	paint.Keys = g.schedule(len(points), g.peak(length), drift)
	tracer().P("paint", paint.ID.String()).Debugf("%s stroke with %d samples", paint.Variant, paint.N())
	return paint
}

// fan creates the curled tail: starting at to, pointing back towards from,
// with length and angle advancing by a per-stroke random rate. The samples
// are reversed, so that the last sample lies at to.
func (g *Generator) fan(from, to smear.Vector, lengthChange float64) []smear.Sample {
	steps := g.opts.Steps
	if steps < 1 {
		return nil
	}
	u := g.opts.Units
	lengthStep := (lengthChange / float64(steps)) * uniform(g.rnd, 0.5, 2)
	angleChange := uniform(g.rnd, -g.opts.Curve, g.opts.Curve)
	angleStart := from.Subtract(to).Angle(u)
	angleStep := angleChange / float64(steps)
	points := make([]smear.Sample, steps)
	for step := 0; step < steps; step++ {
		l := float64(step) * lengthStep
		a := angleStart + float64(step)*angleStep
		p := to.Add(smear.FromPolar(l, a, u))
		points[steps-1-step] = smear.Sample{X: p.X, Y: p.Y}
	}
	return points
}

// wave samples the straight segment from..to at a spacing of Size and
// displaces each sample perpendicular to the segment. Wisp offsets are drawn
// for every WispEvery-th sample and interpolated for the others.
func (g *Generator) wave(from, to smear.Vector, length float64) ([]smear.Sample, []smear.Vector) {
	size := g.opts.Size
	if size <= 0 {
		return nil, nil
	}
	direction := to.Subtract(from).Normalize()
	normal := direction.Perp()
	phaseShift := g.rnd.Float64()
	n := int(math.Floor(length/size+smear.Epsilon)) + 1
	points := make([]smear.Sample, n)
	for i := 0; i < n; i++ {
		d := float64(i) * size
		offset := g.opts.WaveAmplitude * smear.TauSin(d*g.opts.WaveFrequency+phaseShift)
		p := from.Add(direction.Scale(d)).Add(normal.Scale(offset))
		points[i] = smear.Sample{X: p.X, Y: p.Y}
	}
	if g.opts.WispEvery < 1 || g.opts.WispAmount == 0 {
		return points, nil
	}
	amount := g.opts.WispAmount
	slots := sparse.Sparse(n, g.opts.WispEvery, func(int) smear.Vector {
		return smear.V(uniform(g.rnd, -amount, amount), uniform(g.rnd, -amount, amount))
	})
	return points, sparse.Fill(slots, g.opts.Boundary)
}

func (g *Generator) peak(length float64) float64 {
	switch g.opts.PeakMode {
	case PeakAtan:
		if g.opts.Size <= 0 {
			return 0
		}
		return smear.Atan01(length / g.opts.Size / 10)
	case PeakFixed:
		return g.opts.Peak
	}
	return length * g.opts.Bulge
}

// schedule staggers the samples' animations: sample i of n starts at
// (i/n)·Stagger.
func (g *Generator) schedule(n int, peak float64, drift []smear.Vector) []Keyframes {
	keys := make([]Keyframes, n)
	for i := range keys {
		keys[i] = Keyframes{
			Delay: time.Duration(float64(i) / float64(n) * float64(g.opts.Stagger)),
			Grow:  g.opts.Grow,
			Fade:  g.opts.Fade,
			Peak:  peak,
		}
		if i < len(drift) {
			keys[i].Drift = drift[i]
		}
	}
	return keys
}

func (g *Generator) pickColor() color.NRGBA {
	p := g.opts.Palette
	if g.opts.Colors == RoundRobin {
		c := p[g.next%len(p)]
		g.next++
		return c
	}
	return p[g.rnd.IntN(len(p))]
}
