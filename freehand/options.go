package freehand

// Easing maps a progress value in [0,1] onto [0,1].
type Easing func(t float64) float64

// Linear easing.
func Linear(t float64) float64 {
	return t
}

// EaseOutQuad decelerates quadratically.
func EaseOutQuad(t float64) float64 {
	return t * (2 - t)
}

// EaseOutCubic decelerates cubically.
func EaseOutCubic(t float64) float64 {
	t--
	return t*t*t + 1
}

// TaperFull may be set as a taper length to taper over the whole stroke.
const TaperFull = -1.0

// CapOptions configure the start or the end of a stroke.
type CapOptions struct {
	Cap    bool    // draw a round cap; otherwise the end is flat
	Taper  float64 // taper distance; 0 means no taper, TaperFull means whole stroke
	Easing Easing  // easing of the taper
}

// Options configure outline computation.
type Options struct {
	Size             float64 // base diameter of the stroke
	Thinning         float64 // effect of pressure on the stroke's size
	Smoothing        float64 // softening of the stroke's edges
	Streamline       float64 // smoothing of the input points
	SimulatePressure bool    // derive pressure from point distances
	Easing           Easing  // easing applied to pressure
	Start            CapOptions
	End              CapOptions
	Last             bool // the input is complete, the last point is used as-is
}

// DefaultOptions returns the default configuration for outline computation.
func DefaultOptions() Options {
	return Options{
		Size:             16,
		Thinning:         0.5,
		Smoothing:        0.5,
		Streamline:       0.5,
		SimulatePressure: true,
		Easing:           Linear,
		Start:            CapOptions{Cap: true, Easing: EaseOutQuad},
		End:              CapOptions{Cap: true, Easing: EaseOutCubic},
	}
}

func (o Options) easing() Easing {
	if o.Easing == nil {
		return Linear
	}
	return o.Easing
}

func (c CapOptions) easing(deflt Easing) Easing {
	if c.Easing == nil {
		return deflt
	}
	return c.Easing
}

func (c CapOptions) taperLength(size, total float64) float64 {
	if c.Taper < 0 {
		if size > total {
			return size
		}
		return total
	}
	return c.Taper
}

// StrokeRadius computes the radius of a stroke for a given pressure.
func StrokeRadius(size, thinning, pressure float64, easing Easing) float64 {
	if easing == nil {
		easing = Linear
	}
	return size * easing(0.5-thinning*(0.5-pressure))
}
