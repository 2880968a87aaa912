package scene

import (
	"time"

	"github.com/npillmayer/smear/anim"
	"github.com/npillmayer/smear/freehand"
	"github.com/npillmayer/smear/input"
	"github.com/npillmayer/smear/outline"
	"github.com/npillmayer/smear/polygon"
	"github.com/npillmayer/smear/stroke"
)

// Options configure a Scene.
type Options struct {
	Stroke           stroke.Options
	Outline          freehand.Options
	Ease             anim.Ease
	Precision        int           // decimal digits of path coordinates
	Closed           bool          // close outline paths
	Viewport         *polygon.Rect // paints outside are not drawn
	GenerateInterval time.Duration // gesture time between two paints
	MaxPerTick       int           // upper bound of paints spawned by a single tick
	HistorySize      int           // number of retained pointer positions
	FPS              int           // ticks per second of the host clock
}

// DefaultOptions returns options for a slowly ticking scene which spawns a
// paint every 20 milliseconds of gesture time.
func DefaultOptions() Options {
	oo := freehand.DefaultOptions()
	oo.Size = 2
	oo.Thinning = 1
	oo.Smoothing = 0
	oo.Streamline = 0
	oo.SimulatePressure = false
	return Options{
		Stroke:           stroke.DefaultOptions(),
		Outline:          oo,
		Ease:             anim.Linear,
		Precision:        outline.DefaultPrecision,
		Closed:           true,
		GenerateInterval: 20 * time.Millisecond,
		MaxPerTick:       5,
		HistorySize:      input.DefaultCapacity,
		FPS:              10,
	}
}

// TickDuration is the duration of a single tick of the host clock.
func (o Options) TickDuration() time.Duration {
	if o.FPS <= 0 {
		return 100 * time.Millisecond
	}
	return time.Second / time.Duration(o.FPS)
}
