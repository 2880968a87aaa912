package scene

import (
	"image/color"
	"time"

	"github.com/google/uuid"
	"github.com/npillmayer/smear/anim"
	"github.com/npillmayer/smear/freehand"
	"github.com/npillmayer/smear/input"
	"github.com/npillmayer/smear/outline"
	"github.com/npillmayer/smear/registry"
	"github.com/npillmayer/smear/stroke"
)

// Layer is a single filled path of a frame.
type Layer struct {
	ID    uuid.UUID
	Path  outline.Path
	Color color.NRGBA
}

// Data returns the path data of the layer.
func (l Layer) Data() string {
	return l.Path.String()
}

// Frame is the drawable state of a scene after a tick. Layers are ordered
// back to front.
type Frame struct {
	Tick   uint64
	Layers []Layer
}

// IsEmpty is a predicate: does the frame contain no layers?
func (f Frame) IsEmpty() bool {
	return len(f.Layers) == 0
}

// Scene owns the live paints and everything needed to animate and draw them.
type Scene struct {
	opts      Options
	history   *input.History
	generator *stroke.Generator
	driver    *anim.Driver
	paints    *registry.Registry
	renderer  *outline.Renderer
	pending   time.Duration // gesture time not yet used for spawning
	tick      uint64
	closed    bool
}

// New creates a scene. All randomness of stroke generation is drawn from rnd.
func New(opts Options, rnd stroke.Random) *Scene {
	if opts.GenerateInterval <= 0 {
		opts.GenerateInterval = DefaultOptions().GenerateInterval
	}
	if opts.MaxPerTick <= 0 {
		opts.MaxPerTick = 1
	}
	r := outline.NewRenderer(freehand.NewStroker(opts.Outline))
	r.Closed = opts.Closed
	r.Precision = opts.Precision
	r.Viewport = opts.Viewport
	return &Scene{
		opts:      opts,
		history:   input.NewHistory(opts.HistorySize),
		generator: stroke.NewGenerator(opts.Stroke, rnd),
		driver:    anim.NewDriver(opts.Ease),
		paints:    registry.New(),
		renderer:  r,
	}
}

// Options returns the options of the scene.
func (sc *Scene) Options() Options {
	return sc.opts
}

// Tick advances the scene by dt. The pointer is sampled once; if it has no
// valid position, the history is left unchanged.
//
// Every GenerateInterval of accumulated time a paint is spawned for the
// gesture from the oldest to the newest retained position, but not more than
// MaxPerTick within a single tick. Afterwards all animations advance by dt
// and paints which have completely faded are removed.
func (sc *Scene) Tick(dt time.Duration, pointer input.Pointer) {
	if sc.closed {
		return
	}
	if dt < 0 {
		dt = 0
	}
	sc.history.Sample(pointer)
	sc.spawn(dt)
	finished := sc.driver.Advance(dt)
	for _, id := range finished {
		if !sc.paints.Remove(id) {
			tracer().Errorf("scene: finished paint %s not registered", id)
		}
	}
	sc.tick++
}

func (sc *Scene) spawn(dt time.Duration) {
	sc.pending += dt
	n := 0
	for sc.pending >= sc.opts.GenerateInterval && n < sc.opts.MaxPerTick {
		sc.pending -= sc.opts.GenerateInterval
		n++
		from, to, ok := sc.history.Span()
		if !ok {
			continue
		}
		p := sc.generator.Generate(from, to)
		if p == nil {
			continue
		}
		if !sc.paints.Insert(p) {
			continue
		}
		if !sc.driver.Add(p) {
			sc.paints.Remove(p.ID)
		}
	}
	if sc.pending >= sc.opts.GenerateInterval {
		dropped := sc.pending / sc.opts.GenerateInterval
		tracer().Infof("scene: tick %d dropped %d paints", sc.tick, dropped)
		sc.pending %= sc.opts.GenerateInterval
	}
}

// Frame renders the current state of all live paints. Paints whose outline
// yields no path are left out.
func (sc *Scene) Frame() Frame {
	f := Frame{Tick: sc.tick}
	for _, p := range sc.paints.Snapshot() {
		path := sc.renderer.Render(p.Snapshot())
		if path.IsEmpty() {
			continue
		}
		f.Layers = append(f.Layers, Layer{ID: p.ID, Path: path, Color: p.Color})
	}
	return f
}

// Len returns the number of live paints.
func (sc *Scene) Len() int {
	return sc.paints.Len()
}

// Ticks returns the number of ticks so far.
func (sc *Scene) Ticks() uint64 {
	return sc.tick
}

// Close stops all animations and drops all paints. A closed scene ignores
// further ticks.
func (sc *Scene) Close() {
	if sc.closed {
		return
	}
	sc.closed = true
	sc.driver.Stop()
	sc.paints.Clear()
	sc.history.Reset()
	tracer().Debugf("scene: closed after %d ticks", sc.tick)
}
