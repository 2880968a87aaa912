package anim

import (
	"time"

	"github.com/google/uuid"
	"github.com/npillmayer/smear/stroke"
)

type group struct {
	id     uuid.UUID
	tracks []*Track
}

func (g *group) done() bool {
	for _, tr := range g.tracks {
		if tr.State() != Done {
			return false
		}
	}
	return true
}

// Driver advances the tracks of all registered paints.
type Driver struct {
	ease    Ease
	groups  []*group
	byID    map[uuid.UUID]*group
	stopped bool
}

// NewDriver creates a driver which animates with the given easing.
func NewDriver(ease Ease) *Driver {
	if ease == nil {
		ease = Linear
	}
	return &Driver{
		ease: ease,
		byID: make(map[uuid.UUID]*group),
	}
}

// Add registers the samples of a paint. Samples without keyframes are done
// right away. Adding a paint twice, or adding to a stopped driver, is refused.
func (d *Driver) Add(p *stroke.Paint) bool {
	if d.stopped || p == nil {
		return false
	}
	if _, exists := d.byID[p.ID]; exists {
		tracer().Errorf("anim: paint %s added twice", p.ID)
		return false
	}
	g := &group{id: p.ID, tracks: make([]*Track, len(p.Points))}
	for i := range p.Points {
		var keys stroke.Keyframes
		if i < len(p.Keys) {
			keys = p.Keys[i]
		}
		g.tracks[i] = NewTrack(&p.Points[i], keys, d.ease)
	}
	d.groups = append(d.groups, g)
	d.byID[p.ID] = g
	return true
}

// Advance moves every track forward by dt. It returns the IDs of paints whose
// tracks have all become Done, in registration order. Every paint is reported
// exactly once and is forgotten by the driver afterwards.
func (d *Driver) Advance(dt time.Duration) []uuid.UUID {
	if d.stopped {
		return nil
	}
	var finished []uuid.UUID
	live := d.groups[:0]
	for _, g := range d.groups {
		for _, tr := range g.tracks {
			tr.Advance(dt)
		}
		if g.done() {
			finished = append(finished, g.id)
			delete(d.byID, g.id)
			continue
		}
		live = append(live, g)
	}
	for i := len(live); i < len(d.groups); i++ {
		d.groups[i] = nil
	}
	d.groups = live
	return finished
}

// Finish forces sample i of a paint to Done. It returns true if this completed
// the paint, in which case the paint is forgotten. Finishing samples of unknown
// or already completed paints is a no-op.
func (d *Driver) Finish(id uuid.UUID, i int) bool {
	g, ok := d.byID[id]
	if !ok || i < 0 || i >= len(g.tracks) {
		return false
	}
	g.tracks[i].Finish()
	if !g.done() {
		return false
	}
	d.remove(id)
	return true
}

// States returns the current states of a paint's tracks.
func (d *Driver) States(id uuid.UUID) ([]State, bool) {
	g, ok := d.byID[id]
	if !ok {
		return nil, false
	}
	states := make([]State, len(g.tracks))
	for i, tr := range g.tracks {
		states[i] = tr.State()
	}
	return states, true
}

// Cancel drops a paint without reporting it.
func (d *Driver) Cancel(id uuid.UUID) bool {
	if _, ok := d.byID[id]; !ok {
		return false
	}
	d.remove(id)
	return true
}

func (d *Driver) remove(id uuid.UUID) {
	delete(d.byID, id)
	for i, g := range d.groups {
		if g.id == id {
			d.groups = append(d.groups[:i], d.groups[i+1:]...)
			return
		}
	}
}

// Len returns the number of paints still animating.
func (d *Driver) Len() int {
	return len(d.groups)
}

// Stop releases all tracks. A stopped driver accepts no paints and never
// reports completions again.
func (d *Driver) Stop() {
	n := len(d.groups)
	d.groups = nil
	d.byID = make(map[uuid.UUID]*group)
	d.stopped = true
	tracer().Infof("anim: driver stopped, released %d paints", n)
}

// Stopped is a predicate: has the driver been stopped?
func (d *Driver) Stopped() bool {
	return d.stopped
}
