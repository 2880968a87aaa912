package anim

import (
	"time"

	"github.com/npillmayer/smear"
	"github.com/npillmayer/smear/stroke"
)

// Track animates one sample. The sample is owned by a paint; a track has
// exclusive write access to it while the paint is alive.
type Track struct {
	sample  *smear.Sample
	keys    stroke.Keyframes
	origin  smear.Vector
	ease    Ease
	elapsed time.Duration
	state   State
}

// NewTrack creates a track for a sample. The sample's current position is
// taken as the origin for drift.
func NewTrack(sample *smear.Sample, keys stroke.Keyframes, ease Ease) *Track {
	if ease == nil {
		ease = Linear
	}
	return &Track{
		sample: sample,
		keys:   keys,
		origin: sample.Pos(),
		ease:   ease,
		state:  Pending,
	}
}

// State returns the current state of the track.
func (tr *Track) State() State {
	return tr.state
}

// Elapsed returns the time the track has been advanced by.
func (tr *Track) Elapsed() time.Duration {
	return tr.elapsed
}

// Advance moves the track forward by dt, which may span several phases,
// and updates the sample. It returns the new state.
func (tr *Track) Advance(dt time.Duration) State {
	if tr.state == Done {
		return Done
	}
	if dt > 0 {
		tr.elapsed += dt
	}
	k := tr.keys
	t := tr.elapsed - k.Delay
	switch {
	case t < 0:
		tr.state = Pending
		tr.sample.W = 0
	case t < k.Grow:
		tr.state = Growing
		tr.sample.W = k.Peak * tr.ease(progress(t, k.Grow))
	case t < k.Grow+k.Fade:
		tr.state = Fading
		f := tr.ease(progress(t-k.Grow, k.Fade))
		tr.sample.W = k.Peak * (1 - f)
		tr.move(f)
	default:
		tr.finish()
	}
	return tr.state
}

// Finish jumps to the end of the animation. Finishing a finished track is a no-op.
func (tr *Track) Finish() {
	if tr.state != Done {
		tr.finish()
	}
}

func (tr *Track) finish() {
	tr.state = Done
	tr.sample.W = 0
	tr.move(1)
}

func (tr *Track) move(f float64) {
	if tr.keys.Drift.IsOrigin() {
		return
	}
	*tr.sample = tr.sample.WithPos(tr.origin.Add(tr.keys.Drift.Scale(f)))
}
