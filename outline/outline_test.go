package outline

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/smear"
	"github.com/npillmayer/smear/freehand"
	"github.com/npillmayer/smear/polygon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedOutliner struct {
	pg *polygon.Polygon
}

func (f fixedOutliner) Outline([]smear.Sample) *polygon.Polygon {
	return f.pg
}

func TestSmoothTooFewVertices(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for n := 0; n < MinVertices; n++ {
		vs := make([]smear.Vector, n)
		p := Smooth(vs, true, 2)
		assert.True(t, p.IsEmpty())
		assert.Equal(t, "", p.String())
	}
}

func TestSmoothFourColinear(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	vs := []smear.Vector{smear.V(0, 0), smear.V(1.005, 0), smear.V(2, 0), smear.V(3.34, 0)}
	p := Smooth(vs, true, 2)
	s := p.String()
	assert.Equal(t, "M 0.00 0.00 Q 1.00 0.00 1.50 0.00 T 2.67 0.00 Z", s)
	assert.Equal(t, 1, strings.Count(s, "M"))
	assert.Equal(t, 1, strings.Count(s, "Q"))
	assert.Equal(t, 1, strings.Count(s, "T"))
	open := Smooth(vs, false, 2).String()
	assert.False(t, strings.HasSuffix(open, "Z"))
	assert.False(t, strings.HasSuffix(open, " "))
}

func TestSmoothMidpoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	vs := []smear.Vector{
		smear.V(0, 0), smear.V(10, 0), smear.V(10, 10), smear.V(0, 10), smear.V(-5, 5),
	}
	p := Smooth(vs, true, 1)
	require.Len(t, p.Cmds, 4)
	assert.Equal(t, []smear.Vector{smear.V(10, 0), smear.V(10, 5)}, p.Cmds[1].Pts)
	assert.Equal(t, []smear.Vector{smear.V(5, 10), smear.V(-2.5, 7.5)}, p.Cmds[2].Pts)
	assert.Equal(t, "M 0.0 0.0 Q 10.0 0.0 10.0 5.0 T 5.0 10.0 -2.5 7.5 Z", p.String())
}

func TestSmoothNegativeZero(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	vs := []smear.Vector{smear.V(-0.001, 0), smear.V(0, -0.004), smear.V(1, 1), smear.V(2, 2)}
	s := Smooth(vs, false, 2).String()
	assert.NotContains(t, s, "-0.00")
}

func TestSmoothDeterministic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	vs := []smear.Vector{smear.V(0.123456, 1), smear.V(2.5, 7.77777), smear.V(3, 3), smear.V(9, 1)}
	a := Smooth(vs, true, 2).String()
	b := Smooth(vs, true, 2).String()
	assert.Equal(t, a, b)
}

func TestRenderer(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	opts := freehand.DefaultOptions()
	opts.Size = 2
	opts.Thinning = 1
	opts.Smoothing = 0
	opts.Streamline = 0
	opts.SimulatePressure = false
	r := NewRenderer(freehand.NewStroker(opts))
	samples := make([]smear.Sample, 10)
	for i := range samples {
		samples[i] = smear.Sample{X: float64(i) * 5, Y: float64(i), W: 1}
	}
	p := r.Render(samples)
	require.False(t, p.IsEmpty())
	s := p.String()
	assert.True(t, strings.HasPrefix(s, "M "))
	assert.True(t, strings.HasSuffix(s, " Z"))
	assert.Empty(t, r.Render(nil).Cmds)
}

func TestRendererViewport(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	box := polygon.Box(smear.V(100, 100), smear.V(110, 110))
	r := NewRenderer(fixedOutliner{pg: box})
	assert.False(t, r.Render(nil).IsEmpty())
	r.Viewport = &polygon.Rect{Min: smear.V(0, 0), Max: smear.V(50, 50)}
	assert.True(t, r.Render(nil).IsEmpty())
	r.Viewport = &polygon.Rect{Min: smear.V(0, 0), Max: smear.V(105, 105)}
	assert.False(t, r.Render(nil).IsEmpty())
	assert.True(t, (&Renderer{}).Render(nil).IsEmpty())
}
