package scene

import (
	"strings"
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/smear"
	"github.com/npillmayer/smear/input"
	"github.com/npillmayer/smear/polygon"
	"github.com/npillmayer/smear/stroke"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// path yields the given positions, one per call, repeating the last one.
func path(pts ...smear.Vector) input.Pointer {
	i := 0
	return input.PointerFunc(func() (smear.Vector, bool) {
		if len(pts) == 0 {
			return smear.Origin, false
		}
		v := pts[i]
		if i < len(pts)-1 {
			i++
		}
		return v, true
	})
}

func TestSceneNoPointer(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	sc := New(DefaultOptions(), stroke.NewSeeded(1))
	for i := 0; i < 5; i++ {
		sc.Tick(100*time.Millisecond, path())
	}
	assert.Equal(t, 0, sc.Len())
	assert.True(t, sc.Frame().IsEmpty())
	assert.Equal(t, uint64(5), sc.Frame().Tick)
}

func TestSceneSpawnsAtInterval(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	sc := New(DefaultOptions(), stroke.NewSeeded(1))
	p := path(smear.V(10, 10), smear.V(60, 10), smear.V(110, 10))
	sc.Tick(100*time.Millisecond, p)
	assert.Equal(t, 0, sc.Len(), "a single position is no gesture")
	sc.Tick(100*time.Millisecond, p)
	assert.Equal(t, 5, sc.Len())
	f := sc.Frame()
	require.False(t, f.IsEmpty())
	for _, l := range f.Layers {
		assert.True(t, strings.HasPrefix(l.Data(), "M "))
		assert.True(t, strings.HasSuffix(l.Data(), " Z"))
	}
}

func TestSceneRateLimit(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	opts := DefaultOptions()
	opts.MaxPerTick = 2
	sc := New(opts, stroke.NewSeeded(2))
	p := path(smear.V(0, 0), smear.V(40, 30))
	sc.Tick(10*time.Millisecond, p)
	sc.Tick(time.Second, p)
	assert.Equal(t, 2, sc.Len())
	assert.Less(t, sc.pending, opts.GenerateInterval)
}

func TestSceneRemovesFadedPaints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	sc := New(DefaultOptions(), stroke.NewSeeded(3))
	p := path(smear.V(0, 0), smear.V(100, 0))
	sc.Tick(20*time.Millisecond, p)
	sc.Tick(20*time.Millisecond, p)
	require.Equal(t, 1, sc.Len())
	sc.history.Reset()
	paint := sc.paints.Snapshot()[0]
	total := paint.Keys[paint.N()-1].Total()
	sc.Tick(total, path())
	assert.Equal(t, 0, sc.Len())
	assert.Equal(t, 0, sc.driver.Len())
	assert.True(t, sc.Frame().IsEmpty())
}

func TestSceneViewportCulling(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	opts := DefaultOptions()
	opts.Viewport = &polygon.Rect{Min: smear.V(1000, 1000), Max: smear.V(1100, 1100)}
	sc := New(opts, stroke.NewSeeded(4))
	p := path(smear.V(0, 0), smear.V(50, 50))
	sc.Tick(100*time.Millisecond, p)
	sc.Tick(100*time.Millisecond, p)
	assert.Greater(t, sc.Len(), 0)
	assert.True(t, sc.Frame().IsEmpty())
}

func TestSceneClose(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	sc := New(DefaultOptions(), stroke.NewSeeded(5))
	p := path(smear.V(0, 0), smear.V(30, 40))
	sc.Tick(100*time.Millisecond, p)
	sc.Tick(100*time.Millisecond, p)
	require.Greater(t, sc.Len(), 0)
	sc.Close()
	assert.Equal(t, 0, sc.Len())
	ticks := sc.Ticks()
	sc.Tick(100*time.Millisecond, p)
	assert.Equal(t, ticks, sc.Ticks())
	assert.True(t, sc.Frame().IsEmpty())
	sc.Close()
}

func TestSceneDeterministic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	run := func() []string {
		sc := New(DefaultOptions(), stroke.NewSeeded(42))
		p := path(smear.V(0, 0), smear.V(20, 20), smear.V(60, 20), smear.V(90, 70))
		var data []string
		for i := 0; i < 6; i++ {
			sc.Tick(100*time.Millisecond, p)
			for _, l := range sc.Frame().Layers {
				data = append(data, l.Data())
			}
		}
		return data
	}
	a, b := run(), run()
	require.NotEmpty(t, a)
	assert.Equal(t, a, b)
}
