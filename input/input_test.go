package input

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/smear"
	"github.com/stretchr/testify/assert"
)

func TestEmptyHistory(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	h := NewHistory(3)
	_, ok := h.Oldest()
	assert.False(t, ok)
	_, ok = h.Newest()
	assert.False(t, ok)
	_, _, ok = h.Span()
	assert.False(t, ok)
}

func TestRollingHistory(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	h := NewHistory(3)
	for i := 1; i <= 5; i++ {
		h.Push(smear.V(float64(i), 0))
	}
	assert.Equal(t, 3, h.Len())
	from, to, ok := h.Span()
	assert.True(t, ok)
	assert.Equal(t, smear.V(3, 0), from)
	assert.Equal(t, smear.V(5, 0), to)
	h.Push(smear.V(math.NaN(), 0))
	assert.Equal(t, 3, h.Len())
	h.Reset()
	assert.Equal(t, 0, h.Len())
	d := NewHistory(0)
	for i := 0; i <= DefaultCapacity; i++ {
		d.Push(smear.V(float64(i), 1))
	}
	assert.Equal(t, DefaultCapacity, d.Len())
}

func TestSamplePointer(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	h := NewHistory(5)
	valid := false
	p := PointerFunc(func() (smear.Vector, bool) { return smear.V(7, 8), valid })
	assert.False(t, h.Sample(p))
	assert.False(t, h.Sample(nil))
	valid = true
	assert.True(t, h.Sample(p))
	v, ok := h.Newest()
	assert.True(t, ok)
	assert.Equal(t, smear.V(7, 8), v)
}
