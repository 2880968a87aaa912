/*
Package sparse fills gaps in sparsely populated offset sequences.

Random jitter for a stroke is drawn only for a few sample indices. The
remaining indices are derived by linear interpolation between their nearest
populated neighbors, which results in a piecewise-linear envelope.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package sparse

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/smear"
)

// tracer writes to trace with key 'sparse'
func tracer() tracing.Trace {
	return tracing.Select("sparse")
}

// Boundary determines the value assumed for a side without any populated
// neighbor.
type Boundary int

const (
	// ZeroBoundary treats a missing side as a zero offset. This is the default.
	ZeroBoundary Boundary = iota
	// ClampBoundary copies the nearest populated value of the other side.
	ClampBoundary
)

// Slot is one populated entry found by FindBefore or FindAfter.
type Slot struct {
	Index int
	V     smear.Vector
}

// FindBefore finds the first populated slot before index i.
func FindBefore(slots []*smear.Vector, i int) (Slot, bool) {
	if i > len(slots) {
		i = len(slots)
	}
	for j := i - 1; j >= 0; j-- {
		if slots[j] != nil {
			return Slot{Index: j, V: *slots[j]}, true
		}
	}
	return Slot{}, false
}

// FindAfter finds the first populated slot after index i.
func FindAfter(slots []*smear.Vector, i int) (Slot, bool) {
	if i < -1 {
		i = -1
	}
	for j := i + 1; j < len(slots); j++ {
		if slots[j] != nil {
			return Slot{Index: j, V: *slots[j]}, true
		}
	}
	return Slot{}, false
}

// Fill returns a sequence of the same length as slots with every empty (nil)
// slot replaced by an interpolated offset. Populated slots are copied unchanged.
//
// For an empty slot i with populated neighbors b < i < a the result is
//
//	mix(slots[b], slots[a], (i-b)/(a-b))
//
// If a side has no populated neighbor, the boundary policy decides: with
// ZeroBoundary it is taken to be the zero offset at index -1 (before) or
// len(slots) (after), with ClampBoundary the existing side is repeated.
// If no slot is populated at all, the result consists of zero offsets.
func Fill(slots []*smear.Vector, policy Boundary) []smear.Vector {
	filled := make([]smear.Vector, len(slots))
	for i, s := range slots {
		if s != nil {
			filled[i] = *s
			continue
		}
		before, hasBefore := FindBefore(slots, i)
		after, hasAfter := FindAfter(slots, i)
		switch {
		case !hasBefore && !hasAfter:
			filled[i] = smear.Origin
			continue
		case !hasBefore:
			if policy == ClampBoundary {
				filled[i] = after.V
				continue
			}
			before = Slot{Index: -1, V: smear.Origin}
		case !hasAfter:
			if policy == ClampBoundary {
				filled[i] = before.V
				continue
			}
			after = Slot{Index: len(slots), V: smear.Origin}
		}
		ratio := float64(i-before.Index) / float64(after.Index-before.Index)
		filled[i] = before.V.Mix(after.V, ratio)
	}
	tracer().Debugf("filled %d slots", len(slots))
	return filled
}

// Sparse creates n slots, populating every k-th slot (starting with slot 0)
// with values from draw. Draw is called in ascending index order,
// exactly once per populated slot. For k < 1 every slot is populated.
func Sparse(n, k int, draw func(i int) smear.Vector) []*smear.Vector {
	if n <= 0 {
		return nil
	}
	if k < 1 {
		k = 1
	}
	slots := make([]*smear.Vector, n)
	for i := 0; i < n; i++ {
		if i%k == 0 {
			v := draw(i)
			slots[i] = &v
		}
	}
	return slots
}
