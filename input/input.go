/*
Package input keeps a short rolling history of pointer positions.

Hosts sample the pointer once per tick and push the position into a History.
Stroke generation uses the oldest and the newest retained positions as the
start and end of a gesture.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package input

import (
	"github.com/emirpasic/gods/queues/circularbuffer"
	"github.com/npillmayer/smear"
)

// Pointer is a source of pointer positions in drawing surface coordinates.
// Position returns false if there is no valid position, e.g., before the
// pointer first entered the surface.
type Pointer interface {
	Position() (smear.Vector, bool)
}

// PointerFunc adapts a function to the Pointer interface.
type PointerFunc func() (smear.Vector, bool)

// Position calls f.
func (f PointerFunc) Position() (smear.Vector, bool) {
	return f()
}

// DefaultCapacity is the default number of retained positions.
const DefaultCapacity = 20

// History retains the most recent positions, dropping the oldest ones.
type History struct {
	buf *circularbuffer.Queue
}

// NewHistory creates a history retaining up to capacity positions.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &History{buf: circularbuffer.New(capacity)}
}

// Push appends a position. Invalid positions (NaN, Inf) are ignored.
func (h *History) Push(v smear.Vector) {
	if !v.IsValid() {
		return
	}
	h.buf.Enqueue(v)
}

// Sample reads a pointer and pushes its position, if there is one.
func (h *History) Sample(p Pointer) bool {
	if p == nil {
		return false
	}
	v, ok := p.Position()
	if !ok || !v.IsValid() {
		return false
	}
	h.buf.Enqueue(v)
	return true
}

// Oldest returns the earliest retained position.
func (h *History) Oldest() (smear.Vector, bool) {
	v, ok := h.buf.Peek()
	if !ok {
		return smear.Origin, false
	}
	return v.(smear.Vector), true
}

// Newest returns the latest position.
func (h *History) Newest() (smear.Vector, bool) {
	values := h.buf.Values()
	if len(values) == 0 {
		return smear.Origin, false
	}
	return values[len(values)-1].(smear.Vector), true
}

// Span returns the oldest and the newest position. It fails if the history
// is empty.
func (h *History) Span() (from, to smear.Vector, ok bool) {
	if from, ok = h.Oldest(); !ok {
		return
	}
	to, ok = h.Newest()
	return
}

// Len returns the number of retained positions.
func (h *History) Len() int {
	return h.buf.Size()
}

// Reset drops all positions.
func (h *History) Reset() {
	h.buf.Clear()
}
