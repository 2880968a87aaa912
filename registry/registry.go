/*
Package registry holds the live paints of a scene.

A Registry is owned by whatever drives the render loop; there is no package
level instance. Paints are kept in insertion order, which is also their draw
order: later paints are drawn on top.

Rendering iterates over a Snapshot, so that removals triggered while a frame is
being drawn never invalidate the iteration.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package registry

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/google/uuid"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/smear/stroke"
)

// tracer writes to trace with key 'registry'
func tracer() tracing.Trace {
	return tracing.Select("registry")
}

// Registry maps paint IDs to live paints, ordered by insertion.
type Registry struct {
	paints *linkedhashmap.Map
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{paints: linkedhashmap.New()}
}

// Insert adds a paint. Paints with an ID already present are refused.
func (r *Registry) Insert(p *stroke.Paint) bool {
	if p == nil {
		return false
	}
	if _, found := r.paints.Get(p.ID); found {
		tracer().Errorf("registry: duplicate paint id %s", p.ID)
		return false
	}
	r.paints.Put(p.ID, p)
	return true
}

// Remove deletes a paint. Removing an absent paint is a no-op and returns false.
func (r *Registry) Remove(id uuid.UUID) bool {
	if _, found := r.paints.Get(id); !found {
		tracer().Debugf("registry: paint %s already removed", id)
		return false
	}
	r.paints.Remove(id)
	return true
}

// Get looks up a paint.
func (r *Registry) Get(id uuid.UUID) (*stroke.Paint, bool) {
	v, found := r.paints.Get(id)
	if !found {
		return nil, false
	}
	return v.(*stroke.Paint), true
}

// Len returns the number of live paints.
func (r *Registry) Len() int {
	return r.paints.Size()
}

// Snapshot returns the live paints in insertion order. The returned slice
// is a copy and stays valid when paints are removed afterwards.
func (r *Registry) Snapshot() []*stroke.Paint {
	snap := make([]*stroke.Paint, 0, r.paints.Size())
	it := r.paints.Iterator()
	for it.Next() {
		snap = append(snap, it.Value().(*stroke.Paint))
	}
	return snap
}

// Clear removes all paints.
func (r *Registry) Clear() {
	r.paints.Clear()
}
