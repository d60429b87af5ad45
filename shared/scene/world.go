// Package scene provides the intersectable shapes of a scene and the world that holds them.
package scene

import (
	"github.com/rwmorton/raytracer/shared/geom"
	"fmt"
	"math"
)

// World represents an ordered collection of primitives.
//
// Hit only reads the world, so one world may be traced from many goroutines at once.  Anything
// that changes a world between frames should Clone it and publish the copy instead.
type World struct {
	primitives []Primitive
}

// NewWorld creates an empty world with room for capacity primitives.
// The capacity is only a hint; negative values are treated as zero.
func NewWorld(capacity int) *World {
	if capacity < 0 {
		capacity = 0
	}
	return &World{primitives: make([]Primitive, 0, capacity)}
}

// validator is implemented by primitives whose zero value can't be intersected.
type validator interface {
	valid() error
}

// check rejects primitives that can't be placed in a world.
func check(p Primitive) error {
	if p == nil {
		return ErrNilPrimitive
	}
	if v, ok := p.(validator); ok {
		return v.valid()
	}
	return nil
}

// Add appends a primitive to the world.
// Nil primitives and invalid shapes (such as a zero Sphere) are rejected.
func (w *World) Add(p Primitive) error {
	if err := check(p); err != nil {
		return err
	}
	w.primitives = append(w.primitives, p)
	return nil
}

// Set replaces the primitive at index i.
// On failure the world is left unchanged.
func (w *World) Set(i int, p Primitive) error {
	if i < 0 || i >= len(w.primitives) {
		return fmt.Errorf("primitive %d of %d: %w", i, len(w.primitives), geom.ErrIndexOutOfRange)
	}
	if err := check(p); err != nil {
		return err
	}
	w.primitives[i] = p
	return nil
}

// Len returns the number of primitives in the world.
func (w *World) Len() int {
	return len(w.primitives)
}

// Primitive returns the primitive at index i.
func (w *World) Primitive(i int) (Primitive, error) {
	if i < 0 || i >= len(w.primitives) {
		return nil, fmt.Errorf("primitive %d of %d: %w", i, len(w.primitives), geom.ErrIndexOutOfRange)
	}
	return w.primitives[i], nil
}

// Clone returns a copy of the world which can be changed without affecting w.
func (w *World) Clone() *World {
	primitives := make([]Primitive, len(w.primitives), cap(w.primitives))
	copy(primitives, w.primitives)
	return &World{primitives: primitives}
}

// Hit finds the nearest intersection between a ray and any primitive in the world.
// Ties go to the primitive added first.
func (w *World) Hit(r geom.Ray) (Hit, bool) {
	nearestExists := false
	nearestT := math.Inf(1)
	var nearest Hit
	for i, p := range w.primitives {
		// Each primitive only reports hits closer than the nearest one so far.
		if h, hit := p.Hit(r, nearestT); hit && h.T < nearestT {
			nearestExists = true
			nearestT = h.T
			nearest = h
			nearest.Index = i
			nearest.Primitive = p
		}
	}
	
	return nearest, nearestExists
}
