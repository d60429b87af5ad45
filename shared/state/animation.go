// Package state provides shared state information for use by the tracer and the viewer.
package state

import (
	"github.com/rwmorton/raytracer/shared/geom"
	"github.com/rwmorton/raytracer/shared/scene"
	"fmt"
)

// Bounce moves a sphere back and forth along the x axis, keeping it within [-1, 1].
type Bounce struct {
	Index int			// The index of the sphere within the world.
	Speed float64		// How far the sphere moves per frame; the sign is the direction.
}

// Step returns a copy of w with the sphere moved by one frame, along with the bounce to use next.
// The sphere is rebuilt and replaced rather than mutated.
func (b Bounce) Step(w *scene.World) (*scene.World, Bounce, error) {
	p, err := w.Primitive(b.Index)
	if err != nil {
		return nil, b, fmt.Errorf("bouncing primitive: %w", err)
	}
	s, ok := p.(scene.Sphere)
	if !ok {
		return nil, b, fmt.Errorf("bouncing primitive %d: %T is not a sphere: %w", b.Index, p, geom.ErrInvalidConstruction)
	}
	
	// Turn around at the edges.
	center, limit := s.Center(), 1.0 - s.Radius()
	if center.X >= limit || center.X <= -limit {
		b.Speed = -b.Speed
	}
	center.X += b.Speed
	
	moved, err := scene.NewSphere(center, s.Radius())
	if err != nil {
		return nil, b, err
	}
	next := w.Clone()
	if err := next.Set(b.Index, moved); err != nil {
		return nil, b, err
	}
	return next, b, nil
}
