// Package state provides shared state information for use by the tracer and the viewer.
package state

import (
	"github.com/rwmorton/raytracer/shared/geom"
	"fmt"
)

// Camera represents an orthographic camera in 3-dimensional space.
// Rays leave a plane through Pos spanned by Left and Up, all travelling along Forward.
type Camera struct {
	Pos geom.Point
	Forward, Up, Left geom.Unit
}

// NewCamera initializes a new camera with appropriate orientation values.
// If dir is parallel to the global up vector, an error is returned.
func NewCamera(pos geom.Point, dir geom.Vector) (Camera, error) {
	if !pos.Finite() {
		return Camera{}, fmt.Errorf("camera position %v: %w", pos, geom.ErrNonFinite)
	}
	forward, err := dir.Unit()
	if err != nil {
		return Camera{}, fmt.Errorf("camera direction: %w", err)
	}
	left, err := dir.Cross(GlobalUp).Unit()
	if err != nil {
		return Camera{}, fmt.Errorf("camera direction %v is parallel to global up %v: %w", dir, GlobalUp, geom.ErrInvalidConstruction)
	}
	
	// This is already unit length, but it has to pass through Unit to become one.
	up, err := left.Vector().Cross(forward.Vector()).Unit()
	if err != nil {
		return Camera{}, err
	}
	return Camera{Pos: pos, Forward: forward, Up: up, Left: left}, nil
}

// Ray returns the ray through the normalized device coordinates (u, v).
// The camera at the origin looking down +Z sends the ray from (u, v, 0) along +Z.
func (c Camera) Ray(u, v float64) geom.Ray {
	origin := c.Pos.Add(c.Left.Vector().Scale(-u)).Add(c.Up.Vector().Scale(v))
	return geom.Ray{O: origin, D: c.Forward}
}

// Translate returns the camera moved by v.
func (c Camera) Translate(v geom.Vector) Camera {
	c.Pos = c.Pos.Add(v)
	return c
}
