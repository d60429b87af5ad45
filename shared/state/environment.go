// Package state provides shared state information for use by the tracer and the viewer.
package state

import (
	"github.com/rwmorton/raytracer/shared/colour"
	"github.com/rwmorton/raytracer/shared/geom"
	"github.com/rwmorton/raytracer/shared/scene"
)

// This variable represents the global up vector.
// Because Go doesn't support constant structures, this has to be a variable.
var GlobalUp geom.Vector = geom.Vector{X: 0, Y: 1, Z: 0}

// Environment represents a 3-dimensional space full of objects, and how to look at it.
type Environment struct {
	World *scene.World
	Cam Camera
	Background colour.RGBA
	Animation *Bounce	// Nil if nothing moves.
}

// Step advances the environment by one frame.
// The world is never changed in place; a moved world is published as a new value.
func (e Environment) Step() (Environment, error) {
	if e.Animation == nil {
		return e, nil
	}
	world, bounce, err := e.Animation.Step(e.World)
	if err != nil {
		return e, err
	}
	e.World = world
	e.Animation = &bounce
	return e, nil
}
