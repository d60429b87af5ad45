// Package geom provides shared geometry functionality for use by the tracer and the viewer.
package geom

import "fmt"

// Ray represents a directed line O + D·t; t >= 0 is the part in front of the origin.
type Ray struct {
	O Point
	D Unit
}

// NewRay creates a ray from an origin and a (not necessarily normalized) direction.
func NewRay(o Point, d Vector) (Ray, error) {
	if !o.Finite() {
		return Ray{}, fmt.Errorf("ray origin %v: %w", o, ErrNonFinite)
	}
	u, err := d.Unit()
	if err != nil {
		return Ray{}, fmt.Errorf("ray direction: %w", err)
	}
	return Ray{O: o, D: u}, nil
}

// At returns the point on r at parameter t.
func (r Ray) At(t float64) Point {
	return r.O.Add(r.D.Vector().Scale(t))
}

// Transform returns r transformed by m.
// The origin is transformed as a point and the direction as a vector.  The direction is then
// renormalized, so t values on the result are distances in the transformed space.
func (r Ray) Transform(m Matrix) (Ray, error) {
	o, err := m.ApplyToPoint(r.O)
	if err != nil {
		return Ray{}, fmt.Errorf("transforming ray origin: %w", err)
	}
	if !o.Finite() {
		return Ray{}, fmt.Errorf("transforming ray origin to %v: %w", o, ErrNonFinite)
	}
	d, err := m.ApplyToVector(r.D.Vector()).Unit()
	if err != nil {
		return Ray{}, fmt.Errorf("transforming ray direction: %w", err)
	}
	return Ray{O: o, D: d}, nil
}

// String formats r with its origin and direction.
func (r Ray) String() string {
	return fmt.Sprintf("[origin: %v, direction: %v]", r.O, r.D)
}
