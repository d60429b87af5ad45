// Package scene provides the intersectable shapes of a scene and the world that holds them.
package scene

import (
	"github.com/rwmorton/raytracer/shared/geom"
	"fmt"
	"math"
)

// Sphere represents a sphere in 3-dimensional space.
type Sphere struct {
	center geom.Point
	radius float64
}

// NewSphere creates a sphere, failing if the radius is not a positive finite number.
func NewSphere(center geom.Point, radius float64) (Sphere, error) {
	s := Sphere{center: center, radius: radius}
	if err := s.valid(); err != nil {
		return Sphere{}, err
	}
	return s, nil
}

// valid checks the sphere has a finite centre and a positive finite radius.
// The zero Sphere is not valid.
func (s Sphere) valid() error {
	if !(s.radius > 0.0) || math.IsInf(s.radius, 1) {
		return fmt.Errorf("radius %g: %w", s.radius, ErrInvalidRadius)
	}
	if !s.center.Finite() {
		return fmt.Errorf("sphere centre %v: %w", s.center, geom.ErrNonFinite)
	}
	return nil
}

// Center returns the centre of s.
func (s Sphere) Center() geom.Point {
	return s.center
}

// Radius returns the radius of s.
func (s Sphere) Radius() float64 {
	return s.radius
}

// Hit intersects a ray with the sphere s.
// If the ray starts inside the sphere, the hit is at the ray's origin (t = 0).
func (s Sphere) Hit(r geom.Ray, tNearest float64) (Hit, bool) {
	if !(s.radius > 0.0) {
		return Hit{}, false
	}
	m := r.O.Sub(s.center)
	b := r.D.Dot(m)
	c := m.LenSq() - s.radius * s.radius
	
	// The origin is outside the sphere and the ray points away from it.
	if c > 0.0 && b > 0.0 {
		return Hit{}, false
	}
	
	// This relies on the ray's direction being unit length.
	// A NaN discriminant is a miss too.
	discrim := b * b - c
	if !(discrim >= 0.0) {
		return Hit{}, false
	}
	
	t := -b - math.Sqrt(discrim)
	if t < 0.0 {
		t = 0.0
	}
	if !(t < tNearest) {
		return Hit{}, false
	}
	
	p := r.At(t)
	n := p.Sub(s.center).Scale(1.0 / s.radius)
	return newHit(r, t, geom.Normal{X: n.X, Y: n.Y, Z: n.Z}), true
}
