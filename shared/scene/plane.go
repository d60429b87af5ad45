// Package scene provides the intersectable shapes of a scene and the world that holds them.
package scene

import (
	"github.com/rwmorton/raytracer/shared/geom"
	"fmt"
	"math"
)

// Plane represents an infinite plane through a point.
type Plane struct {
	point geom.Point
	normal geom.Normal	// Kept normalized.
}

// NewPlane creates a plane through p with the normal n.  The normal is normalized, so a zero
// normal is rejected.
func NewPlane(p geom.Point, n geom.Normal) (Plane, error) {
	if !p.Finite() {
		return Plane{}, fmt.Errorf("plane point %v: %w", p, geom.ErrNonFinite)
	}
	unit, err := n.Norm()
	if err != nil {
		return Plane{}, fmt.Errorf("plane normal: %v: %w", err, ErrDegenerate)
	}
	return Plane{point: p, normal: unit}, nil
}

// valid checks the plane has a unit normal, which the zero Plane does not.
func (pl Plane) valid() error {
	if math.Abs(pl.normal.LenSq() - 1.0) > 1e-9 {
		return fmt.Errorf("plane normal %v: %w", pl.normal, ErrDegenerate)
	}
	return nil
}

// Point returns the point the plane was built through.
func (pl Plane) Point() geom.Point {
	return pl.point
}

// Normal returns the plane's unit normal.
func (pl Plane) Normal() geom.Normal {
	return pl.normal
}

// Hit intersects a ray with the plane pl.
func (pl Plane) Hit(r geom.Ray, tNearest float64) (Hit, bool) {
	// A ray parallel to the plane never meets it.
	denom := pl.normal.Dot(r.D.Vector())
	if math.Abs(denom) < parallelEpsilon {
		return Hit{}, false
	}
	
	// Make sure the intersection point is ahead of the ray.
	t := pl.normal.Dot(pl.point.Sub(r.O)) / denom
	if !(t > HitEpsilon && t < tNearest) {
		return Hit{}, false
	}
	
	return newHit(r, t, pl.normal), true
}
