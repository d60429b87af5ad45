// Package scene provides the intersectable shapes of a scene and the world that holds them.
package scene

import (
	"github.com/rwmorton/raytracer/shared/geom"
	"fmt"
	"math"
)

// Triangle represents a triangle in 3-dimensional space.
// Its front face is the one its vertices wind counter-clockwise around.
type Triangle struct {
	p1, p2, p3 geom.Point
	normal geom.Normal
}

// NewTriangle creates a triangle from three vertices, failing if they are collinear.
func NewTriangle(p1, p2, p3 geom.Point) (Triangle, error) {
	if !p1.Finite() || !p2.Finite() || !p3.Finite() {
		return Triangle{}, fmt.Errorf("triangle %v, %v, %v: %w", p1, p2, p3, geom.ErrNonFinite)
	}
	n, err := p2.Sub(p1).Cross(p3.Sub(p1)).Norm()
	if err != nil {
		return Triangle{}, fmt.Errorf("triangle %v, %v, %v: %w", p1, p2, p3, ErrDegenerate)
	}
	return Triangle{p1: p1, p2: p2, p3: p3, normal: geom.Normal{X: n.X, Y: n.Y, Z: n.Z}}, nil
}

// valid checks the triangle has a unit normal, which the zero Triangle does not.
func (t Triangle) valid() error {
	if math.Abs(t.normal.LenSq() - 1.0) > 1e-9 {
		return fmt.Errorf("triangle %v, %v, %v: %w", t.p1, t.p2, t.p3, ErrDegenerate)
	}
	return nil
}

// Vertices returns the three vertices of t.
func (t Triangle) Vertices() (geom.Point, geom.Point, geom.Point) {
	return t.p1, t.p2, t.p3
}

// Hit intersects a ray with the triangle t.
func (t Triangle) Hit(r geom.Ray, tNearest float64) (Hit, bool) {
	// Make sure that the ray's direction and triangle's normal are not perpendicular.
	denom := t.normal.Dot(r.D.Vector())
	if math.Abs(denom) < parallelEpsilon {
		return Hit{}, false
	}
	
	// Compute the ray parameter where it meets the triangle's plane, and make sure it's ahead of the ray.
	param := t.normal.Dot(t.p1.Sub(r.O)) / denom
	if !(param > HitEpsilon && param < tNearest) {
		return Hit{}, false
	}
	
	// The intersection point must lie on the inner side of all three edges.
	intersect := r.At(param)
	n := t.normal.Vector()
	if t.p2.Sub(t.p1).Cross(intersect.Sub(t.p1)).Dot(n) < 0.0 {
		return Hit{}, false
	}
	if t.p3.Sub(t.p2).Cross(intersect.Sub(t.p2)).Dot(n) < 0.0 {
		return Hit{}, false
	}
	if t.p1.Sub(t.p3).Cross(intersect.Sub(t.p3)).Dot(n) < 0.0 {
		return Hit{}, false
	}
	
	return newHit(r, param, t.normal), true
}
