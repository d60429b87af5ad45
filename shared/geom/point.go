// Package geom provides shared geometry functionality for use by the tracer and the viewer.
package geom

import "math"

// Point represents an affine position in 3-dimensional space (w is implicitly 1).
type Point struct {
	X float64
	Y float64
	Z float64
}

// Add returns the point p displaced by the vector v.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y, Z: p.Z + v.Z}
}

// SubVector returns the point p displaced by the negation of v.
func (p Point) SubVector(v Vector) Point {
	return Point{X: p.X - v.X, Y: p.Y - v.Y, Z: p.Z - v.Z}
}

// Sub returns the displacement from q to p.
func (p Point) Sub(q Point) Vector {
	return Vector{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// DistanceSq returns the squared distance between p and q.
func (p Point) DistanceSq(q Point) float64 {
	return p.Sub(q).LenSq()
}

// Distance returns the distance between p and q.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Len()
}

// Finite reports whether every coordinate of p is a finite number.
func (p Point) Finite() bool {
	return finite(p.X, p.Y, p.Z)
}

// Vector returns the displacement of p from the origin.
func (p Point) Vector() Vector {
	return Vector{X: p.X, Y: p.Y, Z: p.Z}
}

// homogeneous is a point with an explicit w, used while a point passes through a matrix.
type homogeneous struct {
	x, y, z, w float64
}

// lift returns p in homogeneous form.
func (p Point) lift() homogeneous {
	return homogeneous{x: p.X, y: p.Y, z: p.Z, w: 1.0}
}

// project performs the perspective divide, returning false if w is too close to zero.
func (h homogeneous) project() (Point, bool) {
	if math.Abs(h.w) < epsilon {
		return Point{}, false
	}
	return Point{X: h.x / h.w, Y: h.y / h.w, Z: h.z / h.w}, true
}
