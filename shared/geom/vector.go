// Package geom provides shared geometry functionality for use by the tracer and the viewer.
package geom

import (
	"fmt"
	"math"
)

// Vector represents a free direction in 3-dimensional space (w is implicitly 0).
type Vector struct {
	X float64
	Y float64
	Z float64
}

// Add returns the sum of vectors a and b.
func (a Vector) Add(b Vector) Vector {
	return Vector{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z}
}

// Sub returns the difference of vectors a and b.
func (a Vector) Sub(b Vector) Vector {
	return Vector{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z}
}

// Scale returns the vector a multiplied by the scalar s.
func (a Vector) Scale(s float64) Vector {
	return Vector{X: s * a.X, Y: s * a.Y, Z: s * a.Z}
}

// Neg returns the vector a pointing the opposite way.
func (a Vector) Neg() Vector {
	return Vector{X: -a.X, Y: -a.Y, Z: -a.Z}
}

// Dot returns the dot product of the vectors a and b.
func (a Vector) Dot(b Vector) float64 {
	return a.X * b.X + a.Y * b.Y + a.Z * b.Z
}

// Cross returns the (right-handed) cross product of the vectors a and b.
func (a Vector) Cross(b Vector) Vector {
	return Vector{X: a.Y * b.Z - a.Z * b.Y, Y: a.Z * b.X - a.X * b.Z, Z: a.X * b.Y - a.Y * b.X}
}

// Rotate returns the vector a rotated theta radians around the unit vector b.
func (a Vector) Rotate(b Unit, theta float64) Vector {
	// This uses Rodrigues' rotation formula.
	axis := b.Vector()
	return a.Scale(math.Cos(theta)).Add(axis.Cross(a).Scale(math.Sin(theta))).Add(axis.Scale(axis.Dot(a) * (1.0 - math.Cos(theta))))
}

// Zero returns whether the vector a is a zero vector.
func (a Vector) Zero() bool {
	return a.X == 0.0 && a.Y == 0.0 && a.Z == 0.0
}

// LenSq returns the squared length of the vector a.
// Prefer this over Len when only comparing lengths.
func (a Vector) LenSq() float64 {
	return a.Dot(a)
}

// Len returns the length of the vector a.
func (a Vector) Len() float64 {
	return length3(a.X, a.Y, a.Z)
}

// Norm returns the normalized form of the vector a.
// A zero-length vector cannot be normalized, so ErrDivisionByZero is returned for it.
// A vector with a NaN or infinite component returns ErrNonFinite.
func (a Vector) Norm() (Vector, error) {
	x, y, z, err := normalize3(a.X, a.Y, a.Z)
	if err != nil {
		return Vector{}, fmt.Errorf("normalizing %v: %w", a, err)
	}
	return Vector{X: x, Y: y, Z: z}, nil
}

// Finite reports whether every component of a is a finite number.
func (a Vector) Finite() bool {
	return finite(a.X, a.Y, a.Z)
}

// Normalize normalizes the vector a in place.
// On failure a is left untouched.
func (a *Vector) Normalize() error {
	n, err := a.Norm()
	if err != nil {
		return err
	}
	*a = n
	return nil
}

// Unit returns the vector a as a unit-length direction.
func (a Vector) Unit() (Unit, error) {
	n, err := a.Norm()
	if err != nil {
		return Unit{}, err
	}
	return Unit{x: n.X, y: n.Y, z: n.Z}, nil
}

// Unit represents a vector of length one.
// The only way to get a non-zero Unit is by normalizing a Vector, which is what lets
// intersection routines rely on their directions being unit length.
type Unit struct {
	x, y, z float64
}

// These are the unit vectors along each axis.
// Go doesn't let us have const structs, so treat them as read-only.
var (
	UnitX Unit = Unit{1, 0, 0}
	UnitY Unit = Unit{0, 1, 0}
	UnitZ Unit = Unit{0, 0, 1}
)

// X returns the x component of u.
func (u Unit) X() float64 { return u.x }

// Y returns the y component of u.
func (u Unit) Y() float64 { return u.y }

// Z returns the z component of u.
func (u Unit) Z() float64 { return u.z }

// Vector returns u as a plain vector.
func (u Unit) Vector() Vector {
	return Vector{X: u.x, Y: u.y, Z: u.z}
}

// Neg returns u pointing the opposite way.
func (u Unit) Neg() Unit {
	return Unit{x: -u.x, y: -u.y, z: -u.z}
}

// Dot returns the dot product of u and the vector v.
func (u Unit) Dot(v Vector) float64 {
	return u.x * v.X + u.y * v.Y + u.z * v.Z
}

// String formats u like a Vector.
func (u Unit) String() string {
	return fmt.Sprint(u.Vector())
}

// largest returns the largest magnitude of x, y, and z.
func largest(x, y, z float64) float64 {
	return math.Max(math.Abs(x), math.Max(math.Abs(y), math.Abs(z)))
}

// length3 returns the length of (x, y, z).
// The components are scaled by the largest one first, so the squares can't overflow or underflow.
func length3(x, y, z float64) float64 {
	m := largest(x, y, z)
	if m == 0.0 || math.IsInf(m, 1) || math.IsNaN(m) {
		return m
	}
	x, y, z = x / m, y / m, z / m
	return m * math.Sqrt(x * x + y * y + z * z)
}

// normalize3 returns (x, y, z) scaled to unit length.
func normalize3(x, y, z float64) (float64, float64, float64, error) {
	if !finite(x, y, z) {
		return 0, 0, 0, ErrNonFinite
	}
	m := largest(x, y, z)
	if m == 0.0 {
		return 0, 0, 0, ErrDivisionByZero
	}
	
	// After this the largest component is 1, so the length lies in [1, sqrt(3)].
	x, y, z = x / m, y / m, z / m
	mag := math.Sqrt(x * x + y * y + z * z)
	return x / mag, y / mag, z / mag, nil
}
