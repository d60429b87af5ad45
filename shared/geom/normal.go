// Package geom provides shared geometry functionality for use by the tracer and the viewer.
package geom

import "fmt"

// Normal represents a surface normal in 3-dimensional space.
// Normals transform differently to vectors; see Matrix.ApplyToNormal.
type Normal struct {
	X float64
	Y float64
	Z float64
}

// Neg returns the normal n pointing the opposite way.
func (n Normal) Neg() Normal {
	return Normal{X: -n.X, Y: -n.Y, Z: -n.Z}
}

// Scale returns the normal n multiplied by the scalar s.
func (n Normal) Scale(s float64) Normal {
	return Normal{X: s * n.X, Y: s * n.Y, Z: s * n.Z}
}

// Add returns the sum of normals n and m.
func (n Normal) Add(m Normal) Normal {
	return Normal{X: n.X + m.X, Y: n.Y + m.Y, Z: n.Z + m.Z}
}

// AddVector returns the sum of the normal n and the vector v as a vector.
func (n Normal) AddVector(v Vector) Vector {
	return Vector{X: n.X + v.X, Y: n.Y + v.Y, Z: n.Z + v.Z}
}

// Dot returns the dot product of the normal n and the vector v.
func (n Normal) Dot(v Vector) float64 {
	return n.X * v.X + n.Y * v.Y + n.Z * v.Z
}

// LenSq returns the squared length of n.
func (n Normal) LenSq() float64 {
	return n.X * n.X + n.Y * n.Y + n.Z * n.Z
}

// Len returns the length of n.
func (n Normal) Len() float64 {
	return length3(n.X, n.Y, n.Z)
}

// Norm returns n scaled to unit length, or ErrDivisionByZero if n has no length.
func (n Normal) Norm() (Normal, error) {
	x, y, z, err := normalize3(n.X, n.Y, n.Z)
	if err != nil {
		return Normal{}, fmt.Errorf("normalizing normal %v: %w", n, err)
	}
	return Normal{X: x, Y: y, Z: z}, nil
}

// Vector returns n as a plain vector.
func (n Normal) Vector() Vector {
	return Vector{X: n.X, Y: n.Y, Z: n.Z}
}
