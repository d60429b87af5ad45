// Package geom provides shared geometry functionality for use by the tracer and the viewer.
package geom

import (
	"github.com/fogleman/fauxgl"
	"fmt"
	"math"
)

// Matrix represents a 4x4 transform stored in row-major order.
//
// Matrices act on column vectors (M·v), so in a.Mul(b) the transform b is applied first.
// Every Apply method follows that convention.
type Matrix struct {
	m [16]float64
}

// Identity is the multiplicative identity for matrix composition.
// This should be const, but Go doesn't let us have const structs.  Treat it as read-only.
var Identity Matrix = Matrix{m: [16]float64{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}}

// NewMatrix creates a matrix from 16 row-major entries.
func NewMatrix(entries [16]float64) Matrix {
	return Matrix{m: entries}
}

// Rows creates a matrix from its four rows.
func Rows(r0, r1, r2, r3 [4]float64) Matrix {
	var m Matrix
	for i, r := range [4][4]float64{r0, r1, r2, r3} {
		copy(m.m[i * 4:i * 4 + 4], r[:])
	}
	return m
}

// Translation returns the matrix that displaces points by v.
func Translation(v Vector) Matrix {
	return Rows(
		[4]float64{1, 0, 0, v.X},
		[4]float64{0, 1, 0, v.Y},
		[4]float64{0, 0, 1, v.Z},
		[4]float64{0, 0, 0, 1},
	)
}

// Scaling returns the matrix that scales each axis independently.
func Scaling(x, y, z float64) Matrix {
	return Rows(
		[4]float64{x, 0, 0, 0},
		[4]float64{0, y, 0, 0},
		[4]float64{0, 0, z, 0},
		[4]float64{0, 0, 0, 1},
	)
}

// Rotation returns the matrix that rotates theta radians around axis.
// It agrees with Vector.Rotate.
func Rotation(axis Unit, theta float64) Matrix {
	c, s := math.Cos(theta), math.Sin(theta)
	t := 1.0 - c
	x, y, z := axis.x, axis.y, axis.z
	return Rows(
		[4]float64{t * x * x + c, t * x * y - s * z, t * x * z + s * y, 0},
		[4]float64{t * x * y + s * z, t * y * y + c, t * y * z - s * x, 0},
		[4]float64{t * x * z - s * y, t * y * z + s * x, t * z * z + c, 0},
		[4]float64{0, 0, 0, 1},
	)
}

// At returns the entry in row i and column j.
func (a Matrix) At(i, j int) (float64, error) {
	if i < 0 || i >= 4 || j < 0 || j >= 4 {
		return 0, fmt.Errorf("matrix entry (%d, %d): %w", i, j, ErrIndexOutOfRange)
	}
	return a.m[i * 4 + j], nil
}

// Row returns row i of the matrix.
func (a Matrix) Row(i int) ([4]float64, error) {
	var r [4]float64
	if i < 0 || i >= 4 {
		return r, fmt.Errorf("matrix row %d: %w", i, ErrIndexOutOfRange)
	}
	copy(r[:], a.m[i * 4:i * 4 + 4])
	return r, nil
}

// RowVector returns the first three columns of row i as a direction.
func (a Matrix) RowVector(i int) (Vector, error) {
	r, err := a.Row(i)
	if err != nil {
		return Vector{}, err
	}
	return Vector{X: r[0], Y: r[1], Z: r[2]}, nil
}

// Mul returns the product a·b.
// Applied to a point or vector, b acts first and a second.
func (a Matrix) Mul(b Matrix) Matrix {
	var r Matrix
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += a.m[i * 4 + k] * b.m[k * 4 + j]
			}
			r.m[i * 4 + j] = sum
		}
	}
	return r
}

// Transpose returns the transpose of a.
func (a Matrix) Transpose() Matrix {
	var r Matrix
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r.m[i * 4 + j] = a.m[j * 4 + i]
		}
	}
	return r
}

// Add returns the entry-wise sum of a and b.
func (a Matrix) Add(b Matrix) Matrix {
	var r Matrix
	for i := range a.m {
		r.m[i] = a.m[i] + b.m[i]
	}
	return r
}

// ScaleBy multiplies every entry of a by k.
// This is not a geometric scale; use Scaling for that.
func (a Matrix) ScaleBy(k float64) Matrix {
	var r Matrix
	for i, v := range a.m {
		r.m[i] = v * k
	}
	return r
}

// Equal reports whether every entry of a is within eps of the matching entry of b.
func (a Matrix) Equal(b Matrix, eps float64) bool {
	for i := range a.m {
		if math.Abs(a.m[i] - b.m[i]) > eps {
			return false
		}
	}
	return true
}

// toFauxgl converts a into fauxgl's matrix, which uses the same row-major layout.
func (a Matrix) toFauxgl() fauxgl.Matrix {
	m := a.m
	return fauxgl.Matrix{
		X00: m[0], X01: m[1], X02: m[2], X03: m[3],
		X10: m[4], X11: m[5], X12: m[6], X13: m[7],
		X20: m[8], X21: m[9], X22: m[10], X23: m[11],
		X30: m[12], X31: m[13], X32: m[14], X33: m[15],
	}
}

// fromFauxgl converts one of fauxgl's matrices back into a Matrix.
func fromFauxgl(f fauxgl.Matrix) Matrix {
	return Matrix{m: [16]float64{
		f.X00, f.X01, f.X02, f.X03,
		f.X10, f.X11, f.X12, f.X13,
		f.X20, f.X21, f.X22, f.X23,
		f.X30, f.X31, f.X32, f.X33,
	}}
}

// Determinant returns the determinant of a.
func (a Matrix) Determinant() float64 {
	return a.toFauxgl().Determinant()
}

// Inverse returns the inverse of a, or ErrDivisionByZero if a is singular.
func (a Matrix) Inverse() (Matrix, error) {
	f := a.toFauxgl()
	if math.Abs(f.Determinant()) < epsilon {
		return Matrix{}, fmt.Errorf("inverting singular matrix: %w", ErrDivisionByZero)
	}
	return fromFauxgl(f.Inverse()), nil
}

// linear returns the upper-left 3x3 block of a, padded back out to an affine 4x4.
func (a Matrix) linear() Matrix {
	return Rows(
		[4]float64{a.m[0], a.m[1], a.m[2], 0},
		[4]float64{a.m[4], a.m[5], a.m[6], 0},
		[4]float64{a.m[8], a.m[9], a.m[10], 0},
		[4]float64{0, 0, 0, 1},
	)
}

// ApplyToVector transforms the direction v by a.
// Only the upper-left 3x3 block is used, since directions are unaffected by translation.
func (a Matrix) ApplyToVector(v Vector) Vector {
	return Vector{
		X: a.m[0] * v.X + a.m[1] * v.Y + a.m[2] * v.Z,
		Y: a.m[4] * v.X + a.m[5] * v.Y + a.m[6] * v.Z,
		Z: a.m[8] * v.X + a.m[9] * v.Y + a.m[10] * v.Z,
	}
}

// ApplyToPoint transforms the point p by a, including the perspective divide.
// If the transformed w is (nearly) zero, ErrDivisionByZero is returned.
func (a Matrix) ApplyToPoint(p Point) (Point, error) {
	h := p.lift()
	r := homogeneous{
		x: a.m[0] * h.x + a.m[1] * h.y + a.m[2] * h.z + a.m[3] * h.w,
		y: a.m[4] * h.x + a.m[5] * h.y + a.m[6] * h.z + a.m[7] * h.w,
		z: a.m[8] * h.x + a.m[9] * h.y + a.m[10] * h.z + a.m[11] * h.w,
		w: a.m[12] * h.x + a.m[13] * h.y + a.m[14] * h.z + a.m[15] * h.w,
	}
	q, ok := r.project()
	if !ok {
		return Point{}, fmt.Errorf("transforming point %v: w is %g: %w", p, r.w, ErrDivisionByZero)
	}
	return q, nil
}

// ApplyToNormal transforms the normal n by the inverse-transpose of a's 3x3 block.
// This keeps n perpendicular to surfaces transformed by a, even under non-uniform scaling.
// A singular block returns ErrDivisionByZero.
func (a Matrix) ApplyToNormal(n Normal) (Normal, error) {
	inv, err := a.linear().Inverse()
	if err != nil {
		return Normal{}, fmt.Errorf("transforming normal %v: %w", n, err)
	}
	
	// Multiplying by the transpose means walking the inverse's columns instead of its rows.
	return Normal{
		X: inv.m[0] * n.X + inv.m[4] * n.Y + inv.m[8] * n.Z,
		Y: inv.m[1] * n.X + inv.m[5] * n.Y + inv.m[9] * n.Z,
		Z: inv.m[2] * n.X + inv.m[6] * n.Y + inv.m[10] * n.Z,
	}, nil
}

// ApplyToNormalForward transforms n by a's 3x3 block directly, as if it were a vector.
// This is only correct for rotations and uniform scales, and exists for compatibility with
// scenes built around that behaviour.  New code should use ApplyToNormal.
func (a Matrix) ApplyToNormalForward(n Normal) Normal {
	v := a.ApplyToVector(n.Vector())
	return Normal{X: v.X, Y: v.Y, Z: v.Z}
}

// ApplyToRay transforms the ray r by a.  It is the same as r.Transform(a).
func (a Matrix) ApplyToRay(r Ray) (Ray, error) {
	return r.Transform(a)
}
