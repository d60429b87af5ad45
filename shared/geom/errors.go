// Package geom provides shared geometry functionality for use by the tracer and the viewer.
package geom

import (
	"errors"
	"fmt"
	"math"
)

// These are the error kinds shared by every package built on geom.
// Callers should test for them with errors.Is, since they are usually wrapped with context.
var (
	ErrDivisionByZero      = errors.New("division by zero")
	ErrIndexOutOfRange     = errors.New("index out of range")
	ErrInvalidConstruction = errors.New("invalid construction")
	ErrNonFinite           = fmt.Errorf("NaN or infinite value: %w", ErrInvalidConstruction)
)

// epsilon is the magnitude below which a divisor is treated as zero.
const epsilon float64 = 1e-12

// finite reports whether none of the values are NaN or infinite.
func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
