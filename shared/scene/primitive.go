// Package scene provides the intersectable shapes of a scene and the world that holds them.
package scene

import (
	"github.com/rwmorton/raytracer/shared/geom"
	"fmt"
)

// HitEpsilon is the smallest t at which a plane or triangle reports a hit.
// Anything closer is treated as the ray starting on the surface.
const HitEpsilon float64 = 1e-9

// parallelEpsilon is the magnitude below which a ray is considered parallel to a surface.
const parallelEpsilon float64 = 1e-12

// These errors are returned when a shape or world is built from invalid input.
var (
	ErrInvalidRadius   = fmt.Errorf("sphere radius must be positive and finite: %w", geom.ErrInvalidConstruction)
	ErrDegenerate      = fmt.Errorf("shape has no surface: %w", geom.ErrInvalidConstruction)
	ErrNilPrimitive    = fmt.Errorf("primitive is nil: %w", geom.ErrInvalidConstruction)
)

// Hit describes where a ray meets a primitive.
type Hit struct {
	T float64			// The ray parameter of the intersection.
	Point geom.Point	// The point of intersection.
	Normal geom.Normal	// The outward unit normal at Point.
	FrontFace bool		// Whether the ray arrived against Normal (from outside).
	
	Index int			// The position of the primitive within its world (set by World.Hit).
	Primitive Primitive	// The primitive that was hit (set by World.Hit).
}

// Primitive is anything a ray can intersect.
type Primitive interface {
	// Hit returns the nearest intersection of r with the primitive, if one exists with a
	// ray parameter below tNearest.  Pass math.Inf(1) to accept any intersection.
	Hit(r geom.Ray, tNearest float64) (Hit, bool)
}

// newHit fills in the parts of a hit every primitive computes the same way.
func newHit(r geom.Ray, t float64, n geom.Normal) Hit {
	return Hit{
		T: t,
		Point: r.At(t),
		Normal: n,
		FrontFace: n.Dot(r.D.Vector()) < 0.0,
		Index: -1,
	}
}
