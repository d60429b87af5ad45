package scene

import (
	"github.com/rwmorton/raytracer/shared/geom"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math"
	"testing"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

// mustRay builds a ray for a test, failing it if the direction is zero.
func mustRay(t *testing.T, o geom.Point, d geom.Vector) geom.Ray {
	t.Helper()
	r, err := geom.NewRay(o, d)
	require.NoError(t, err)
	return r
}

// mustSphere builds a sphere for a test.
func mustSphere(t *testing.T, c geom.Point, radius float64) Sphere {
	t.Helper()
	s, err := NewSphere(c, radius)
	require.NoError(t, err)
	return s
}

func TestNewSphere(t *testing.T) {
	s := mustSphere(t, geom.Point{X: 1, Y: 2, Z: 3}, 1.234)
	assert.Equal(t, geom.Point{X: 1, Y: 2, Z: 3}, s.Center())
	assert.Equal(t, 1.234, s.Radius())
	
	for _, radius := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := NewSphere(geom.Point{}, radius)
		assert.ErrorIs(t, err, ErrInvalidRadius, "radius %g", radius)
		assert.ErrorIs(t, err, geom.ErrInvalidConstruction, "radius %g", radius)
	}
}

func TestSphereHit(t *testing.T) {
	s := mustSphere(t, geom.Point{X: 0, Y: 0, Z: 5}, 1)
	r := mustRay(t, geom.Point{X: 0, Y: 0, Z: 0}, geom.Vector{X: 0, Y: 0, Z: 1})
	
	h, hit := s.Hit(r, math.Inf(1))
	require.True(t, hit)
	assert.Equal(t, 4.0, h.T)
	assert.Equal(t, geom.Point{X: 0, Y: 0, Z: 4}, h.Point)
	assert.Equal(t, geom.Normal{X: 0, Y: 0, Z: -1}, h.Normal)
	assert.True(t, h.FrontFace)
}

func TestSphereMiss(t *testing.T) {
	s := mustSphere(t, geom.Point{X: 0, Y: 0, Z: 5}, 1)
	
	tests := []struct {
		name string
		r geom.Ray
	}{
		{"pointing away", mustRay(t, geom.Point{X: 0, Y: 0, Z: 0}, geom.Vector{X: 0, Y: 0, Z: -1})},
		{"passing beside", mustRay(t, geom.Point{X: 0, Y: 2, Z: 0}, geom.Vector{X: 0, Y: 0, Z: 1})},
		{"passing above at an angle", mustRay(t, geom.Point{X: 0, Y: 0, Z: 0}, geom.Vector{X: 0, Y: 1, Z: 1})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, hit := s.Hit(tt.r, math.Inf(1))
			assert.False(t, hit)
		})
	}
}

func TestSphereTangent(t *testing.T) {
	s := mustSphere(t, geom.Point{X: 0, Y: 1, Z: 5}, 1)
	r := mustRay(t, geom.Point{X: 0, Y: 0, Z: 0}, geom.Vector{X: 0, Y: 0, Z: 1})
	
	h, hit := s.Hit(r, math.Inf(1))
	require.True(t, hit, "a tangent ray should touch the sphere once")
	assert.Equal(t, 5.0, h.T)
	assert.Equal(t, geom.Point{X: 0, Y: 0, Z: 5}, h.Point)
	assert.Equal(t, geom.Normal{X: 0, Y: -1, Z: 0}, h.Normal)
}

func TestSphereOriginInside(t *testing.T) {
	s := mustSphere(t, geom.Point{X: 0, Y: 0, Z: 0}, 2)
	r := mustRay(t, geom.Point{X: 1, Y: 0, Z: 0}, geom.Vector{X: 0, Y: 0, Z: 1})
	
	h, hit := s.Hit(r, math.Inf(1))
	require.True(t, hit)
	assert.Equal(t, 0.0, h.T)
	assert.Equal(t, r.O, h.Point)
	if diff := cmp.Diff(geom.Normal{X: 0.5, Y: 0, Z: 0}, h.Normal, approx); diff != "" {
		t.Errorf("normal mismatch (-want +got):\n%s", diff)
	}
}

func TestSphereRespectsNearest(t *testing.T) {
	s := mustSphere(t, geom.Point{X: 0, Y: 0, Z: 5}, 1)
	r := mustRay(t, geom.Point{X: 0, Y: 0, Z: 0}, geom.Vector{X: 0, Y: 0, Z: 1})
	
	_, hit := s.Hit(r, 4)
	assert.False(t, hit, "hits at or beyond tNearest are not reported")
	_, hit = s.Hit(r, 4.5)
	assert.True(t, hit)
}

func TestSphereObliqueHit(t *testing.T) {
	s := mustSphere(t, geom.Point{X: 0, Y: 0, Z: 0}, 1)
	r := mustRay(t, geom.Point{X: -5, Y: 0.5, Z: 0}, geom.Vector{X: 1, Y: 0, Z: 0})
	
	h, hit := s.Hit(r, math.Inf(1))
	require.True(t, hit)
	want := geom.Point{X: -math.Sqrt(0.75), Y: 0.5, Z: 0}
	if diff := cmp.Diff(want, h.Point, approx); diff != "" {
		t.Errorf("point mismatch (-want +got):\n%s", diff)
	}
	assert.InDelta(t, 1.0, h.Normal.Len(), 1e-12)
}

func TestSphereNonFinite(t *testing.T) {
	_, err := NewSphere(geom.Point{X: math.NaN(), Y: 0, Z: 0}, 1)
	assert.ErrorIs(t, err, geom.ErrNonFinite)
	_, err = NewSphere(geom.Point{X: 0, Y: math.Inf(1), Z: 0}, 1)
	assert.ErrorIs(t, err, geom.ErrInvalidConstruction)
	
	// Rays built by hand can still carry a NaN origin; they never hit.
	s := mustSphere(t, geom.Point{X: 0, Y: 0, Z: 5}, 1)
	_, hit := s.Hit(geom.Ray{O: geom.Point{X: math.NaN(), Y: 0, Z: 0}, D: geom.UnitZ}, math.Inf(1))
	assert.False(t, hit)
	
	// Neither does the zero Sphere, which has no radius.
	_, hit = Sphere{}.Hit(mustRay(t, geom.Point{X: 0, Y: 0, Z: -5}, geom.Vector{X: 0, Y: 0, Z: 1}), math.Inf(1))
	assert.False(t, hit)
}
