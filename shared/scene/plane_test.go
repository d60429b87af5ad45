package scene

import (
	"github.com/rwmorton/raytracer/shared/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math"
	"testing"
)

func TestNewPlane(t *testing.T) {
	pl, err := NewPlane(geom.Point{X: 1, Y: 2, Z: 3}, geom.Normal{X: 0, Y: 0, Z: -4})
	require.NoError(t, err)
	assert.Equal(t, geom.Point{X: 1, Y: 2, Z: 3}, pl.Point())
	assert.Equal(t, geom.Normal{X: 0, Y: 0, Z: -1}, pl.Normal())
	
	_, err = NewPlane(geom.Point{}, geom.Normal{})
	assert.ErrorIs(t, err, ErrDegenerate)
	assert.ErrorIs(t, err, geom.ErrInvalidConstruction)
}

func TestPlaneHit(t *testing.T) {
	pl, err := NewPlane(geom.Point{X: 0, Y: 0, Z: 0}, geom.Normal{X: 0, Y: 1, Z: 0})
	require.NoError(t, err)
	r := mustRay(t, geom.Point{X: 0, Y: 10, Z: 0}, geom.Vector{X: 0, Y: -1, Z: 0})
	
	h, hit := pl.Hit(r, math.Inf(1))
	require.True(t, hit)
	assert.Equal(t, 10.0, h.T)
	assert.Equal(t, geom.Point{X: 0, Y: 0, Z: 0}, h.Point)
	assert.True(t, h.FrontFace)
	
	// Moving the plane up moves the hit with it.
	pl, err = NewPlane(geom.Point{X: 0, Y: 5, Z: 0}, geom.Normal{X: 0, Y: 1, Z: 0})
	require.NoError(t, err)
	h, hit = pl.Hit(r, math.Inf(1))
	require.True(t, hit)
	assert.Equal(t, geom.Point{X: 0, Y: 5, Z: 0}, h.Point)
}

func TestPlaneParallel(t *testing.T) {
	pl, err := NewPlane(geom.Point{X: 0, Y: 0, Z: 0}, geom.Normal{X: 0, Y: 1, Z: 0})
	require.NoError(t, err)
	
	// Both off the plane and lying in it, a parallel ray is a miss rather than NaN or Inf.
	for _, o := range []geom.Point{{X: 0, Y: 1, Z: 0}, {X: 0, Y: 0, Z: 0}} {
		h, hit := pl.Hit(mustRay(t, o, geom.Vector{X: 1, Y: 0, Z: 0}), math.Inf(1))
		assert.False(t, hit)
		assert.False(t, math.IsNaN(h.T) || math.IsInf(h.T, 0))
	}
}

func TestPlaneBehindOrOnOrigin(t *testing.T) {
	pl, err := NewPlane(geom.Point{X: 0, Y: 0, Z: 0}, geom.Normal{X: 0, Y: 1, Z: 0})
	require.NoError(t, err)
	
	_, hit := pl.Hit(mustRay(t, geom.Point{X: 0, Y: 10, Z: 0}, geom.Vector{X: 0, Y: 1, Z: 0}), math.Inf(1))
	assert.False(t, hit, "plane behind the ray")
	
	_, hit = pl.Hit(mustRay(t, geom.Point{X: 0, Y: 0, Z: 0}, geom.Vector{X: 0, Y: 1, Z: 1}), math.Inf(1))
	assert.False(t, hit, "ray starting on the plane")
}

func TestPlaneBackFace(t *testing.T) {
	pl, err := NewPlane(geom.Point{X: 0, Y: 0, Z: 0}, geom.Normal{X: 0, Y: 1, Z: 0})
	require.NoError(t, err)
	
	h, hit := pl.Hit(mustRay(t, geom.Point{X: 0, Y: -3, Z: 0}, geom.Vector{X: 0, Y: 1, Z: 0}), math.Inf(1))
	require.True(t, hit)
	assert.Equal(t, 3.0, h.T)
	assert.False(t, h.FrontFace)
}

func TestPlaneNonFinite(t *testing.T) {
	_, err := NewPlane(geom.Point{X: math.NaN(), Y: 0, Z: 0}, geom.Normal{X: 0, Y: 1, Z: 0})
	assert.ErrorIs(t, err, geom.ErrNonFinite)
	_, err = NewPlane(geom.Point{}, geom.Normal{X: 0, Y: math.Inf(1), Z: 0})
	assert.ErrorIs(t, err, geom.ErrInvalidConstruction)
	
	pl, err := NewPlane(geom.Point{X: 0, Y: -1, Z: 0}, geom.Normal{X: 0, Y: 1, Z: 0})
	require.NoError(t, err)
	_, hit := pl.Hit(geom.Ray{O: geom.Point{X: 0, Y: math.NaN(), Z: 0}, D: geom.UnitY.Neg()}, math.Inf(1))
	assert.False(t, hit)
}
