package scene

import (
	"github.com/rwmorton/raytracer/shared/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math"
	"testing"
)

func TestNewTriangle(t *testing.T) {
	tri, err := NewTriangle(geom.Point{X: 0, Y: 0, Z: 0}, geom.Point{X: 2, Y: 0, Z: 0}, geom.Point{X: 0, Y: 2, Z: 0})
	require.NoError(t, err)
	p1, p2, p3 := tri.Vertices()
	assert.Equal(t, []geom.Point{{X: 0, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0}, {X: 0, Y: 2, Z: 0}}, []geom.Point{p1, p2, p3})
	
	_, err = NewTriangle(geom.Point{X: 0, Y: 0, Z: 0}, geom.Point{X: 1, Y: 1, Z: 1}, geom.Point{X: 2, Y: 2, Z: 2})
	assert.ErrorIs(t, err, ErrDegenerate)
}

func TestTriangleHit(t *testing.T) {
	tri, err := NewTriangle(geom.Point{X: 0, Y: 0, Z: 0}, geom.Point{X: 2, Y: 0, Z: 0}, geom.Point{X: 0, Y: 2, Z: 0})
	require.NoError(t, err)
	
	h, hit := tri.Hit(mustRay(t, geom.Point{X: 0.5, Y: 0.5, Z: -2}, geom.Vector{X: 0, Y: 0, Z: 1}), math.Inf(1))
	require.True(t, hit)
	assert.Equal(t, 2.0, h.T)
	assert.Equal(t, geom.Point{X: 0.5, Y: 0.5, Z: 0}, h.Point)
	assert.Equal(t, geom.Normal{X: 0, Y: 0, Z: 1}, h.Normal)
	assert.False(t, h.FrontFace)
	
	_, hit = tri.Hit(mustRay(t, geom.Point{X: 1.5, Y: 1.5, Z: -2}, geom.Vector{X: 0, Y: 0, Z: 1}), math.Inf(1))
	assert.False(t, hit, "outside the hypotenuse")
	
	_, hit = tri.Hit(mustRay(t, geom.Point{X: 0.5, Y: 0.5, Z: -2}, geom.Vector{X: 1, Y: 0, Z: 0}), math.Inf(1))
	assert.False(t, hit, "parallel to the triangle")
}

func TestTriangleNonFinite(t *testing.T) {
	_, err := NewTriangle(geom.Point{X: 0, Y: 0, Z: 0}, geom.Point{X: math.Inf(1), Y: 0, Z: 0}, geom.Point{X: 0, Y: 2, Z: 0})
	assert.ErrorIs(t, err, geom.ErrNonFinite)
	
	tri, err := NewTriangle(geom.Point{X: 0, Y: 0, Z: 0}, geom.Point{X: 2, Y: 0, Z: 0}, geom.Point{X: 0, Y: 2, Z: 0})
	require.NoError(t, err)
	_, hit := tri.Hit(geom.Ray{O: geom.Point{X: 0.5, Y: 0.5, Z: math.NaN()}, D: geom.UnitZ}, math.Inf(1))
	assert.False(t, hit)
}
