// Package state provides shared state information for use by the tracer and the viewer.
package state

import (
	"github.com/rwmorton/raytracer/shared/geom"
	"github.com/rwmorton/raytracer/shared/scene"
	"github.com/fogleman/fauxgl"
	"errors"
	"fmt"
	"math"
)

// loadMesh reads a triangle mesh from an OBJ, STL, PLY, or 3DS file.
func loadMesh(path string) (mesh *fauxgl.Mesh, err error) {
	// fauxgl indexes straight into its vertex lists, so a malformed face panics instead of failing.
	defer func() {
		if r := recover(); r != nil {
			mesh, err = nil, fmt.Errorf("mesh %q is malformed: %v: %w", path, r, ErrConfig)
		}
	}()
	
	if mesh, err = fauxgl.LoadMesh(path); err != nil {
		return nil, fmt.Errorf("mesh %q: %w: %w", path, err, ErrConfig)
	}
	return mesh, nil
}

// meshTransform builds the matrix placing a mesh in the scene: scale first, then translate.
func meshTransform(scale float64, translate []float64) (geom.Matrix, error) {
	if scale == 0.0 {
		scale = 1.0
	}
	if !(scale > 0.0) || math.IsInf(scale, 1) {
		return geom.Matrix{}, fmt.Errorf("mesh scale %g: %w", scale, ErrConfig)
	}
	offset := geom.Vector{}
	if translate != nil {
		x, y, z, err := triple("translate", translate)
		if err != nil {
			return geom.Matrix{}, err
		}
		offset = geom.Vector{X: x, Y: y, Z: z}
	}
	return geom.Translation(offset).Mul(geom.Scaling(scale, scale, scale)), nil
}

// meshTriangles loads the mesh at path and returns each of its faces as a triangle, placed by m.
// Degenerate faces are skipped; a mesh with no usable faces is an error.
func meshTriangles(path string, m geom.Matrix) ([]scene.Primitive, error) {
	mesh, err := loadMesh(path)
	if err != nil {
		return nil, err
	}
	
	triangles := make([]scene.Primitive, 0, len(mesh.Triangles))
	for i, t := range mesh.Triangles {
		// Move each vertex into place.
		var verts [3]geom.Point
		for v, vertex := range [3]fauxgl.Vertex{t.V1, t.V2, t.V3} {
			pos := vertex.Position
			if verts[v], err = m.ApplyToPoint(geom.Point{X: pos.X, Y: pos.Y, Z: pos.Z}); err != nil {
				return nil, fmt.Errorf("mesh %q face %d: %w", path, i, err)
			}
		}
		
		tri, err := scene.NewTriangle(verts[0], verts[1], verts[2])
		if errors.Is(err, scene.ErrDegenerate) {
			continue
		}else if err != nil {
			return nil, fmt.Errorf("mesh %q face %d: %w", path, i, err)
		}
		triangles = append(triangles, tri)
	}
	
	if len(triangles) == 0 {
		return nil, fmt.Errorf("mesh %q has no usable faces: %w", path, ErrConfig)
	}
	return triangles, nil
}
