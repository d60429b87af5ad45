// Package tracer provides ray-tracing functionality shared by the viewer's windowed and headless modes.
package tracer

import (
	"github.com/rwmorton/raytracer/shared/colour"
	"github.com/rwmorton/raytracer/shared/film"
	"github.com/rwmorton/raytracer/shared/scene"
	"github.com/rwmorton/raytracer/shared/state"
	"github.com/rwmorton/raytracer/shared/geom"
)

// Stats summarizes one rendered frame.
type Stats struct {
	Rays int		// The number of rays cast.
	Hits int		// The number of rays which hit something.
	Rejected int	// The number of hits whose colour could not be built (left as background).
}

// PixelRay returns the ray through pixel (i, j) of the film.
// The parameters i and j must be in the range [0, width) and [0, height) respectively.
func PixelRay(i, j int, f *film.Film, cam state.Camera) geom.Ray {
	u, v := f.NDC(i, j)
	return cam.Ray(u, v)
}

// Shade picks the colour of a hit from its surface normal.
func Shade(h scene.Hit) (colour.RGBA, error) {
	return colour.FromNormal(h.Normal)
}

// Trace traces a single ray through the pixel (i, j) and into a scene.
// The returned hit says what was seen, and which primitive it belongs to.
func Trace(i, j int, f *film.Film, env *state.Environment) (scene.Hit, bool) {
	return env.World.Hit(PixelRay(i, j, f, env.Cam))
}

// Render traces every pixel of the film, one after another.
// Pixels whose rays hit nothing are left as the background colour.
func Render(f *film.Film, env *state.Environment) (Stats, error) {
	var stats Stats
	f.Clear(env.Background)
	
	// For every pixel on the film...
	for i := 0; i < f.Width(); i++ {
		for j := 0; j < f.Height(); j++ {
			stats.Rays++
			
			// If an object was hit, colour the pixel.
			h, hit := Trace(i, j, f, env)
			if !hit {
				continue
			}
			stats.Hits++
			c, err := Shade(h)
			if err != nil {
				stats.Rejected++
				continue
			}
			if err := f.WritePixel(i, j, c); err != nil {
				return stats, err
			}
		}
	}
	
	return stats, nil
}
