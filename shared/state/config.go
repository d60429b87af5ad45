// Package state provides shared state information for use by the tracer and the viewer.
package state

import (
	"github.com/rwmorton/raytracer/shared/colour"
	"github.com/rwmorton/raytracer/shared/geom"
	"github.com/rwmorton/raytracer/shared/scene"
	"gopkg.in/yaml.v3"
	"fmt"
	"path/filepath"
	"io"
	"os"
)

// ErrConfig is returned when a scene config is malformed.
var ErrConfig = fmt.Errorf("invalid scene config: %w", geom.ErrInvalidConstruction)

// Config is the on-disk description of a scene and the window it is shown in.
type Config struct {
	Width int							`yaml:"width"`
	Height int							`yaml:"height"`
	Background []float64				`yaml:"background,omitempty"`
	Camera CameraConfig					`yaml:"camera"`
	Primitives []PrimitiveConfig		`yaml:"primitives"`
	Animation *AnimationConfig			`yaml:"animation,omitempty"`
	
	dir string	// The directory the config was read from, for resolving mesh paths.
}

// CameraConfig places the camera.
type CameraConfig struct {
	Pos []float64	`yaml:"pos"`
	Dir []float64	`yaml:"dir"`
}

// PrimitiveConfig describes one primitive.  Which fields are used depends on Type.
type PrimitiveConfig struct {
	Type string				`yaml:"type"`
	Center []float64		`yaml:"center,omitempty"`	// sphere
	Radius float64			`yaml:"radius,omitempty"`	// sphere
	Point []float64			`yaml:"point,omitempty"`		// plane
	Normal []float64		`yaml:"normal,omitempty"`	// plane
	Vertices [][]float64	`yaml:"vertices,omitempty"`	// triangle
	Path string				`yaml:"path,omitempty"`		// mesh
	Scale float64			`yaml:"scale,omitempty"`		// mesh
	Translate []float64		`yaml:"translate,omitempty"`	// mesh
}

// AnimationConfig bounces one sphere from side to side.
type AnimationConfig struct {
	Sphere int		`yaml:"sphere"`
	Speed float64	`yaml:"speed"`
}

// DefaultConfig returns a scene with a sphere bouncing in front of a tilted floor.
func DefaultConfig() *Config {
	return &Config{
		Width: 800,
		Height: 600,
		Background: []float64{0, 0, 0, 1},
		Camera: CameraConfig{Pos: []float64{0, 0, 0}, Dir: []float64{0, 0, 1}},
		Primitives: []PrimitiveConfig{
			{Type: "sphere", Center: []float64{0, 0, 1}, Radius: 0.5},
			{Type: "plane", Point: []float64{0, -1, 5}, Normal: []float64{0, 1, 0.25}},
		},
		Animation: &AnimationConfig{Sphere: 0, Speed: 0.01},
	}
}

// LoadYAML loads a config from a YAML reader.
// Unknown fields are rejected so that typos don't silently fall back to defaults.
func LoadYAML(r io.Reader) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrConfig)
	}
	return &c, nil
}

// ConfigFromFile loads a config from the YAML file at path.
func ConfigFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	
	c, err := LoadYAML(f)
	if err != nil {
		return nil, err
	}
	c.dir = filepath.Dir(path)
	return c, nil
}

// triple converts a three element list into its components.
func triple(field string, v []float64) (float64, float64, float64, error) {
	if len(v) != 3 {
		return 0, 0, 0, fmt.Errorf("%s needs 3 components, got %d: %w", field, len(v), ErrConfig)
	}
	return v[0], v[1], v[2], nil
}

// point converts a three element list into a point.
func point(field string, v []float64) (geom.Point, error) {
	x, y, z, err := triple(field, v)
	return geom.Point{X: x, Y: y, Z: z}, err
}

// Build validates the config and turns it into an environment.
func (c *Config) Build() (Environment, error) {
	var env Environment
	if c.Width <= 0 || c.Height <= 0 {
		return env, fmt.Errorf("window size %dx%d: %w", c.Width, c.Height, ErrConfig)
	}
	
	// Set up the background, which defaults to opaque black.
	env.Background = colour.Black
	if c.Background != nil {
		if len(c.Background) != 4 {
			return env, fmt.Errorf("background needs 4 channels, got %d: %w", len(c.Background), ErrConfig)
		}
		bg, err := colour.NewRGBA(c.Background[0], c.Background[1], c.Background[2], c.Background[3])
		if err != nil {
			return env, fmt.Errorf("background: %w", err)
		}
		env.Background = bg
	}
	
	// Set up the camera.
	pos, err := point("camera.pos", c.Camera.Pos)
	if err != nil {
		return env, err
	}
	dx, dy, dz, err := triple("camera.dir", c.Camera.Dir)
	if err != nil {
		return env, err
	}
	if env.Cam, err = NewCamera(pos, geom.Vector{X: dx, Y: dy, Z: dz}); err != nil {
		return env, err
	}
	
	// Build every primitive in order, so that config order is world order.
	// A mesh adds all of its faces where it appears.
	env.World = scene.NewWorld(len(c.Primitives))
	for i, pc := range c.Primitives {
		ps, err := pc.build(c.dir)
		if err != nil {
			return Environment{}, fmt.Errorf("primitive %d: %w", i, err)
		}
		for _, p := range ps {
			if err := env.World.Add(p); err != nil {
				return Environment{}, fmt.Errorf("primitive %d: %w", i, err)
			}
		}
	}
	
	// Set up the animation, if there is one.
	if c.Animation != nil {
		p, err := env.World.Primitive(c.Animation.Sphere)
		if err != nil {
			return Environment{}, fmt.Errorf("animation: %w", err)
		}
		if _, ok := p.(scene.Sphere); !ok {
			return Environment{}, fmt.Errorf("animation: primitive %d is not a sphere: %w", c.Animation.Sphere, ErrConfig)
		}
		env.Animation = &Bounce{Index: c.Animation.Sphere, Speed: c.Animation.Speed}
	}
	
	return env, nil
}

// build creates the primitives described by pc.  Only meshes create more than one.
// Relative mesh paths are resolved against dir.
func (pc PrimitiveConfig) build(dir string) ([]scene.Primitive, error) {
	switch pc.Type {
	case "sphere":
		center, err := point("center", pc.Center)
		if err != nil {
			return nil, err
		}
		s, err := scene.NewSphere(center, pc.Radius)
		if err != nil {
			return nil, err
		}
		return []scene.Primitive{s}, nil
	case "plane":
		p, err := point("point", pc.Point)
		if err != nil {
			return nil, err
		}
		nx, ny, nz, err := triple("normal", pc.Normal)
		if err != nil {
			return nil, err
		}
		pl, err := scene.NewPlane(p, geom.Normal{X: nx, Y: ny, Z: nz})
		if err != nil {
			return nil, err
		}
		return []scene.Primitive{pl}, nil
	case "triangle":
		if len(pc.Vertices) != 3 {
			return nil, fmt.Errorf("triangle needs 3 vertices, got %d: %w", len(pc.Vertices), ErrConfig)
		}
		var verts [3]geom.Point
		for i, v := range pc.Vertices {
			var err error
			if verts[i], err = point(fmt.Sprintf("vertices[%d]", i), v); err != nil {
				return nil, err
			}
		}
		tri, err := scene.NewTriangle(verts[0], verts[1], verts[2])
		if err != nil {
			return nil, err
		}
		return []scene.Primitive{tri}, nil
	case "mesh":
		if pc.Path == "" {
			return nil, fmt.Errorf("mesh needs a path: %w", ErrConfig)
		}
		path := pc.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		m, err := meshTransform(pc.Scale, pc.Translate)
		if err != nil {
			return nil, err
		}
		return meshTriangles(path, m)
	default:
		return nil, fmt.Errorf("unknown primitive type %q: %w", pc.Type, ErrConfig)
	}
}
