package main

import (
	"github.com/rwmorton/raytracer/shared/input"
	"github.com/rwmorton/raytracer/shared/state"
	"github.com/rwmorton/raytracer/shared/film"
	"github.com/rwmorton/raytracer/shared/geom"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"path/filepath"
	"context"
	"testing"
	"math"
	"os"
)

func TestCameraMove(t *testing.T) {
	cam, err := state.NewCamera(geom.Point{}, geom.Vector{X: 0, Y: 0, Z: 1})
	require.NoError(t, err)
	approx := cmpopts.EquateApprox(0, 1e-12)
	
	tests := []struct {
		name string
		moveDirs uint8
		want geom.Vector
	}{
		{"still", 0, geom.Vector{}},
		{"forward", input.MoveForward, geom.Vector{Z: moveSpeed}},
		{"backward", input.MoveBackward, geom.Vector{Z: -moveSpeed}},
		{"leftward", input.MoveLeftward, geom.Vector{X: -moveSpeed}},
		{"upward", input.MoveUpward, geom.Vector{Y: moveSpeed}},
		{"diagonal", input.MoveForward | input.MoveRightward, geom.Vector{X: moveSpeed / math.Sqrt2, Z: moveSpeed / math.Sqrt2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, cameraMove(tt.moveDirs, cam), approx); diff != "" {
				t.Errorf("cameraMove(%06b) mismatch (-want +got):\n%s", tt.moveDirs, diff)
			}
		})
	}
}

func TestParseOptions(t *testing.T) {
	opts, err := parseOptions([]string{"-headless", "-frames", "5", "-width", "32", "-log-level", "debug"})
	require.NoError(t, err)
	assert.Equal(t, options{width: 32, headless: true, frames: 5, logLevel: "debug"}, opts)
	
	opts, err = parseOptions(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, opts.frames)
	assert.False(t, opts.headless)
	
	for _, args := range [][]string{
		{"-frames", "-1"},
		{"-width", "-5"},
		{"-height", "-1"},
		{"-frames", "lots"},
		{"-no-such-flag"},
	} {
		_, err := parseOptions(args)
		assert.Error(t, err, "args %q", args)
	}
}

func TestRun(t *testing.T) {
	require.NoError(t, run([]string{"-headless", "-frames", "2", "-width", "16", "-height", "12", "-log-level", "error"}))
	
	assert.Error(t, run([]string{"-headless", "-frames", "-3"}))
	assert.Error(t, run([]string{"-headless", "-log-level", "loud"}))
	assert.ErrorIs(t, run([]string{"-headless", "-config", filepath.Join(t.TempDir(), "missing.yaml"), "-log-level", "error"}), os.ErrNotExist)
}

func TestLoadConfig(t *testing.T) {
	c, err := loadConfig(options{width: 64})
	require.NoError(t, err)
	assert.Equal(t, 64, c.Width)
	assert.Equal(t, 600, c.Height)
	
	path := filepath.Join(t.TempDir(), "scene.yaml")
	scene := "width: 10\nheight: 8\ncamera: {pos: [0, 0, 0], dir: [0, 0, 1]}\nprimitives: []\n"
	require.NoError(t, os.WriteFile(path, []byte(scene), 0o644))
	c, err = loadConfig(options{configPath: path, height: 4})
	require.NoError(t, err)
	assert.Equal(t, 10, c.Width)
	assert.Equal(t, 4, c.Height)
	
	_, err = loadConfig(options{configPath: filepath.Join(t.TempDir(), "missing.yaml")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunHeadless(t *testing.T) {
	env, err := state.DefaultConfig().Build()
	require.NoError(t, err)
	f, err := film.New(8, 6)
	require.NoError(t, err)
	
	require.NoError(t, runHeadless(context.Background(), zap.NewNop(), 3, f, env))
	
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, runHeadless(ctx, zap.NewNop(), 0, f, env), context.Canceled)
	
	assert.Error(t, runHeadless(context.Background(), zap.NewNop(), -1, f, env))
}
