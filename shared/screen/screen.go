// Package screen provides screen-related functionality for use by the viewer.
package screen

import (
	"github.com/rwmorton/raytracer/shared/film"
	"github.com/veandco/go-sdl2/sdl"
)

// These constants are timing values related to screen-updating.
const (
	FPS uint32 = 30
	MsPerFrame uint32 = 1000 / FPS
)

// StartScreen initializes SDL2 and a new window.
func StartScreen(name string, width, height int) (*sdl.Window, *sdl.Surface, error) {
	complete := false
	
	// Start SDL2.
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, nil, err
	}
	defer func() {
		if !complete {
			sdl.Quit()	// Only want to call Quit if this function doesn't complete.
		}
	}()
	
	// Create new window.
	window, err := sdl.CreateWindow(name, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, int32(width), int32(height), sdl.WINDOW_SHOWN)
	if err != nil {
		return nil, nil, err
	}
	defer func() {
		if !complete {
			window.Destroy()	// Again, only want to call if this function doesn't complete.
		}
	}()
	
	// Get the screen from the new window.
	surface, err := window.GetSurface()
	if err != nil {
		return nil, nil, err
	}
	
	complete = true
	return window, surface, nil
}

// Present copies a film onto the window's surface and shows it.
// Pixels outside the overlap of the two are left alone.
func Present(window *sdl.Window, surface *sdl.Surface, f *film.Film) error {
	if err := surface.Lock(); err != nil {
		return err
	}
	width, height := min(int(surface.W), f.Width()), min(int(surface.H), f.Height())
	for i := 0; i < width; i++ {
		for j := 0; j < height; j++ {
			surface.Set(i, j, f.At(i, j))
		}
	}
	surface.Unlock()
	
	return window.UpdateSurface()
}

// StopScreen closes SDL2 and some window.
func StopScreen(window *sdl.Window) {
	window.Destroy()
	sdl.Quit()
}
