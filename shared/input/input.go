// Package input provides functionality for event parsing.
package input

import "github.com/veandco/go-sdl2/sdl"

// These constants are movement direction masks that should be applied to the second return value of HandleInputs.
const (
	MoveForward uint8 = 1 << iota
	MoveLeftward
	MoveBackward
	MoveRightward
	MoveUpward
	MoveDownward
)

// opposites pairs each movement key with its mask and the mask of the key that cancels it.
var opposites = map[sdl.Keycode][2]uint8{
	sdl.K_UP: {MoveForward, MoveBackward},
	sdl.K_DOWN: {MoveBackward, MoveForward},
	sdl.K_LEFT: {MoveLeftward, MoveRightward},
	sdl.K_RIGHT: {MoveRightward, MoveLeftward},
	sdl.K_PAGEUP: {MoveUpward, MoveDownward},
	sdl.K_PAGEDOWN: {MoveDownward, MoveUpward},
}

// HandleInputs parses all input events waiting in the queue.
// This function returns: (running, new move directions, whether pause was toggled).
func HandleInputs(moveDirs uint8) (bool, uint8, bool) {
	running := true	// We assume this to be true.
	togglePause := false
	
	// Pull every event out of the queue and evaluate/apply it.
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			running = false
		case *sdl.KeyboardEvent:
			if e.Keysym.Mod != sdl.KMOD_NONE || e.Repeat != 0 {
				break
			}
			if e.Type == sdl.KEYDOWN {
				switch e.Keysym.Sym {
				case sdl.K_ESCAPE:
					running = false
				case sdl.K_SPACE:
					togglePause = !togglePause
				default:
					if masks, exists := opposites[e.Keysym.Sym]; exists {
						// Pressing against a held direction cancels both.
						if moveDirs & masks[1] != 0 {
							moveDirs &^= masks[0] | masks[1]
						}else{
							moveDirs |= masks[0]
						}
					}
				}
			}else if e.Type == sdl.KEYUP {
				if masks, exists := opposites[e.Keysym.Sym]; exists {
					moveDirs &^= masks[0]
				}
			}
		}
	}
	return running, moveDirs, togglePause
}
