// Package colour provides a shared colour object for use by the tracer and the viewer.
package colour

import (
	"github.com/rwmorton/raytracer/shared/geom"
	"fmt"
	"math"
)

// ErrChannelRange is returned when a colour channel lies outside [0, 1].
var ErrChannelRange = fmt.Errorf("colour channel outside [0, 1]: %w", geom.ErrInvalidConstruction)

// RGBA represents a colour with red, green, blue, and alpha channels.
// All channels are normalized so they're within the range [0, 1].
type RGBA struct {
	r, g, b, a float64
}

// These are some commonly used opaque colours.
// Go doesn't let us have const structs, so treat them as read-only.
var (
	White RGBA = RGBA{1, 1, 1, 1}
	Black RGBA = RGBA{0, 0, 0, 1}
	Red   RGBA = RGBA{1, 0, 0, 1}
	Green RGBA = RGBA{0, 1, 0, 1}
	Blue  RGBA = RGBA{0, 0, 1, 1}
)

// NewRGBA returns a new colour, or ErrChannelRange if any channel is outside [0, 1].
// Out-of-range channels are rejected rather than clamped.
func NewRGBA(r, g, b, a float64) (RGBA, error) {
	for _, c := range [4]float64{r, g, b, a} {
		if !(c >= 0.0 && c <= 1.0) {
			return RGBA{}, fmt.Errorf("(%g, %g, %g, %g): %w", r, g, b, a, ErrChannelRange)
		}
	}
	return RGBA{r: r, g: g, b: b, a: a}, nil
}

// NewRGB returns a new opaque colour from 8-bit channels.
func NewRGB(r, g, b uint8) RGBA {
	return RGBA{r: float64(r) / 255.0, g: float64(g) / 255.0, b: float64(b) / 255.0, a: 1.0}
}

// FromNormal maps a unit normal onto a colour, sending each component from [-1, 1] to [0, 1].
// Normals that are not unit length are rejected like any other out-of-range channel.
func FromNormal(n geom.Normal) (RGBA, error) {
	return NewRGBA(n.X * 0.5 + 0.5, n.Y * 0.5 + 0.5, n.Z * 0.5 + 0.5, 1.0)
}

// Channels returns the four channels of c in the range [0, 1].
func (c RGBA) Channels() (float64, float64, float64, float64) {
	return c.r, c.g, c.b, c.a
}

// Bytes returns the four channels of c in the range [0, 255].
func (c RGBA) Bytes() (uint8, uint8, uint8, uint8) {
	return toByte(c.r), toByte(c.g), toByte(c.b), toByte(c.a)
}

// RGBA returns the alpha-premultiplied channels of c in the range [0, 0xFFFF].
// This function allows RGBA objects to be used with the Color (image/color) interface.
func (c RGBA) RGBA() (uint32, uint32, uint32, uint32) {
	a := c.a * 0xFFFF
	return uint32(math.Round(c.r * a)), uint32(math.Round(c.g * a)), uint32(math.Round(c.b * a)), uint32(math.Round(a))
}

// toByte converts a channel in [0, 1] to [0, 255], truncating like the framebuffer always has.
func toByte(c float64) uint8 {
	return uint8(c * 255.0)
}
