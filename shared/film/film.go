// Package film provides the framebuffer rays are traced into, and the mapping from its pixels
// to normalized device coordinates.
package film

import (
	"github.com/rwmorton/raytracer/shared/colour"
	"github.com/rwmorton/raytracer/shared/geom"
	"image/color"
	"image"
	"fmt"
)

// bytesPerPixel is the size of one pixel in the framebuffer.
const bytesPerPixel int = 4

// These errors are returned for bad film dimensions and pixel coordinates.
var (
	ErrSize       = fmt.Errorf("film dimensions must be positive: %w", geom.ErrInvalidConstruction)
	ErrPixelRange = fmt.Errorf("pixel outside film: %w", geom.ErrIndexOutOfRange)
)

// Film represents a width x height framebuffer.
// Pixels are stored row by row as B, G, R, A bytes, which is the byte order of a
// little-endian ARGB8888 surface.
type Film struct {
	width, height int
	buffer []byte
}

// New creates a film with every byte set to zero.
func New(width, height int) (*Film, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", width, height, ErrSize)
	}
	return &Film{width: width, height: height, buffer: make([]byte, width * height * bytesPerPixel)}, nil
}

// Width returns the width of the film in pixels.
func (f *Film) Width() int {
	return f.width
}

// Height returns the height of the film in pixels.
func (f *Film) Height() int {
	return f.height
}

// Buffer returns the film's raw framebuffer.
// The slice is shared with the film, so it should be treated as read-only.
func (f *Film) Buffer() []byte {
	return f.buffer
}

// Clear sets every pixel of the film to c.
func (f *Film) Clear(c colour.RGBA) {
	r, g, b, a := c.Bytes()
	pixel := [bytesPerPixel]byte{b, g, r, a}
	for i := 0; i < len(f.buffer); i += bytesPerPixel {
		copy(f.buffer[i:i + bytesPerPixel], pixel[:])
	}
}

// offset returns the index of pixel (x, y) in the buffer.
func (f *Film) offset(x, y int) (int, error) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return 0, fmt.Errorf("(%d, %d) on %dx%d film: %w", x, y, f.width, f.height, ErrPixelRange)
	}
	return (y * f.width + x) * bytesPerPixel, nil
}

// WritePixel sets pixel (x, y) to c, where x is the column and y the row.
func (f *Film) WritePixel(x, y int, c colour.RGBA) error {
	i, err := f.offset(x, y)
	if err != nil {
		return err
	}
	r, g, b, a := c.Bytes()
	f.buffer[i] = b
	f.buffer[i + 1] = g
	f.buffer[i + 2] = r
	f.buffer[i + 3] = a
	return nil
}

// NDC maps pixel (x, y) to normalized device coordinates.
// The y axis points up and the x axis is stretched by the aspect ratio, so for a film wider
// than it is tall x spans [-aspect, aspect] and y spans [-1, 1].
func (f *Film) NDC(x, y int) (float64, float64) {
	w, h := float64(f.width), float64(f.height)
	aspect := w / h
	return aspect * (2.0 * float64(x) / w - 1.0), -(2.0 * float64(y) / h - 1.0)
}

// ColorModel returns the colour model of the film.
// This and the next two functions allow a film to be used as an image.Image.
func (f *Film) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds returns the pixel bounds of the film.
func (f *Film) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.width, f.height)
}

// At returns the colour of pixel (x, y), or transparent black outside the film.
func (f *Film) At(x, y int) color.Color {
	i, err := f.offset(x, y)
	if err != nil {
		return color.NRGBA{}
	}
	return color.NRGBA{R: f.buffer[i + 2], G: f.buffer[i + 1], B: f.buffer[i], A: f.buffer[i + 3]}
}
