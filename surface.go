package paintbook

import (
	"fmt"
	"image"
	"image/color"

	"github.com/dustin/go-humanize"

	"github.com/gogpu/paintbook/internal/blend"
)

// Format is the pixel layout of a Surface.
type Format uint8

const (
	// FormatARGB32 stores premultiplied color with alpha.
	FormatARGB32 Format = iota

	// FormatRGB24 stores opaque color. Alpha is always 1.
	FormatRGB24
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatARGB32:
		return "argb32"
	case FormatRGB24:
		return "rgb24"
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

// MaxSurfaceSize is the largest accepted width or height.
const MaxSurfaceSize = 32767

// Surface is a rectangular pixel buffer that drawing operations target.
// Pixels are stored premultiplied in an *image.RGBA.
//
// A Surface may be shared by several contexts, but drawing to it from
// more than one goroutine at a time is not supported.
type Surface struct {
	format Format
	img    *image.RGBA
}

// NewSurface allocates a zero-initialized surface: fully transparent for
// FormatARGB32, opaque black for FormatRGB24.
func NewSurface(format Format, width, height int) (*Surface, error) {
	if format != FormatARGB32 && format != FormatRGB24 {
		return nil, newError("create_surface", ErrAllocation, fmt.Errorf("%w: %v", errInvalidFormat, format))
	}
	if width <= 0 || height <= 0 || width > MaxSurfaceSize || height > MaxSurfaceSize {
		return nil, newError("create_surface", ErrAllocation,
			fmt.Errorf("%w: %dx%d", errInvalidSize, width, height))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if format == FormatRGB24 {
		for i := 3; i < len(img.Pix); i += 4 {
			img.Pix[i] = 0xff
		}
	}
	Logger().Debug("surface allocated",
		"format", format,
		"width", width,
		"height", height,
		"bytes", humanize.Bytes(uint64(len(img.Pix))))
	return &Surface{format: format, img: img}, nil
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.img.Rect.Dx() }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.img.Rect.Dy() }

// Format returns the pixel format.
func (s *Surface) Format() Format { return s.format }

// Bounds returns the surface rectangle.
func (s *Surface) Bounds() image.Rectangle { return s.img.Rect }

// At returns the premultiplied pixel at (x, y), or transparent outside
// the surface.
func (s *Surface) At(x, y int) color.RGBA {
	return s.img.RGBAAt(x, y)
}

// Image returns the backing image. Writes to it are visible to later
// drawing operations.
func (s *Surface) Image() *image.RGBA { return s.img }

// snapshot returns an independent copy of the surface.
func (s *Surface) snapshot() *Surface {
	img := image.NewRGBA(s.img.Rect)
	copy(img.Pix, s.img.Pix)
	return &Surface{format: s.format, img: img}
}

// load returns the premultiplied color at (x, y), which must be inside the
// surface. RGB24 pixels always read as opaque.
func (s *Surface) load(x, y int) blend.Color {
	i := y*s.img.Stride + x*4
	p := s.img.Pix[i : i+4 : i+4]
	c := blend.Color{
		R: float64(p[0]) / 255,
		G: float64(p[1]) / 255,
		B: float64(p[2]) / 255,
		A: float64(p[3]) / 255,
	}
	if s.format == FormatRGB24 {
		c.A = 1
	}
	return c
}

// store writes a premultiplied color at (x, y).
func (s *Surface) store(x, y int, c blend.Color) {
	if s.format == FormatRGB24 {
		c.A = 1
	}
	c = c.Clamp()
	i := y*s.img.Stride + x*4
	p := s.img.Pix[i : i+4 : i+4]
	p[0], p[1], p[2], p[3] = to8(c.R), to8(c.G), to8(c.B), to8(c.A)
}
