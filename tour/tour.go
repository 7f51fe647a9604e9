// Package tour contains the demonstration routines of paintbook.
//
// Each demo draws one picture on a fresh square surface and is written to
// <OutputDir>/<name>.png. Demos are laid out on a 200 unit canvas; Render
// scales user space so the same drawing fills canvases of other sizes.
//
// Demos fail fast: the first error from surface creation, drawing or
// export is returned unchanged apart from the demo name, and RunAll stops
// there.
package tour

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"time"

	"github.com/gogpu/paintbook"
)

// ErrUnknownDemo is returned by RunNames for a name that is not a demo.
var ErrUnknownDemo = errors.New("unknown demo")

// Canvas describes the surface a demo draws on.
type Canvas struct {
	// Size is the side of the surface in pixels.
	Size int
	// Scale maps the 200 unit layout to Size pixels. Render has already
	// applied it to the context it passes to Draw.
	Scale float64
	// Rand is the random source for demos that need one.
	Rand *rand.Rand
}

// Demo is a named drawing routine.
type Demo struct {
	Name        string
	Description string
	Draw        func(ctx *paintbook.Context, cv Canvas) error
}

// Demos returns all demos in presentation order.
func Demos() []Demo {
	return []Demo{
		{"principle", "fill a gray square: surface, context, path, paint, export", drawPrinciple},
		{"paint", "paint the whole surface red", drawPaint},
		{"rand_lines", "stroke a polyline through random points on white", drawRandLines},
		{"basics", "framed canvas with centered text", drawBasics},
		{"mask", "linear gradient masked by a radial gradient", drawMask},
		{"source1", "translucent rectangles over a thick cross", drawSource1},
		{"source2", "grid filled with a radial gradient under a striped linear one", drawSource2},
		{"curves", "lines, an arc and a curve in one closed stroke", drawCurves},
		{"pattern", "repeating surface pattern composited with Atop", drawPattern},
		{"scale", "unit square in a scaled and translated frame", drawScale},
	}
}

// Lookup returns the demo called name.
func Lookup(name string) (Demo, bool) {
	for _, d := range Demos() {
		if d.Name == name {
			return d, true
		}
	}
	return Demo{}, false
}

// Names returns the demo names in presentation order.
func Names() []string {
	demos := Demos()
	names := make([]string, len(demos))
	for i, d := range demos {
		names[i] = d.Name
	}
	return names
}

func newCanvas(cfg Config) Canvas {
	var src rand.Source
	if cfg.Seeded {
		src = rand.NewPCG(cfg.Seed, cfg.Seed)
	} else {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return Canvas{
		Size:  cfg.Size,
		Scale: float64(cfg.Size) / DefaultSize,
		Rand:  rand.New(src),
	}
}

// Render draws d on a new surface without writing it anywhere.
func Render(d Demo, cfg Config) (*paintbook.Surface, error) {
	s, err := paintbook.NewSurface(paintbook.FormatARGB32, cfg.Size, cfg.Size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", d.Name, err)
	}
	ctx, err := paintbook.NewContext(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", d.Name, err)
	}
	defer ctx.Close()

	cv := newCanvas(cfg)
	ctx.Scale(cv.Scale, cv.Scale)
	if err := d.Draw(ctx, cv); err != nil {
		return nil, fmt.Errorf("%s: %w", d.Name, err)
	}
	return s, nil
}

// OutputPath returns the file d is written to under cfg.
func OutputPath(d Demo, cfg Config) string {
	return filepath.Join(cfg.OutputDir, d.Name+".png")
}

// Run renders d and writes it to OutputPath. The output directory must
// already exist.
func Run(d Demo, cfg Config) (string, error) {
	start := time.Now()
	s, err := Render(d, cfg)
	if err != nil {
		return "", err
	}
	path := OutputPath(d, cfg)
	if err := s.WritePNGFile(path); err != nil {
		return "", fmt.Errorf("%s: %w", d.Name, err)
	}
	paintbook.Logger().Info("demo written",
		"demo", d.Name,
		"path", path,
		"size", cfg.Size,
		"elapsed", time.Since(start))
	return path, nil
}

// RunAll runs every demo in order and stops at the first failure.
func RunAll(cfg Config) error {
	return RunNames(cfg, Names()...)
}

// RunNames runs the named demos in order and stops at the first failure,
// including an unknown name.
func RunNames(cfg Config, names ...string) error {
	for _, name := range names {
		d, ok := Lookup(name)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownDemo, name)
		}
		if _, err := Run(d, cfg); err != nil {
			return err
		}
	}
	return nil
}
