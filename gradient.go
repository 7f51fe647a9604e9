package paintbook

import (
	"math"
	"slices"
	"sort"

	"github.com/gogpu/paintbook/internal/blend"
)

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // position along the gradient, clamped to [0, 1]
	Color  RGBA
}

// gradient holds the color ramp shared by linear and radial gradients.
// Stops are kept sorted by offset; stops added at equal offsets keep their
// insertion order, which produces a hard transition.
type gradient struct {
	patternBase
	stops []ColorStop
}

func newGradient() gradient {
	return gradient{patternBase: newPatternBase(ExtendPad)}
}

// AddColorStopRGB adds an opaque color stop.
func (g *gradient) AddColorStopRGB(offset, red, green, blue float64) {
	g.AddColorStop(offset, RGB(red, green, blue))
}

// AddColorStopRGBA adds a color stop with alpha.
func (g *gradient) AddColorStopRGBA(offset, red, green, blue, alpha float64) {
	g.AddColorStop(offset, RGBA{R: red, G: green, B: blue, A: alpha})
}

// AddColorStop adds a color stop. Offsets outside [0, 1] are clamped.
func (g *gradient) AddColorStop(offset float64, c RGBA) {
	stop := ColorStop{Offset: clamp01(offset), Color: c.Clamp()}
	i := sort.Search(len(g.stops), func(i int) bool {
		return g.stops[i].Offset > stop.Offset
	})
	g.stops = slices.Insert(g.stops, i, stop)
}

// ColorStops returns a copy of the stops in offset order.
func (g *gradient) ColorStops() []ColorStop {
	return slices.Clone(g.stops)
}

// extendT maps a raw gradient parameter into [0, 1]. The second result is
// false when the parameter lies outside the gradient for ExtendNone.
func extendT(t float64, mode Extend) (float64, bool) {
	switch mode {
	case ExtendNone:
		if t < 0 || t > 1 {
			return 0, false
		}
	case ExtendRepeat:
		t -= math.Floor(t)
	case ExtendReflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if math.Mod(period, 2) == 1 {
			t = 1 - t
		}
	default: // ExtendPad
		t = clamp01(t)
	}
	return t, true
}

// colorAt returns the premultiplied ramp color at t in [0, 1].
// Colors are interpolated in premultiplied sRGB.
func (g *gradient) colorAt(t float64) blend.Color {
	stops := g.stops
	switch len(stops) {
	case 0:
		return blend.Color{}
	case 1:
		return stops[0].Color.premultiplied()
	}
	if t <= stops[0].Offset {
		return stops[0].Color.premultiplied()
	}
	last := stops[len(stops)-1]
	if t >= last.Offset {
		return last.Color.premultiplied()
	}

	// First stop strictly after t.
	i := sort.Search(len(stops), func(i int) bool { return stops[i].Offset > t })
	lo, hi := stops[i-1], stops[i]
	span := hi.Offset - lo.Offset
	if span <= 0 {
		return hi.Color.premultiplied()
	}
	f := (t - lo.Offset) / span
	return lo.Color.premultiplied().Lerp(hi.Color.premultiplied(), f)
}

// average returns the mean color of the ramp over [0, 1], including the
// flat parts before the first and after the last stop.
func (g *gradient) average() blend.Color {
	stops := g.stops
	switch len(stops) {
	case 0:
		return blend.Color{}
	case 1:
		return stops[0].Color.premultiplied()
	}
	first, last := stops[0], stops[len(stops)-1]
	sum := first.Color.premultiplied().Scale(first.Offset)
	add := func(c blend.Color) {
		sum = blend.Color{R: sum.R + c.R, G: sum.G + c.G, B: sum.B + c.B, A: sum.A + c.A}
	}
	for i := 1; i < len(stops); i++ {
		a, b := stops[i-1].Color.premultiplied(), stops[i].Color.premultiplied()
		span := stops[i].Offset - stops[i-1].Offset
		add(a.Lerp(b, 0.5).Scale(span))
	}
	add(last.Color.premultiplied().Scale(1 - last.Offset))
	return sum
}

// degenerate returns the color used when the gradient geometry collapses.
func (g *gradient) degenerate() blend.Color {
	switch g.extend {
	case ExtendNone:
		return blend.Color{}
	case ExtendPad:
		if len(g.stops) == 0 {
			return blend.Color{}
		}
		return g.stops[len(g.stops)-1].Color.premultiplied()
	}
	return g.average()
}

// rampSampler evaluates a gradient parameter function per pixel.
type rampSampler struct {
	g        *gradient
	toPat    Matrix
	param    func(p Point) (float64, bool)
	constant *blend.Color
}

func (s *rampSampler) at(x, y float64) blend.Color {
	if s.constant != nil {
		return *s.constant
	}
	t, ok := s.param(s.toPat.TransformPoint(Pt(x, y)))
	if !ok {
		return blend.Color{}
	}
	t, ok = extendT(t, s.g.extend)
	if !ok {
		return blend.Color{}
	}
	return s.g.colorAt(t)
}
