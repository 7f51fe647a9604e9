package paintbook

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/paintbook/internal/blend"
)

func colorsClose(a, b blend.Color, tol float64) bool {
	return math.Abs(a.R-b.R) <= tol && math.Abs(a.G-b.G) <= tol &&
		math.Abs(a.B-b.B) <= tol && math.Abs(a.A-b.A) <= tol
}

func TestGradientMidpointIsMean(t *testing.T) {
	g := NewLinearGradient(0, 0, 100, 0)
	g.AddColorStopRGB(0, 1, 0, 0)
	g.AddColorStopRGB(1, 0, 0, 1)

	got := g.colorAt(0.5)
	want := blend.Color{R: 0.5, B: 0.5, A: 1}
	if !colorsClose(got, want, 1e-9) {
		t.Errorf("colorAt(0.5) = %v, want %v", got, want)
	}
}

func TestGradientPremultipliedInterpolation(t *testing.T) {
	g := NewLinearGradient(0, 0, 1, 0)
	g.AddColorStopRGBA(0, 1, 1, 1, 0)
	g.AddColorStopRGBA(1, 0, 1, 0, 1)

	// Transparent white contributes no color.
	got := g.colorAt(0.5)
	want := blend.Color{G: 0.5, A: 0.5}
	if !colorsClose(got, want, 1e-9) {
		t.Errorf("colorAt(0.5) = %v, want %v", got, want)
	}
}

func TestGradientStopOrdering(t *testing.T) {
	g := NewLinearGradient(0, 0, 1, 0)
	g.AddColorStopRGB(1, 0, 0, 1)
	g.AddColorStopRGB(0, 1, 0, 0)
	g.AddColorStopRGB(0.5, 0, 1, 0)
	g.AddColorStopRGB(0.5, 1, 1, 1)
	g.AddColorStopRGB(7, 0, 0, 0) // clamped to 1

	stops := g.ColorStops()
	offsets := []float64{0, 0.5, 0.5, 1, 1}
	if len(stops) != len(offsets) {
		t.Fatalf("len(stops) = %d, want %d", len(stops), len(offsets))
	}
	for i, o := range offsets {
		if stops[i].Offset != o {
			t.Errorf("stops[%d].Offset = %v, want %v", i, stops[i].Offset, o)
		}
	}
	// Equal offsets keep insertion order: green then white.
	if stops[1].Color != RGB(0, 1, 0) || stops[2].Color != RGB(1, 1, 1) {
		t.Errorf("equal offset stops reordered: %v %v", stops[1].Color, stops[2].Color)
	}
	// Just past the hard stop the later color applies.
	if got := g.colorAt(0.5); !colorsClose(got, blend.Color{R: 1, G: 1, B: 1, A: 1}, 1e-9) {
		t.Errorf("colorAt(0.5) = %v, want white", got)
	}
}

func TestExtendT(t *testing.T) {
	tests := []struct {
		mode   Extend
		in     float64
		want   float64
		inside bool
	}{
		{ExtendPad, -0.5, 0, true},
		{ExtendPad, 1.5, 1, true},
		{ExtendRepeat, 1.25, 0.25, true},
		{ExtendRepeat, -0.25, 0.75, true},
		{ExtendReflect, 1.25, 0.75, true},
		{ExtendReflect, -0.25, 0.25, true},
		{ExtendReflect, 3.25, 0.75, true},
		{ExtendReflect, 1<<50 + 1.25, 0.75, true},
		{ExtendReflect, 1e19, 0, true},
		{ExtendReflect, -1e300, 0, true},
		{ExtendNone, 0.5, 0.5, true},
		{ExtendNone, 1.5, 0, false},
	}
	for _, tt := range tests {
		got, ok := extendT(tt.in, tt.mode)
		if ok != tt.inside || math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("extendT(%v, %v) = %v, %v; want %v, %v", tt.in, tt.mode, got, ok, tt.want, tt.inside)
		}
	}
}

func TestLinearGradientSampler(t *testing.T) {
	g := NewLinearGradient(0, 0, 200, 0)
	g.AddColorStopRGB(0, 0, 0, 0)
	g.AddColorStopRGB(1, 1, 1, 1)

	s, err := g.newSampler(Identity(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := s.at(100, 50); math.Abs(got.R-0.5) > 1e-9 {
		t.Errorf("at(100,50).R = %v, want 0.5", got.R)
	}
	if got := s.at(-50, 0); got.R != 0 {
		t.Errorf("padded start R = %v, want 0", got.R)
	}

	// Locked to a scaled CTM the same color appears at twice the distance.
	s, err = g.newSampler(Scale(2, 2), nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := s.at(200, 0); math.Abs(got.R-0.5) > 1e-9 {
		t.Errorf("scaled at(200,0).R = %v, want 0.5", got.R)
	}
}

func TestDegenerateLinearGradient(t *testing.T) {
	g := NewLinearGradient(5, 5, 5, 5)
	g.AddColorStopRGB(0, 1, 0, 0)
	g.AddColorStopRGB(1, 0, 0, 1)

	s, _ := g.newSampler(Identity(), nil)
	if got := s.at(0, 0); !colorsClose(got, blend.Color{B: 1, A: 1}, 1e-9) {
		t.Errorf("pad degenerate = %v, want last stop", got)
	}

	g.SetExtend(ExtendRepeat)
	s, _ = g.newSampler(Identity(), nil)
	if got := s.at(0, 0); !colorsClose(got, blend.Color{R: 0.5, B: 0.5, A: 1}, 1e-9) {
		t.Errorf("repeat degenerate = %v, want average", got)
	}

	g.SetExtend(ExtendNone)
	s, _ = g.newSampler(Identity(), nil)
	if got := s.at(0, 0); got != (blend.Color{}) {
		t.Errorf("none degenerate = %v, want transparent", got)
	}
}

func TestRadialGradientConcentric(t *testing.T) {
	g := NewRadialGradient(100, 100, 10, 100, 100, 140)
	g.AddColorStopRGBA(0, 0, 0, 0, 1)
	g.AddColorStopRGBA(1, 0, 0, 0, 0)

	s, err := g.newSampler(Identity(), nil)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		x, y  float64
		alpha float64
	}{
		{101, 100, 1},   // inside the start circle pads to the first stop
		{105, 100, 1},   // still inside r0
		{175, 100, 0.5}, // distance 75 is halfway between radii 10 and 140
		{100, 240, 0},   // on the end circle
		{300, 300, 0},   // padded past the end circle
	}
	for _, tt := range tests {
		if got := s.at(tt.x, tt.y).A; math.Abs(got-tt.alpha) > 1e-9 {
			t.Errorf("alpha at (%v,%v) = %v, want %v", tt.x, tt.y, got, tt.alpha)
		}
	}
}

func TestRadialGradientTwoCircles(t *testing.T) {
	// Focal circle inside the end circle: the whole plane is covered.
	g := NewRadialGradient(50, 50, 20, 100, 100, 100)
	g.AddColorStopRGB(0, 1, 0, 0)
	g.AddColorStopRGB(1, 0, 0, 1)

	s, err := g.newSampler(Identity(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := s.at(50, 50); !colorsClose(got, blend.Color{R: 1, A: 1}, 1e-9) {
		t.Errorf("at start center = %v, want first stop", got)
	}
	// (200, 100) lies on the end circle.
	if got := s.at(200, 100); !colorsClose(got, blend.Color{B: 1, A: 1}, 1e-6) {
		t.Errorf("on end circle = %v, want last stop", got)
	}

	// ExtendNone leaves points outside the end circle transparent.
	g.SetExtend(ExtendNone)
	s, _ = g.newSampler(Identity(), nil)
	if got := s.at(250, 250); got != (blend.Color{}) {
		t.Errorf("outside with ExtendNone = %v, want transparent", got)
	}
}

func TestPatternMatrixErrors(t *testing.T) {
	g := NewLinearGradient(0, 0, 1, 0)
	g.SetMatrix(Scale(0, 1))
	if !errors.Is(g.Err(), errSingularMatrix) {
		t.Fatalf("Err() = %v, want singular matrix", g.Err())
	}
	if _, err := g.newSampler(Identity(), nil); err == nil {
		t.Error("newSampler() succeeded on errored pattern")
	}

	// A later valid matrix does not clear the error.
	g.SetMatrix(Identity())
	if g.Err() == nil {
		t.Error("error state was cleared")
	}
}
