package raster

import (
	"image"
	"math"
	"testing"

	"golang.org/x/image/math/f64"
)

func rect(x0, y0, x1, y1 float64) []Segment {
	return []Segment{
		{Op: MoveTo, Args: [3]f64.Vec2{{x0, y0}}},
		{Op: LineTo, Args: [3]f64.Vec2{{x1, y0}}},
		{Op: LineTo, Args: [3]f64.Vec2{{x1, y1}}},
		{Op: LineTo, Args: [3]f64.Vec2{{x0, y1}}},
		{Op: Close},
	}
}

func countCovered(a *image.Alpha) int {
	n := 0
	for _, v := range a.Pix {
		if v != 0 {
			n++
		}
	}
	return n
}

// TestFillRect verifies a pixel aligned rectangle covers exactly its pixels.
func TestFillRect(t *testing.T) {
	r := New(20, 20)
	cov := r.Fill(rect(5, 5, 15, 15))

	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			inside := x >= 5 && x < 15 && y >= 5 && y < 15
			got := cov.AlphaAt(x, y).A
			if inside && got < 0xfe {
				t.Fatalf("coverage at (%d,%d) = %d, want full", x, y, got)
			}
			if !inside && got != 0 {
				t.Fatalf("coverage at (%d,%d) = %d, want 0", x, y, got)
			}
		}
	}
	if got, want := r.Extent(), image.Rect(5, 5, 15, 15); got != want {
		t.Errorf("Extent() = %v, want %v", got, want)
	}
}

// TestFillResets verifies each pass starts from an empty mask.
func TestFillResets(t *testing.T) {
	r := New(20, 20)
	r.Fill(rect(0, 0, 20, 20))
	cov := r.Fill(rect(0, 0, 2, 2))
	if n := countCovered(cov); n != 4 {
		t.Errorf("covered pixels = %d, want 4", n)
	}
}

// TestFillClipsToDevice verifies off-canvas geometry is clipped.
func TestFillClipsToDevice(t *testing.T) {
	r := New(10, 10)
	cov := r.Fill(rect(-100, -100, 100, 100))
	if n := countCovered(cov); n != 100 {
		t.Errorf("covered pixels = %d, want 100", n)
	}
}

// TestStrokeLine verifies a horizontal butt-capped line.
func TestStrokeLine(t *testing.T) {
	r := New(20, 20)
	segs := []Segment{
		{Op: MoveTo, Args: [3]f64.Vec2{{2, 10}}},
		{Op: LineTo, Args: [3]f64.Vec2{{18, 10}}},
	}
	cov := r.Stroke(segs, StrokeStyle{Width: 4, MiterLimit: 10})

	if got := cov.AlphaAt(10, 9).A; got < 0xfe {
		t.Errorf("center coverage = %d, want full", got)
	}
	if got := cov.AlphaAt(10, 2).A; got != 0 {
		t.Errorf("coverage far from line = %d, want 0", got)
	}
	if got := cov.AlphaAt(0, 10).A; got != 0 {
		t.Errorf("coverage before butt cap = %d, want 0", got)
	}
}

// TestStrokeZeroWidth verifies nothing is drawn for a zero width.
func TestStrokeZeroWidth(t *testing.T) {
	r := New(10, 10)
	cov := r.Stroke(rect(1, 1, 9, 9), StrokeStyle{Width: 0})
	if n := countCovered(cov); n != 0 {
		t.Errorf("covered pixels = %d, want 0", n)
	}
}

// TestLineToWithoutMove verifies a leading LineTo starts a subpath.
func TestLineToWithoutMove(t *testing.T) {
	r := New(20, 20)
	segs := []Segment{
		{Op: LineTo, Args: [3]f64.Vec2{{0, 0}}},
		{Op: LineTo, Args: [3]f64.Vec2{{20, 0}}},
		{Op: LineTo, Args: [3]f64.Vec2{{20, 20}}},
		{Op: Close},
	}
	cov := r.Fill(segs)
	if got := cov.AlphaAt(18, 5).A; got == 0 {
		t.Error("triangle interior not covered")
	}
	if got := cov.AlphaAt(2, 15).A; got != 0 {
		t.Errorf("outside triangle coverage = %d, want 0", got)
	}
}

// TestDashes verifies odd dash arrays are doubled.
func TestDashes(t *testing.T) {
	if got := dashes(nil); got != nil {
		t.Errorf("dashes(nil) = %v", got)
	}
	if got := dashes([]float64{0, 0}); got != nil {
		t.Errorf("dashes(zero) = %v", got)
	}
	if got := dashes([]float64{3}); len(got) != 2 {
		t.Errorf("dashes([3]) = %v, want two entries", got)
	}
}

// TestFillFarOffCanvas verifies huge shapes still cover the device.
func TestFillFarOffCanvas(t *testing.T) {
	r := New(20, 20)
	for _, d := range []float64{1e3, 1e5, 1e7, 1e9} {
		cov := r.Fill(rect(-d, -d, d, d))
		for i, v := range cov.Pix {
			if v < 0xfe {
				t.Fatalf("d=%g: coverage at (%d,%d) = %d, want full", d, i%20, i/20, v)
			}
		}
	}
}

// TestFillFarOffCanvasCurve verifies a curve leaving the device keeps the
// winding of the pixels it encloses.
func TestFillFarOffCanvasCurve(t *testing.T) {
	r := New(20, 20)
	segs := []Segment{
		{Op: MoveTo, Args: [3]f64.Vec2{{-1e6, 10}}},
		{Op: CubeTo, Args: [3]f64.Vec2{{-1e6, -1e6}, {1e6, -1e6}, {1e6, 10}}},
		{Op: Close},
	}
	cov := r.Fill(segs)
	if got := cov.AlphaAt(10, 5).A; got < 0xfe {
		t.Errorf("coverage above the chord = %d, want full", got)
	}
	if got := cov.AlphaAt(10, 15).A; got != 0 {
		t.Errorf("coverage below the chord = %d, want 0", got)
	}
}

// TestStrokeFarOffCanvas verifies a long line crossing the device is drawn
// at full width.
func TestStrokeFarOffCanvas(t *testing.T) {
	r := New(200, 200)
	for _, d := range []float64{1e3, 1e5, 1e7} {
		segs := []Segment{
			{Op: MoveTo, Args: [3]f64.Vec2{{-d, 100}}},
			{Op: LineTo, Args: [3]f64.Vec2{{d, 100}}},
		}
		cov := r.Stroke(segs, StrokeStyle{Width: 10, MiterLimit: 10})
		if got := cov.AlphaAt(100, 100).A; got < 0xfe {
			t.Errorf("d=%g: coverage on the line = %d, want full", d, got)
		}
		if got := cov.AlphaAt(100, 90).A; got != 0 {
			t.Errorf("d=%g: coverage off the line = %d, want 0", d, got)
		}
	}
}

// TestStrokeClippedDashPhase verifies dashes keep their phase when the start
// of the line is cut away.
func TestStrokeClippedDashPhase(t *testing.T) {
	r := New(40, 20)
	segs := []Segment{
		{Op: MoveTo, Args: [3]f64.Vec2{{-100000, 10}}},
		{Op: LineTo, Args: [3]f64.Vec2{{100, 10}}},
	}
	cov := r.Stroke(segs, StrokeStyle{Width: 4, MiterLimit: 4, Dashes: []float64{10, 10}})
	tests := []struct {
		x  int
		on bool
	}{
		{5, true},
		{15, false},
		{25, true},
		{35, false},
	}
	for _, tt := range tests {
		got := cov.AlphaAt(tt.x, 10).A
		if tt.on && got < 0xfe {
			t.Errorf("coverage at x=%d = %d, want a dash", tt.x, got)
		}
		if !tt.on && got != 0 {
			t.Errorf("coverage at x=%d = %d, want a gap", tt.x, got)
		}
	}
}

// TestClipStrokeRuns checks how a closed subpath leaving the guard band is
// cut into runs.
func TestClipStrokeRuns(t *testing.T) {
	segs := []Segment{
		{Op: MoveTo, Args: [3]f64.Vec2{{5, 5}}},
		{Op: LineTo, Args: [3]f64.Vec2{{15, 5}}},
		{Op: LineTo, Args: [3]f64.Vec2{{10, 1e6}}},
		{Op: Close},
	}
	b := New(20, 20).guard(2)

	runs := clipStroke(segs, b, false)
	if len(runs) != 1 {
		t.Fatalf("undashed runs = %d, want 1", len(runs))
	}
	first := runs[0].segs[0]
	if first.Op != MoveTo || math.Abs(first.Args[0][1]-22) > 1e-6 {
		t.Errorf("run starts with %+v, want a MoveTo at the cut", first)
	}
	if n := len(runs[0].segs); n != 4 {
		t.Errorf("run has %d segments, want 4", n)
	}

	if runs := clipStroke(segs, b, true); len(runs) != 2 {
		t.Errorf("dashed runs = %d, want 2", len(runs))
	}

	inside := rect(1, 1, 9, 9)
	if runs := clipStroke(inside, b, false); len(runs) != 1 || &runs[0].segs[0] != &inside[0] {
		t.Error("path inside the guard band was rewritten")
	}
}

// TestClipLine checks the parameter range kept inside a box.
func TestClipLine(t *testing.T) {
	b := box{0, 0, 10, 10}
	tests := []struct {
		p, q   f64.Vec2
		t0, t1 float64
		ok     bool
	}{
		{f64.Vec2{2, 2}, f64.Vec2{8, 8}, 0, 1, true},
		{f64.Vec2{-10, 5}, f64.Vec2{20, 5}, 1.0 / 3, 2.0 / 3, true},
		{f64.Vec2{-10, -10}, f64.Vec2{-1, 20}, 0, 0, false},
		{f64.Vec2{5, 20}, f64.Vec2{5, 30}, 0, 0, false},
	}
	for _, tt := range tests {
		t0, t1, ok := b.clipLine(tt.p, tt.q)
		if ok != tt.ok || (ok && (math.Abs(t0-tt.t0) > 1e-9 || math.Abs(t1-tt.t1) > 1e-9)) {
			t.Errorf("clipLine(%v, %v) = %v, %v, %v; want %v, %v, %v",
				tt.p, tt.q, t0, t1, ok, tt.t0, tt.t1, tt.ok)
		}
	}
}
