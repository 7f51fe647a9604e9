package paintbook

import (
	"errors"
	"math"
	"testing"
)

func TestPathLineToWithoutCurrentPoint(t *testing.T) {
	p := NewPath()
	p.LineTo(10, 20)

	els := p.Elements()
	if len(els) != 1 {
		t.Fatalf("len(Elements()) = %d, want 1", len(els))
	}
	if m, ok := els[0].(MoveTo); !ok || m.Point != Pt(10, 20) {
		t.Errorf("first element = %#v, want MoveTo(10,20)", els[0])
	}
	if !p.HasCurrentPoint() || p.CurrentPoint() != Pt(10, 20) {
		t.Errorf("current point = %v (has=%v)", p.CurrentPoint(), p.HasCurrentPoint())
	}
}

func TestPathCloseReturnsToStart(t *testing.T) {
	p := NewPath()
	p.MoveTo(1, 1)
	p.LineTo(5, 1)
	p.LineTo(5, 5)
	p.Close()

	if p.CurrentPoint() != Pt(1, 1) {
		t.Errorf("current point after Close = %v, want (1,1)", p.CurrentPoint())
	}

	// A segment after Close opens a new subpath at the old start.
	p.LineTo(9, 9)
	els := p.Elements()
	if m, ok := els[len(els)-2].(MoveTo); !ok || m.Point != Pt(1, 1) {
		t.Errorf("element before LineTo = %#v, want MoveTo(1,1)", els[len(els)-2])
	}

	// Close twice adds one element only.
	n := len(p.Elements())
	p.Close()
	p.Close()
	if got := len(p.Elements()); got != n+1 {
		t.Errorf("len after double Close = %d, want %d", got, n+1)
	}
}

func TestPathTransformAndClone(t *testing.T) {
	p := NewPath()
	p.Rectangle(0, 0, 1, 1)
	q := p.Transform(Scale(10, 10))

	last := q.Elements()[2].(LineTo)
	if last.Point != Pt(10, 10) {
		t.Errorf("transformed corner = %v, want (10,10)", last.Point)
	}

	c := p.Clone()
	c.LineTo(50, 50)
	if len(c.Elements()) == len(p.Elements()) {
		t.Error("Clone shares elements with original")
	}
}

func TestPathArc(t *testing.T) {
	p := NewPath()
	p.arc(Identity(), 0, 0, 10, 0, math.Pi, false)

	els := p.Elements()
	if _, ok := els[0].(MoveTo); !ok {
		t.Fatalf("arc without current point should start with MoveTo, got %#v", els[0])
	}
	// 180 degrees splits into two quarter segments.
	if len(els) != 3 {
		t.Fatalf("len(Elements()) = %d, want 3", len(els))
	}
	end := els[2].(CubicTo).Point
	if !pointsEqual(end, Pt(-10, 0)) {
		t.Errorf("arc end = %v, want (-10,0)", end)
	}

	// Midpoint of a quarter arc lies on the circle.
	q := els[1].(CubicTo)
	mid := Pt(10, 0).Mul(0.125).Add(q.Control1.Mul(0.375)).Add(q.Control2.Mul(0.375)).Add(q.Point.Mul(0.125))
	if r := mid.Length(); math.Abs(r-10) > 0.01 {
		t.Errorf("quarter arc midpoint radius = %v, want 10", r)
	}
}

func TestPathArcNegative(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.arc(Identity(), 0, 0, 5, 0, math.Pi/2, true)

	els := p.Elements()
	// MoveTo, LineTo to the arc start, then 270 degrees in three segments.
	if len(els) != 5 {
		t.Fatalf("len(Elements()) = %d, want 5", len(els))
	}
	if end := els[len(els)-1].(CubicTo).Point; !pointsEqual(end, Pt(0, 5)) {
		t.Errorf("arc end = %v, want (0,5)", end)
	}
}

func cubicCount(p *Path) int {
	n := 0
	for _, e := range p.Elements() {
		if _, ok := e.(CubicTo); ok {
			n++
		}
	}
	return n
}

func TestPathArcSweeps(t *testing.T) {
	tests := []struct {
		name           string
		angle1, angle2 float64
		negative       bool
		minSeg, maxSeg int
	}{
		{"full circle", 0, 2 * math.Pi, false, 4, 4},
		{"backwards wraps", 1e12, 0, false, 1, 4},
		{"negative wraps", 0, 1e9, true, 1, 4},
		{"many turns capped", 0, 1e9, false, 4 * maxArcTurns, 4*maxArcTurns + 4},
		{"empty", 1, 1, false, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPath()
			if err := p.arc(Identity(), 0, 0, 10, tt.angle1, tt.angle2, tt.negative); err != nil {
				t.Fatalf("arc() error = %v", err)
			}
			if n := cubicCount(p); n < tt.minSeg || n > tt.maxSeg {
				t.Errorf("segments = %d, want %d..%d", n, tt.minSeg, tt.maxSeg)
			}
		})
	}
}

func TestPathArcRejectsNonFinite(t *testing.T) {
	inf, nan := math.Inf(1), math.NaN()
	args := [][5]float64{
		{0, 0, 10, 0, -inf},
		{0, 0, 10, inf, 0},
		{0, 0, nan, 0, 1},
		{nan, 0, 10, 0, 1},
		{0, inf, 10, 0, 1},
	}
	for _, a := range args {
		for _, negative := range []bool{false, true} {
			p := NewPath()
			p.MoveTo(1, 1)
			if err := p.arc(Identity(), a[0], a[1], a[2], a[3], a[4], negative); !errors.Is(err, errInvalidArc) {
				t.Errorf("arc(%v, negative=%v) error = %v, want errInvalidArc", a, negative, err)
			}
			if n := len(p.Elements()); n != 1 {
				t.Errorf("arc(%v) changed the path to %d elements", a, n)
			}
		}
	}
}
