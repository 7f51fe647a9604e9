package paintbook

import (
	"math"

	"github.com/gogpu/paintbook/internal/raster"
	"golang.org/x/image/math/f64"
)

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at a point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path is a sequence of subpaths.
//
// A LineTo or curve with no current point starts a new subpath at its
// first point. After Close the current point is the start of the closed
// subpath and the next segment opens a new subpath there.
type Path struct {
	elements   []PathElement
	start      Point
	current    Point
	hasCurrent bool
	closed     bool
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{elements: make([]PathElement, 0, 16)}
}

// MoveTo begins a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start, p.current = pt, pt
	p.hasCurrent, p.closed = true, false
}

// reopen emits the implicit MoveTo required after Close or before the
// first segment. It reports false when there is no current point.
func (p *Path) reopen() bool {
	if !p.hasCurrent {
		return false
	}
	if p.closed {
		p.elements = append(p.elements, MoveTo{Point: p.start})
		p.closed = false
	}
	return true
}

// LineTo adds a line to (x, y). Without a current point it behaves like MoveTo.
func (p *Path) LineTo(x, y float64) {
	if !p.reopen() {
		p.MoveTo(x, y)
		return
	}
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// QuadraticTo adds a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	if !p.reopen() {
		p.MoveTo(cx, cy)
	}
	pt := Pt(x, y)
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: pt})
	p.current = pt
}

// CubicTo adds a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	if !p.reopen() {
		p.MoveTo(c1x, c1y)
	}
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath. It is a no-op without a current point
// or when the subpath is already closed.
func (p *Path) Close() {
	if !p.hasCurrent || p.closed {
		return
	}
	p.elements = append(p.elements, Close{})
	p.current = p.start
	p.closed = true
}

// Clear removes all elements.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start, p.current = Point{}, Point{}
	p.hasCurrent, p.closed = false, false
}

// Elements returns the path elements. The slice must not be modified.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// HasCurrentPoint reports whether the path has a current point.
func (p *Path) HasCurrentPoint() bool {
	return p.hasCurrent
}

// Rectangle adds a closed rectangular subpath.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Transform returns a copy of the path with every point mapped through m.
func (p *Path) Transform(m Matrix) *Path {
	result := NewPath()
	result.Append(p, m)
	return result
}

// Append adds the elements of other, mapped through m, to p.
func (p *Path) Append(other *Path, m Matrix) {
	for _, elem := range other.elements {
		switch e := elem.(type) {
		case MoveTo:
			pt := m.TransformPoint(e.Point)
			p.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := m.TransformPoint(e.Point)
			p.LineTo(pt.X, pt.Y)
		case QuadTo:
			ctrl := m.TransformPoint(e.Control)
			pt := m.TransformPoint(e.Point)
			p.QuadraticTo(ctrl.X, ctrl.Y, pt.X, pt.Y)
		case CubicTo:
			ctrl1 := m.TransformPoint(e.Control1)
			ctrl2 := m.TransformPoint(e.Control2)
			pt := m.TransformPoint(e.Point)
			p.CubicTo(ctrl1.X, ctrl1.Y, ctrl2.X, ctrl2.Y, pt.X, pt.Y)
		case Close:
			p.Close()
		}
	}
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	c := *p
	c.elements = append([]PathElement(nil), p.elements...)
	return &c
}

// maxArcTurns bounds the sweep of a single arc to this many full circles.
const maxArcTurns = 64

// arc appends an arc of radius r around (cx, cy) from angle1 to angle2 as
// cubic Bezier segments of at most 90 degrees, mapped through m. A line
// joins the current point to the start of the arc. Non-finite arguments
// leave the path unchanged and return errInvalidArc.
func (p *Path) arc(m Matrix, cx, cy, r, angle1, angle2 float64, negative bool) error {
	for _, v := range [...]float64{cx, cy, r, angle1, angle2} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errInvalidArc
		}
	}

	// Sweep in the drawing direction, wrapped into [0, 2pi) when it points
	// backwards and capped when it winds too often.
	const twoPi = 2 * math.Pi
	sweep := angle2 - angle1
	if negative {
		sweep = -sweep
	}
	switch {
	case sweep < 0:
		sweep = math.Mod(sweep, twoPi)
		if sweep < 0 {
			sweep += twoPi
		}
	case sweep > maxArcTurns*twoPi:
		sweep = math.Mod(sweep, twoPi) + maxArcTurns*twoPi
	}
	if negative {
		sweep = -sweep
	}

	start := m.TransformPoint(Pt(cx+r*math.Cos(angle1), cy+r*math.Sin(angle1)))
	p.LineTo(start.X, start.Y)
	if r <= 0 || sweep == 0 {
		return nil
	}

	const maxAngle = math.Pi / 2
	n := max(int(math.Ceil(math.Abs(sweep)/maxAngle-1e-9)), 1)
	step := sweep / float64(n)
	for i := 0; i < n; i++ {
		a1 := angle1 + float64(i)*step
		p.arcSegment(m, cx, cy, r, a1, a1+step)
	}
	return nil
}

// arcSegment adds a single arc segment of at most 90 degrees.
func (p *Path) arcSegment(m Matrix, cx, cy, r, a1, a2 float64) {
	// Handle length of a cubic circular arc, relative to r.
	alpha := 4.0 / 3 * math.Tan((a2-a1)/4)

	sin1, cos1 := math.Sincos(a1)
	sin2, cos2 := math.Sincos(a2)

	c1 := m.TransformPoint(Pt(cx+r*cos1-alpha*r*sin1, cy+r*sin1+alpha*r*cos1))
	c2 := m.TransformPoint(Pt(cx+r*cos2+alpha*r*sin2, cy+r*sin2-alpha*r*cos2))
	end := m.TransformPoint(Pt(cx+r*cos2, cy+r*sin2))
	p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
}

// segments converts the path to rasterizer input.
func (p *Path) segments() []raster.Segment {
	out := make([]raster.Segment, 0, len(p.elements))
	vec := func(pt Point) f64.Vec2 { return f64.Vec2{pt.X, pt.Y} }
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			out = append(out, raster.Segment{Op: raster.MoveTo, Args: [3]f64.Vec2{vec(e.Point)}})
		case LineTo:
			out = append(out, raster.Segment{Op: raster.LineTo, Args: [3]f64.Vec2{vec(e.Point)}})
		case QuadTo:
			out = append(out, raster.Segment{Op: raster.QuadTo, Args: [3]f64.Vec2{vec(e.Control), vec(e.Point)}})
		case CubicTo:
			out = append(out, raster.Segment{Op: raster.CubeTo, Args: [3]f64.Vec2{vec(e.Control1), vec(e.Control2), vec(e.Point)}})
		case Close:
			out = append(out, raster.Segment{Op: raster.Close})
		}
	}
	return out
}
