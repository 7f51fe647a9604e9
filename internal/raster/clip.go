package raster

import (
	"math"
	"slices"

	"golang.org/x/image/math/f64"
)

// Geometry far outside the device loses precision in the fixed point
// stroker and scan converter, so paths are confined to the device plus a
// guard band before they reach rasterx.

// maxClipDepth bounds curve subdivision while clipping.
const maxClipDepth = 24

// box is an axis aligned device rectangle.
type box struct {
	minX, minY, maxX, maxY float64
}

// guard returns the device bounds grown by margin on every side.
func (r *Rasterizer) guard(margin float64) box {
	return box{-margin, -margin, float64(r.w) + margin, float64(r.h) + margin}
}

func hull(pts ...f64.Vec2) box {
	h := box{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
	for _, p := range pts {
		h.minX, h.maxX = min(h.minX, p[0]), max(h.maxX, p[0])
		h.minY, h.maxY = min(h.minY, p[1]), max(h.maxY, p[1])
	}
	return h
}

func (b box) contains(p f64.Vec2) bool {
	return p[0] >= b.minX && p[0] <= b.maxX && p[1] >= b.minY && p[1] <= b.maxY
}

func (b box) covers(h box) bool {
	return h.minX >= b.minX && h.maxX <= b.maxX && h.minY >= b.minY && h.maxY <= b.maxY
}

// disjoint reports whether h lies entirely beyond one edge of b.
func (b box) disjoint(h box) bool {
	return h.maxX < b.minX || h.minX > b.maxX || h.maxY < b.minY || h.minY > b.maxY
}

func (b box) finite() bool {
	for _, v := range [4]float64{b.minX, b.minY, b.maxX, b.maxY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (b box) tiny() bool {
	return b.maxX-b.minX < 0.25 && b.maxY-b.minY < 0.25
}

func (b box) clamp(p f64.Vec2) f64.Vec2 {
	return f64.Vec2{min(max(p[0], b.minX), b.maxX), min(max(p[1], b.minY), b.maxY)}
}

// holds reports whether every point of segs lies in b.
func (b box) holds(segs []Segment) bool {
	for _, s := range segs {
		for _, p := range s.Args[:s.Op.args()] {
			if !b.contains(p) {
				return false
			}
		}
	}
	return true
}

// clipLine returns the parameter range of the line from p to q that lies
// inside b (Liang-Barsky). ok is false when no part of it does.
func (b box) clipLine(p, q f64.Vec2) (t0, t1 float64, ok bool) {
	t0, t1 = 0, 1
	dx, dy := q[0]-p[0], q[1]-p[1]
	edges := [4][2]float64{
		{-dx, p[0] - b.minX},
		{dx, b.maxX - p[0]},
		{-dy, p[1] - b.minY},
		{dy, b.maxY - p[1]},
	}
	for _, e := range edges {
		if e[0] == 0 {
			if e[1] < 0 {
				return 0, 0, false
			}
			continue
		}
		t := e[1] / e[0]
		if e[0] < 0 {
			if t > t1 {
				return 0, 0, false
			}
			t0 = max(t0, t)
		} else {
			if t < t0 {
				return 0, 0, false
			}
			t1 = min(t1, t)
		}
	}
	return t0, t1, t0 < t1
}

func (op Op) args() int {
	switch op {
	case MoveTo, LineTo:
		return 1
	case QuadTo:
		return 2
	case CubeTo:
		return 3
	}
	return 0
}

func lerp(p, q f64.Vec2, t float64) f64.Vec2 {
	return f64.Vec2{p[0] + (q[0]-p[0])*t, p[1] + (q[1]-p[1])*t}
}

func dist(p, q f64.Vec2) float64 {
	return math.Hypot(q[0]-p[0], q[1]-p[1])
}

func splitCubic(p0, p1, p2, p3 f64.Vec2) (l, r [4]f64.Vec2) {
	p01, p12, p23 := lerp(p0, p1, 0.5), lerp(p1, p2, 0.5), lerp(p2, p3, 0.5)
	p012, p123 := lerp(p01, p12, 0.5), lerp(p12, p23, 0.5)
	m := lerp(p012, p123, 0.5)
	return [4]f64.Vec2{p0, p01, p012, m}, [4]f64.Vec2{m, p123, p23, p3}
}

// elevate returns the cubic control points of a quadratic curve.
func elevate(p0, c, p f64.Vec2) (f64.Vec2, f64.Vec2) {
	return lerp(p0, c, 2.0/3), lerp(p, c, 2.0/3)
}

func cubicLength(p0, p1, p2, p3 f64.Vec2) float64 {
	const steps = 16
	n, prev := 0.0, p0
	for i := 1; i <= steps; i++ {
		t := float64(i) / steps
		a, b, c := lerp(p0, p1, t), lerp(p1, p2, t), lerp(p2, p3, t)
		pt := lerp(lerp(a, b, t), lerp(b, c, t), t)
		n += dist(prev, pt)
		prev = pt
	}
	return n
}

func line(p f64.Vec2) Segment {
	return Segment{Op: LineTo, Args: [3]f64.Vec2{p}}
}

// clipFill confines a fill path to b. Parts outside b are projected onto
// its edges, which keeps the non-zero winding of every point inside b.
func clipFill(segs []Segment, b box) []Segment {
	if b.holds(segs) {
		return segs
	}
	c := fillClipper{b: b, out: make([]Segment, 0, len(segs)+8)}
	for _, s := range segs {
		switch s.Op {
		case MoveTo:
			c.moveTo(s.Args[0])
		case LineTo:
			if !c.open {
				c.moveTo(s.Args[0])
				continue
			}
			c.lineTo(s.Args[0])
		case QuadTo:
			if c.open {
				c.quadTo(s.Args[0], s.Args[1])
			}
		case CubeTo:
			if c.open {
				c.cubeTo(s.Args[0], s.Args[1], s.Args[2], 0)
			}
		case Close:
			c.closePath()
		}
	}
	c.closePath()
	return c.out
}

type fillClipper struct {
	b          box
	out        []Segment
	start, cur f64.Vec2
	open       bool
}

func (c *fillClipper) moveTo(p f64.Vec2) {
	c.closePath()
	c.start, c.cur, c.open = p, p, true
	c.out = append(c.out, Segment{Op: MoveTo, Args: [3]f64.Vec2{c.b.clamp(p)}})
}

// closePath adds the closing edge explicitly so that it is clipped too.
func (c *fillClipper) closePath() {
	if !c.open {
		return
	}
	if c.cur != c.start {
		c.lineTo(c.start)
	}
	c.out = append(c.out, Segment{Op: Close})
	c.open = false
}

// lineTo splits the line where it crosses an edge of the box, so every
// piece is on one side of each edge, and clamps the pieces.
func (c *fillClipper) lineTo(p f64.Vec2) {
	a := c.cur
	var ts [4]float64
	n := 0
	for _, x := range [2]float64{c.b.minX, c.b.maxX} {
		if (a[0]-x)*(p[0]-x) < 0 {
			ts[n] = (x - a[0]) / (p[0] - a[0])
			n++
		}
	}
	for _, y := range [2]float64{c.b.minY, c.b.maxY} {
		if (a[1]-y)*(p[1]-y) < 0 {
			ts[n] = (y - a[1]) / (p[1] - a[1])
			n++
		}
	}
	slices.Sort(ts[:n])
	for _, t := range ts[:n] {
		c.out = append(c.out, line(c.b.clamp(lerp(a, p, t))))
	}
	c.out = append(c.out, line(c.b.clamp(p)))
	c.cur = p
}

func (c *fillClipper) quadTo(ctrl, p f64.Vec2) {
	if c.b.covers(hull(c.cur, ctrl, p)) {
		c.out = append(c.out, Segment{Op: QuadTo, Args: [3]f64.Vec2{ctrl, p}})
		c.cur = p
		return
	}
	c1, c2 := elevate(c.cur, ctrl, p)
	c.cubeTo(c1, c2, p, 0)
}

// cubeTo keeps curves inside the box and replaces curves beyond one edge by
// their chord, which winds the same way for every point inside. Curves
// crossing an edge are split until one of those cases applies.
func (c *fillClipper) cubeTo(c1, c2, p f64.Vec2, depth int) {
	a := c.cur
	h := hull(a, c1, c2, p)
	switch {
	case c.b.covers(h):
		c.out = append(c.out, Segment{Op: CubeTo, Args: [3]f64.Vec2{c1, c2, p}})
		c.cur = p
	case c.b.disjoint(h) || !h.finite() || h.tiny() || depth >= maxClipDepth:
		c.lineTo(p)
	default:
		l, r := splitCubic(a, c1, c2, p)
		c.cubeTo(l[1], l[2], l[3], depth+1)
		c.cubeTo(r[1], r[2], r[3], depth+1)
	}
}

// strokeRun is one visible stretch of a stroked path. dist is the length of
// its subpath before the first point and sets the dash phase.
type strokeRun struct {
	dist float64
	segs []Segment
}

type strokePiece struct {
	from    f64.Vec2
	seg     Segment
	dist    float64
	visible bool
}

// clipStroke drops the parts of segs outside b. Each subpath is cut into
// runs of visible pieces; the caps at the cuts lie outside b. A closed,
// undashed subpath is rotated to begin at a cut so its start keeps its join.
func clipStroke(segs []Segment, b box, dashed bool) []strokeRun {
	if b.holds(segs) {
		return []strokeRun{{segs: segs}}
	}
	c := strokeClipper{b: b, dashed: dashed}
	for _, s := range segs {
		switch s.Op {
		case MoveTo:
			c.flush(false)
			c.moveTo(s.Args[0])
		case LineTo:
			if !c.open {
				c.moveTo(s.Args[0])
				continue
			}
			c.lineTo(s.Args[0])
		case QuadTo:
			if c.open {
				c.quadTo(s.Args[0], s.Args[1])
			}
		case CubeTo:
			if c.open {
				c.cubeTo(s.Args[0], s.Args[1], s.Args[2], 0)
			}
		case Close:
			if c.open {
				c.lineTo(c.start)
				c.flush(true)
			}
		}
	}
	c.flush(false)
	return c.runs
}

type strokeClipper struct {
	b          box
	dashed     bool
	runs       []strokeRun
	pieces     []strokePiece
	start, cur f64.Vec2
	dist       float64
	open       bool
}

func (c *strokeClipper) moveTo(p f64.Vec2) {
	c.start, c.cur, c.dist, c.open = p, p, 0, true
	c.pieces = c.pieces[:0]
}

func (c *strokeClipper) add(from f64.Vec2, seg Segment, length float64, visible bool) {
	c.pieces = append(c.pieces, strokePiece{from: from, seg: seg, dist: c.dist, visible: visible})
	c.dist += length
}

func (c *strokeClipper) lineTo(p f64.Vec2) {
	a := c.cur
	c.cur = p
	if a == p {
		return
	}
	length := dist(a, p)
	t0, t1, ok := c.b.clipLine(a, p)
	if !ok {
		c.add(a, line(p), length, false)
		return
	}
	q0, q1 := a, p
	if t0 > 0 {
		q0 = lerp(a, p, t0)
		c.add(a, line(q0), length*t0, false)
	}
	if t1 < 1 {
		q1 = lerp(a, p, t1)
	}
	c.add(q0, line(q1), length*(t1-t0), true)
	if t1 < 1 {
		c.add(q1, line(p), length*(1-t1), false)
	}
}

func (c *strokeClipper) quadTo(ctrl, p f64.Vec2) {
	a := c.cur
	if c.b.covers(hull(a, ctrl, p)) {
		c1, c2 := elevate(a, ctrl, p)
		c.cur = p
		c.add(a, Segment{Op: QuadTo, Args: [3]f64.Vec2{ctrl, p}}, cubicLength(a, c1, c2, p), true)
		return
	}
	c1, c2 := elevate(a, ctrl, p)
	c.cubeTo(c1, c2, p, 0)
}

func (c *strokeClipper) cubeTo(c1, c2, p f64.Vec2, depth int) {
	a := c.cur
	h := hull(a, c1, c2, p)
	switch {
	case c.b.covers(h):
		c.cur = p
		c.add(a, Segment{Op: CubeTo, Args: [3]f64.Vec2{c1, c2, p}}, cubicLength(a, c1, c2, p), true)
	case c.b.disjoint(h) && h.finite():
		c.cur = p
		c.add(a, line(p), cubicLength(a, c1, c2, p), false)
	case !h.finite() || h.tiny() || depth >= maxClipDepth:
		c.lineTo(p)
	default:
		l, r := splitCubic(a, c1, c2, p)
		c.cubeTo(l[1], l[2], l[3], depth+1)
		c.cubeTo(r[1], r[2], r[3], depth+1)
	}
}

// flush turns the pieces of the current subpath into runs.
func (c *strokeClipper) flush(closed bool) {
	if !c.open {
		return
	}
	c.open = false
	ps := c.pieces
	if len(ps) == 0 {
		if c.b.contains(c.start) {
			c.runs = append(c.runs, strokeRun{segs: []Segment{{Op: MoveTo, Args: [3]f64.Vec2{c.start}}}})
		}
		return
	}

	whole := !slices.ContainsFunc(ps, func(p strokePiece) bool { return !p.visible })
	if whole {
		run := strokeRun{segs: make([]Segment, 0, len(ps)+2)}
		run.segs = append(run.segs, Segment{Op: MoveTo, Args: [3]f64.Vec2{c.start}})
		for _, p := range ps {
			run.segs = append(run.segs, p.seg)
		}
		if closed {
			run.segs = append(run.segs, Segment{Op: Close})
		}
		c.runs = append(c.runs, run)
		return
	}

	order := ps
	if closed && !c.dashed && ps[0].visible && ps[len(ps)-1].visible {
		k := len(ps) - 1
		for ps[k-1].visible {
			k--
		}
		order = append(slices.Clone(ps[k:]), ps[:k]...)
	}
	run := -1
	for _, p := range order {
		if !p.visible {
			run = -1
			continue
		}
		if run < 0 {
			c.runs = append(c.runs, strokeRun{
				dist: p.dist,
				segs: []Segment{{Op: MoveTo, Args: [3]f64.Vec2{p.from}}},
			})
			run = len(c.runs) - 1
		}
		c.runs[run].segs = append(c.runs[run].segs, p.seg)
	}
}
