// Package raster turns device space paths into anti-aliased coverage masks.
//
// Filling and stroking are delegated to rasterx, which scan converts through
// golang.org/x/image/vector. The result is an *image.Alpha where 0xff means
// the pixel is fully inside the shape.
package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
)

// Op identifies a path segment kind.
type Op uint8

const (
	MoveTo Op = iota
	LineTo
	QuadTo
	CubeTo
	Close
)

// Segment is a path command in device coordinates.
// MoveTo and LineTo use Args[0], QuadTo uses Args[0:2], CubeTo uses Args[0:3].
type Segment struct {
	Op   Op
	Args [3]f64.Vec2
}

// Cap is a line cap style.
type Cap uint8

const (
	CapButt Cap = iota
	CapRound
	CapSquare
)

// Join is a line join style.
type Join uint8

const (
	JoinMiter Join = iota
	JoinRound
	JoinBevel
)

// StrokeStyle describes the outline to build around a path.
// Width and the dash lengths are in device pixels.
type StrokeStyle struct {
	Width      float64
	Cap        Cap
	Join       Join
	MiterLimit float64
	Dashes     []float64
	DashOffset float64
}

// Rasterizer produces coverage masks of a fixed size.
// It is not safe for concurrent use.
type Rasterizer struct {
	w, h    int
	cov     *image.Alpha
	scanner *rasterx.ScannerGV
	filler  *rasterx.Filler
	dasher  *rasterx.Dasher
	extent  image.Rectangle
}

// New creates a rasterizer for a w x h device.
func New(w, h int) *Rasterizer {
	cov := image.NewAlpha(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, cov, cov.Bounds())
	return &Rasterizer{
		w:       w,
		h:       h,
		cov:     cov,
		scanner: scanner,
		filler:  rasterx.NewFiller(w, h, scanner),
		dasher:  rasterx.NewDasher(w, h, scanner),
	}
}

// Bounds returns the device rectangle covered by the rasterizer.
func (r *Rasterizer) Bounds() image.Rectangle {
	return r.cov.Rect
}

// Extent returns the bounds of the pixels covered by the last Fill or Stroke.
func (r *Rasterizer) Extent() image.Rectangle {
	return r.extent
}

// Fill returns the non-zero coverage of segs. The returned mask is owned
// by the rasterizer and valid until the next call.
func (r *Rasterizer) Fill(segs []Segment) *image.Alpha {
	r.reset()
	r.filler.SetWinding(true)
	feed(r.filler, clipFill(segs, r.guard(fillMargin)))
	r.filler.Draw()
	r.filler.Clear()
	r.finish()
	return r.cov
}

// Stroke returns the coverage of the outline of segs drawn with style.
// The returned mask is owned by the rasterizer and valid until the next call.
func (r *Rasterizer) Stroke(segs []Segment, style StrokeStyle) *image.Alpha {
	r.reset()
	if style.Width <= 0 {
		r.extent = image.Rectangle{}
		return r.cov
	}
	miter := style.MiterLimit
	if miter < 1 {
		miter = 1
	}
	ds := dashes(style.Dashes)
	r.dasher.SetStroke(
		toFixed(style.Width), toFixed(miter),
		capFunc(style.Cap), capFunc(style.Cap), rasterx.FlatGap, joinMode(style.Join),
		ds, style.DashOffset,
	)
	period := 0.0
	for _, d := range ds {
		period += d
	}
	margin := style.Width/2*max(miter, math.Sqrt2) + fillMargin
	for _, run := range clipStroke(segs, r.guard(margin), period > 0) {
		if period > 0 {
			phase := math.Mod(style.DashOffset+run.dist, period)
			if phase < 0 {
				phase += period
			}
			r.dasher.DashOffset = fixed.Int26_6(phase * 64)
		}
		feed(r.dasher, run.segs)
	}
	r.dasher.Draw()
	r.dasher.Clear()
	r.finish()
	return r.cov
}

func (r *Rasterizer) reset() {
	clear(r.cov.Pix)
	r.scanner.SetClip(r.cov.Rect)
	r.scanner.SetColor(color.Opaque)
}

// finish records the bounding box of the non-zero coverage.
func (r *Rasterizer) finish() {
	minX, minY, maxX, maxY := r.w, r.h, -1, -1
	for y := 0; y < r.h; y++ {
		row := r.cov.Pix[y*r.cov.Stride : y*r.cov.Stride+r.w]
		for x, v := range row {
			if v == 0 {
				continue
			}
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}
	if maxX < 0 {
		r.extent = image.Rectangle{}
		return
	}
	r.extent = image.Rect(minX, minY, maxX+1, maxY+1)
}

// adder is the path sink shared by rasterx fillers and dashers.
type adder interface {
	Start(a fixed.Point26_6)
	Line(b fixed.Point26_6)
	QuadBezier(b, c fixed.Point26_6)
	CubeBezier(b, c, d fixed.Point26_6)
	Stop(closeLoop bool)
}

// feed replays segs into a. Degenerate line segments are dropped because the
// stroker cannot derive a normal from them.
func feed(a adder, segs []Segment) {
	var (
		open bool
		cur  fixed.Point26_6
	)
	for _, s := range segs {
		switch s.Op {
		case MoveTo:
			if open {
				a.Stop(false)
			}
			cur = toPoint(s.Args[0])
			a.Start(cur)
			open = true
		case LineTo:
			p := toPoint(s.Args[0])
			if !open {
				cur = p
				a.Start(cur)
				open = true
				continue
			}
			if p == cur {
				continue
			}
			a.Line(p)
			cur = p
		case QuadTo:
			if !open {
				continue
			}
			c, p := toPoint(s.Args[0]), toPoint(s.Args[1])
			a.QuadBezier(c, p)
			cur = p
		case CubeTo:
			if !open {
				continue
			}
			c1, c2, p := toPoint(s.Args[0]), toPoint(s.Args[1]), toPoint(s.Args[2])
			if c1 == cur && c2 == cur && p == cur {
				continue
			}
			a.CubeBezier(c1, c2, p)
			cur = p
		case Close:
			if open {
				a.Stop(true)
				open = false
			}
		}
	}
	if open {
		a.Stop(false)
	}
}

// fillMargin is the guard band kept around the device when clipping.
const fillMargin = 2

// maxCoord keeps far off-canvas points inside the 26.6 range.
const maxCoord = 1 << 24

func toFixed(v float64) fixed.Int26_6 {
	if math.IsNaN(v) {
		return 0
	}
	v = math.Max(-maxCoord, math.Min(maxCoord, v))
	return fixed.Int26_6(math.Round(v * 64))
}

func toPoint(p f64.Vec2) fixed.Point26_6 {
	return fixed.Point26_6{X: toFixed(p[0]), Y: toFixed(p[1])}
}

func capFunc(c Cap) rasterx.CapFunc {
	switch c {
	case CapRound:
		return rasterx.RoundCap
	case CapSquare:
		return rasterx.SquareCap
	}
	return rasterx.ButtCap
}

func joinMode(j Join) rasterx.JoinMode {
	switch j {
	case JoinRound:
		return rasterx.Round
	case JoinBevel:
		return rasterx.Bevel
	}
	return rasterx.Miter
}

// dashes returns nil for solid lines. rasterx expects an even count and no
// all-zero pattern.
func dashes(d []float64) []float64 {
	if len(d) == 0 {
		return nil
	}
	total := 0.0
	for _, v := range d {
		total += v
	}
	if total <= 0 {
		return nil
	}
	out := make([]float64, 0, 2*len(d))
	out = append(out, d...)
	if len(d)%2 == 1 {
		out = append(out, d...)
	}
	return out
}
