package paintbook

import (
	"math"

	"github.com/gogpu/paintbook/internal/blend"
)

// SurfacePattern paints with the pixels of a surface. Pattern space is the
// pixel grid of the surface. The default extend mode is ExtendNone and the
// default filter is FilterBilinear.
type SurfacePattern struct {
	patternBase
	surface *Surface
	filter  Filter
}

// NewSurfacePattern creates a pattern reading from s.
func NewSurfacePattern(s *Surface) *SurfacePattern {
	p := &SurfacePattern{
		patternBase: newPatternBase(ExtendNone),
		surface:     s,
	}
	if s == nil {
		p.err = errNilSurface
	}
	return p
}

// Surface returns the pattern surface.
func (p *SurfacePattern) Surface() *Surface { return p.surface }

// SetFilter sets the resampling filter.
func (p *SurfacePattern) SetFilter(f Filter) { p.filter = f }

// Filter returns the resampling filter.
func (p *SurfacePattern) Filter() Filter { return p.filter }

func (p *SurfacePattern) newSampler(ctm Matrix, target *Surface) (sampler, error) {
	toPat, err := p.deviceToPattern(ctm)
	if err != nil {
		return nil, err
	}
	src := p.surface
	// Reading and writing the same pixels in one pass would feed drawn
	// pixels back into the source.
	if src == target {
		src = src.snapshot()
	}
	return &surfaceSampler{
		src:    src,
		toPat:  toPat,
		extend: p.extend,
		filter: p.filter,
	}, nil
}

type surfaceSampler struct {
	src    *Surface
	toPat  Matrix
	extend Extend
	filter Filter
}

func (s *surfaceSampler) at(x, y float64) blend.Color {
	p := s.toPat.TransformPoint(Pt(x, y))
	if s.filter == FilterNearest {
		return s.texel(int(math.Floor(p.X)), int(math.Floor(p.Y)))
	}

	// Bilinear taps are centered on pixel centers.
	fx, fy := p.X-0.5, p.Y-0.5
	x0, y0 := math.Floor(fx), math.Floor(fy)
	tx, ty := fx-x0, fy-y0
	ix, iy := int(x0), int(y0)

	c00 := s.texel(ix, iy)
	c10 := s.texel(ix+1, iy)
	c01 := s.texel(ix, iy+1)
	c11 := s.texel(ix+1, iy+1)
	return c00.Lerp(c10, tx).Lerp(c01.Lerp(c11, tx), ty)
}

// texel returns the pixel at integer pattern coordinates after applying
// the extend mode.
func (s *surfaceSampler) texel(x, y int) blend.Color {
	w, h := s.src.Width(), s.src.Height()
	var ok bool
	if x, ok = extendIndex(x, w, s.extend); !ok {
		return blend.Color{}
	}
	if y, ok = extendIndex(y, h, s.extend); !ok {
		return blend.Color{}
	}
	return s.src.load(x, y)
}

func extendIndex(i, n int, mode Extend) (int, bool) {
	if i >= 0 && i < n {
		return i, true
	}
	switch mode {
	case ExtendRepeat:
		i %= n
		if i < 0 {
			i += n
		}
	case ExtendReflect:
		period := 2 * n
		i %= period
		if i < 0 {
			i += period
		}
		if i >= n {
			i = period - 1 - i
		}
	case ExtendPad:
		i = min(max(i, 0), n-1)
	default:
		return 0, false
	}
	return i, true
}
