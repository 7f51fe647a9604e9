package paintbook

import (
	"image"

	"github.com/gogpu/paintbook/internal/blend"
	"github.com/gogpu/paintbook/internal/raster"
)

// coverage returns the fraction in [0, 1] of pixel (x, y) to draw.
type coverage func(x, y int) float64

func alphaCoverage(a *image.Alpha) coverage {
	return func(x, y int) float64 {
		return float64(a.Pix[y*a.Stride+x]) / 255
	}
}

// Fill fills the current path with the non-zero winding rule and clears it.
func (c *Context) Fill() error {
	err := c.FillPreserve()
	c.path.Clear()
	return err
}

// FillPreserve fills the current path and keeps it.
func (c *Context) FillPreserve() error {
	if err := c.ready("fill"); err != nil {
		return err
	}
	cov := c.rast.Fill(c.path.segments())
	return c.composite("fill", alphaCoverage(cov), c.rast.Extent())
}

// Stroke strokes the current path and clears it.
func (c *Context) Stroke() error {
	err := c.StrokePreserve()
	c.path.Clear()
	return err
}

// StrokePreserve strokes the current path with the current line width,
// cap, join, miter limit and dash pattern, and keeps the path. The line
// width is in user units and scales with the current transformation.
func (c *Context) StrokePreserve() error {
	if err := c.ready("stroke"); err != nil {
		return err
	}
	cov := c.rast.Stroke(c.path.segments(), c.strokeStyle())
	return c.composite("stroke", alphaCoverage(cov), c.rast.Extent())
}

func (c *Context) strokeStyle() raster.StrokeStyle {
	k := c.st.ctm.ScaleFactor()
	style := raster.StrokeStyle{
		Width:      c.st.lineWidth * k,
		MiterLimit: c.st.miterLimit,
		DashOffset: c.st.dashOffset * k,
	}
	switch c.st.lineCap {
	case LineCapRound:
		style.Cap = raster.CapRound
	case LineCapSquare:
		style.Cap = raster.CapSquare
	default:
		style.Cap = raster.CapButt
	}
	switch c.st.lineJoin {
	case LineJoinRound:
		style.Join = raster.JoinRound
	case LineJoinBevel:
		style.Join = raster.JoinBevel
	default:
		style.Join = raster.JoinMiter
	}
	if len(c.st.dash) > 0 {
		style.Dashes = make([]float64, len(c.st.dash))
		for i, d := range c.st.dash {
			style.Dashes[i] = d * k
		}
	}
	return style
}

// Paint paints the source everywhere inside the clip.
func (c *Context) Paint() error {
	return c.PaintWithAlpha(1)
}

// PaintWithAlpha paints the source everywhere inside the clip with its
// alpha scaled by alpha.
func (c *Context) PaintWithAlpha(alpha float64) error {
	if err := c.ready("paint"); err != nil {
		return err
	}
	alpha = clamp01(alpha)
	return c.composite("paint", func(int, int) float64 { return alpha }, c.surface.Bounds())
}

// Mask paints the current source using the alpha channel of mask as
// coverage. The mask is interpreted under the current transformation.
func (c *Context) Mask(mask Source) error {
	if err := c.ready("mask"); err != nil {
		return err
	}
	if mask == nil {
		return newError("mask", ErrDraw, errNilSource)
	}
	ms, err := mask.newSampler(c.st.ctm, c.surface)
	if err != nil {
		return newError("mask", ErrDraw, err)
	}
	cov := func(x, y int) float64 {
		return ms.at(float64(x)+0.5, float64(y)+0.5).A
	}
	return c.composite("mask", cov, c.surface.Bounds())
}

// MaskSurface masks with the alpha of s placed at user (x, y).
func (c *Context) MaskSurface(s *Surface, x, y float64) error {
	p := NewSurfacePattern(s)
	p.SetMatrix(Translate(-x, -y))
	return c.Mask(p)
}

// Clip intersects the clip region with the current path and clears it.
func (c *Context) Clip() error {
	err := c.ClipPreserve()
	c.path.Clear()
	return err
}

// ClipPreserve intersects the clip region with the current path and keeps
// the path. The clip is part of the state saved by Save.
func (c *Context) ClipPreserve() error {
	if err := c.ready("clip"); err != nil {
		return err
	}
	cov := c.rast.Fill(c.path.segments())
	clip := image.NewAlpha(cov.Rect)
	if c.st.clip == nil {
		copy(clip.Pix, cov.Pix)
	} else {
		for i, v := range cov.Pix {
			clip.Pix[i] = uint8((uint32(v)*uint32(c.st.clip.Pix[i]) + 127) / 255)
		}
	}
	c.st.clip = clip
	return nil
}

// ResetClip removes all clipping.
func (c *Context) ResetClip() {
	c.st.clip = nil
}

// InClip reports whether the user space point lies inside the clip region.
func (c *Context) InClip(x, y float64) bool {
	if c.st.clip == nil {
		return true
	}
	dx, dy := c.UserToDevice(x, y)
	p := image.Pt(int(dx), int(dy))
	if !p.In(c.st.clip.Rect) {
		return false
	}
	return c.st.clip.AlphaAt(p.X, p.Y).A > 0
}

// composite draws the source through cov onto the surface. Bounded
// operators only visit region; unbounded ones visit the whole surface so
// that pixels outside the shape are updated too. The clip always limits
// the pixels that change.
func (c *Context) composite(op string, cov coverage, region image.Rectangle) error {
	src, err := c.st.source.newSampler(c.st.sourceCTM, c.surface)
	if err != nil {
		return newError(op, ErrDraw, err)
	}

	bop := blend.Operator(c.st.operator)
	bounded := bop.Bounded()
	if !bounded {
		region = c.surface.Bounds()
	}
	region = region.Intersect(c.surface.Bounds())
	clip := c.st.clip

	for y := region.Min.Y; y < region.Max.Y; y++ {
		for x := region.Min.X; x < region.Max.X; x++ {
			clipCov := 1.0
			if clip != nil {
				v := clip.Pix[y*clip.Stride+x]
				if v == 0 {
					continue
				}
				clipCov = float64(v) / 255
			}
			m := cov(x, y)
			if m <= 0 && bounded {
				continue
			}

			d := c.surface.load(x, y)
			var s blend.Color
			if m > 0 {
				s = src.at(float64(x)+0.5, float64(y)+0.5)
			}
			r := blend.Composite(bop, s, d, m)
			if clipCov < 1 {
				r = d.Lerp(r, clipCov)
			}
			c.surface.store(x, y, r)
		}
	}
	return nil
}
