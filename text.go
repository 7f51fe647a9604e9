package paintbook

import (
	"github.com/gogpu/paintbook/internal/typeface"
)

// TextExtents describes the ink and advance of a string in user units.
// The bearings locate the top-left corner of the ink box relative to the
// text origin; YBearing is negative for ink above the baseline.
type TextExtents struct {
	XBearing float64
	YBearing float64
	Width    float64
	Height   float64
	XAdvance float64
	YAdvance float64
}

// FontExtents describes the vertical metrics of the current font in user
// units.
type FontExtents struct {
	Ascent  float64
	Descent float64
	Height  float64
}

// SelectFontFace selects the font used by text operations. Families not in
// the context's FontSet fall back to the Go font.
func (c *Context) SelectFontFace(family string, slant FontSlant, weight FontWeight) {
	c.st.fontFamily = family
	c.st.fontSlant = slant
	c.st.fontWeight = weight
}

// SetFontSize sets the em size in user units.
func (c *Context) SetFontSize(size float64) {
	c.st.fontSize = size
}

// FontSize returns the em size in user units.
func (c *Context) FontSize() float64 { return c.st.fontSize }

// fontFace resolves the selected face, caching the last lookup.
func (c *Context) fontFace() (*typeface.Face, error) {
	key := faceKey{c.st.fontFamily, c.st.fontSlant, c.st.fontWeight}
	if c.face != nil && c.faceKey == key {
		return c.face, nil
	}
	face, err := c.fonts.lookup(key.family, key.slant, key.weight)
	if err != nil {
		return nil, err
	}
	c.face, c.faceKey = face, key
	return face, nil
}

// fontScale converts font units to user units.
func (c *Context) fontScale(face *typeface.Face) float64 {
	return c.st.fontSize / face.UnitsPerEm()
}

// TextExtents measures s with the current font. It does not change any
// context state.
func (c *Context) TextExtents(s string) (TextExtents, error) {
	if err := c.ready("text_extents"); err != nil {
		return TextExtents{}, err
	}
	face, err := c.fontFace()
	if err != nil {
		return TextExtents{}, newError("text_extents", ErrDraw, err)
	}
	k := c.fontScale(face)
	glyphs, advance := face.Shape(s)

	var (
		ink   typeface.Bounds
		inked bool
	)
	for _, g := range glyphs {
		b, err := face.GlyphBounds(g.ID)
		if err != nil {
			return TextExtents{}, newError("text_extents", ErrDraw, err)
		}
		if b.Empty() {
			continue
		}
		b = typeface.Bounds{
			MinX: b.MinX + g.X, MinY: b.MinY + g.Y,
			MaxX: b.MaxX + g.X, MaxY: b.MaxY + g.Y,
		}
		if !inked {
			ink, inked = b, true
			continue
		}
		ink.MinX, ink.MinY = min(ink.MinX, b.MinX), min(ink.MinY, b.MinY)
		ink.MaxX, ink.MaxY = max(ink.MaxX, b.MaxX), max(ink.MaxY, b.MaxY)
	}

	ext := TextExtents{XAdvance: advance * k}
	if inked {
		ext.XBearing = ink.MinX * k
		ext.YBearing = ink.MinY * k
		ext.Width = (ink.MaxX - ink.MinX) * k
		ext.Height = (ink.MaxY - ink.MinY) * k
	}
	return ext, nil
}

// FontExtents returns the metrics of the current font.
func (c *Context) FontExtents() (FontExtents, error) {
	if err := c.ready("font_extents"); err != nil {
		return FontExtents{}, err
	}
	face, err := c.fontFace()
	if err != nil {
		return FontExtents{}, newError("font_extents", ErrDraw, err)
	}
	m, err := face.Metrics()
	if err != nil {
		return FontExtents{}, newError("font_extents", ErrDraw, err)
	}
	k := c.fontScale(face)
	return FontExtents{Ascent: m.Ascent * k, Descent: m.Descent * k, Height: m.Height * k}, nil
}

// ShowText draws s with the current source, starting at the current point
// (or the user space origin when there is none) on the baseline. The
// current point moves to the end of the text. The path, transformation and
// line width are unchanged.
func (c *Context) ShowText(s string) error {
	if err := c.ready("show_text"); err != nil {
		return err
	}
	glyphs := NewPath()
	x, y := c.CurrentPoint()
	adv, err := c.appendGlyphs(glyphs, s, x, y)
	if err != nil {
		return newError("show_text", ErrDraw, err)
	}
	if s == "" {
		return nil
	}

	cov := c.rast.Fill(glyphs.segments())
	if err := c.composite("show_text", alphaCoverage(cov), c.rast.Extent()); err != nil {
		return err
	}
	c.MoveTo(x+adv, y)
	return nil
}

// TextPath adds the outlines of s to the current path, starting at the
// current point, and moves the current point to the end of the text.
func (c *Context) TextPath(s string) error {
	if err := c.ready("text_path"); err != nil {
		return err
	}
	x, y := c.CurrentPoint()
	adv, err := c.appendGlyphs(c.path, s, x, y)
	if err != nil {
		return newError("text_path", ErrDraw, err)
	}
	c.MoveTo(x+adv, y)
	return nil
}

// appendGlyphs adds the glyph outlines of s placed at user (x, y) to p in
// device space, and returns the advance in user units.
func (c *Context) appendGlyphs(p *Path, s string, x, y float64) (float64, error) {
	face, err := c.fontFace()
	if err != nil {
		return 0, err
	}
	k := c.fontScale(face)
	glyphs, advance := face.Shape(s)
	base := c.st.ctm.Multiply(Translate(x, y)).Multiply(Scale(k, k))

	for _, g := range glyphs {
		segs, err := face.Outline(g.ID)
		if err != nil {
			return 0, err
		}
		m := base.Multiply(Translate(g.X, g.Y))
		pt := func(i int, sg typeface.Segment) Point {
			return m.TransformPoint(Pt(sg.Args[i][0], sg.Args[i][1]))
		}
		open := false
		for _, seg := range segs {
			switch seg.Op {
			case typeface.SegmentMoveTo:
				if open {
					p.Close()
				}
				a := pt(0, seg)
				p.MoveTo(a.X, a.Y)
				open = true
			case typeface.SegmentLineTo:
				a := pt(0, seg)
				p.LineTo(a.X, a.Y)
			case typeface.SegmentQuadTo:
				a, b := pt(0, seg), pt(1, seg)
				p.QuadraticTo(a.X, a.Y, b.X, b.Y)
			case typeface.SegmentCubeTo:
				a, b, d := pt(0, seg), pt(1, seg), pt(2, seg)
				p.CubicTo(a.X, a.Y, b.X, b.Y, d.X, d.Y)
			}
		}
		if open {
			p.Close()
		}
	}
	return advance * k, nil
}
