// Package typeface loads OpenType faces and exposes the glyph data needed to
// lay out and draw a line of text.
//
// All geometry is reported in font units with the Y axis pointing down, so
// callers scale by size/UnitsPerEm to reach user space.
package typeface

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/font"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/paintbook/internal/cache"
)

// glyphCacheSize bounds the outlines and ink boxes kept per face.
const glyphCacheSize = 512

// ErrInvalidFont is returned when font data cannot be parsed.
var ErrInvalidFont = errors.New("typeface: invalid font data")

// SegmentOp identifies an outline segment kind.
type SegmentOp uint8

const (
	SegmentMoveTo SegmentOp = iota
	SegmentLineTo
	SegmentQuadTo
	SegmentCubeTo
)

// Segment is an outline command in font units, Y down.
type Segment struct {
	Op   SegmentOp
	Args [3]f64.Vec2
}

// Bounds is an ink rectangle in font units, Y down.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Empty reports whether the rectangle has no area.
func (b Bounds) Empty() bool {
	return b.MaxX <= b.MinX || b.MaxY <= b.MinY
}

// Metrics holds vertical face metrics in font units.
type Metrics struct {
	Ascent  float64 // distance above the baseline, positive
	Descent float64 // distance below the baseline, positive
	Height  float64 // recommended baseline to baseline distance
}

// Face is a parsed font. It is safe for concurrent use.
type Face struct {
	family string
	sfnt   *opentype.Font
	shaper *font.Font // nil when go-text rejects the file
	upem   fixed.Int26_6

	mu  sync.Mutex
	buf sfnt.Buffer

	outlines *cache.Cache[sfnt.GlyphIndex, []Segment]
	bounds   *cache.Cache[sfnt.GlyphIndex, Bounds]
}

// Parse parses TrueType or OpenType data.
func Parse(data []byte) (*Face, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFont, err)
	}
	face := &Face{
		sfnt:     f,
		upem:     fixed.I(int(f.UnitsPerEm())),
		outlines: cache.New[sfnt.GlyphIndex, []Segment](glyphCacheSize),
		bounds:   cache.New[sfnt.GlyphIndex, Bounds](glyphCacheSize),
	}
	if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil {
		face.family = name
	}
	if gt, err := font.ParseTTF(bytes.NewReader(data)); err == nil {
		face.shaper = gt.Font
	}
	return face, nil
}

// Family returns the family name stored in the font, if any.
func (f *Face) Family() string {
	return f.family
}

// UnitsPerEm returns the size of the em square in font units.
func (f *Face) UnitsPerEm() float64 {
	return float64(f.sfnt.UnitsPerEm())
}

// Metrics returns the vertical metrics of the face.
func (f *Face) Metrics() (Metrics, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, err := f.sfnt.Metrics(&f.buf, f.upem, xfont.HintingNone)
	if err != nil {
		return Metrics{}, err
	}
	return Metrics{
		Ascent:  fixedToFloat(m.Ascent),
		Descent: fixedToFloat(m.Descent),
		Height:  fixedToFloat(m.Height),
	}, nil
}

// GlyphIndex maps r to a glyph, returning 0 (notdef) when r is missing.
func (f *Face) GlyphIndex(r rune) sfnt.GlyphIndex {
	f.mu.Lock()
	defer f.mu.Unlock()
	idx, err := f.sfnt.GlyphIndex(&f.buf, r)
	if err != nil {
		return 0
	}
	return idx
}

// Advance returns the horizontal advance of glyph id.
func (f *Face) Advance(id sfnt.GlyphIndex) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	adv, err := f.sfnt.GlyphAdvance(&f.buf, id, f.upem, xfont.HintingNone)
	if err != nil {
		return 0
	}
	return fixedToFloat(adv)
}

// Kern returns the kerning adjustment between two glyphs.
func (f *Face) Kern(a, b sfnt.GlyphIndex) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	k, err := f.sfnt.Kern(&f.buf, a, b, f.upem, xfont.HintingNone)
	if err != nil {
		return 0
	}
	return fixedToFloat(k)
}

// GlyphBounds returns the ink bounds of glyph id. Glyphs without
// contours, such as the space, report empty bounds.
func (f *Face) GlyphBounds(id sfnt.GlyphIndex) (Bounds, error) {
	return f.bounds.GetOrLoad(id, func() (Bounds, error) { return f.loadBounds(id) })
}

func (f *Face) loadBounds(id sfnt.GlyphIndex) (Bounds, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, _, err := f.sfnt.GlyphBounds(&f.buf, id, f.upem, xfont.HintingNone)
	if err != nil {
		return Bounds{}, err
	}
	return Bounds{
		MinX: fixedToFloat(b.Min.X),
		MinY: fixedToFloat(b.Min.Y),
		MaxX: fixedToFloat(b.Max.X),
		MaxY: fixedToFloat(b.Max.Y),
	}, nil
}

// Outline returns the contours of glyph id. The returned slice is shared
// and must not be modified.
func (f *Face) Outline(id sfnt.GlyphIndex) ([]Segment, error) {
	return f.outlines.GetOrLoad(id, func() ([]Segment, error) { return f.loadOutline(id) })
}

func (f *Face) loadOutline(id sfnt.GlyphIndex) ([]Segment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	segs, err := f.sfnt.LoadGlyph(&f.buf, id, f.upem, nil)
	if err != nil {
		return nil, err
	}
	out := make([]Segment, 0, len(segs))
	for _, s := range segs {
		var seg Segment
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			seg.Op = SegmentMoveTo
		case sfnt.SegmentOpLineTo:
			seg.Op = SegmentLineTo
		case sfnt.SegmentOpQuadTo:
			seg.Op = SegmentQuadTo
		case sfnt.SegmentOpCubeTo:
			seg.Op = SegmentCubeTo
		default:
			continue
		}
		for i, p := range s.Args {
			seg.Args[i] = f64.Vec2{fixedToFloat(p.X), fixedToFloat(p.Y)}
		}
		out = append(out, seg)
	}
	return out, nil
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
