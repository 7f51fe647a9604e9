package typeface

import (
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/text/unicode/bidi"
)

// Glyph is a positioned glyph. X and Y locate the glyph origin relative to
// the start of the line, in font units with Y down.
type Glyph struct {
	ID      sfnt.GlyphIndex
	X, Y    float64
	Advance float64
}

// Shape lays out text on a single line. The returned glyphs are in visual
// order and the second result is the total horizontal advance.
func (f *Face) Shape(text string) ([]Glyph, float64) {
	if text == "" {
		return nil, 0
	}
	runes := []rune(text)
	if f.shaper != nil {
		if glyphs, adv, ok := f.shapeHarfbuzz(runes); ok {
			return glyphs, adv
		}
	}
	return f.shapeSimple(runes)
}

func (f *Face) shapeHarfbuzz(runes []rune) ([]Glyph, float64, bool) {
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: direction(string(runes)),
		Face:      font.NewFace(f.shaper),
		Size:      f.upem,
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}
	out := (&shaping.HarfbuzzShaper{}).Shape(input)
	if len(out.Glyphs) == 0 {
		return nil, 0, false
	}

	glyphs := make([]Glyph, len(out.Glyphs))
	var x float64
	for i, g := range out.Glyphs {
		adv := fixedToFloat(g.Advance)
		glyphs[i] = Glyph{
			ID:      sfnt.GlyphIndex(g.GlyphID),
			X:       x + fixedToFloat(g.XOffset),
			Y:       -fixedToFloat(g.YOffset),
			Advance: adv,
		}
		x += adv
	}
	return glyphs, x, true
}

// shapeSimple maps runes one to one with pair kerning. It serves fonts the
// HarfBuzz parser does not accept.
func (f *Face) shapeSimple(runes []rune) ([]Glyph, float64) {
	glyphs := make([]Glyph, 0, len(runes))
	var (
		x    float64
		prev sfnt.GlyphIndex
	)
	for i, r := range runes {
		id := f.GlyphIndex(r)
		if i > 0 {
			x += f.Kern(prev, id)
		}
		adv := f.Advance(id)
		glyphs = append(glyphs, Glyph{ID: id, X: x, Advance: adv})
		x += adv
		prev = id
	}
	return glyphs, x
}

// direction returns RTL when every bidi run of text is right to left.
// Mixed paragraphs are shaped left to right.
func direction(text string) di.Direction {
	p := bidi.Paragraph{}
	if _, err := p.SetString(text, bidi.DefaultDirection(bidi.Neutral)); err != nil {
		return di.DirectionLTR
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return di.DirectionLTR
	}
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		if run.Direction() != bidi.RightToLeft {
			return di.DirectionLTR
		}
	}
	return di.DirectionRTL
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
