package typeface

import (
	"errors"
	"testing"

	"github.com/go-text/typesetting/di"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte("not a font"))
	if !errors.Is(err, ErrInvalidFont) {
		t.Fatalf("Parse() error = %v, want ErrInvalidFont", err)
	}
}

func TestFaceBasics(t *testing.T) {
	face, err := Parse(goregular.TTF)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if face.Family() != "Go" {
		t.Errorf("Family() = %q, want %q", face.Family(), "Go")
	}
	if face.UnitsPerEm() <= 0 {
		t.Errorf("UnitsPerEm() = %v", face.UnitsPerEm())
	}

	m, err := face.Metrics()
	if err != nil {
		t.Fatalf("Metrics() error = %v", err)
	}
	if m.Ascent <= 0 || m.Descent <= 0 || m.Height < m.Ascent {
		t.Errorf("Metrics() = %+v", m)
	}
}

func TestGlyphBoundsAndOutline(t *testing.T) {
	face, err := Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}

	x := face.GlyphIndex('x')
	if x == 0 {
		t.Fatal("GlyphIndex('x') = 0")
	}
	b, err := face.GlyphBounds(x)
	if err != nil {
		t.Fatal(err)
	}
	// Y is down, so ink above the baseline has negative Y.
	if b.Empty() || b.MinY >= 0 || b.MaxY > 1 {
		t.Errorf("GlyphBounds('x') = %+v", b)
	}
	segs, err := face.Outline(x)
	if err != nil {
		t.Fatal(err)
	}
	if len(segs) == 0 || segs[0].Op != SegmentMoveTo {
		t.Errorf("Outline('x') = %d segments, first %v", len(segs), segs)
	}

	space := face.GlyphIndex(' ')
	b, err = face.GlyphBounds(space)
	if err != nil {
		t.Fatal(err)
	}
	if !b.Empty() {
		t.Errorf("GlyphBounds(' ') = %+v, want empty", b)
	}
	if face.Advance(space) <= 0 {
		t.Error("space advance should be positive")
	}
}

func TestShape(t *testing.T) {
	face, err := Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}

	glyphs, adv := face.Shape("cairo")
	if len(glyphs) != 5 {
		t.Fatalf("Shape() returned %d glyphs, want 5", len(glyphs))
	}
	for i := 1; i < len(glyphs); i++ {
		if glyphs[i].X <= glyphs[i-1].X {
			t.Errorf("glyph %d at %v not right of %v", i, glyphs[i].X, glyphs[i-1].X)
		}
	}
	if adv <= glyphs[4].X {
		t.Errorf("advance %v should exceed last glyph origin %v", adv, glyphs[4].X)
	}

	// Shaping and the simple path agree on advances for plain Latin text.
	_, simple := face.shapeSimple([]rune("cairo"))
	if diff := simple - adv; diff > 1 || diff < -1 {
		t.Errorf("simple advance %v, shaped %v", simple, adv)
	}

	if glyphs, adv := face.Shape(""); glyphs != nil || adv != 0 {
		t.Error("Shape(\"\") should be empty")
	}
}

func TestDirection(t *testing.T) {
	if got := direction("hello"); got != di.DirectionLTR {
		t.Errorf("direction(latin) = %v", got)
	}
	if got := direction("שלום"); got != di.DirectionRTL {
		t.Errorf("direction(hebrew) = %v", got)
	}
}

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		name   string
		family string
		slant  Slant
		weight Weight
		exact  bool
	}{
		{"builtin", "Go", SlantNormal, WeightNormal, true},
		{"case insensitive", "GO MONO", SlantItalic, WeightBold, true},
		{"alias", "sans-serif", SlantNormal, WeightBold, true},
		{"oblique uses italic", "Go", SlantOblique, WeightNormal, false},
		{"unknown family", "Georgia", SlantNormal, WeightBold, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			face, exact, err := r.Lookup(tt.family, tt.slant, tt.weight)
			if err != nil {
				t.Fatalf("Lookup() error = %v", err)
			}
			if face == nil {
				t.Fatal("Lookup() returned nil face")
			}
			if exact != tt.exact {
				t.Errorf("exact = %v, want %v", exact, tt.exact)
			}
		})
	}
}

func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()
	if err := r.Register("Display", SlantNormal, WeightBold, gobold.TTF); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if _, exact, err := r.Lookup("display", SlantNormal, WeightBold); err != nil || !exact {
		t.Errorf("Lookup(display) exact=%v err=%v", exact, err)
	}
	if err := r.Register("Broken", SlantNormal, WeightNormal, []byte{1, 2, 3}); !errors.Is(err, ErrInvalidFont) {
		t.Errorf("Register(broken) error = %v", err)
	}

	fams := r.Families()
	want := []string{"display", "go", "go mono"}
	if len(fams) != len(want) {
		t.Fatalf("Families() = %v, want %v", fams, want)
	}
	for i := range want {
		if fams[i] != want[i] {
			t.Errorf("Families()[%d] = %q, want %q", i, fams[i], want[i])
		}
	}
}

func TestGlyphDataIsCached(t *testing.T) {
	face, err := Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	id := face.GlyphIndex('g')
	first, err := face.Outline(id)
	if err != nil {
		t.Fatal(err)
	}
	second, err := face.Outline(id)
	if err != nil {
		t.Fatal(err)
	}
	if &first[0] != &second[0] {
		t.Error("Outline reloaded a cached glyph")
	}

	a, err := face.GlyphBounds(id)
	if err != nil {
		t.Fatal(err)
	}
	b, err := face.GlyphBounds(id)
	if err != nil {
		t.Fatal(err)
	}
	if a != b || a.Empty() {
		t.Errorf("GlyphBounds() = %+v then %+v", a, b)
	}
}
