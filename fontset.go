package paintbook

import (
	"fmt"
	"os"
	"sync"

	"github.com/gogpu/paintbook/internal/typeface"
)

// FontSlant is the posture requested with SelectFontFace.
type FontSlant uint8

const (
	FontSlantNormal FontSlant = iota
	FontSlantItalic
	FontSlantOblique
)

// FontWeight is the boldness requested with SelectFontFace.
type FontWeight uint8

const (
	FontWeightNormal FontWeight = iota
	FontWeightBold
)

// FontSet resolves family names to font faces. Every set starts with the
// embedded Go fonts: "Go" and "Go Mono" in regular, bold, italic and bold
// italic, with "sans-serif", "serif" and "monospace" as aliases. Unknown
// families fall back to Go. A FontSet is safe for concurrent use.
type FontSet struct {
	reg *typeface.Registry
}

// NewFontSet returns a set holding only the embedded Go fonts.
func NewFontSet() *FontSet {
	return &FontSet{reg: typeface.NewRegistry()}
}

var defaultFontSet = sync.OnceValue(NewFontSet)

// DefaultFontSet returns the set used by contexts created without
// WithFontSet.
func DefaultFontSet() *FontSet {
	return defaultFontSet()
}

// Register adds TrueType or OpenType data under family.
func (fs *FontSet) Register(family string, slant FontSlant, weight FontWeight, data []byte) error {
	if err := fs.reg.Register(family, typeface.Slant(slant), typeface.Weight(weight), data); err != nil {
		return newError("register_font", ErrAllocation, err)
	}
	return nil
}

// RegisterFile reads a font file and registers it under family.
func (fs *FontSet) RegisterFile(path, family string, slant FontSlant, weight FontWeight) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return newError("register_font", ErrIO, err)
	}
	return fs.Register(family, slant, weight, data)
}

// Alias makes name resolve to family.
func (fs *FontSet) Alias(name, family string) {
	fs.reg.Alias(name, family)
}

// Families returns the registered family names, lower-cased and sorted.
func (fs *FontSet) Families() []string {
	return fs.reg.Families()
}

// lookup resolves a face and logs when a fallback was used.
func (fs *FontSet) lookup(family string, slant FontSlant, weight FontWeight) (*typeface.Face, error) {
	face, exact, err := fs.reg.Lookup(family, typeface.Slant(slant), typeface.Weight(weight))
	if err != nil {
		return nil, fmt.Errorf("font %q: %w", family, err)
	}
	if !exact {
		Logger().Debug("font fallback",
			"family", family,
			"slant", slant,
			"weight", weight,
			"using", face.Family())
	}
	return face, nil
}
