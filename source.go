package paintbook

import (
	"fmt"

	"github.com/gogpu/paintbook/internal/blend"
)

// Source is what drawing operations paint with: a solid color, a gradient
// or a surface pattern.
type Source interface {
	// newSampler binds the source to the transformation that was current
	// when it was installed and to the surface being drawn on.
	newSampler(ctm Matrix, target *Surface) (sampler, error)
}

// sampler returns the premultiplied source color at a device position.
type sampler interface {
	at(x, y float64) blend.Color
}

// Extend controls how a pattern is sampled outside its natural area.
type Extend uint8

const (
	// ExtendNone is transparent outside the pattern.
	ExtendNone Extend = iota
	// ExtendRepeat tiles the pattern.
	ExtendRepeat
	// ExtendReflect tiles the pattern, mirroring every other copy.
	ExtendReflect
	// ExtendPad continues the nearest edge color.
	ExtendPad
)

// String returns the extend mode name.
func (e Extend) String() string {
	switch e {
	case ExtendNone:
		return "none"
	case ExtendRepeat:
		return "repeat"
	case ExtendReflect:
		return "reflect"
	case ExtendPad:
		return "pad"
	}
	return fmt.Sprintf("Extend(%d)", uint8(e))
}

// Filter selects how surface patterns are resampled.
type Filter uint8

const (
	// FilterBilinear interpolates the four nearest pixels.
	FilterBilinear Filter = iota
	// FilterNearest picks the nearest pixel.
	FilterNearest
)

// SolidPattern is a uniform color source.
type SolidPattern struct {
	color blend.Color
}

// NewSolidPattern returns a source painting c everywhere.
func NewSolidPattern(c RGBA) *SolidPattern {
	return &SolidPattern{color: c.premultiplied()}
}

func (p *SolidPattern) newSampler(Matrix, *Surface) (sampler, error) {
	return solidSampler(p.color), nil
}

type solidSampler blend.Color

func (s solidSampler) at(float64, float64) blend.Color { return blend.Color(s) }

// patternBase holds the state shared by gradients and surface patterns.
type patternBase struct {
	matrix Matrix
	extend Extend
	err    error
}

func newPatternBase(extend Extend) patternBase {
	return patternBase{matrix: Identity(), extend: extend}
}

// SetMatrix sets the transformation from user space to pattern space.
// A non-invertible matrix puts the pattern in an error state that makes
// every later use of it fail with ErrDraw.
func (p *patternBase) SetMatrix(m Matrix) {
	if !m.Invertible() {
		p.err = errSingularMatrix
		return
	}
	p.matrix = m
}

// Matrix returns the pattern matrix.
func (p *patternBase) Matrix() Matrix { return p.matrix }

// SetExtend sets how the pattern is sampled outside its natural area.
func (p *patternBase) SetExtend(e Extend) { p.extend = e }

// Extend returns the extend mode.
func (p *patternBase) Extend() Extend { return p.extend }

// Err returns the pattern error state, or nil.
func (p *patternBase) Err() error { return p.err }

// deviceToPattern returns the mapping from device to pattern coordinates
// for a source installed under ctm.
func (p *patternBase) deviceToPattern(ctm Matrix) (Matrix, error) {
	if p.err != nil {
		return Matrix{}, p.err
	}
	inv, ok := ctm.Invert()
	if !ok {
		return Matrix{}, errSingularMatrix
	}
	return p.matrix.Multiply(inv), nil
}
