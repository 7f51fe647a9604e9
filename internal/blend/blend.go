// Package blend implements Porter-Duff compositing operators and blend modes
// on premultiplied floating point colors.
//
// All channels are in the range [0, 1] and color channels are premultiplied
// by alpha. Operators follow the pixman semantics: bounded operators only
// touch pixels under the shape, unbounded ones clear destination outside it.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// Color is a premultiplied RGBA color with float64 channels in [0, 1].
type Color struct {
	R, G, B, A float64
}

// Scale multiplies every channel by k.
func (c Color) Scale(k float64) Color {
	return Color{c.R * k, c.G * k, c.B * k, c.A * k}
}

// Lerp interpolates from c towards d by t.
func (c Color) Lerp(d Color, t float64) Color {
	return Color{
		R: c.R + (d.R-c.R)*t,
		G: c.G + (d.G-c.G)*t,
		B: c.B + (d.B-c.B)*t,
		A: c.A + (d.A-c.A)*t,
	}
}

// Clamp limits every channel to [0, 1] and color channels to alpha.
func (c Color) Clamp() Color {
	a := clamp01(c.A)
	return Color{
		R: min(clamp01(c.R), a),
		G: min(clamp01(c.G), a),
		B: min(clamp01(c.B), a),
		A: a,
	}
}

// Operator is a compositing operator.
type Operator uint8

const (
	// Porter-Duff operators
	Clear    Operator = iota // 0
	Source                   // S
	Over                     // S + D*(1-Sa) [default]
	In                       // S*Da
	Out                      // S*(1-Da)
	Atop                     // S*Da + D*(1-Sa)
	Dest                     // D
	DestOver                 // S*(1-Da) + D
	DestIn                   // D*Sa
	DestOut                  // D*(1-Sa)
	DestAtop                 // S*(1-Da) + D*Sa
	Xor                      // S*(1-Da) + D*(1-Sa)
	Add                      // S + D, clamped
	Saturate                 // min(1, (1-Da)/Sa)*S + D

	// Separable blend modes
	Multiply
	Screen
	Overlay
	Darken
	Lighten
	ColorDodge
	ColorBurn
	HardLight
	SoftLight
	Difference
	Exclusion

	// Non-separable blend modes
	Hue
	Saturation
	ColorMode
	Luminosity

	operatorCount
)

var operatorNames = [...]string{
	Clear: "clear", Source: "source", Over: "over", In: "in", Out: "out",
	Atop: "atop", Dest: "dest", DestOver: "dest-over", DestIn: "dest-in",
	DestOut: "dest-out", DestAtop: "dest-atop", Xor: "xor", Add: "add",
	Saturate: "saturate", Multiply: "multiply", Screen: "screen",
	Overlay: "overlay", Darken: "darken", Lighten: "lighten",
	ColorDodge: "color-dodge", ColorBurn: "color-burn", HardLight: "hard-light",
	SoftLight: "soft-light", Difference: "difference", Exclusion: "exclusion",
	Hue: "hue", Saturation: "saturation", ColorMode: "color", Luminosity: "luminosity",
}

// String returns the operator name.
func (op Operator) String() string {
	if op < operatorCount {
		return operatorNames[op]
	}
	return "unknown"
}

// Valid reports whether op is a known operator.
func (op Operator) Valid() bool {
	return op < operatorCount
}

// Bounded reports whether the operator leaves the destination unchanged
// where the source is fully transparent.
func (op Operator) Bounded() bool {
	switch op {
	case In, Out, DestIn, DestAtop:
		return false
	}
	return true
}

// Apply combines source s with destination d.
// Unknown operators behave like Over.
func Apply(op Operator, s, d Color) Color {
	switch op {
	case Clear:
		return Color{}
	case Source:
		return s
	case Over:
		return porterDuff(s, d, 1, 1-s.A)
	case In:
		return porterDuff(s, d, d.A, 0)
	case Out:
		return porterDuff(s, d, 1-d.A, 0)
	case Atop:
		return porterDuff(s, d, d.A, 1-s.A)
	case Dest:
		return d
	case DestOver:
		return porterDuff(s, d, 1-d.A, 1)
	case DestIn:
		return porterDuff(s, d, 0, s.A)
	case DestOut:
		return porterDuff(s, d, 0, 1-s.A)
	case DestAtop:
		return porterDuff(s, d, 1-d.A, s.A)
	case Xor:
		return porterDuff(s, d, 1-d.A, 1-s.A)
	case Add:
		return Color{
			R: min(s.R+d.R, 1),
			G: min(s.G+d.G, 1),
			B: min(s.B+d.B, 1),
			A: min(s.A+d.A, 1),
		}
	case Saturate:
		if s.A == 0 {
			return d
		}
		return porterDuff(s, d, min(1, (1-d.A)/s.A), 1)
	case Hue, Saturation, ColorMode, Luminosity:
		return nonSeparable(op, s, d)
	}
	if f := separableFunc(op); f != nil {
		return separable(s, d, f)
	}
	return porterDuff(s, d, 1, 1-s.A)
}

// Composite applies op with source s scaled by shape coverage cov in [0, 1].
//
// Clear and Source interpolate between the destination and the operator
// result so that partially covered pixels keep part of the destination.
// Every other operator composites the attenuated source directly.
func Composite(op Operator, s, d Color, cov float64) Color {
	switch op {
	case Clear, Source:
		if cov >= 1 {
			return Apply(op, s, d)
		}
		return d.Lerp(Apply(op, s, d), cov)
	}
	if cov < 1 {
		s = s.Scale(cov)
	}
	return Apply(op, s, d)
}

// porterDuff returns S*fa + D*fb.
func porterDuff(s, d Color, fa, fb float64) Color {
	return Color{
		R: s.R*fa + d.R*fb,
		G: s.G*fa + d.G*fb,
		B: s.B*fa + d.B*fb,
		A: s.A*fa + d.A*fb,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
