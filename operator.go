package paintbook

import "github.com/gogpu/paintbook/internal/blend"

// Operator selects how drawn pixels combine with the surface.
type Operator uint8

// Porter-Duff operators.
const (
	OperatorClear    Operator = Operator(blend.Clear)
	OperatorSource   Operator = Operator(blend.Source)
	OperatorOver     Operator = Operator(blend.Over) // default
	OperatorIn       Operator = Operator(blend.In)
	OperatorOut      Operator = Operator(blend.Out)
	OperatorAtop     Operator = Operator(blend.Atop)
	OperatorDest     Operator = Operator(blend.Dest)
	OperatorDestOver Operator = Operator(blend.DestOver)
	OperatorDestIn   Operator = Operator(blend.DestIn)
	OperatorDestOut  Operator = Operator(blend.DestOut)
	OperatorDestAtop Operator = Operator(blend.DestAtop)
	OperatorXor      Operator = Operator(blend.Xor)
	OperatorAdd      Operator = Operator(blend.Add)
	OperatorSaturate Operator = Operator(blend.Saturate)
)

// Blend modes.
const (
	OperatorMultiply   Operator = Operator(blend.Multiply)
	OperatorScreen     Operator = Operator(blend.Screen)
	OperatorOverlay    Operator = Operator(blend.Overlay)
	OperatorDarken     Operator = Operator(blend.Darken)
	OperatorLighten    Operator = Operator(blend.Lighten)
	OperatorColorDodge Operator = Operator(blend.ColorDodge)
	OperatorColorBurn  Operator = Operator(blend.ColorBurn)
	OperatorHardLight  Operator = Operator(blend.HardLight)
	OperatorSoftLight  Operator = Operator(blend.SoftLight)
	OperatorDifference Operator = Operator(blend.Difference)
	OperatorExclusion  Operator = Operator(blend.Exclusion)
	OperatorHue        Operator = Operator(blend.Hue)
	OperatorSaturation Operator = Operator(blend.Saturation)
	OperatorColor      Operator = Operator(blend.ColorMode)
	OperatorLuminosity Operator = Operator(blend.Luminosity)
)

// String returns the operator name.
func (op Operator) String() string {
	return blend.Operator(op).String()
}

// Bounded reports whether the operator leaves pixels outside the drawn
// shape untouched. In, Out, DestIn and DestAtop are unbounded.
func (op Operator) Bounded() bool {
	return blend.Operator(op).Bounded()
}

func (op Operator) valid() bool {
	return blend.Operator(op).Valid()
}
