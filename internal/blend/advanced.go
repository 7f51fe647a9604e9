package blend

import "math"

// separableFunc returns the per-channel blend function B(s, d) for op,
// operating on unpremultiplied channels.
func separableFunc(op Operator) func(s, d float64) float64 {
	switch op {
	case Multiply:
		return func(s, d float64) float64 { return s * d }
	case Screen:
		return func(s, d float64) float64 { return s + d - s*d }
	case Overlay:
		return func(s, d float64) float64 { return hardLight(d, s) }
	case Darken:
		return math.Min
	case Lighten:
		return math.Max
	case ColorDodge:
		return colorDodge
	case ColorBurn:
		return colorBurn
	case HardLight:
		return hardLight
	case SoftLight:
		return softLight
	case Difference:
		return func(s, d float64) float64 { return math.Abs(s - d) }
	case Exclusion:
		return func(s, d float64) float64 { return s + d - 2*s*d }
	}
	return nil
}

// separable applies the W3C general formula:
// Result = (1 - Sa)*D + (1 - Da)*S + Sa*Da*B(Sc, Dc).
func separable(s, d Color, f func(s, d float64) float64) Color {
	if s.A == 0 {
		return d
	}
	if d.A == 0 {
		return s
	}
	sa, da := s.A, d.A
	ch := func(sc, dc float64) float64 {
		return (1-sa)*dc + (1-da)*sc + sa*da*f(sc/sa, dc/da)
	}
	return Color{
		R: ch(s.R, d.R),
		G: ch(s.G, d.G),
		B: ch(s.B, d.B),
		A: sa + da - sa*da,
	}
}

func hardLight(s, d float64) float64 {
	if s <= 0.5 {
		return 2 * s * d
	}
	return 1 - 2*(1-s)*(1-d)
}

func colorDodge(s, d float64) float64 {
	switch {
	case d == 0:
		return 0
	case s >= 1:
		return 1
	}
	return math.Min(1, d/(1-s))
}

func colorBurn(s, d float64) float64 {
	switch {
	case d >= 1:
		return 1
	case s <= 0:
		return 0
	}
	return 1 - math.Min(1, (1-d)/s)
}

func softLight(s, d float64) float64 {
	if s <= 0.5 {
		return d - (1-2*s)*d*(1-d)
	}
	var g float64
	if d <= 0.25 {
		g = ((16*d-12)*d + 4) * d
	} else {
		g = math.Sqrt(d)
	}
	return d + (2*s-1)*(g-d)
}
