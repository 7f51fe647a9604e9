package paintbook

import "math"

// RadialGradient interpolates between a start circle (CX0, CY0, R0) and an
// end circle (CX1, CY1, R1). The color at a point comes from the largest t
// such that the point lies on the circle interpolated at t with a
// non-negative radius.
type RadialGradient struct {
	gradient
	CX0, CY0, R0 float64
	CX1, CY1, R1 float64
}

// NewRadialGradient creates a two-circle radial gradient with ExtendPad and
// no stops. Negative radii are clamped to zero.
func NewRadialGradient(cx0, cy0, r0, cx1, cy1, r1 float64) *RadialGradient {
	return &RadialGradient{
		gradient: newGradient(),
		CX0:      cx0, CY0: cy0, R0: math.Max(r0, 0),
		CX1: cx1, CY1: cy1, R1: math.Max(r1, 0),
	}
}

func (g *RadialGradient) newSampler(ctm Matrix, _ *Surface) (sampler, error) {
	toPat, err := g.deviceToPattern(ctm)
	if err != nil {
		return nil, err
	}
	s := &rampSampler{g: &g.gradient, toPat: toPat}

	c0 := Pt(g.CX0, g.CY0)
	cd := Pt(g.CX1, g.CY1).Sub(c0)
	r0, dr := g.R0, g.R1-g.R0
	if cd.Dot(cd) == 0 && dr == 0 {
		c := g.degenerate()
		s.constant = &c
		return s, nil
	}

	// Solve |p - c(t)| = r(t) for t:
	//   a*t^2 - 2*b*t + c = 0
	a := cd.Dot(cd) - dr*dr
	extendNone := g.extend == ExtendNone
	valid := func(t float64) bool {
		if r0+t*dr < 0 {
			return false
		}
		return !extendNone || (t >= 0 && t <= 1)
	}
	s.param = func(p Point) (float64, bool) {
		pd := p.Sub(c0)
		b := pd.Dot(cd) + r0*dr
		c := pd.Dot(pd) - r0*r0

		if math.Abs(a) < 1e-12 {
			if b == 0 {
				return 0, false
			}
			t := c / (2 * b)
			return t, valid(t)
		}
		disc := b*b - a*c
		if disc < 0 {
			return 0, false
		}
		sq := math.Sqrt(disc)
		t0, t1 := (b+sq)/a, (b-sq)/a
		if t0 < t1 {
			t0, t1 = t1, t0
		}
		if valid(t0) {
			return t0, true
		}
		if valid(t1) {
			return t1, true
		}
		return 0, false
	}
	return s, nil
}
