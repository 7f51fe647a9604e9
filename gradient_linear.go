package paintbook

// LinearGradient varies color along the line from (X0, Y0) to (X1, Y1).
// Points are in pattern space, which is user space unless SetMatrix is used.
type LinearGradient struct {
	gradient
	X0, Y0 float64
	X1, Y1 float64
}

// NewLinearGradient creates a linear gradient with ExtendPad and no stops.
func NewLinearGradient(x0, y0, x1, y1 float64) *LinearGradient {
	return &LinearGradient{
		gradient: newGradient(),
		X0:       x0, Y0: y0,
		X1: x1, Y1: y1,
	}
}

func (g *LinearGradient) newSampler(ctm Matrix, _ *Surface) (sampler, error) {
	toPat, err := g.deviceToPattern(ctm)
	if err != nil {
		return nil, err
	}
	s := &rampSampler{g: &g.gradient, toPat: toPat}

	p0 := Pt(g.X0, g.Y0)
	d := Pt(g.X1, g.Y1).Sub(p0)
	lenSq := d.Dot(d)
	if lenSq == 0 {
		c := g.degenerate()
		s.constant = &c
		return s, nil
	}
	s.param = func(p Point) (float64, bool) {
		return p.Sub(p0).Dot(d) / lenSq, true
	}
	return s, nil
}
