package blend

// Non-separable blend modes from W3C Compositing and Blending Level 1,
// section 8. They operate on the whole RGB triplet.

// lum returns the luminance using BT.601 coefficients.
func lum(r, g, b float64) float64 {
	return 0.30*r + 0.59*g + 0.11*b
}

func sat(r, g, b float64) float64 {
	return max(r, g, b) - min(r, g, b)
}

// clipColor brings components back into [0, 1] while preserving luminance.
func clipColor(r, g, b float64) (float64, float64, float64) {
	l := lum(r, g, b)
	n := min(r, g, b)
	x := max(r, g, b)
	if n < 0 && l != n {
		r = l + (r-l)*l/(l-n)
		g = l + (g-l)*l/(l-n)
		b = l + (b-l)*l/(l-n)
	}
	if x > 1 && x != l {
		r = l + (r-l)*(1-l)/(x-l)
		g = l + (g-l)*(1-l)/(x-l)
		b = l + (b-l)*(1-l)/(x-l)
	}
	return r, g, b
}

func setLum(r, g, b, l float64) (float64, float64, float64) {
	d := l - lum(r, g, b)
	return clipColor(r+d, g+d, b+d)
}

func setSat(r, g, b, s float64) (float64, float64, float64) {
	c := [3]float64{r, g, b}
	// indices of min, mid, max
	lo, mid, hi := 0, 1, 2
	if c[lo] > c[mid] {
		lo, mid = mid, lo
	}
	if c[mid] > c[hi] {
		mid, hi = hi, mid
	}
	if c[lo] > c[mid] {
		lo, mid = mid, lo
	}
	if c[hi] > c[lo] {
		c[mid] = (c[mid] - c[lo]) * s / (c[hi] - c[lo])
		c[hi] = s
	} else {
		c[mid], c[hi] = 0, 0
	}
	c[lo] = 0
	return c[0], c[1], c[2]
}

func nonSeparable(op Operator, s, d Color) Color {
	if s.A == 0 {
		return d
	}
	if d.A == 0 {
		return s
	}
	sr, sg, sb := s.R/s.A, s.G/s.A, s.B/s.A
	dr, dg, db := d.R/d.A, d.G/d.A, d.B/d.A

	var r, g, b float64
	switch op {
	case Hue:
		r, g, b = setSat(sr, sg, sb, sat(dr, dg, db))
		r, g, b = setLum(r, g, b, lum(dr, dg, db))
	case Saturation:
		r, g, b = setSat(dr, dg, db, sat(sr, sg, sb))
		r, g, b = setLum(r, g, b, lum(dr, dg, db))
	case ColorMode:
		r, g, b = setLum(sr, sg, sb, lum(dr, dg, db))
	default: // Luminosity
		r, g, b = setLum(dr, dg, db, lum(sr, sg, sb))
	}

	sa, da := s.A, d.A
	return Color{
		R: (1-sa)*d.R + (1-da)*s.R + sa*da*r,
		G: (1-sa)*d.G + (1-da)*s.G + sa*da*g,
		B: (1-sa)*d.B + (1-da)*s.B + sa*da*b,
		A: sa + da - sa*da,
	}
}
