package paintbook

import "math"

// Matrix is a 2D affine transform stored as the top two rows of a 3x3
// matrix. A point maps as
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// NewMatrix builds a matrix from components in the conventional
// xx, yx, xy, yy, x0, y0 order:
//
//	x' = xx*x + xy*y + x0
//	y' = yx*x + yy*y + y0
func NewMatrix(xx, yx, xy, yy, x0, y0 float64) Matrix {
	return Matrix{A: xx, B: xy, C: x0, D: yx, E: yy, F: y0}
}

func Identity() Matrix { return Matrix{A: 1, E: 1} }

func Translate(tx, ty float64) Matrix { return Matrix{A: 1, C: tx, E: 1, F: ty} }

func Scale(sx, sy float64) Matrix { return Matrix{A: sx, E: sy} }

// Rotate turns by angle radians. Positive angles turn the X axis towards
// the Y axis, which is clockwise on screen.
func Rotate(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{A: cos, B: -sin, D: sin, E: cos}
}

// Multiply returns m * other: the result applies other first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint maps a position.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// TransformVector maps a displacement, ignoring the translation.
func (m Matrix) TransformVector(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y,
		Y: m.D*p.X + m.E*p.Y,
	}
}

func (m Matrix) Determinant() float64 {
	return m.A*m.E - m.B*m.D
}

// Invertible reports whether the matrix has a finite inverse.
func (m Matrix) Invertible() bool {
	det := m.Determinant()
	return det != 0 && !math.IsNaN(det) && !math.IsInf(det, 0)
}

// Invert returns the inverse matrix. The second result is false, and the
// matrix is the identity, when m is not invertible.
func (m Matrix) Invert() (Matrix, bool) {
	if !m.Invertible() {
		return Identity(), false
	}
	invDet := 1.0 / m.Determinant()
	return Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}, true
}

// IsIdentity reports whether m leaves every point in place.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// ScaleFactor returns the geometric mean of the axis scales. Line widths
// and dash lengths are multiplied by it when stroking.
func (m Matrix) ScaleFactor() float64 {
	return math.Sqrt(math.Abs(m.Determinant()))
}
