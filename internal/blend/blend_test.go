package blend

import (
	"math"
	"testing"
)

const eps = 1e-9

func approx(a, b Color) bool {
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps && math.Abs(a.A-b.A) < eps
}

var (
	opaqueRed   = Color{1, 0, 0, 1}
	opaqueWhite = Color{1, 1, 1, 1}
	halfBlue    = Color{0, 0, 0.5, 0.5}
	transparent = Color{}
)

// TestPorterDuff checks each Porter-Duff operator against its formula.
func TestPorterDuff(t *testing.T) {
	tests := []struct {
		name string
		op   Operator
		s, d Color
		want Color
	}{
		{"clear", Clear, opaqueRed, opaqueWhite, transparent},
		{"source", Source, halfBlue, opaqueWhite, halfBlue},
		{"over opaque", Over, opaqueRed, opaqueWhite, opaqueRed},
		{"over half", Over, halfBlue, opaqueWhite, Color{0.5, 0.5, 1, 1}},
		{"over onto transparent", Over, halfBlue, transparent, halfBlue},
		{"in", In, opaqueRed, Color{0, 0, 0, 0.5}, Color{0.5, 0, 0, 0.5}},
		{"out", Out, opaqueRed, Color{0, 0, 0, 0.5}, Color{0.5, 0, 0, 0.5}},
		{"atop opaque dest", Atop, halfBlue, opaqueWhite, Color{0.5, 0.5, 1, 1}},
		{"atop transparent dest", Atop, opaqueRed, transparent, transparent},
		{"dest", Dest, opaqueRed, halfBlue, halfBlue},
		{"dest over", DestOver, opaqueRed, halfBlue, Color{0.5, 0, 0.5, 1}},
		{"dest in", DestIn, Color{0, 0, 0, 0.5}, opaqueWhite, Color{0.5, 0.5, 0.5, 0.5}},
		{"dest out", DestOut, Color{0, 0, 0, 0.5}, opaqueWhite, Color{0.5, 0.5, 0.5, 0.5}},
		{"dest atop", DestAtop, opaqueRed, halfBlue, Color{0.5, 0, 0.5, 1}},
		{"xor", Xor, opaqueRed, opaqueWhite, transparent},
		{"add clamps", Add, opaqueRed, opaqueWhite, opaqueWhite},
		{"saturate", Saturate, opaqueRed, halfBlue, Color{0.5, 0, 0.5, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(tt.op, tt.s, tt.d)
			if !approx(got, tt.want) {
				t.Errorf("Apply(%v, %v, %v) = %v, want %v", tt.op, tt.s, tt.d, got, tt.want)
			}
		})
	}
}

// TestBounded verifies the set of unbounded operators.
func TestBounded(t *testing.T) {
	unbounded := map[Operator]bool{In: true, Out: true, DestIn: true, DestAtop: true}
	for op := Clear; op < operatorCount; op++ {
		if got := op.Bounded(); got == unbounded[op] {
			t.Errorf("%v.Bounded() = %v", op, got)
		}
	}
}

// TestCompositeCoverage checks partial coverage handling.
func TestCompositeCoverage(t *testing.T) {
	// Source with half coverage keeps half of the destination.
	got := Composite(Source, opaqueRed, opaqueWhite, 0.5)
	want := Color{1, 0.5, 0.5, 1}
	if !approx(got, want) {
		t.Errorf("Composite(Source, cov=0.5) = %v, want %v", got, want)
	}

	// Over with zero coverage is a no-op.
	got = Composite(Over, opaqueRed, halfBlue, 0)
	if !approx(got, halfBlue) {
		t.Errorf("Composite(Over, cov=0) = %v, want %v", got, halfBlue)
	}

	// In with zero coverage clears the destination.
	got = Composite(In, opaqueRed, opaqueWhite, 0)
	if !approx(got, transparent) {
		t.Errorf("Composite(In, cov=0) = %v, want transparent", got)
	}
}

// TestSeparableModes checks blend modes on opaque colors.
func TestSeparableModes(t *testing.T) {
	gray := Color{0.5, 0.5, 0.5, 1}
	tests := []struct {
		op   Operator
		want float64
	}{
		{Multiply, 0.25},
		{Screen, 0.75},
		{Darken, 0.5},
		{Lighten, 0.5},
		{Difference, 0},
		{Exclusion, 0.5},
		{HardLight, 0.5},
		{Overlay, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			got := Apply(tt.op, gray, gray)
			if math.Abs(got.R-tt.want) > eps || math.Abs(got.A-1) > eps {
				t.Errorf("Apply(%v) = %v, want R=%v A=1", tt.op, got, tt.want)
			}
		})
	}
}

// TestLuminosityPreservesGray verifies that a gray source keeps gray.
func TestLuminosityPreservesGray(t *testing.T) {
	got := Apply(Luminosity, Color{0.3, 0.3, 0.3, 1}, Color{0.8, 0.8, 0.8, 1})
	if math.Abs(got.R-0.3) > 1e-6 || math.Abs(got.G-0.3) > 1e-6 || math.Abs(got.B-0.3) > 1e-6 {
		t.Errorf("Luminosity = %v, want gray 0.3", got)
	}
}

// TestClamp verifies color channels never exceed alpha.
func TestClamp(t *testing.T) {
	got := Color{1.5, -0.2, 0.8, 0.5}.Clamp()
	want := Color{0.5, 0, 0.5, 0.5}
	if !approx(got, want) {
		t.Errorf("Clamp() = %v, want %v", got, want)
	}
}

// TestOperatorString covers names and unknown values.
func TestOperatorString(t *testing.T) {
	if Atop.String() != "atop" {
		t.Errorf("Atop.String() = %q", Atop.String())
	}
	if Operator(200).String() != "unknown" || Operator(200).Valid() {
		t.Error("Operator(200) should be unknown and invalid")
	}
}
