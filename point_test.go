package geom2d

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	p, q := Pt(3, 4), Pt(-1, 2)

	if got := p.Add(q); got != Pt(2, 6) {
		t.Errorf("Add = %v, want (2,6)", got)
	}
	if got := p.Sub(q); got != Pt(4, 2) {
		t.Errorf("Sub = %v, want (4,2)", got)
	}
	if got := p.Mul(2); got != Pt(6, 8) {
		t.Errorf("Mul = %v, want (6,8)", got)
	}
	if got := p.Div(2); got != Pt(1.5, 2) {
		t.Errorf("Div = %v, want (1.5,2)", got)
	}
	if got := p.Div(0); got != (Point{}) {
		t.Errorf("Div(0) = %v, want zero", got)
	}
	if got := p.Dot(q); got != 5 {
		t.Errorf("Dot = %v, want 5", got)
	}
	if got := p.Cross(q); got != 10 {
		t.Errorf("Cross = %v, want 10", got)
	}
	if got := p.Perp(); got != Pt(-4, 3) {
		t.Errorf("Perp = %v, want (-4,3)", got)
	}
	if got := p.Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := p.DistanceSquared(q); got != 20 {
		t.Errorf("DistanceSquared = %v, want 20", got)
	}
	if got := p.Neg(); got != Pt(-3, -4) {
		t.Errorf("Neg = %v, want (-3,-4)", got)
	}
}

func TestPointNormalize(t *testing.T) {
	tests := []struct {
		name string
		p    Point
		want Point
	}{
		{"zero", Pt(0, 0), Pt(0, 0)},
		{"axis", Pt(0, 7), Pt(0, 1)},
		{"3-4-5", Pt(3, 4), Pt(0.6, 0.8)},
		{"negative", Pt(-2, 0), Pt(-1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.p.Normalize()
			if !got.Approx(tt.want, 1e-12) {
				t.Errorf("%v.Normalize() = %v, want %v", tt.p, got, tt.want)
			}
			if !tt.p.IsZero() && math.Abs(got.Length()-1) > 1e-12 {
				t.Errorf("%v.Normalize() has length %v", tt.p, got.Length())
			}
		})
	}
}

func TestPointLerpEndpoints(t *testing.T) {
	a, b := Pt(-1.3, 2.7), Pt(5.1, -0.9)
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %v, want %v", got, b)
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		p, q Point
		want int
	}{
		{"equal", Pt(1, 2), Pt(1, 2), 0},
		{"y decides", Pt(5, 1), Pt(-5, 2), -1},
		{"x breaks ties", Pt(3, 2), Pt(1, 2), 1},
		{"negative zero equals zero", Pt(0, 0), Pt(math.Copysign(0, -1), 0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.p, tt.q); got != tt.want {
				t.Errorf("Compare(%v, %v) = %d, want %d", tt.p, tt.q, got, tt.want)
			}
			if got := Compare(tt.q, tt.p); got != -tt.want {
				t.Errorf("Compare(%v, %v) = %d, want %d", tt.q, tt.p, got, -tt.want)
			}
			if got := tt.p.Less(tt.q); got != (tt.want < 0) {
				t.Errorf("%v.Less(%v) = %v", tt.p, tt.q, got)
			}
		})
	}
}
