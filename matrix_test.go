package geom2d

import (
	"math"
	"testing"
)

func TestMatrixTransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		p    Point
		want Point
	}{
		{"identity", Identity(), Pt(3, 4), Pt(3, 4)},
		{"translate", Translate(10, -2), Pt(3, 4), Pt(13, 2)},
		{"scale", Scale(2, 3), Pt(3, 4), Pt(6, 12)},
		{"rotate 90deg", Rotate(math.Pi / 2), Pt(1, 0), Pt(0, 1)},
		{"shear", Shear(1, 0), Pt(1, 1), Pt(2, 1)},
		{"translate after scale", Translate(1, 1).Multiply(Scale(2, 2)), Pt(1, 1), Pt(3, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformPoint(tt.p)
			if !got.Approx(tt.want, 1e-12) {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestMatrixTransformVectorIgnoresTranslation(t *testing.T) {
	m := Translate(5, 5).Multiply(Scale(2, 1))
	if got := m.TransformVector(Pt(1, 1)); got != Pt(2, 1) {
		t.Errorf("TransformVector = %v, want (2,1)", got)
	}
}

func TestMatrixInvert(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"identity", Identity()},
		{"translate", Translate(3, -7)},
		{"scale", Scale(2, 0.25)},
		{"rotate", Rotate(1.2)},
		{"shear", Shear(0.4, -0.3)},
		{"composite", Translate(4, 1).Multiply(Rotate(-1.1)).Multiply(Scale(1.5, 3))},
		{"tiny scale", Scale(1e-7, 1e-7)},
		{"huge scale", Scale(1e8, 3e7)},
		{"tiny rotated", Rotate(0.4).Multiply(Scale(1e-9, 2e-9))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.m.IsInvertible() {
				t.Fatalf("IsInvertible() = false for %+v", tt.m)
			}
			p := Pt(2.5, -1.75)
			got := tt.m.Invert().TransformPoint(tt.m.TransformPoint(p))
			if !got.Approx(p, 1e-9) {
				t.Errorf("Invert round trip = %v, want %v", got, p)
			}
			if !tt.m.Multiply(tt.m.Invert()).TransformPoint(p).Approx(p, 1e-9) {
				t.Error("m * m^-1 is not the identity")
			}
		})
	}
}

func TestMatrixInvertSingular(t *testing.T) {
	for _, m := range []Matrix{{}, Scale(0, 1), Scale(1, 0), {A: 1, B: 2, D: 2, E: 4}, {A: 1, B: 2, D: 2, E: 4 + 1e-14}, {A: 1, E: 1, C: math.Inf(1)}} {
		if m.IsInvertible() {
			t.Errorf("IsInvertible() = true for %+v", m)
		}
		if !m.Invert().IsIdentity() {
			t.Errorf("Invert() of singular %+v should be the identity", m)
		}
	}
}

func TestMatrixTransformRay(t *testing.T) {
	r := NewRay(Pt(1, 0), Pt(1, 0))
	got := Translate(0, 2).Multiply(Scale(5, 1)).TransformRay(r)
	if got.Origin != Pt(5, 2) {
		t.Errorf("TransformRay origin = %v, want (5,2)", got.Origin)
	}
	if got.Direction != Pt(1, 0) {
		t.Errorf("TransformRay direction = %v, want (1,0)", got.Direction)
	}
}

func TestMatrixPredicates(t *testing.T) {
	if !Identity().IsIdentity() || !Identity().IsTranslation() {
		t.Error("identity predicates")
	}
	if Translate(1, 2).IsIdentity() || !Translate(1, 2).IsTranslation() {
		t.Error("translation predicates")
	}
	if Scale(2, 2).IsTranslation() {
		t.Error("scale is not a translation")
	}
	if d := Scale(2, 3).Determinant(); d != 6 {
		t.Errorf("Determinant() = %v, want 6", d)
	}
}
