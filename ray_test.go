package geom2d

import (
	"math"
	"testing"
)

func TestNewRayNormalizes(t *testing.T) {
	r := NewRay(Pt(1, 2), Pt(3, 4))
	if r.Origin != Pt(1, 2) {
		t.Errorf("Origin = %v, want (1,2)", r.Origin)
	}
	if !r.Direction.Approx(Pt(0.6, 0.8), 1e-12) {
		t.Errorf("Direction = %v, want (0.6,0.8)", r.Direction)
	}

	if !NewRay(Pt(1, 2), Pt(0, 0)).IsDegenerate() {
		t.Error("zero direction should give a degenerate ray")
	}
}

func TestRayFromPoints(t *testing.T) {
	r := RayFromPoints(Pt(1, 1), Pt(1, 6))
	if r.Origin != Pt(1, 1) || r.Direction != Pt(0, 1) {
		t.Errorf("RayFromPoints() = %+v, want origin (1,1) direction (0,1)", r)
	}
	if !RayFromPoints(Pt(2, 2), Pt(2, 2)).IsDegenerate() {
		t.Error("coincident points should give a degenerate ray")
	}
}

func TestRaySetAndLookAt(t *testing.T) {
	var r Ray
	r.Set(Pt(0, 0), Pt(0, -9))
	if r.Direction != Pt(0, -1) {
		t.Errorf("Set direction = %v, want (0,-1)", r.Direction)
	}

	r.LookAt(Pt(5, 0))
	if r.Direction != Pt(1, 0) {
		t.Errorf("LookAt direction = %v, want (1,0)", r.Direction)
	}
	if r.Origin != Pt(0, 0) {
		t.Errorf("LookAt moved the origin to %v", r.Origin)
	}
}

func TestRayEval(t *testing.T) {
	tests := []struct {
		name string
		ray  Ray
		t    float64
		want Point
	}{
		{"unit direction", NewRay(Pt(1, 1), Pt(1, 0)), 3, Pt(4, 1)},
		{"diagonal", NewRay(Pt(0, 0), Pt(3, 4)), 5, Pt(3, 4)},
		{"unnormalized direction is arc length", Ray{Origin: Pt(0, 0), Direction: Pt(0, 10)}, 2, Pt(0, 2)},
		{"zero time", NewRay(Pt(1, 1), Pt(1, 0)), 0, Pt(1, 1)},
		{"negative time", NewRay(Pt(1, 1), Pt(1, 0)), -4, Pt(1, 1)},
		{"degenerate", Ray{Origin: Pt(2, 3)}, 10, Pt(2, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.ray.Eval(tt.t)
			if !got.Approx(tt.want, 1e-12) {
				t.Errorf("Eval(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
}

func TestRayEvalDistance(t *testing.T) {
	r := NewRay(Pt(-3, 7), Pt(-2, 5))
	for _, d := range []float64{0.5, 1, 2.25, 100} {
		got := r.Eval(d).Distance(r.Origin)
		if math.Abs(got-d) > 1e-9 {
			t.Errorf("distance of Eval(%v) from origin = %v", d, got)
		}
	}
}

func TestRay3(t *testing.T) {
	r := NewRay3([3]float64{1, 2, 3}, [3]float64{0, 0, 2})
	if r.Direction != [3]float64{0, 0, 1} {
		t.Errorf("Direction = %v, want (0,0,1)", r.Direction)
	}
	if !r.XY().IsDegenerate() {
		t.Error("a ray along Z projects to a degenerate 2D ray")
	}

	p := NewRay3([3]float64{1, 2, 3}, [3]float64{3, 4, 0}).XY()
	if p.Origin != Pt(1, 2) || !p.Direction.Approx(Pt(0.6, 0.8), 1e-12) {
		t.Errorf("XY() = %+v", p)
	}
}
