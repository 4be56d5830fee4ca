package geom2d

import (
	"slices"
	"testing"
)

func TestHitSetInsert(t *testing.T) {
	var hs HitSet
	inputs := []Point{Pt(1, 1), Pt(0, 0), Pt(1, 1), Pt(-1, 0), Pt(0, 0), Pt(2, -1)}
	added := 0
	for _, p := range inputs {
		if hs.Insert(p) {
			added++
		}
	}
	if added != 4 || hs.Len() != 4 {
		t.Fatalf("Insert added %d points, Len() = %d, want 4", added, hs.Len())
	}
	want := []Point{Pt(2, -1), Pt(-1, 0), Pt(0, 0), Pt(1, 1)}
	if !slices.Equal(hs.Points(), want) {
		t.Errorf("Points() = %v, want %v", hs.Points(), want)
	}
}

func TestHitSetSorted(t *testing.T) {
	var hs HitSet
	for _, p := range []Point{Pt(3, 0), Pt(-1, 0), Pt(0, 2), Pt(1, 0), Pt(0, -2)} {
		hs.Insert(p)
	}

	got := hs.Sorted(Pt(0, 0))
	// (-1,0) and (1,0) tie at distance 1, (0,-2) and (0,2) at distance 2.
	want := []Point{Pt(-1, 0), Pt(1, 0), Pt(0, -2), Pt(0, 2), Pt(3, 0)}
	if !slices.Equal(got, want) {
		t.Errorf("Sorted() = %v, want %v", got, want)
	}

	got[0] = Pt(99, 99)
	if slices.Contains(hs.Points(), Pt(99, 99)) {
		t.Error("Sorted() must not alias the set storage")
	}
}

func TestHitSetInsertionOrderIndependent(t *testing.T) {
	pts := []Point{Pt(0.5, 1), Pt(-2, 3), Pt(4, -1), Pt(0.5, 1), Pt(1, 1)}
	var a, b HitSet
	for _, p := range pts {
		a.Insert(p)
	}
	for i := len(pts) - 1; i >= 0; i-- {
		b.Insert(pts[i])
	}
	if !slices.Equal(a.Sorted(Pt(1, 1)), b.Sorted(Pt(1, 1))) {
		t.Errorf("Sorted() depends on insertion order: %v vs %v", a.Sorted(Pt(1, 1)), b.Sorted(Pt(1, 1)))
	}
}

func TestHitSetMap(t *testing.T) {
	var hs HitSet
	for _, p := range []Point{Pt(1, 0), Pt(-1, 0), Pt(0, 5)} {
		hs.Insert(p)
	}

	// Projecting onto the y axis merges the two points on the x axis.
	hs.Map(func(p Point) Point { return Pt(0, p.Y) })
	want := []Point{Pt(0, 0), Pt(0, 5)}
	if !slices.Equal(hs.Points(), want) {
		t.Errorf("after Map, Points() = %v, want %v", hs.Points(), want)
	}
}

func TestHitSetEmpty(t *testing.T) {
	var hs HitSet
	if got := hs.Sorted(Pt(1, 2)); got != nil {
		t.Errorf("Sorted() on empty set = %v, want nil", got)
	}
	hs.Map(func(p Point) Point { return p })
	hs.Insert(Pt(1, 1))
	hs.Reset()
	if hs.Len() != 0 {
		t.Errorf("Len() after Reset = %d", hs.Len())
	}
}
