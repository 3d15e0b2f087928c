package common

import (
	"math"
	"testing"
)

func TestAngleConversions(t *testing.T) {
	tests := []struct {
		deg float64
		rad float64
	}{
		{0, 0},
		{90, math.Pi / 2},
		{180, math.Pi},
		{-45, -math.Pi / 4},
		{360, 2 * math.Pi},
	}

	for _, tc := range tests {
		if got := DegreesToRadians(tc.deg); math.Abs(got-tc.rad) > 1e-12 {
			t.Fatalf("DegreesToRadians(%v) = %v, want %v", tc.deg, got, tc.rad)
		}
		if got := RadiansToDegrees(tc.rad); math.Abs(got-tc.deg) > 1e-9 {
			t.Fatalf("RadiansToDegrees(%v) = %v, want %v", tc.rad, got, tc.deg)
		}
	}
}

func TestRandomRangeBounds(t *testing.T) {
	for i := 0; i < 10000; i++ {
		if u := RandomUnit(); u < 0 || u >= 1 {
			t.Fatalf("RandomUnit() = %v out of [0, 1)", u)
		}
		v := RandomRange(1.0, 2.0)
		if v < 1.0 || v >= 2.0 {
			t.Fatalf("RandomRange(1, 2) = %v out of [1, 2)", v)
		}
	}

	r := NewRand(7)
	for i := 0; i < 10000; i++ {
		v := r.Range(-3.5, -3.25)
		if v < -3.5 || v >= -3.25 {
			t.Fatalf("Range(-3.5, -3.25) = %v out of bounds", v)
		}
		u := r.Unit()
		if u < 0 || u >= 1 {
			t.Fatalf("Unit() = %v out of [0, 1)", u)
		}
	}
}

func TestRandomRangePanicsOnReversedBounds(t *testing.T) {
	tests := []struct {
		name     string
		min, max float64
	}{
		{"reversed", 2, 1},
		{"equal", 1.5, 1.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic for RandomRange(%v, %v)", tc.min, tc.max)
				}
			}()
			RandomRange(tc.min, tc.max)
		})
	}
}

func TestSeededRandIsDeterministic(t *testing.T) {
	a := NewRand(42)
	b := NewRand(42)
	for i := 0; i < 100; i++ {
		if a.Range(0, 10) != b.Range(0, 10) {
			t.Fatalf("seeded sources diverged at draw %d", i)
		}
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlap", Rect{X: 5, Y: 5, Width: 10, Height: 10}, true},
		{"touching_edge", Rect{X: 10, Y: 0, Width: 5, Height: 5}, false},
		{"disjoint", Rect{X: 20, Y: 20, Width: 1, Height: 1}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := a.Intersects(tc.other); got != tc.want {
				t.Fatalf("Intersects = %v, want %v", got, tc.want)
			}
			if a.MaxX() != 10 || a.MaxY() != 10 {
				t.Fatalf("unexpected max edges %v %v", a.MaxX(), a.MaxY())
			}
		})
	}
}
