package common

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"pgregory.net/rapid"
)

func TestNormalizeOrZero(t *testing.T) {
	cases := []struct {
		name string
		in   cp.Vector
		want cp.Vector
	}{
		{"zero", cp.Vector{}, cp.Vector{}},
		{"unit_x", cp.Vector{X: 1}, cp.Vector{X: 1}},
		{"scaled_y", cp.Vector{Y: -4}, cp.Vector{Y: -1}},
		{"diagonal", cp.Vector{X: 3, Y: 4}, cp.Vector{X: 0.6, Y: 0.8}},
		{"nan", cp.Vector{X: math.NaN(), Y: 1}, cp.Vector{}},
		{"inf", cp.Vector{X: math.Inf(1), Y: 0}, cp.Vector{}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := NormalizeOrZero(c.in)
			if math.Abs(got.X-c.want.X) > 1e-12 || math.Abs(got.Y-c.want.Y) > 1e-12 {
				t.Fatalf("NormalizeOrZero(%v) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestNormalizeOrZeroIsFiniteAndUnitOrZero(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := cp.Vector{
			X: rapid.Float64Range(-1e6, 1e6).Draw(t, "x"),
			Y: rapid.Float64Range(-1e6, 1e6).Draw(t, "y"),
		}
		n := NormalizeOrZero(v)
		if !Finite(n) {
			t.Fatalf("non-finite result %v for %v", n, v)
		}
		length := math.Hypot(n.X, n.Y)
		if v.X == 0 && v.Y == 0 {
			if length != 0 {
				t.Fatalf("zero input gave %v", n)
			}
			return
		}
		if math.Abs(length-1) > 1e-9 {
			t.Fatalf("length %v for %v", length, v)
		}
	})
}
