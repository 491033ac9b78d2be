package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

const (
	BaseWidth  = 1280
	BaseHeight = 720
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// NormalizeOrZero returns the unit vector of v, or the zero vector when v has
// no length or is not finite. cp.Vector.Normalize yields NaN for zero input.
func NormalizeOrZero(v cp.Vector) cp.Vector {
	length := math.Hypot(v.X, v.Y)
	if length == 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		return cp.Vector{}
	}
	return cp.Vector{X: v.X / length, Y: v.Y / length}
}

// Finite reports whether both components are real numbers.
func Finite(v cp.Vector) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}
