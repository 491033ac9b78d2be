package component

import "github.com/jakecoffman/cp"

// Transform is an entity's 2-D placement. The physics system writes it back
// from the body after each step.
type Transform struct {
	X        float64
	Y        float64
	Rotation float64
}

func (t Transform) Position() cp.Vector {
	return cp.Vector{X: t.X, Y: t.Y}
}

var TransformComponent = NewComponent[Transform]()
