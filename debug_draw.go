package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/twinstick/ecs"
	"github.com/milk9111/twinstick/ecs/component"
)

var (
	colorProjectile = color.NRGBA{R: 0xff, G: 0x99, B: 0x1a, A: 0xcc}
	colorActor      = color.NRGBA{R: 0x1a, G: 0x99, B: 0x1a, A: 0xcc}
	colorStatic     = color.NRGBA{R: 0x44, G: 0x44, B: 0x4c, A: 0xff}
	colorVelocity   = color.NRGBA{R: 0xff, G: 0x33, B: 0x33, A: 0xcc}
)

// velocityScale turns a velocity in px/s into the length of its debug line.
const velocityScale = 0.05

// drawColliders outlines every entity that owns a collider, coloured by role,
// with a short line along its velocity.
func drawColliders(w *ecs.World, screen *ebiten.Image) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, body *component.PhysicsBody, tr *component.Transform) {
		clr := colliderColor(w, e, body)
		pos := tr.Position()

		if body.Radius > 0 {
			vector.StrokeCircle(screen, float32(pos.X), float32(pos.Y), float32(body.Radius), 1.5, clr, true)
			heading := pos.Add(cp.ForAngle(tr.Rotation).Mult(body.Radius))
			strokeSegment(screen, pos, heading, clr)
		} else {
			strokeBox(screen, pos, body.Width, body.Height, tr.Rotation, clr)
		}

		if vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
			strokeSegment(screen, pos, pos.Add(vel.Linear.Mult(velocityScale)), colorVelocity)
		}
	})
}

func colliderColor(w *ecs.World, e ecs.Entity, body *component.PhysicsBody) color.Color {
	switch {
	case ecs.Has(w, e, component.ProjectileComponent.Kind()):
		return colorProjectile
	case body.Static:
		return colorStatic
	default:
		return colorActor
	}
}

func strokeBox(screen *ebiten.Image, center cp.Vector, width, height, angle float64, clr color.Color) {
	if width <= 0 || height <= 0 {
		return
	}
	hw, hh := width/2, height/2
	rot := cp.ForAngle(angle)
	corners := [4]cp.Vector{{X: -hw, Y: -hh}, {X: hw, Y: -hh}, {X: hw, Y: hh}, {X: -hw, Y: hh}}
	for i := range corners {
		corners[i] = center.Add(corners[i].Rotate(rot))
	}
	for i := range corners {
		strokeSegment(screen, corners[i], corners[(i+1)%len(corners)], clr)
	}
}

func strokeSegment(screen *ebiten.Image, a, b cp.Vector, clr color.Color) {
	if math.IsNaN(b.X) || math.IsNaN(b.Y) {
		return
	}
	vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 1, clr, true)
}
