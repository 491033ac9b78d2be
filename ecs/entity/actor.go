package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/twinstick/ecs"
	"github.com/milk9111/twinstick/ecs/component"
	"github.com/milk9111/twinstick/prefabs"
)

const defaultActorRadius = 16.0

// NewActor spawns a non-projectile body: a target, an obstacle or the player.
// Only actors whose spec sets receives_impulse get an impulse accumulator.
func NewActor(w *ecs.World, spec *prefabs.ActorSpec, pos cp.Vector) (ecs.Entity, error) {
	if spec == nil {
		spec = &prefabs.ActorSpec{ReceivesImpulse: true}
	}

	body := physicsBodyFromSpec(spec.Collider)
	if body.Radius <= 0 && (body.Width <= 0 || body.Height <= 0) {
		body.Radius = defaultActorRadius
	}

	return spawn(w, func(e ecs.Entity) error {
		if err := addBody(w, e, pos, cp.Vector{}, body); err != nil {
			return fmt.Errorf("actor: %w", err)
		}
		if spec.ReceivesImpulse && !body.Static {
			if err := ecs.Add(w, e, component.ExternalImpulseComponent.Kind(), &component.ExternalImpulse{}); err != nil {
				return fmt.Errorf("actor: add impulse: %w", err)
			}
		}
		if spec.Health > 0 {
			if err := ecs.Add(w, e, component.HealthComponent.Kind(), &component.Health{Current: spec.Health, Max: spec.Health}); err != nil {
				return fmt.Errorf("actor: add health: %w", err)
			}
		}
		if spec.Speed > 0 {
			speed := component.Speed(spec.Speed)
			if err := ecs.Add(w, e, component.SpeedComponent.Kind(), &speed); err != nil {
				return fmt.Errorf("actor: add speed: %w", err)
			}
		}
		if spec.Knockback != nil {
			kb := component.Knockback(*spec.Knockback)
			if err := ecs.Add(w, e, component.KnockbackComponent.Kind(), &kb); err != nil {
				return fmt.Errorf("actor: add knockback: %w", err)
			}
		}
		if spec.Name != "" {
			name := component.Name(spec.Name)
			if err := ecs.Add(w, e, component.NameComponent.Kind(), &name); err != nil {
				return fmt.Errorf("actor: add name: %w", err)
			}
		}
		return nil
	})
}

// NewAttachment spawns a bodiless child owned by parent, e.g. a trail or
// a muzzle flash marker. It is removed whenever its parent is despawned
// recursively.
func NewAttachment(w *ecs.World, parent ecs.Entity, name string) (ecs.Entity, error) {
	return spawn(w, func(e ecs.Entity) error {
		if err := ecs.SetParent(w, e, parent); err != nil {
			return fmt.Errorf("attachment: %w", err)
		}
		var pos component.Transform
		if t, ok := ecs.Get(w, parent, component.TransformComponent.Kind()); ok {
			pos = *t
		}
		if err := ecs.Add(w, e, component.TransformComponent.Kind(), &pos); err != nil {
			return fmt.Errorf("attachment: add transform: %w", err)
		}
		if name != "" {
			n := component.Name(name)
			if err := ecs.Add(w, e, component.NameComponent.Kind(), &n); err != nil {
				return fmt.Errorf("attachment: add name: %w", err)
			}
		}
		return nil
	})
}
