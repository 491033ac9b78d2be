package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/twinstick/ecs"
	"github.com/milk9111/twinstick/ecs/component"
	"github.com/milk9111/twinstick/prefabs"
)

const defaultProjectileRadius = 5.0

// NewProjectile spawns a projectile at pos moving with vel. A nil spec gives
// the defaults: dies on hit and impact, 400ms lifespan, a ball of radius 5
// and density 1, no knockback.
func NewProjectile(w *ecs.World, spec *prefabs.ProjectileSpec, pos, vel cp.Vector) (ecs.Entity, error) {
	if spec == nil {
		spec = &prefabs.ProjectileSpec{}
	}

	onHit, err := component.ParseImpactBehavior(spec.OnHit)
	if err != nil {
		return 0, fmt.Errorf("projectile: on_hit: %w", err)
	}
	onImpact, err := component.ParseImpactBehavior(spec.OnImpact)
	if err != nil {
		return 0, fmt.Errorf("projectile: on_impact: %w", err)
	}

	lifespan := component.DefaultLifespan()
	if d, ok := spec.Lifespan(); ok {
		lifespan = component.NewLifespan(d)
	}

	body := physicsBodyFromSpec(spec.Collider)
	if body.Radius <= 0 && (body.Width <= 0 || body.Height <= 0) {
		body.Radius = defaultProjectileRadius
	}
	if body.Mass <= 0 && body.Density <= 0 {
		body.Density = 1
	}
	body.Static = false

	return spawn(w, func(e ecs.Entity) error {
		if err := ecs.Add(w, e, component.ProjectileComponent.Kind(), &component.Projectile{OnHit: onHit, OnImpact: onImpact}); err != nil {
			return fmt.Errorf("projectile: add projectile: %w", err)
		}
		if err := ecs.Add(w, e, component.LifespanComponent.Kind(), &lifespan); err != nil {
			return fmt.Errorf("projectile: add lifespan: %w", err)
		}
		if spec.Knockback != nil {
			kb := component.Knockback(*spec.Knockback)
			if err := ecs.Add(w, e, component.KnockbackComponent.Kind(), &kb); err != nil {
				return fmt.Errorf("projectile: add knockback: %w", err)
			}
		}
		if spec.Speed > 0 {
			speed := component.Speed(spec.Speed)
			if err := ecs.Add(w, e, component.SpeedComponent.Kind(), &speed); err != nil {
				return fmt.Errorf("projectile: add speed: %w", err)
			}
		}
		if err := addBody(w, e, pos, vel, body); err != nil {
			return fmt.Errorf("projectile: %w", err)
		}
		if spec.Name != "" {
			name := component.Name(spec.Name)
			if err := ecs.Add(w, e, component.NameComponent.Kind(), &name); err != nil {
				return fmt.Errorf("projectile: add name: %w", err)
			}
		}
		return nil
	})
}

// FireProjectile launches a projectile from origin towards target at the
// spec's speed.
func FireProjectile(w *ecs.World, spec *prefabs.ProjectileSpec, origin, target cp.Vector) (ecs.Entity, error) {
	var vel cp.Vector
	if spec != nil && spec.Speed > 0 {
		dir := target.Sub(origin)
		if l := dir.Length(); l > 0 {
			vel = dir.Mult(spec.Speed / l)
		}
	}
	return NewProjectile(w, spec, origin, vel)
}

func physicsBodyFromSpec(c prefabs.ColliderSpec) component.PhysicsBody {
	return component.PhysicsBody{
		Radius:     c.Radius,
		Width:      c.Width,
		Height:     c.Height,
		Mass:       c.Mass,
		Density:    c.Density,
		Friction:   c.Friction,
		Elasticity: c.Elasticity,
		Static:     c.Static,
		Sensor:     c.Sensor,
	}
}

func addBody(w *ecs.World, e ecs.Entity, pos, vel cp.Vector, body component.PhysicsBody) error {
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: pos.X, Y: pos.Y}); err != nil {
		return fmt.Errorf("add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &body); err != nil {
		return fmt.Errorf("add physics body: %w", err)
	}
	if body.Static {
		return nil
	}
	if err := ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{Linear: vel}); err != nil {
		return fmt.Errorf("add velocity: %w", err)
	}
	return nil
}

// spawn creates an entity and runs build on it. A failed build destroys the
// half-built entity so no partial bundle is left in the world.
func spawn(w *ecs.World, build func(e ecs.Entity) error) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := build(e); err != nil {
		ecs.DestroyEntity(w, e)
		return ecs.NoEntity, err
	}
	return e, nil
}
