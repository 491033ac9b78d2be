// Package event defines the per-tick messages exchanged by the projectile
// combat pipeline and the physics system.
package event

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/twinstick/ecs"
	"github.com/milk9111/twinstick/ecs/component"
)

// CollisionKind distinguishes contact start from contact end.
type CollisionKind uint8

const (
	CollisionStarted CollisionKind = iota + 1
	CollisionStopped
)

func (k CollisionKind) String() string {
	switch k {
	case CollisionStarted:
		return "started"
	case CollisionStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Collision is a raw contact notification from the physics engine. The order
// of A and B carries no meaning.
type Collision struct {
	Kind CollisionKind
	A    ecs.Entity
	B    ecs.Entity
}

// Impact is a projectile striking a non-projectile.
type Impact struct {
	Projectile ecs.Entity
	Impacted   ecs.Entity
}

// Clash is two projectiles colliding. The pair is unordered.
type Clash struct {
	A ecs.Entity
	B ecs.Entity
}

// Knockback asks for an impulse on Target. Direction is not normalized.
type Knockback struct {
	Target    ecs.Entity
	Direction cp.Vector
	Force     float64
}

var (
	CollisionEvents = component.NewEvent[Collision]()
	ImpactEvents    = component.NewEvent[Impact]()
	ClashEvents     = component.NewEvent[Clash]()
	KnockbackEvents = component.NewEvent[Knockback]()
)
