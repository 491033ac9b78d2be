package component

import (
	"fmt"
	"strings"
)

// ImpactBehavior is the despawn policy a projectile follows for one kind of
// collision. Values are ordered: Die sorts before Bounce.
type ImpactBehavior uint8

const (
	ImpactDie ImpactBehavior = iota
	ImpactBounce
)

func (b ImpactBehavior) String() string {
	switch b {
	case ImpactDie:
		return "die"
	case ImpactBounce:
		return "bounce"
	default:
		return fmt.Sprintf("ImpactBehavior(%d)", uint8(b))
	}
}

// ParseImpactBehavior accepts the names produced by String, case-insensitive.
// An empty string means the default, ImpactDie.
func ParseImpactBehavior(s string) (ImpactBehavior, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "die":
		return ImpactDie, nil
	case "bounce":
		return ImpactBounce, nil
	default:
		return ImpactDie, fmt.Errorf("component: unknown impact behavior %q", s)
	}
}

// Projectile tags an entity as taking part in combat collisions.
//
// OnImpact decides whether the projectile is removed after it strikes a
// non-projectile. OnHit is carried for gameplay code but the impact despawn
// logic does not read it.
type Projectile struct {
	OnHit    ImpactBehavior
	OnImpact ImpactBehavior
}

// DefaultProjectile dies on both hit and impact.
func DefaultProjectile() Projectile {
	return Projectile{OnHit: ImpactDie, OnImpact: ImpactDie}
}

var ProjectileComponent = NewComponent[Projectile]()
