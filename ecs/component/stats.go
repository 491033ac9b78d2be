package component

// Knockback is the impulse magnitude an entity applies to whatever its
// projectile strikes. Entities without it push nothing.
type Knockback float64

var KnockbackComponent = NewComponent[Knockback]()

// Speed is the launch speed of projectiles and the move speed of actors.
type Speed float64

var SpeedComponent = NewComponent[Speed]()

type Health struct {
	Current float64
	Max     float64
}

var HealthComponent = NewComponent[Health]()
