package system

import (
	"github.com/milk9111/twinstick/ecs"
	"github.com/milk9111/twinstick/ecs/component"
	"github.com/milk9111/twinstick/ecs/event"
	"go.uber.org/zap"
)

// ProjectilePostImpactSystem removes projectiles whose OnImpact policy is
// ImpactDie after they strike something. Bounce projectiles are left alone;
// any rebound comes from the physics response itself.
type ProjectilePostImpactSystem struct {
	logger *zap.Logger
}

func NewProjectilePostImpactSystem(opts ...Option) *ProjectilePostImpactSystem {
	o := buildOptions(opts)
	return &ProjectilePostImpactSystem{logger: o.logger}
}

func (s *ProjectilePostImpactSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for _, impact := range ecs.Read(w, event.ImpactEvents) {
		// The projectile may already be gone through another path this tick.
		projectile, ok := ecs.Get(w, impact.Projectile, component.ProjectileComponent.Kind())
		if !ok {
			continue
		}
		if projectile.OnImpact != component.ImpactDie {
			continue
		}
		s.logger.Debug("projectile despawned on impact", zap.Stringer("projectile", impact.Projectile), zap.Stringer("impacted", impact.Impacted))
		ecs.DespawnRecursiveDeferred(w, impact.Projectile)
	}
}
