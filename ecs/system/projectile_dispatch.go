package system

import (
	"github.com/milk9111/twinstick/ecs"
	"github.com/milk9111/twinstick/ecs/component"
	"github.com/milk9111/twinstick/ecs/event"
	"go.uber.org/zap"
)

// ProjectileEventDispatcher turns contact-start notifications into impact and
// clash events. Contact-end notifications and pairs without a projectile are
// dropped. Each notification yields at most one event; duplicates are not
// merged.
type ProjectileEventDispatcher struct {
	logger *zap.Logger
}

func NewProjectileEventDispatcher(opts ...Option) *ProjectileEventDispatcher {
	o := buildOptions(opts)
	return &ProjectileEventDispatcher{logger: o.logger}
}

func (s *ProjectileEventDispatcher) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for _, c := range ecs.Read(w, event.CollisionEvents) {
		if c.Kind != event.CollisionStarted {
			continue
		}

		// A handle that died earlier this tick simply reads as untagged.
		aTagged := ecs.Has(w, c.A, component.ProjectileComponent.Kind())
		bTagged := ecs.Has(w, c.B, component.ProjectileComponent.Kind())

		switch {
		case aTagged && bTagged:
			ecs.Send(w, event.ClashEvents, event.Clash{A: c.A, B: c.B})
			s.logger.Debug("projectile clash", zap.Stringer("a", c.A), zap.Stringer("b", c.B))
		case aTagged:
			ecs.Send(w, event.ImpactEvents, event.Impact{Projectile: c.A, Impacted: c.B})
			s.logger.Debug("projectile impact", zap.Stringer("projectile", c.A), zap.Stringer("impacted", c.B))
		case bTagged:
			ecs.Send(w, event.ImpactEvents, event.Impact{Projectile: c.B, Impacted: c.A})
			s.logger.Debug("projectile impact", zap.Stringer("projectile", c.B), zap.Stringer("impacted", c.A))
		}
	}
}
