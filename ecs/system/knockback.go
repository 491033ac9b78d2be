package system

import (
	"github.com/milk9111/twinstick/common"
	"github.com/milk9111/twinstick/ecs"
	"github.com/milk9111/twinstick/ecs/component"
	"github.com/milk9111/twinstick/ecs/event"
	"go.uber.org/zap"
)

// KnockbackFromProjectilesSystem derives a knockback request from every
// impact whose projectile carries a Knockback magnitude. The direction points
// from the struck entity towards the projectile, plus the projectile's
// velocity when it has one, and is left unnormalized.
type KnockbackFromProjectilesSystem struct {
	logger *zap.Logger
}

func NewKnockbackFromProjectilesSystem(opts ...Option) *KnockbackFromProjectilesSystem {
	o := buildOptions(opts)
	return &KnockbackFromProjectilesSystem{logger: o.logger}
}

func (s *KnockbackFromProjectilesSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for _, impact := range ecs.Read(w, event.ImpactEvents) {
		knockback, ok := ecs.Get(w, impact.Projectile, component.KnockbackComponent.Kind())
		if !ok {
			continue
		}

		from, ok := ecs.Get(w, impact.Projectile, component.TransformComponent.Kind())
		if !ok {
			s.logger.Debug("knockback skipped: projectile has no transform", zap.Stringer("projectile", impact.Projectile))
			continue
		}
		to, ok := ecs.Get(w, impact.Impacted, component.TransformComponent.Kind())
		if !ok {
			s.logger.Debug("knockback skipped: target has no transform", zap.Stringer("target", impact.Impacted))
			continue
		}

		direction := from.Position().Sub(to.Position())
		if vel, ok := ecs.Get(w, impact.Projectile, component.VelocityComponent.Kind()); ok {
			direction = direction.Add(vel.Linear)
		}

		ecs.Send(w, event.KnockbackEvents, event.Knockback{
			Target:    impact.Impacted,
			Direction: direction,
			Force:     float64(*knockback),
		})
	}
}

// KnockbackImpulseSystem converts knockback requests into impulses and adds
// them to the target's ExternalImpulse accumulator. Targets without an
// accumulator are not dynamic and are skipped.
type KnockbackImpulseSystem struct {
	logger *zap.Logger
}

func NewKnockbackImpulseSystem(opts ...Option) *KnockbackImpulseSystem {
	o := buildOptions(opts)
	return &KnockbackImpulseSystem{logger: o.logger}
}

func (s *KnockbackImpulseSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for _, kb := range ecs.Read(w, event.KnockbackEvents) {
		impulse := common.NormalizeOrZero(kb.Direction).Mult(kb.Force)
		if !common.Finite(impulse) {
			s.logger.Debug("knockback dropped: non-finite impulse", zap.Stringer("target", kb.Target), zap.Float64("force", kb.Force))
			continue
		}

		acc, ok := ecs.Get(w, kb.Target, component.ExternalImpulseComponent.Kind())
		if !ok {
			continue
		}
		acc.Impulse = acc.Impulse.Add(impulse)
	}
}
