package system

import (
	"github.com/milk9111/twinstick/ecs"
	"github.com/milk9111/twinstick/logging"
	"go.uber.org/zap"
)

// PipelineConfig selects when the projectile pipeline runs.
type PipelineConfig struct {
	// ActiveState is the control state in which the stages run. Empty means
	// ecs.StateAlwaysActive.
	ActiveState ecs.State
	Logger      *zap.Logger
}

// NewProjectilePipeline returns the combat stages in tick order, each gated
// on the active state: classification first, then its two independent
// consumers, then impulse accumulation and finally lifespans. While the world
// is in any other state nothing runs and no lifespan advances.
func NewProjectilePipeline(cfg PipelineConfig) []ecs.System {
	active := cfg.ActiveState
	if active == "" {
		active = ecs.StateAlwaysActive
	}
	opt := WithLogger(logging.OrNop(cfg.Logger))
	gate := ecs.InState(active)

	return []ecs.System{
		ecs.RunIf(gate, NewProjectileEventDispatcher(opt)),
		ecs.RunIf(gate, NewKnockbackFromProjectilesSystem(opt)),
		ecs.RunIf(gate, NewProjectilePostImpactSystem(opt)),
		ecs.RunIf(gate, NewKnockbackImpulseSystem(opt)),
		ecs.RunIf(gate, NewLifespanSystem(opt)),
	}
}

// InstallProjectilePipeline appends the combat stages to s. The physics
// system, which produces the collision events, must already be registered
// ahead of them.
func InstallProjectilePipeline(s *ecs.Scheduler, cfg PipelineConfig) {
	if s == nil {
		return
	}
	for _, stage := range NewProjectilePipeline(cfg) {
		s.Add(stage)
	}
	logging.OrNop(cfg.Logger).Info("projectile pipeline installed", zap.String("active_state", string(cfg.ActiveState)))
}
