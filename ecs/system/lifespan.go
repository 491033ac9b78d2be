package system

import (
	"github.com/milk9111/twinstick/ecs"
	"github.com/milk9111/twinstick/ecs/component"
	"go.uber.org/zap"
)

// LifespanSystem advances every Lifespan by the tick's delta and despawns
// the owner, with its children, once the countdown completes.
type LifespanSystem struct {
	logger *zap.Logger
}

func NewLifespanSystem(opts ...Option) *LifespanSystem {
	o := buildOptions(opts)
	return &LifespanSystem{logger: o.logger}
}

func (s *LifespanSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	dt := w.Delta()
	ecs.ForEach(w, component.LifespanComponent.Kind(), func(e ecs.Entity, lifespan *component.Lifespan) {
		if !lifespan.Tick(dt) {
			return
		}
		s.logger.Debug("lifespan expired", zap.Stringer("entity", e), zap.Duration("duration", lifespan.Duration))
		ecs.DespawnRecursiveDeferred(w, e)
	})
}
