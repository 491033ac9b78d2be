package system

import (
	"github.com/milk9111/twinstick/ecs"
	"github.com/milk9111/twinstick/ecs/event"
)

// CombatStats totals the combat events seen so far. It stands in for the
// score, effects and audio consumers that read the same events.
type CombatStats struct {
	Impacts    int
	Clashes    int
	Knockbacks int
}

// CombatStatsSystem counts events. Schedule it after the pipeline so every
// event of the tick has been sent.
type CombatStatsSystem struct {
	stats CombatStats
}

func NewCombatStatsSystem() *CombatStatsSystem {
	return &CombatStatsSystem{}
}

func (s *CombatStatsSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	s.stats.Impacts += ecs.EventCount(w, event.ImpactEvents)
	s.stats.Clashes += ecs.EventCount(w, event.ClashEvents)
	s.stats.Knockbacks += ecs.EventCount(w, event.KnockbackEvents)
}

func (s *CombatStatsSystem) Stats() CombatStats {
	if s == nil {
		return CombatStats{}
	}
	return s.stats
}
