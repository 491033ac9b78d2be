package ecs

import "time"

type System interface {
	Update(w *World)
}

// SystemFunc adapts a plain function to System.
type SystemFunc func(w *World)

func (f SystemFunc) Update(w *World) {
	if f != nil {
		f(w)
	}
}

// Condition decides whether a gated system runs this tick.
type Condition func(w *World) bool

// InState holds while the world's control state equals s.
func InState(s State) Condition {
	return func(w *World) bool {
		return w.State() == s
	}
}

type gatedSystem struct {
	cond  Condition
	inner System
}

func (g gatedSystem) Update(w *World) {
	if g.cond != nil && !g.cond(w) {
		return
	}
	g.inner.Update(w)
}

// RunIf wraps s so it only runs on ticks where cond holds. A skipped system
// keeps all of its state, so time-based components resume where they were.
func RunIf(cond Condition, s System) System {
	if s == nil {
		return nil
	}
	return gatedSystem{cond: cond, inner: s}
}

type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// Update runs every system once in registration order.
func (s *Scheduler) Update(w *World) {
	for _, system := range s.systems {
		system.Update(w)
	}
}

// Tick runs one simulation step: it publishes dt as the world's delta, runs
// the systems, applies deferred despawns and drops the tick's events.
func (s *Scheduler) Tick(w *World, dt time.Duration) {
	if w == nil {
		return
	}
	if dt < 0 {
		dt = 0
	}
	w.delta = dt
	s.Update(w)
	w.ApplyDeferred()
	w.flushEvents()
	w.frame++
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}
