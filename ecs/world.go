package ecs

import (
	"time"

	"github.com/milk9111/twinstick/ecs/component"
)

// World owns entities, their components, the parent/child index and the
// per-tick event queues. It is not safe for concurrent use; systems mutate it
// one at a time from the scheduler.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]componentStore
	events   map[component.ComponentID]eventBuffer

	parents  map[Entity]Entity
	children map[Entity][]Entity
	pending  []Entity

	delta time.Duration
	frame uint64
	state State
}

// NewWorld creates an empty ECS world in the always-active control state.
func NewWorld() *World {
	return &World{
		stores:   make(map[component.ComponentID]componentStore),
		events:   make(map[component.ComponentID]eventBuffer),
		parents:  make(map[Entity]Entity),
		children: make(map[Entity][]Entity),
		state:    StateAlwaysActive,
	}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes an entity and all of its components. Children are
// detached and become roots; use DespawnRecursive to remove them as well.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, child := range w.children[e] {
		delete(w.parents, child)
	}
	delete(w.children, e)
	w.detach(e)

	for _, store := range w.stores {
		store.remove(e.id())
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity.
func (w *World) Entities() []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

// Query returns the live entities carrying every listed kind.
func (w *World) Query(kinds ...component.Identified) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	stores := make([]componentStore, 0, len(kinds))
	for _, k := range kinds {
		store, ok := w.stores[k.ID()]
		if !ok {
			return nil
		}
		stores = append(stores, store)
	}
	smallest := stores[0]
	for _, s := range stores[1:] {
		if s.len() < smallest.len() {
			smallest = s
		}
	}

	var out []Entity
	for _, id := range smallest.ids() {
		matched := true
		for _, s := range stores {
			if !s.has(id) {
				matched = false
				break
			}
		}
		if !matched {
			continue
		}
		if e, ok := w.entities.current(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// First returns the first live entity carrying kind.
func (w *World) First(kind component.Identified) (Entity, bool) {
	if w == nil {
		return NoEntity, false
	}
	store, ok := w.stores[kind.ID()]
	if !ok {
		return NoEntity, false
	}
	for _, id := range store.ids() {
		if e, ok := w.entities.current(id); ok {
			return e, true
		}
	}
	return NoEntity, false
}

// Delta is the elapsed time of the tick currently being run.
func (w *World) Delta() time.Duration {
	if w == nil {
		return 0
	}
	return w.delta
}

// Frame counts completed scheduler ticks.
func (w *World) Frame() uint64 {
	if w == nil {
		return 0
	}
	return w.frame
}

// Package-level wrappers mirror the generic component helpers so callers can
// stay in one idiom.

func CreateEntity(w *World) Entity {
	return w.CreateEntity()
}

func DestroyEntity(w *World, e Entity) bool {
	return w.DestroyEntity(e)
}

func IsAlive(w *World, e Entity) bool {
	return w.IsAlive(e)
}

func Entities(w *World) []Entity {
	return w.Entities()
}
