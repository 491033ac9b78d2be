package ecs

import "github.com/milk9111/twinstick/ecs/component"

func storeOf[T any](w *World, kind component.ComponentKind[T]) *sparseSet[T] {
	if w == nil || w.stores == nil {
		return nil
	}
	store, ok := w.stores[kind.ID()]
	if !ok {
		return nil
	}
	typed, _ := store.(*sparseSet[T])
	return typed
}

// Add inserts or replaces the component of the given kind on e. The world
// keeps the pointer; later Gets return the same value.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]componentStore)
	}
	store := storeOf(w, kind)
	if store == nil {
		store = newSparseSet[T]()
		w.stores[kind.ID()] = store
	}
	store.set(e.id(), value)
	return nil
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !w.IsAlive(e) {
		return false
	}
	return storeOf(w, kind).remove(e.id())
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	if !w.IsAlive(e) {
		return false
	}
	return storeOf(w, kind).has(e.id())
}

// Get looks up a component. Stale or destroyed handles miss rather than
// panic.
func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	if !w.IsAlive(e) {
		return nil, false
	}
	return storeOf(w, kind).get(e.id())
}

// ForEach visits every live entity with the component. fn may add, remove or
// destroy entities; the visited set is fixed when iteration starts.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	store := storeOf(w, kind)
	if store == nil || fn == nil {
		return
	}
	for _, id := range store.ids() {
		e, ok := w.entities.current(id)
		if !ok {
			continue
		}
		v, ok := store.get(id)
		if !ok {
			continue
		}
		fn(e, v)
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sa, sb := storeOf(w, ka), storeOf(w, kb)
	if sa == nil || sb == nil || fn == nil {
		return
	}
	ids := sa.ids()
	if sb.len() < sa.len() {
		ids = sb.ids()
	}
	for _, id := range ids {
		e, ok := w.entities.current(id)
		if !ok {
			continue
		}
		a, okA := sa.get(id)
		b, okB := sb.get(id)
		if !okA || !okB {
			continue
		}
		fn(e, a, b)
	}
}

func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	sa, sb, sc := storeOf(w, ka), storeOf(w, kb), storeOf(w, kc)
	if sa == nil || sb == nil || sc == nil || fn == nil {
		return
	}
	ids := sa.ids()
	if sb.len() < len(ids) {
		ids = sb.ids()
	}
	if sc.len() < len(ids) {
		ids = sc.ids()
	}
	for _, id := range ids {
		e, ok := w.entities.current(id)
		if !ok {
			continue
		}
		a, okA := sa.get(id)
		b, okB := sb.get(id)
		c, okC := sc.get(id)
		if !okA || !okB || !okC {
			continue
		}
		fn(e, a, b, c)
	}
}
