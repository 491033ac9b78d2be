package ecs

import "github.com/milk9111/twinstick/ecs/component"

// SetParent makes child owned by parent. Despawning the parent recursively
// removes the child as well. A child has at most one parent; re-parenting
// moves it.
func SetParent(w *World, child, parent Entity) error {
	if !w.IsAlive(child) || !w.IsAlive(parent) {
		return component.ErrEntityNotAlive
	}
	for p := parent; p != NoEntity; p = w.parents[p] {
		if p == child {
			return component.ErrHierarchyCycle
		}
	}
	w.detach(child)
	w.parents[child] = parent
	w.children[parent] = append(w.children[parent], child)
	return nil
}

// Parent returns the owner of e, if any.
func Parent(w *World, e Entity) (Entity, bool) {
	if !w.IsAlive(e) {
		return NoEntity, false
	}
	p, ok := w.parents[e]
	return p, ok
}

// Children returns a copy of e's direct children.
func Children(w *World, e Entity) []Entity {
	if !w.IsAlive(e) {
		return nil
	}
	return append([]Entity(nil), w.children[e]...)
}

// DespawnRecursive destroys e and every entity parented below it, children
// first, so no child is ever left pointing at a dead parent. It returns false
// if e was already gone.
func DespawnRecursive(w *World, e Entity) bool {
	if !w.IsAlive(e) {
		return false
	}
	for _, child := range Children(w, e) {
		DespawnRecursive(w, child)
	}
	return w.DestroyEntity(e)
}

// DespawnRecursiveDeferred queues a recursive despawn for the end of the
// current tick. Queuing the same entity twice, or an entity that dies by
// another path first, is harmless.
func DespawnRecursiveDeferred(w *World, e Entity) {
	if !w.IsAlive(e) {
		return
	}
	w.pending = append(w.pending, e)
}

// ApplyDeferred runs queued despawns and returns how many entities were
// actually removed at the top of each queued tree.
func (w *World) ApplyDeferred() int {
	if w == nil {
		return 0
	}
	removed := 0
	for len(w.pending) > 0 {
		queued := w.pending
		w.pending = nil
		for _, e := range queued {
			if DespawnRecursive(w, e) {
				removed++
			}
		}
	}
	return removed
}

func (w *World) detach(child Entity) {
	parent, ok := w.parents[child]
	if !ok {
		return
	}
	delete(w.parents, child)
	siblings := w.children[parent]
	for i, s := range siblings {
		if s == child {
			siblings = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	if len(siblings) == 0 {
		delete(w.children, parent)
		return
	}
	w.children[parent] = siblings
}
