package ecs

import "github.com/milk9111/twinstick/ecs/component"

type eventBuffer interface {
	flush()
	len() int
}

// eventQueue holds the events of one type sent during the current tick.
type eventQueue[T any] struct {
	items []T
}

func (q *eventQueue[T]) flush() {
	clear(q.items)
	q.items = q.items[:0]
}

func (q *eventQueue[T]) len() int {
	return len(q.items)
}

func queueOf[T any](w *World, h component.EventHandle[T], create bool) *eventQueue[T] {
	if w == nil || !h.Valid() {
		return nil
	}
	if w.events == nil {
		if !create {
			return nil
		}
		w.events = make(map[component.ComponentID]eventBuffer)
	}
	buf, ok := w.events[h.ID()]
	if !ok {
		if !create {
			return nil
		}
		q := &eventQueue[T]{}
		w.events[h.ID()] = q
		return q
	}
	q, _ := buf.(*eventQueue[T])
	return q
}

// Send publishes ev to every system that runs later in the same tick.
func Send[T any](w *World, h component.EventHandle[T], ev T) {
	q := queueOf(w, h, true)
	if q == nil {
		return
	}
	q.items = append(q.items, ev)
}

// Read returns the events sent so far this tick, in send order. Reading does
// not consume: every reader sees every event. The slice is only valid until
// the end of the tick and must not be modified.
func Read[T any](w *World, h component.EventHandle[T]) []T {
	q := queueOf(w, h, false)
	if q == nil || len(q.items) == 0 {
		return nil
	}
	return q.items
}

// EventCount reports how many events of a type were sent this tick.
func EventCount[T any](w *World, h component.EventHandle[T]) int {
	q := queueOf(w, h, false)
	if q == nil {
		return 0
	}
	return q.len()
}

func (w *World) flushEvents() {
	for _, q := range w.events {
		q.flush()
	}
}
