package ecs

import (
	"testing"
	"time"

	"github.com/milk9111/twinstick/ecs/component"
	"github.com/stretchr/testify/assert"
)

type pingEvent struct {
	N int
}

func TestEventsAreSharedAndFlushedPerTick(t *testing.T) {
	w := NewWorld()
	pings := component.NewEvent[pingEvent]()
	other := component.NewEvent[pingEvent]()

	var first, second []pingEvent
	s := NewScheduler(
		SystemFunc(func(w *World) {
			Send(w, pings, pingEvent{N: 1})
			Send(w, pings, pingEvent{N: 2})
		}),
		SystemFunc(func(w *World) { first = append(first, Read(w, pings)...) }),
		SystemFunc(func(w *World) { second = append(second, Read(w, pings)...) }),
	)

	s.Tick(w, time.Millisecond)
	assert.Equal(t, []pingEvent{{1}, {2}}, first)
	assert.Equal(t, first, second, "every reader sees every event")
	assert.Empty(t, Read(w, pings), "events do not outlive the tick")
	assert.Zero(t, EventCount(w, pings))
	assert.Zero(t, EventCount(w, other))
}

func TestReadBeforeSendSeesNothing(t *testing.T) {
	w := NewWorld()
	pings := component.NewEvent[pingEvent]()

	var seen int
	s := NewScheduler(
		SystemFunc(func(w *World) { seen += len(Read(w, pings)) }),
		SystemFunc(func(w *World) { Send(w, pings, pingEvent{N: 1}) }),
	)
	s.Tick(w, time.Millisecond)
	s.Tick(w, time.Millisecond)
	assert.Zero(t, seen)
}

func TestInvalidEventHandle(t *testing.T) {
	w := NewWorld()
	var h component.EventHandle[pingEvent]
	Send(w, h, pingEvent{N: 1})
	assert.Nil(t, Read(w, h))
	assert.Zero(t, EventCount(w, h))
}
