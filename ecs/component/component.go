package component

import (
	"errors"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("ecs: entity not alive")
	ErrNilComponent         = errors.New("ecs: component is nil")
	ErrInvalidComponentKind = errors.New("ecs: invalid component kind")
	ErrHierarchyCycle       = errors.New("ecs: parent would create a cycle")
)

type ComponentID uint32

var nextComponentID atomic.Uint32

// Identified is satisfied by every kind so untyped queries can accept a mix
// of component types.
type Identified interface {
	ID() ComponentID
}

type ComponentKind[T any] struct {
	id ComponentID
}

func NewComponentKind[T any]() ComponentKind[T] {
	return ComponentKind[T]{id: ComponentID(nextComponentID.Add(1))}
}

func (k ComponentKind[T]) ID() ComponentID {
	return k.id
}

func (k ComponentKind[T]) Valid() bool {
	return k.id != 0
}

type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

func NewComponent[T any]() ComponentHandle[T] {
	return ComponentHandle[T]{kind: NewComponentKind[T]()}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] {
	return h.kind
}

// EventHandle names a per-tick event queue carrying values of type T.
type EventHandle[T any] struct {
	id ComponentID
}

func NewEvent[T any]() EventHandle[T] {
	return EventHandle[T]{id: ComponentID(nextComponentID.Add(1))}
}

func (h EventHandle[T]) ID() ComponentID {
	return h.id
}

func (h EventHandle[T]) Valid() bool {
	return h.id != 0
}
