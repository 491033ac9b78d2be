package ecs

import (
	"testing"

	"github.com/milk9111/twinstick/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetParent(t *testing.T) {
	w := NewWorld()
	root := CreateEntity(w)
	a := CreateEntity(w)
	b := CreateEntity(w)

	require.NoError(t, SetParent(w, a, root))
	require.NoError(t, SetParent(w, b, a))

	p, ok := Parent(w, b)
	require.True(t, ok)
	assert.Equal(t, a, p)
	assert.Equal(t, []Entity{a}, Children(w, root))

	assert.ErrorIs(t, SetParent(w, root, b), component.ErrHierarchyCycle)
	assert.ErrorIs(t, SetParent(w, a, a), component.ErrHierarchyCycle)

	// re-parenting moves the child
	require.NoError(t, SetParent(w, b, root))
	assert.Empty(t, Children(w, a))
	assert.ElementsMatch(t, []Entity{a, b}, Children(w, root))

	require.True(t, DestroyEntity(w, a))
	assert.ErrorIs(t, SetParent(w, b, a), component.ErrEntityNotAlive)
}

func TestDestroyEntityOrphansChildren(t *testing.T) {
	w := NewWorld()
	parent := CreateEntity(w)
	child := CreateEntity(w)
	require.NoError(t, SetParent(w, child, parent))

	require.True(t, DestroyEntity(w, parent))
	assert.True(t, IsAlive(w, child))
	_, ok := Parent(w, child)
	assert.False(t, ok)
}

func TestDespawnRecursive(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	root := CreateEntity(w)
	child := CreateEntity(w)
	grandchild := CreateEntity(w)
	bystander := CreateEntity(w)
	require.NoError(t, SetParent(w, child, root))
	require.NoError(t, SetParent(w, grandchild, child))
	require.NoError(t, Add(w, grandchild, h.Kind(), intPtr(1)))

	require.True(t, DespawnRecursive(w, root))
	assert.False(t, IsAlive(w, root))
	assert.False(t, IsAlive(w, child))
	assert.False(t, IsAlive(w, grandchild))
	assert.True(t, IsAlive(w, bystander))
	assert.Empty(t, w.Query(h.Kind()))

	assert.False(t, DespawnRecursive(w, root), "second despawn is a no-op")
}

func TestDespawnRecursiveDeferred(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)
	child := CreateEntity(w)
	require.NoError(t, SetParent(w, child, e))

	DespawnRecursiveDeferred(w, e)
	DespawnRecursiveDeferred(w, e)
	DespawnRecursiveDeferred(w, child)
	assert.True(t, IsAlive(w, e), "deferred despawn waits for ApplyDeferred")

	assert.Equal(t, 1, w.ApplyDeferred())
	assert.False(t, IsAlive(w, e))
	assert.False(t, IsAlive(w, child))
	assert.Equal(t, 0, w.ApplyDeferred())

	// queuing a dead entity does nothing
	DespawnRecursiveDeferred(w, e)
	assert.Equal(t, 0, w.ApplyDeferred())
}
