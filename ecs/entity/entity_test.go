package entity

import (
	"testing"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/twinstick/ecs"
	"github.com/milk9111/twinstick/ecs/component"
	"github.com/milk9111/twinstick/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProjectileDefaults(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewProjectile(w, nil, cp.Vector{X: 1, Y: 2}, cp.Vector{X: 3})
	require.NoError(t, err)

	p, ok := ecs.Get(w, e, component.ProjectileComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, component.DefaultProjectile(), *p)

	l, ok := ecs.Get(w, e, component.LifespanComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, component.DefaultLifespanDuration, l.Duration)

	assert.False(t, ecs.Has(w, e, component.KnockbackComponent.Kind()))

	body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, defaultProjectileRadius, body.Radius)
	assert.Equal(t, 1.0, body.Density)

	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, cp.Vector{X: 1, Y: 2}, tr.Position())

	vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, cp.Vector{X: 3}, vel.Linear)
}

func TestNewProjectileFromPrefab(t *testing.T) {
	spec, err := prefabs.LoadProjectileSpec("bouncer.yaml")
	require.NoError(t, err)

	w := ecs.NewWorld()
	e, err := NewProjectile(w, spec, cp.Vector{}, cp.Vector{})
	require.NoError(t, err)

	p, _ := ecs.Get(w, e, component.ProjectileComponent.Kind())
	assert.Equal(t, component.ImpactDie, p.OnHit)
	assert.Equal(t, component.ImpactBounce, p.OnImpact)

	kb, ok := ecs.Get(w, e, component.KnockbackComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, component.Knockback(15), *kb)

	l, _ := ecs.Get(w, e, component.LifespanComponent.Kind())
	assert.Equal(t, 1500*time.Millisecond, l.Duration)

	name, ok := ecs.Get(w, e, component.NameComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, component.Name("bouncer"), *name)
}

func TestNewProjectileRejectsUnknownBehavior(t *testing.T) {
	w := ecs.NewWorld()
	_, err := NewProjectile(w, &prefabs.ProjectileSpec{OnImpact: "shatter"}, cp.Vector{}, cp.Vector{})
	assert.Error(t, err)
	assert.Empty(t, w.Entities())
}

func TestFireProjectile(t *testing.T) {
	w := ecs.NewWorld()
	spec := &prefabs.ProjectileSpec{Speed: 10}
	e, err := FireProjectile(w, spec, cp.Vector{X: 1, Y: 1}, cp.Vector{X: 1, Y: 5})
	require.NoError(t, err)

	vel, ok := ecs.Get(w, e, component.VelocityComponent.Kind())
	require.True(t, ok)
	assert.InDelta(t, 0, vel.Linear.X, 1e-9)
	assert.InDelta(t, 10, vel.Linear.Y, 1e-9)

	e, err = FireProjectile(w, spec, cp.Vector{}, cp.Vector{})
	require.NoError(t, err)
	vel, _ = ecs.Get(w, e, component.VelocityComponent.Kind())
	assert.Equal(t, cp.Vector{}, vel.Linear)
}

func TestNewActor(t *testing.T) {
	w := ecs.NewWorld()

	actorSpec, err := prefabs.LoadActorSpec("actor.yaml")
	require.NoError(t, err)
	actor, err := NewActor(w, actorSpec, cp.Vector{X: 5})
	require.NoError(t, err)
	assert.True(t, ecs.Has(w, actor, component.ExternalImpulseComponent.Kind()))
	assert.True(t, ecs.Has(w, actor, component.VelocityComponent.Kind()))
	hp, ok := ecs.Get(w, actor, component.HealthComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, component.Health{Current: 100, Max: 100}, *hp)
	assert.False(t, ecs.Has(w, actor, component.ProjectileComponent.Kind()))

	wallSpec, err := prefabs.LoadActorSpec("wall.yaml")
	require.NoError(t, err)
	wall, err := NewActor(w, wallSpec, cp.Vector{})
	require.NoError(t, err)
	assert.False(t, ecs.Has(w, wall, component.ExternalImpulseComponent.Kind()))
	assert.False(t, ecs.Has(w, wall, component.VelocityComponent.Kind()))

	static := &prefabs.ActorSpec{ReceivesImpulse: true, Collider: prefabs.ColliderSpec{Radius: 4, Static: true}}
	e, err := NewActor(w, static, cp.Vector{})
	require.NoError(t, err)
	assert.False(t, ecs.Has(w, e, component.ExternalImpulseComponent.Kind()), "static bodies never take impulses")
}

func TestNewAttachment(t *testing.T) {
	w := ecs.NewWorld()
	p, err := NewProjectile(w, nil, cp.Vector{X: 7, Y: 8}, cp.Vector{})
	require.NoError(t, err)

	trail, err := NewAttachment(w, p, "trail")
	require.NoError(t, err)
	parent, ok := ecs.Parent(w, trail)
	require.True(t, ok)
	assert.Equal(t, p, parent)

	tr, ok := ecs.Get(w, trail, component.TransformComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, cp.Vector{X: 7, Y: 8}, tr.Position())

	require.True(t, ecs.DespawnRecursive(w, p))
	assert.False(t, ecs.IsAlive(w, trail))

	_, err = NewAttachment(w, p, "late")
	assert.ErrorIs(t, err, component.ErrEntityNotAlive)
}

func TestSpawnDestroysEntityOnFailedBuild(t *testing.T) {
	w := ecs.NewWorld()
	var built ecs.Entity
	e, err := spawn(w, func(e ecs.Entity) error {
		built = e
		if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{}); err != nil {
			return err
		}
		return ecs.Add[component.Speed](w, e, component.SpeedComponent.Kind(), nil)
	})

	assert.ErrorIs(t, err, component.ErrNilComponent)
	assert.Equal(t, ecs.NoEntity, e)
	assert.False(t, ecs.IsAlive(w, built))
	assert.Empty(t, w.Entities())
	assert.Empty(t, w.Query(component.TransformComponent.Kind()))
}

func TestFailedAttachmentLeavesNoEntity(t *testing.T) {
	w := ecs.NewWorld()
	parent, err := NewActor(w, nil, cp.Vector{})
	require.NoError(t, err)
	require.True(t, ecs.DestroyEntity(w, parent))

	_, err = NewAttachment(w, parent, "orphan")
	require.ErrorIs(t, err, component.ErrEntityNotAlive)
	assert.Empty(t, w.Entities())
}
