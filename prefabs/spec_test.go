package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadProjectileSpecs(t *testing.T) {
	tests := []struct {
		file          string
		name          string
		onImpact      string
		knockback     *float64
		lifespan      time.Duration
		lifespanSet   bool
		radius, speed float64
	}{
		{"projectile.yaml", "bullet", "die", floatPtr(40), 400 * time.Millisecond, true, 5, 600},
		{"bouncer.yaml", "bouncer", "bounce", floatPtr(15), 1500 * time.Millisecond, true, 6, 450},
		{"pellet.yaml", "pellet", "die", nil, 0, false, 3, 700},
	}
	for _, tc := range tests {
		t.Run(tc.file, func(t *testing.T) {
			spec, err := LoadProjectileSpec(tc.file)
			require.NoError(t, err)
			assert.Equal(t, tc.name, spec.Name)
			assert.Equal(t, tc.onImpact, spec.OnImpact)
			assert.Equal(t, tc.knockback, spec.Knockback)
			d, ok := spec.Lifespan()
			assert.Equal(t, tc.lifespanSet, ok)
			assert.Equal(t, tc.lifespan, d)
			assert.Equal(t, tc.radius, spec.Collider.Radius)
			assert.Equal(t, tc.speed, spec.Speed)
		})
	}
}

func TestLoadActorSpecs(t *testing.T) {
	actor, err := LoadActorSpec("actor.yaml")
	require.NoError(t, err)
	assert.True(t, actor.ReceivesImpulse)
	assert.Equal(t, 16.0, actor.Collider.Radius)
	assert.Nil(t, actor.Knockback)

	wall, err := LoadActorSpec("prefabs/wall.yaml")
	require.NoError(t, err)
	assert.False(t, wall.ReceivesImpulse)
	assert.True(t, wall.Collider.Static)
	assert.Equal(t, 64.0, wall.Collider.Width)

	_, err = LoadActorSpec("missing.yaml")
	assert.Error(t, err)
}

func TestLoadPipelineSpec(t *testing.T) {
	spec, err := LoadPipelineSpec()
	require.NoError(t, err)
	assert.Equal(t, "moving", spec.ActiveState)
	assert.Equal(t, uint(20), spec.Iterations)
	assert.Equal(t, time.Second/60, spec.TickDuration())
	assert.Equal(t, time.Second/60, PipelineSpec{}.TickDuration())
	assert.Equal(t, 10*time.Millisecond, PipelineSpec{TickRate: 100}.TickDuration())
}

func TestLoadScenario(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte(`
name: duel
ticks: 30
actors:
  - prefab: actor.yaml
    x: 10
    y: 20
projectiles:
  - prefab: projectile.yaml
    vx: 100
    children:
      - prefab: trail
pauses:
  - from: 5
    to: 10
`), 0o644))

	spec, err := LoadScenario(good)
	require.NoError(t, err)
	assert.Equal(t, "duel", spec.Name)
	assert.Equal(t, 30, spec.Ticks)
	require.Len(t, spec.Actors, 1)
	assert.Equal(t, 20.0, spec.Actors[0].Y)
	require.Len(t, spec.Projectiles, 1)
	assert.Equal(t, 100.0, spec.Projectiles[0].VX)
	assert.Equal(t, []ScenarioSpawn{{Prefab: "trail"}}, spec.Projectiles[0].Children)
	assert.Equal(t, []PauseWindow{{From: 5, To: 10}}, spec.Pauses)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("name: empty\n"), 0o644))
	_, err = LoadScenario(bad)
	assert.Error(t, err)

	_, err = LoadScenario(filepath.Join(dir, "nope.yaml"))
	assert.Error(t, err)
}

func TestCleanPrefabPath(t *testing.T) {
	assert.Equal(t, "", cleanPrefabPath(""))
	assert.Equal(t, "actor.yaml", cleanPrefabPath("prefabs/actor.yaml"))
	assert.Equal(t, "actor.yaml", cleanPrefabPath("actor.yaml"))
}

func floatPtr(v float64) *float64 { return &v }
