package prefabs

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type TransformSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Rotation float64 `yaml:"rotation"`
}

type ColliderSpec struct {
	Radius     float64 `yaml:"radius"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Mass       float64 `yaml:"mass"`
	Density    float64 `yaml:"density"`
	Friction   float64 `yaml:"friction"`
	Elasticity float64 `yaml:"elasticity"`
	Static     bool    `yaml:"static"`
	Sensor     bool    `yaml:"sensor"`
}

// ProjectileSpec describes a projectile prefab. Knockback and LifespanMS are
// pointers because leaving them out means something different from zero: no
// knockback at all, and the default lifespan.
type ProjectileSpec struct {
	Name       string       `yaml:"name"`
	OnHit      string       `yaml:"on_hit"`
	OnImpact   string       `yaml:"on_impact"`
	Knockback  *float64     `yaml:"knockback"`
	LifespanMS *int64       `yaml:"lifespan_ms"`
	Speed      float64      `yaml:"speed"`
	Collider   ColliderSpec `yaml:"collider"`
}

// Lifespan returns the configured lifespan and whether one was set.
func (s ProjectileSpec) Lifespan() (time.Duration, bool) {
	if s.LifespanMS == nil {
		return 0, false
	}
	return time.Duration(*s.LifespanMS) * time.Millisecond, true
}

type ActorSpec struct {
	Name string `yaml:"name"`
	// ReceivesImpulse gives the actor an impulse accumulator so knockback can
	// move it.
	ReceivesImpulse bool         `yaml:"receives_impulse"`
	Health          float64      `yaml:"health"`
	Speed           float64      `yaml:"speed"`
	Knockback       *float64     `yaml:"knockback"`
	Collider        ColliderSpec `yaml:"collider"`
}

type GravitySpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type PipelineSpec struct {
	ActiveState string      `yaml:"active_state"`
	TickRate    int         `yaml:"tick_rate"`
	Iterations  uint        `yaml:"iterations"`
	Gravity     GravitySpec `yaml:"gravity"`
	LogLevel    string      `yaml:"log_level"`
}

// TickDuration is the fixed step implied by TickRate, 60 Hz when unset.
func (s PipelineSpec) TickDuration() time.Duration {
	if s.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(s.TickRate)
}

// ScenarioSpawn places one prefab instance. Children are spawned at the same
// position and parented to it.
type ScenarioSpawn struct {
	Prefab   string          `yaml:"prefab"`
	X        float64         `yaml:"x"`
	Y        float64         `yaml:"y"`
	VX       float64         `yaml:"vx"`
	VY       float64         `yaml:"vy"`
	Children []ScenarioSpawn `yaml:"children"`
}

// PauseWindow holds the control state inactive for ticks [From, To).
type PauseWindow struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
}

type ScenarioSpec struct {
	Name        string          `yaml:"name"`
	Ticks       int             `yaml:"ticks"`
	Actors      []ScenarioSpawn `yaml:"actors"`
	Projectiles []ScenarioSpawn `yaml:"projectiles"`
	Pauses      []PauseWindow   `yaml:"pauses"`
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

func LoadProjectileSpec(name string) (*ProjectileSpec, error) {
	spec, err := LoadSpec[ProjectileSpec](name)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

func LoadActorSpec(name string) (*ActorSpec, error) {
	spec, err := LoadSpec[ActorSpec](name)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

func LoadPipelineSpec() (*PipelineSpec, error) {
	spec, err := LoadSpec[PipelineSpec]("pipeline.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// LoadScenario reads a scenario from an arbitrary path on disk.
func LoadScenario(path string) (*ScenarioSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("prefabs: read scenario %s: %w", path, err)
	}
	var spec ScenarioSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal scenario %s: %w", path, err)
	}
	if spec.Ticks <= 0 {
		return nil, fmt.Errorf("prefabs: scenario %s: ticks must be positive", path)
	}
	return &spec, nil
}
