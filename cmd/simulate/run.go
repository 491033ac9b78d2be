package main

import (
	"context"
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/twinstick/ecs"
	"github.com/milk9111/twinstick/ecs/entity"
	"github.com/milk9111/twinstick/ecs/system"
	"github.com/milk9111/twinstick/prefabs"
	"go.uber.org/zap"
)

const statePaused ecs.State = "paused"

// Result summarises one headless run.
type Result struct {
	Name  string
	Ticks int
	Stats system.CombatStats
	// Alive is the number of entities left after the final tick.
	Alive int
}

// Run plays a scenario in its own world for scenario.Ticks fixed steps.
func Run(ctx context.Context, scenario *prefabs.ScenarioSpec, pipeline *prefabs.PipelineSpec, logger *zap.Logger) (Result, error) {
	active := ecs.State(pipeline.ActiveState)
	if active == "" {
		active = ecs.StateAlwaysActive
	}

	w := ecs.NewWorld()
	w.SetState(active)

	physics := system.NewPhysicsSystem(
		system.WithLogger(logger),
		system.WithGravity(cp.Vector{X: pipeline.Gravity.X, Y: pipeline.Gravity.Y}),
		system.WithIterations(pipeline.Iterations),
	)
	stats := system.NewCombatStatsSystem()
	s := ecs.NewScheduler()
	s.Add(ecs.RunIf(ecs.InState(active), physics))
	system.InstallProjectilePipeline(s, system.PipelineConfig{ActiveState: active, Logger: logger})
	s.Add(stats)

	if err := spawnScenario(w, scenario); err != nil {
		return Result{}, err
	}

	dt := pipeline.TickDuration()
	for tick := 0; tick < scenario.Ticks; tick++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		if pausedAt(scenario.Pauses, tick) {
			w.SetState(statePaused)
		} else {
			w.SetState(active)
		}
		s.Tick(w, dt)
	}

	logger.Debug("scenario done", zap.Int("bodies", physics.BodyCount()))
	return Result{
		Name:  scenario.Name,
		Ticks: scenario.Ticks,
		Stats: stats.Stats(),
		Alive: len(w.Entities()),
	}, nil
}

func pausedAt(windows []prefabs.PauseWindow, tick int) bool {
	for _, p := range windows {
		if tick >= p.From && tick < p.To {
			return true
		}
	}
	return false
}

func spawnScenario(w *ecs.World, scenario *prefabs.ScenarioSpec) error {
	for _, a := range scenario.Actors {
		spec, err := prefabs.LoadActorSpec(a.Prefab)
		if err != nil {
			return err
		}
		e, err := entity.NewActor(w, spec, cp.Vector{X: a.X, Y: a.Y})
		if err != nil {
			return fmt.Errorf("actor %s: %w", a.Prefab, err)
		}
		if err := attachChildren(w, e, a.Children); err != nil {
			return err
		}
	}
	for _, p := range scenario.Projectiles {
		spec, err := prefabs.LoadProjectileSpec(p.Prefab)
		if err != nil {
			return err
		}
		e, err := entity.NewProjectile(w, spec, cp.Vector{X: p.X, Y: p.Y}, cp.Vector{X: p.VX, Y: p.VY})
		if err != nil {
			return fmt.Errorf("projectile %s: %w", p.Prefab, err)
		}
		if err := attachChildren(w, e, p.Children); err != nil {
			return err
		}
	}
	return nil
}

func attachChildren(w *ecs.World, parent ecs.Entity, children []prefabs.ScenarioSpawn) error {
	for _, c := range children {
		child, err := entity.NewAttachment(w, parent, c.Prefab)
		if err != nil {
			return err
		}
		if err := attachChildren(w, child, c.Children); err != nil {
			return err
		}
	}
	return nil
}
