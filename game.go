package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/twinstick/common"
	"github.com/milk9111/twinstick/ecs"
	"github.com/milk9111/twinstick/ecs/component"
	"github.com/milk9111/twinstick/ecs/entity"
	"github.com/milk9111/twinstick/ecs/system"
	"github.com/milk9111/twinstick/prefabs"
	"go.uber.org/zap"
	"golang.org/x/image/font/basicfont"
)

const (
	statePaused ecs.State = "paused"
	targetCount           = 8
	targetRing            = 260.0
)

var weaponFiles = []string{"projectile.yaml", "bouncer.yaml", "pellet.yaml"}

type Game struct {
	frames int
	quit   bool

	world     *ecs.World
	scheduler *ecs.Scheduler
	physics   *system.PhysicsSystem
	stats     *system.CombatStatsSystem

	pipeline *prefabs.PipelineSpec
	active   ecs.State
	player   ecs.Entity
	weapons  []*prefabs.ProjectileSpec
	weapon   int

	pauseUI *ebitenui.UI
	face    ebtext.Face
	watcher *prefabs.Watcher
	logger  *zap.Logger
}

func NewGame(pipeline *prefabs.PipelineSpec, logger *zap.Logger, watch bool) (*Game, error) {
	active := ecs.State(pipeline.ActiveState)
	if active == "" {
		active = ecs.StateAlwaysActive
	}

	g := &Game{
		pipeline: pipeline,
		active:   active,
		logger:   logger,
		face:     ebtext.NewGoXFace(basicfont.Face7x13),
	}
	if err := g.loadWeapons(); err != nil {
		return nil, err
	}
	if err := g.reset(); err != nil {
		return nil, err
	}
	g.pauseUI = NewPauseUI(g)

	if watch {
		w, err := prefabs.NewWatcher("prefabs")
		if err != nil {
			logger.Warn("prefab watcher disabled", zap.Error(err))
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

// reset builds a fresh world: the player in the middle, a ring of targets
// and a few static walls.
func (g *Game) reset() error {
	g.world = ecs.NewWorld()
	g.world.SetState(g.active)

	g.physics = system.NewPhysicsSystem(
		system.WithLogger(g.logger),
		system.WithGravity(cp.Vector{X: g.pipeline.Gravity.X, Y: g.pipeline.Gravity.Y}),
		system.WithIterations(g.pipeline.Iterations),
	)
	g.stats = system.NewCombatStatsSystem()

	g.scheduler = ecs.NewScheduler()
	g.scheduler.Add(ecs.RunIf(ecs.InState(g.active), g.physics))
	system.InstallProjectilePipeline(g.scheduler, system.PipelineConfig{ActiveState: g.active, Logger: g.logger})
	g.scheduler.Add(g.stats)

	actorSpec, err := prefabs.LoadActorSpec("actor.yaml")
	if err != nil {
		return err
	}
	wallSpec, err := prefabs.LoadActorSpec("wall.yaml")
	if err != nil {
		return err
	}

	center := cp.Vector{X: common.BaseWidth / 2, Y: common.BaseHeight / 2}
	g.player, err = entity.NewActor(g.world, actorSpec, center)
	if err != nil {
		return err
	}
	if err := ecs.Add(g.world, g.player, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return err
	}

	for i := 0; i < targetCount; i++ {
		angle := 2 * math.Pi * float64(i) / targetCount
		pos := center.Add(cp.ForAngle(angle).Mult(targetRing))
		if _, err := entity.NewActor(g.world, actorSpec, pos); err != nil {
			return err
		}
	}
	for _, pos := range []cp.Vector{{X: 160, Y: 160}, {X: common.BaseWidth - 160, Y: 160}, {X: 160, Y: common.BaseHeight - 160}, {X: common.BaseWidth - 160, Y: common.BaseHeight - 160}} {
		if _, err := entity.NewActor(g.world, wallSpec, pos); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) loadWeapons() error {
	weapons := make([]*prefabs.ProjectileSpec, 0, len(weaponFiles))
	for _, name := range weaponFiles {
		spec, err := prefabs.LoadProjectileSpec(name)
		if err != nil {
			return err
		}
		weapons = append(weapons, spec)
	}
	g.weapons = weapons
	if g.weapon >= len(g.weapons) {
		g.weapon = 0
	}
	return nil
}

func (g *Game) paused() bool {
	return g.world.State() != g.active
}

func (g *Game) setPaused(paused bool) {
	if paused {
		g.world.SetState(statePaused)
		return
	}
	g.world.SetState(g.active)
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.frames++
	g.drainPrefabChanges()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.setPaused(!g.paused())
	}
	if g.paused() {
		g.pauseUI.Update()
	} else {
		g.handleInput()
	}

	g.scheduler.Tick(g.world, g.pipeline.TickDuration())
	return nil
}

func (g *Game) drainPrefabChanges() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if err := g.loadWeapons(); err != nil {
				g.logger.Warn("prefab reload failed", zap.String("file", name), zap.Error(err))
				continue
			}
			g.logger.Info("prefabs reloaded", zap.String("file", name))
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.logger.Warn("prefab watcher", zap.Error(err))
		default:
			return
		}
	}
}

func (g *Game) handleInput() {
	for i := range g.weapons {
		if inpututil.IsKeyJustPressed(ebiten.Key1 + ebiten.Key(i)) {
			g.weapon = i
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.reset(); err != nil {
			g.logger.Error("reset", zap.Error(err))
		}
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	g.fire()
}

// fire launches the selected projectile from the edge of the player's body
// towards the cursor.
func (g *Game) fire() {
	playerPos, ok := ecs.Get(g.world, g.player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	mx, my := ebiten.CursorPosition()
	target := cp.Vector{X: float64(mx), Y: float64(my)}
	origin := playerPos.Position()

	dir := common.NormalizeOrZero(target.Sub(origin))
	if dir.X == 0 && dir.Y == 0 {
		return
	}
	spec := g.weapons[g.weapon]
	clearance := spec.Collider.Radius + 1
	if body, ok := ecs.Get(g.world, g.player, component.PhysicsBodyComponent.Kind()); ok {
		clearance += body.Radius
	}

	e, err := entity.FireProjectile(g.world, spec, origin.Add(dir.Mult(clearance)), target)
	if err != nil {
		g.logger.Warn("fire", zap.Error(err))
		return
	}
	if _, err := entity.NewAttachment(g.world, e, "trail"); err != nil {
		g.logger.Warn("attach trail", zap.Error(err))
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.NRGBA{R: 0xA9, G: 0xA9, B: 0xAF, A: 0xff})
	drawColliders(g.world, screen)

	stats := g.stats.Stats()
	hud := fmt.Sprintf("State: %s    Weapon [%d]: %s    FPS: %.1f\nEntities: %d    Bodies: %d\nImpacts: %d    Clashes: %d    Knockbacks: %d\nLMB fire  1-3 weapon  P pause  R reset",
		g.world.State(), g.weapon+1, g.weapons[g.weapon].Name, ebiten.ActualFPS(),
		len(g.world.Entities()), g.physics.BodyCount(),
		stats.Impacts, stats.Clashes, stats.Knockbacks)
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(10, 10)
	op.LineSpacing = 16
	op.ColorScale.ScaleWithColor(color.Black)
	ebtext.Draw(screen, hud, g.face, op)

	if g.paused() {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
