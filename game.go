package main

import (
	"math/rand/v2"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/starcatch/ecs"
	"github.com/milk9111/starcatch/ecs/component"
	"github.com/milk9111/starcatch/ecs/entity"
	"github.com/milk9111/starcatch/ecs/render"
	"github.com/milk9111/starcatch/ecs/system"
	"github.com/milk9111/starcatch/prefabs"
	"github.com/milk9111/starcatch/storage"
)

type GameOptions struct {
	Tuning         *prefabs.Tuning
	TuningPath     string
	Seed           uint64
	HazardsEnabled bool
	// Store and Watcher are optional.
	Store   *storage.Store
	Watcher *prefabs.Watcher
	Logger  *log.Logger
}

type Game struct {
	logger *log.Logger
	world  *ecs.World
	scene  *entity.Scene

	tuning     *prefabs.Tuning
	tuningPath string
	seed       uint64
	width      int
	height     int

	scheduler   *ecs.Scheduler
	progression *system.ProgressionController
	controller  *system.PlayerControllerSystem
	renderer    *render.Renderer
	overlay     *render.OverlayUI

	watcher *prefabs.Watcher
	store   *storage.Store
}

func NewGame(opts GameOptions) *Game {
	t := opts.Tuning
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	w := ecs.NewWorld()

	physics := system.NewPhysicsSystem(float64(t.Screen.Width), float64(t.Screen.Height), t.Physics.Gravity, t.Physics.TPS)
	collisions := system.NewCollisionSystem(physics)
	progression := system.NewProgressionController(physics, t, rng)
	state := system.NewGameStateController(physics, progression)
	controller := system.NewPlayerControllerSystem(t, progression, state)
	system.RegisterCollisionRules(collisions, progression, state)

	g := &Game{
		logger:      logger,
		world:       w,
		scene:       entity.BuildScene(w, physics, t, rng, opts.HazardsEnabled),
		tuning:      t,
		tuningPath:  opts.TuningPath,
		seed:        opts.Seed,
		width:       t.Screen.Width,
		height:      t.Screen.Height,
		progression: progression,
		controller:  controller,
		renderer:    render.NewRenderer(t),
		overlay:     render.NewOverlayUI(t.Screen.Width, t.Palette.Text),
		watcher:     opts.Watcher,
		store:       opts.Store,
	}

	progression.OnLevelUp = func(level int) {
		logger.Debug("level", "level", level)
	}
	controller.OnToggleHazards = func(enabled bool) {
		logger.Info("hazards toggled", "enabled", enabled)
	}
	state.OnPhaseChange = g.onPhaseChange

	g.scheduler = ecs.NewScheduler(
		system.NewInputSystem(render.NewKeyboard()),
		controller,
		physics,
		collisions,
		system.NewAnimationSystem(t.Physics.TPS),
	)
	return g
}

func (g *Game) Update() error {
	g.pollTuning()
	g.scheduler.Update(g.world)
	g.overlay.Update(g.world)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(g.world, screen)
	g.overlay.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func (g *Game) onPhaseChange(from, to component.Phase, prog component.Progression) {
	g.logger.Info("phase", "from", from, "to", to, "score", prog.Score, "level", prog.Level)
	if to != component.PhaseGameOver || g.store == nil {
		return
	}
	if _, err := g.store.RecordRun(prog.Score, prog.Level, g.seed); err != nil {
		g.logger.Warn("could not record run", "error", err)
	}
}

// pollTuning drains the watcher without blocking the frame.
func (g *Game) pollTuning() {
	for g.watcher != nil {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if filepath.Base(name) == g.tuningFile() {
				g.reloadTuning()
			}
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			g.logger.Warn("tuning watcher", "error", err)
		default:
			return
		}
	}
}

func (g *Game) tuningFile() string {
	if g.tuningPath != "" {
		return filepath.Base(g.tuningPath)
	}
	return prefabs.TuningFile
}

// reloadTuning applies speeds, scoring, bomb spawning and colors from the
// edited file. Layout changes wait for the next start.
func (g *Game) reloadTuning() {
	t, err := prefabs.LoadTuning(g.tuningPath)
	if err != nil {
		g.logger.Warn("tuning reload failed, keeping previous values", "error", err)
		return
	}
	g.tuning = t
	g.progression.SetTuning(t)
	g.controller.SetTuning(t)
	g.renderer.SetPalette(t.Palette)
	g.logger.Info("tuning reloaded", "move_speed", t.Player.MoveSpeed, "jump_speed", t.Player.JumpSpeed)
}
