package system

import (
	"github.com/milk9111/starcatch/ecs"
	"github.com/milk9111/starcatch/ecs/component"
	"github.com/milk9111/starcatch/ecs/entity"
)

// Simulation is the part of the physics world the state machine drives.
type Simulation interface {
	Pause()
	Resume()
	Paused() bool
}

// GameStateController runs the Playing -> GameOver -> Playing cycle.
type GameStateController struct {
	sim         Simulation
	progression *ProgressionController

	// OnPhaseChange is called after every transition with the progression
	// of the phase being entered. A restart reports the fresh run.
	OnPhaseChange func(from, to component.Phase, prog component.Progression)
}

func NewGameStateController(sim Simulation, progression *ProgressionController) *GameStateController {
	if sim == nil || progression == nil {
		panic("game state system: needs a simulation and a progression controller")
	}
	return &GameStateController{sim: sim, progression: progression}
}

// HitHazard is the player/hazard overlap handler. It ends the run once;
// further hits while the game is over do nothing.
func (g *GameStateController) HitHazard(w *ecs.World, player, _ ecs.Entity) {
	if g == nil || w == nil {
		return
	}
	prog, state := mustSession(w)
	if state.Phase != component.PhasePlaying {
		return
	}

	g.sim.Pause()
	mustGet(w, player, component.PlayerComponent.Kind()).Tinted = true
	if anim, ok := ecs.Get(w, player, component.AnimationComponent.Kind()); ok {
		playAnimation(anim, component.AnimTurn)
	}
	g.setPhase(state, component.PhaseGameOver, *prog)
}

// Restart starts a fresh run from level 1 without rebuilding the scene.
func (g *GameStateController) Restart(w *ecs.World) {
	if g == nil || w == nil {
		return
	}
	prog, state := mustSession(w)
	if state.Phase != component.PhaseGameOver {
		return
	}

	g.progression.DestroyHazards(w)
	g.progression.SetLevel(w, 1)
	entity.ResetPlayer(w, mustPlayer(w))
	g.progression.RespawnCollectibles(w)
	g.progression.ResetScore(w, 0)
	g.sim.Resume()
	g.setPhase(state, component.PhasePlaying, *prog)
}

func (g *GameStateController) setPhase(state *component.GameState, to component.Phase, prog component.Progression) {
	from := state.Phase
	state.Phase = to
	if g.OnPhaseChange != nil {
		g.OnPhaseChange(from, to, prog)
	}
}
