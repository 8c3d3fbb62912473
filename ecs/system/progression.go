package system

import (
	"math/rand/v2"

	"github.com/milk9111/starcatch/ecs"
	"github.com/milk9111/starcatch/ecs/component"
	"github.com/milk9111/starcatch/ecs/entity"
	"github.com/milk9111/starcatch/prefabs"
)

// ProgressionController owns score, level and the hazard population.
type ProgressionController struct {
	bodies entity.BodyFactory
	tuning *prefabs.Tuning
	rng    *rand.Rand

	// OnLevelUp is called after the level changes, if set.
	OnLevelUp func(level int)
}

func NewProgressionController(bodies entity.BodyFactory, tuning *prefabs.Tuning, rng *rand.Rand) *ProgressionController {
	if bodies == nil || tuning == nil || rng == nil {
		panic("progression system: needs a body factory, tuning and rng")
	}
	return &ProgressionController{bodies: bodies, tuning: tuning, rng: rng}
}

// SetTuning swaps the live-tunable values used from now on.
func (p *ProgressionController) SetTuning(t *prefabs.Tuning) {
	if p == nil || t == nil {
		return
	}
	p.tuning = t
}

// Collect is the player/collectible overlap handler.
func (p *ProgressionController) Collect(w *ecs.World, player, star ecs.Entity) {
	if p == nil || w == nil {
		return
	}
	if !entity.DeactivateCollectible(w, star) {
		return
	}
	p.OnCollect(w)
}

// OnCollect scores one star and, when it was the last active one, advances
// the level, brings the whole set back and drops a bomb.
func (p *ProgressionController) OnCollect(w *ecs.World) {
	prog, state := mustSession(w)
	p.ResetScore(w, prog.Score+p.tuning.Collectibles.Score)

	if ActiveCollectibles(w) != 0 {
		return
	}
	p.LevelUp(w, prog.Level+1)
	p.RespawnCollectibles(w)
	if state.HazardsEnabled {
		p.SpawnOneHazard(w)
	}
}

func (p *ProgressionController) LevelUp(w *ecs.World, level int) {
	p.SetLevel(w, level)
	if p.OnLevelUp != nil {
		p.OnLevelUp(level)
	}
}

// SetLevel sets the level and its overlay without announcing a level-up.
func (p *ProgressionController) SetLevel(w *ecs.World, level int) {
	prog, _ := mustSession(w)
	prog.Level = level
	setOverlayText(w, component.OverlayLevel, entity.LevelText(level))
}

// RespawnCollectibles reactivates every star at its column.
func (p *ProgressionController) RespawnCollectibles(w *ecs.World) {
	for _, e := range ecs.Query(w, component.CollectibleComponent.Kind()) {
		entity.ActivateCollectible(w, e)
	}
}

// SpawnOneHazard drops one bomb on the half of the screen away from the
// player.
func (p *ProgressionController) SpawnOneHazard(w *ecs.World) ecs.Entity {
	h := p.tuning.Hazards
	px, _ := mustBody(w, mustPlayer(w)).Position()

	var x int
	if px < float64(h.SplitX) {
		x = p.between(h.SplitX, h.MaxX)
	} else {
		x = p.between(h.MinX, h.SplitX)
	}
	vx := p.between(h.VelocityXMin, h.VelocityXMax)

	prog, _ := mustSession(w)
	return entity.NewHazard(w, p.bodies, h, float64(x), float64(vx), prog.Level)
}

// between draws an integer uniformly from [lo, hi].
func (p *ProgressionController) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + p.rng.IntN(hi-lo+1)
}

// ToggleHazards flips whether bombs are in play. Turning them off clears
// every bomb; turning them back on drops one per level.
func (p *ProgressionController) ToggleHazards(w *ecs.World) bool {
	prog, state := mustSession(w)
	state.HazardsEnabled = !state.HazardsEnabled
	if !state.HazardsEnabled {
		p.DestroyHazards(w)
		return false
	}
	for range prog.Level {
		p.SpawnOneHazard(w)
	}
	return true
}

func (p *ProgressionController) DestroyHazards(w *ecs.World) {
	for _, e := range ecs.Query(w, component.HazardComponent.Kind()) {
		entity.DestroyHazard(w, e)
	}
}

func (p *ProgressionController) ResetScore(w *ecs.World, score int) {
	prog, _ := mustSession(w)
	prog.Score = score
	p.UpdateScoreDisplay(w)
}

func (p *ProgressionController) UpdateScoreDisplay(w *ecs.World) {
	prog, _ := mustSession(w)
	setOverlayText(w, component.OverlayScore, entity.ScoreText(prog.Score))
}
