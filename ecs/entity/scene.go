package entity

import (
	"math/rand/v2"

	"github.com/milk9111/starcatch/ecs"
	"github.com/milk9111/starcatch/ecs/component"
	"github.com/milk9111/starcatch/prefabs"
)

// BodyFactory creates simulated bodies for entities.
type BodyFactory interface {
	NewBody(e ecs.Entity, spec component.BodySpec) component.Body
}

// Scene holds the handles of everything built at scene start. Every field is
// set by BuildScene; hazards come and go and are queried from the world.
type Scene struct {
	Session      ecs.Entity
	Player       ecs.Entity
	Platforms    []ecs.Entity
	Collectibles []ecs.Entity
	ScoreText    ecs.Entity
	LevelText    ecs.Entity
}

// BuildScene creates the session, overlays, platforms, player and
// collectibles in that order.
func BuildScene(w *ecs.World, bodies BodyFactory, t *prefabs.Tuning, rng *rand.Rand, hazardsEnabled bool) *Scene {
	if w == nil || bodies == nil || t == nil || rng == nil {
		panic("entity: BuildScene needs a world, body factory, tuning and rng")
	}

	s := &Scene{}
	s.Session = NewSession(w, hazardsEnabled)
	s.ScoreText = NewTextOverlay(w, component.OverlayScore, t.Overlays["score"], ScoreText(0))
	s.LevelText = NewTextOverlay(w, component.OverlayLevel, t.Overlays["level"], LevelText(1))

	for i, p := range t.Platforms {
		s.Platforms = append(s.Platforms, NewPlatform(w, bodies, p, i == 0))
	}

	s.Player = NewPlayer(w, bodies, t)

	c := t.Collectibles
	for i := 0; i < c.Count; i++ {
		bounce := c.BounceMin + rng.Float64()*(c.BounceMax-c.BounceMin)
		s.Collectibles = append(s.Collectibles, NewCollectible(w, bodies, c, i, bounce))
	}
	return s
}

// NewSession creates the entity carrying progression and game state.
func NewSession(w *ecs.World, hazardsEnabled bool) ecs.Entity {
	e := ecs.CreateEntity(w)
	ecs.MustAdd(w, e, component.SessionTagComponent.Kind(), &component.SessionTag{})
	ecs.MustAdd(w, e, component.ProgressionComponent.Kind(), &component.Progression{Level: 1, Score: 0})
	ecs.MustAdd(w, e, component.GameStateComponent.Kind(), &component.GameState{
		Phase:          component.PhasePlaying,
		HazardsEnabled: hazardsEnabled,
	})
	return e
}
