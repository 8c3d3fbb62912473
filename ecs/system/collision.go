package system

import (
	"github.com/milk9111/starcatch/ecs"
	"github.com/milk9111/starcatch/ecs/component"
)

// OverlapFunc handles one overlap. a has the pair's first kind.
type OverlapFunc func(w *ecs.World, a, b ecs.Entity)

// CollisionSystem is the registered-pair table. It runs after the physics
// step and dispatches the step's overlaps in registration order.
type CollisionSystem struct {
	physics  *PhysicsSystem
	handlers map[int]OverlapFunc
}

func NewCollisionSystem(physics *PhysicsSystem) *CollisionSystem {
	return &CollisionSystem{physics: physics, handlers: make(map[int]OverlapFunc)}
}

// Collide registers a solid pair. Resolution is left entirely to physics.
func (c *CollisionSystem) Collide(a, b component.BodyKind) {
	c.physics.Collide(a, b)
}

// Overlap registers a non-solid pair and its handler.
func (c *CollisionSystem) Overlap(a, b component.BodyKind, fn OverlapFunc) {
	c.handlers[c.physics.Overlap(a, b)] = fn
}

func (c *CollisionSystem) Update(w *ecs.World) {
	if c == nil || w == nil {
		return
	}
	for _, ov := range c.physics.DrainOverlaps() {
		fn := c.handlers[ov.Pair]
		if fn == nil || !ecs.IsAlive(w, ov.A) || !ecs.IsAlive(w, ov.B) {
			continue
		}
		fn(w, ov.A, ov.B)
	}
}

// RegisterCollisionRules declares the game's pairs once, at scene setup.
// Order matters: within a frame, collects resolve before a hazard hit.
func RegisterCollisionRules(c *CollisionSystem, progression *ProgressionController, state *GameStateController) {
	c.Collide(component.BodyKindPlayer, component.BodyKindPlatform)
	c.Collide(component.BodyKindCollectible, component.BodyKindPlatform)
	c.Collide(component.BodyKindHazard, component.BodyKindPlatform)
	c.Overlap(component.BodyKindPlayer, component.BodyKindCollectible, progression.Collect)
	c.Overlap(component.BodyKindPlayer, component.BodyKindHazard, state.HitHazard)
}
