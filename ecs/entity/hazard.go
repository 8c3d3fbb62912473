package entity

import (
	"github.com/milk9111/starcatch/ecs"
	"github.com/milk9111/starcatch/ecs/component"
	"github.com/milk9111/starcatch/prefabs"
)

// NewHazard creates a bomb at (x, spec.SpawnY) moving at (vx, spec.VelocityY).
// Bombs always bounce off the world bounds.
func NewHazard(w *ecs.World, bodies BodyFactory, spec prefabs.HazardSpec, x, vx float64, level int) ecs.Entity {
	e := ecs.CreateEntity(w)
	bs := component.BodySpec{
		Kind:               component.BodyKindHazard,
		Shape:              component.BodyShapeCircle,
		X:                  x,
		Y:                  spec.SpawnY,
		Radius:             spec.Radius,
		Width:              spec.Radius * 2,
		Height:             spec.Radius * 2,
		Bounce:             spec.Bounce,
		CollideWorldBounds: true,
	}
	body := bodies.NewBody(e, bs)
	body.SetVelocity(vx, spec.VelocityY)
	ecs.MustAdd(w, e, component.HazardComponent.Kind(), &component.Hazard{Level: level})
	ecs.MustAdd(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: spec.SpawnY, ScaleX: 1, ScaleY: 1})
	ecs.MustAdd(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Body: body, Spec: bs})
	return e
}

// DestroyHazard removes the bomb's body from the simulation and the entity
// from the world.
func DestroyHazard(w *ecs.World, e ecs.Entity) {
	if pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && pb.Body != nil {
		pb.Body.Remove()
	}
	ecs.DestroyEntity(w, e)
}
