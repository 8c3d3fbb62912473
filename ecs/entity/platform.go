package entity

import (
	"github.com/milk9111/starcatch/ecs"
	"github.com/milk9111/starcatch/ecs/component"
	"github.com/milk9111/starcatch/prefabs"
)

// NewPlatform creates a static ledge. Width and height are scaled by
// spec.Scale before the body is made, so the collider matches what is drawn.
func NewPlatform(w *ecs.World, bodies BodyFactory, spec prefabs.PlatformSpec, ground bool) ecs.Entity {
	e := ecs.CreateEntity(w)
	bs := component.BodySpec{
		Kind:   component.BodyKindPlatform,
		Shape:  component.BodyShapeBox,
		X:      spec.X,
		Y:      spec.Y,
		Width:  spec.Width * spec.Scale,
		Height: spec.Height * spec.Scale,
		Bounce: 1,
		Static: true,
	}
	ecs.MustAdd(w, e, component.PlatformComponent.Kind(), &component.Platform{Scale: spec.Scale, Ground: ground})
	ecs.MustAdd(w, e, component.TransformComponent.Kind(), &component.Transform{X: spec.X, Y: spec.Y, ScaleX: spec.Scale, ScaleY: spec.Scale})
	ecs.MustAdd(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Body: bodies.NewBody(e, bs), Spec: bs})
	return e
}
