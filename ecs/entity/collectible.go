package entity

import (
	"github.com/milk9111/starcatch/ecs"
	"github.com/milk9111/starcatch/ecs/component"
	"github.com/milk9111/starcatch/prefabs"
)

// NewCollectible creates star i of the row, active, at its column.
func NewCollectible(w *ecs.World, bodies BodyFactory, spec prefabs.CollectibleSpec, i int, bounce float64) ecs.Entity {
	e := ecs.CreateEntity(w)
	x := spec.StartX + float64(i)*spec.StepX
	bs := component.BodySpec{
		Kind:   component.BodyKindCollectible,
		Shape:  component.BodyShapeBox,
		X:      x,
		Y:      spec.Y,
		Width:  spec.Width,
		Height: spec.Height,
		Bounce: bounce,
	}
	ecs.MustAdd(w, e, component.CollectibleComponent.Kind(), &component.Collectible{
		Index:   i,
		ColumnX: x,
		RowY:    spec.Y,
		Bounce:  bounce,
		Active:  true,
	})
	ecs.MustAdd(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: spec.Y, ScaleX: 1, ScaleY: 1})
	ecs.MustAdd(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Body: bodies.NewBody(e, bs), Spec: bs})
	return e
}

// DeactivateCollectible takes the star out of the simulation and hides it.
// It reports false when the star was already inactive.
func DeactivateCollectible(w *ecs.World, e ecs.Entity) bool {
	c, pb := mustCollectible(w, e)
	if !c.Active {
		return false
	}
	c.Active = false
	pb.Body.Disable()
	return true
}

// ActivateCollectible moves the star back to its column, at rest, and puts it
// back into the simulation, whether or not it was active.
func ActivateCollectible(w *ecs.World, e ecs.Entity) {
	c, pb := mustCollectible(w, e)
	pb.Body.Disable()
	pb.Body.SetPosition(c.ColumnX, c.RowY)
	pb.Body.SetVelocity(0, 0)
	pb.Body.Enable()
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		t.X, t.Y = c.ColumnX, c.RowY
	}
	c.Active = true
}

func mustCollectible(w *ecs.World, e ecs.Entity) (*component.Collectible, *component.PhysicsBody) {
	c, ok := ecs.Get(w, e, component.CollectibleComponent.Kind())
	if !ok {
		panic("entity: " + e.String() + " is not a collectible")
	}
	pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if !ok || pb.Body == nil {
		panic("entity: collectible " + e.String() + " has no body")
	}
	return c, pb
}
