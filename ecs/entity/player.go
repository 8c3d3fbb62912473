package entity

import (
	"github.com/milk9111/starcatch/ecs"
	"github.com/milk9111/starcatch/ecs/component"
	"github.com/milk9111/starcatch/prefabs"
)

// NewPlayer creates the player at its spawn point with input and animation
// state attached.
func NewPlayer(w *ecs.World, bodies BodyFactory, t *prefabs.Tuning) ecs.Entity {
	e := ecs.CreateEntity(w)
	p := t.Player
	bs := component.BodySpec{
		Kind:               component.BodyKindPlayer,
		Shape:              component.BodyShapeBox,
		X:                  p.Spawn.X,
		Y:                  p.Spawn.Y,
		Width:              p.Width,
		Height:             p.Height,
		Bounce:             p.Bounce,
		CollideWorldBounds: true,
	}
	ecs.MustAdd(w, e, component.PlayerComponent.Kind(), &component.Player{SpawnX: p.Spawn.X, SpawnY: p.Spawn.Y})
	ecs.MustAdd(w, e, component.InputComponent.Kind(), &component.Input{})
	ecs.MustAdd(w, e, component.TransformComponent.Kind(), &component.Transform{X: p.Spawn.X, Y: p.Spawn.Y, ScaleX: 1, ScaleY: 1})
	ecs.MustAdd(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Body: bodies.NewBody(e, bs), Spec: bs})
	ecs.MustAdd(w, e, component.AnimationComponent.Kind(), newPlayerAnimation(t.Animations))
	return e
}

func newPlayerAnimation(specs map[string]prefabs.AnimationSpec) *component.Animation {
	defs := make(map[string]component.AnimationDef, len(specs))
	for name, s := range specs {
		defs[name] = component.AnimationDef{
			Name:       name,
			FirstFrame: s.FirstFrame,
			FrameCount: s.FrameCount,
			FPS:        s.FPS,
			Loop:       s.Loop,
		}
	}
	return &component.Animation{Defs: defs, Current: component.AnimTurn}
}

// ResetPlayer puts the player back at its spawn point, at rest, untinted and
// with its animation stopped on the idle frame.
func ResetPlayer(w *ecs.World, e ecs.Entity) {
	player, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok {
		panic("entity: reset player: " + e.String() + " is not a player")
	}
	player.Tinted = false

	if pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
		pb.Body.SetPosition(player.SpawnX, player.SpawnY)
		pb.Body.SetVelocity(0, 0)
	}
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		t.X, t.Y = player.SpawnX, player.SpawnY
	}
	if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
		anim.Current = component.AnimTurn
		anim.Frame = 0
		anim.FrameTimer = 0
		anim.Playing = false
	}
}
