package system

import (
	"github.com/milk9111/starcatch/ecs"
	"github.com/milk9111/starcatch/ecs/component"
)

// The scene always has exactly one player and one session entity. Losing
// either means the world was torn down underneath the rules, so the lookups
// below panic rather than let a frame run on half a scene.

func mustPlayer(w *ecs.World) ecs.Entity {
	e, ok := ecs.First(w, component.PlayerComponent.Kind())
	if !ok {
		panic("rules: no player in world")
	}
	return e
}

func mustGet[T any](w *ecs.World, e ecs.Entity, kind component.ComponentKind[T]) *T {
	v, ok := ecs.Get(w, e, kind)
	if !ok {
		panic("rules: entity " + e.String() + " has no " + kind.String())
	}
	return v
}

func mustBody(w *ecs.World, e ecs.Entity) component.Body {
	pb := mustGet(w, e, component.PhysicsBodyComponent.Kind())
	if pb.Body == nil {
		panic("rules: entity " + e.String() + " has a nil body")
	}
	return pb.Body
}

func mustSession(w *ecs.World) (*component.Progression, *component.GameState) {
	e, ok := ecs.First(w, component.SessionTagComponent.Kind())
	if !ok {
		panic("rules: no session in world")
	}
	return mustGet(w, e, component.ProgressionComponent.Kind()), mustGet(w, e, component.GameStateComponent.Kind())
}

func setOverlayText(w *ecs.World, role component.OverlayRole, text string) {
	found := false
	ecs.ForEach(w, component.TextOverlayComponent.Kind(), func(_ ecs.Entity, o *component.TextOverlay) {
		if o.Role == role {
			o.Text = text
			found = true
		}
	})
	if !found {
		panic("rules: no text overlay for role")
	}
}

// ActiveCollectibles counts stars still in play.
func ActiveCollectibles(w *ecs.World) int {
	n := 0
	ecs.ForEach(w, component.CollectibleComponent.Kind(), func(_ ecs.Entity, c *component.Collectible) {
		if c.Active {
			n++
		}
	})
	return n
}

// HazardCount counts bombs in the world.
func HazardCount(w *ecs.World) int {
	return ecs.Count(w, component.HazardComponent.Kind())
}
