package entity

import (
	"fmt"

	"github.com/milk9111/starcatch/ecs"
	"github.com/milk9111/starcatch/ecs/component"
	"github.com/milk9111/starcatch/prefabs"
)

func ScoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

func LevelText(level int) string {
	return fmt.Sprintf("Level: %d", level)
}

func NewTextOverlay(w *ecs.World, role component.OverlayRole, spec prefabs.OverlaySpec, text string) ecs.Entity {
	e := ecs.CreateEntity(w)
	ecs.MustAdd(w, e, component.TextOverlayComponent.Kind(), &component.TextOverlay{
		Role:  role,
		Text:  text,
		X:     spec.X,
		Y:     spec.Y,
		Align: spec.Align,
	})
	return e
}
