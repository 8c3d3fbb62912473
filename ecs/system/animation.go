package system

import (
	"github.com/milk9111/starcatch/ecs"
	"github.com/milk9111/starcatch/ecs/component"
)

// AnimationSystem advances playing animations by one tick.
type AnimationSystem struct {
	tps int
}

func NewAnimationSystem(tps int) *AnimationSystem {
	if tps <= 0 {
		tps = 60
	}
	return &AnimationSystem{tps: tps}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	if a == nil || w == nil {
		return
	}
	ecs.ForEach(w, component.AnimationComponent.Kind(), func(_ ecs.Entity, anim *component.Animation) {
		if !anim.Playing {
			return
		}
		def, ok := anim.Defs[anim.Current]
		if !ok || def.FrameCount <= 0 || def.FPS <= 0 {
			return
		}

		ticksPerFrame := int(float64(a.tps) / def.FPS)
		if ticksPerFrame < 1 {
			ticksPerFrame = 1
		}

		anim.FrameTimer++
		if anim.FrameTimer < ticksPerFrame {
			return
		}
		anim.FrameTimer = 0
		anim.Frame++
		if anim.Frame >= def.FrameCount {
			if def.Loop {
				anim.Frame = 0
			} else {
				anim.Frame = def.FrameCount - 1
				anim.Playing = false
			}
		}
	})
}

// playAnimation switches to name from its first frame. A looping animation
// that is already playing is left alone.
func playAnimation(anim *component.Animation, name string) {
	if anim == nil {
		return
	}
	def, ok := anim.Defs[name]
	if !ok {
		return
	}
	if anim.Current == name && (anim.Playing || !def.Loop) {
		return
	}
	anim.Current = name
	anim.Frame = 0
	anim.FrameTimer = 0
	anim.Playing = def.FrameCount > 1
}

// SheetFrame is the sprite sheet index of the animation's current frame.
func SheetFrame(anim *component.Animation) int {
	if anim == nil {
		return 0
	}
	def, ok := anim.Defs[anim.Current]
	if !ok {
		return 0
	}
	return def.FirstFrame + anim.Frame
}
