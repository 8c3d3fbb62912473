package system

import (
	"testing"

	"github.com/milk9111/starcatch/ecs"
	"github.com/milk9111/starcatch/ecs/component"
)

func testAnimation() *component.Animation {
	return &component.Animation{
		Defs: map[string]component.AnimationDef{
			component.AnimLeft:  {Name: component.AnimLeft, FirstFrame: 0, FrameCount: 4, FPS: 10, Loop: true},
			component.AnimTurn:  {Name: component.AnimTurn, FirstFrame: 4, FrameCount: 1, FPS: 20},
			component.AnimRight: {Name: component.AnimRight, FirstFrame: 5, FrameCount: 4, FPS: 10, Loop: true},
		},
		Current: component.AnimTurn,
	}
}

func TestAnimationAdvances(t *testing.T) {
	cases := []struct {
		name      string
		anim      string
		ticks     int
		wantFrame int
		wantSheet int
	}{
		{"left_first_frame", component.AnimLeft, 5, 0, 0},
		{"left_second_frame", component.AnimLeft, 6, 1, 1},
		{"left_wraps", component.AnimLeft, 24, 0, 0},
		{"right_third_frame", component.AnimRight, 13, 2, 7},
		{"turn_holds", component.AnimTurn, 30, 0, 4},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e := ecs.CreateEntity(w)
			anim := testAnimation()
			ecs.MustAdd(w, e, component.AnimationComponent.Kind(), anim)

			playAnimation(anim, c.anim)
			sys := NewAnimationSystem(60)
			for range c.ticks {
				sys.Update(w)
			}
			if anim.Frame != c.wantFrame {
				t.Fatalf("frame = %d, want %d", anim.Frame, c.wantFrame)
			}
			if got := SheetFrame(anim); got != c.wantSheet {
				t.Fatalf("sheet frame = %d, want %d", got, c.wantSheet)
			}
		})
	}
}

func TestPlayAnimationKeepsRunningLoop(t *testing.T) {
	anim := testAnimation()
	playAnimation(anim, component.AnimLeft)
	anim.Frame = 2
	anim.FrameTimer = 3

	playAnimation(anim, component.AnimLeft)
	if anim.Frame != 2 || anim.FrameTimer != 3 {
		t.Fatalf("replaying a running loop restarted it: frame %d timer %d", anim.Frame, anim.FrameTimer)
	}

	playAnimation(anim, component.AnimTurn)
	if anim.Current != component.AnimTurn || anim.Frame != 0 || anim.Playing {
		t.Fatalf("turn = %+v, want a stopped single frame", *anim)
	}
}
