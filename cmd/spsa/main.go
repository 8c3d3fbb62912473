// spsa previews the player's sprite sheet animations from the tuning file.
// Left and right arrows switch animation; space toggles the whole sheet.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/starcatch/ecs"
	"github.com/milk9111/starcatch/ecs/component"
	"github.com/milk9111/starcatch/ecs/render"
	"github.com/milk9111/starcatch/ecs/system"
	"github.com/milk9111/starcatch/prefabs"
)

const (
	previewSize = 512
	zoom        = 4
)

type previewGame struct {
	world     *ecs.World
	anims     *system.AnimationSystem
	renderer  *render.Renderer
	entity    ecs.Entity
	names     []string
	current   int
	showSheet bool
}

func (g *previewGame) animation() *component.Animation {
	anim, _ := ecs.Get(g.world, g.entity, component.AnimationComponent.Kind())
	return anim
}

func (g *previewGame) play(i int) {
	g.current = (i + len(g.names)) % len(g.names)
	anim := g.animation()
	def := anim.Defs[g.names[g.current]]
	anim.Current = def.Name
	anim.Frame = 0
	anim.FrameTimer = 0
	// Loop everything in the preview so single-shot clips stay visible.
	anim.Playing = def.FrameCount > 1
}

func (g *previewGame) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.play(g.current + 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.play(g.current - 1)
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.showSheet = !g.showSheet
	}
	anim := g.animation()
	g.anims.Update(g.world)
	if def := anim.Defs[anim.Current]; !anim.Playing && def.FrameCount > 1 {
		anim.Frame = 0
		anim.Playing = true
	}
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x20, 0x20, 0x20, 0xff})

	if g.showSheet {
		last := 0
		for _, def := range g.animation().Defs {
			last = max(last, def.FirstFrame+def.FrameCount)
		}
		for i := range last {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(2, 2)
			op.GeoM.Translate(float64(16+(i%6)*80), float64(40+(i/6)*110))
			screen.DrawImage(g.renderer.PlayerFrame(i), op)
		}
	} else {
		img := g.renderer.PlayerFrame(system.SheetFrame(g.animation()))
		b := img.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(zoom, zoom)
		op.GeoM.Translate(float64(previewSize-b.Dx()*zoom)/2, float64(previewSize-b.Dy()*zoom)/2)
		op.Filter = ebiten.FilterNearest
		screen.DrawImage(img, op)
	}

	anim := g.animation()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  frame %d  sheet %d", anim.Current, anim.Frame, system.SheetFrame(anim)))
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return previewSize, previewSize
}

func main() {
	tuningPath := flag.String("tuning", "", "tuning YAML to preview (default: prefabs/tuning.yaml)")
	flag.Parse()

	tuning, err := prefabs.LoadTuning(*tuningPath)
	if err != nil {
		log.Fatal("load tuning", "error", err)
	}

	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	defs := make(map[string]component.AnimationDef, len(tuning.Animations))
	names := make([]string, 0, len(tuning.Animations))
	for name, s := range tuning.Animations {
		defs[name] = component.AnimationDef{Name: name, FirstFrame: s.FirstFrame, FrameCount: s.FrameCount, FPS: s.FPS, Loop: s.Loop}
		names = append(names, name)
	}
	slices.SortFunc(names, func(a, b string) int { return defs[a].FirstFrame - defs[b].FirstFrame })
	ecs.MustAdd(w, e, component.AnimationComponent.Kind(), &component.Animation{Defs: defs})

	g := &previewGame{
		world:    w,
		anims:    system.NewAnimationSystem(tuning.Physics.TPS),
		renderer: render.NewRenderer(tuning),
		entity:   e,
		names:    names,
	}
	g.play(0)

	ebiten.SetWindowSize(previewSize, previewSize)
	ebiten.SetWindowTitle("Player Sheet Preview")
	ebiten.SetTPS(tuning.Physics.TPS)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal("run preview", "error", err)
	}
}
