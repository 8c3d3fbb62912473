package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/starcatch/common"
	"github.com/milk9111/starcatch/ecs"
	"github.com/milk9111/starcatch/ecs/component"
	"github.com/milk9111/starcatch/ecs/system"
	"github.com/milk9111/starcatch/prefabs"
)

// Renderer draws the scene with flat shapes: sky, platforms, stars, bombs
// and the player, in that order.
type Renderer struct {
	palette prefabs.PaletteSpec
	width   int
	height  int
}

func NewRenderer(t *prefabs.Tuning) *Renderer {
	return &Renderer{palette: t.Palette, width: t.Screen.Width, height: t.Screen.Height}
}

// SetPalette switches colors. Cached images are rebuilt on the next draw.
func (r *Renderer) SetPalette(p prefabs.PaletteSpec) {
	if r == nil {
		return
	}
	r.palette = p
	ClearImages()
}

func (r *Renderer) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	screen.DrawImage(imageFor("sky", r.buildSky), nil)

	ecs.ForEach2(w, component.PlatformComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(_ ecs.Entity, _ *component.Platform, pb *component.PhysicsBody) {
		x, y := pb.Body.Position()
		s := pb.Spec
		vector.FillRect(screen, float32(x-s.Width/2), float32(y-s.Height/2), float32(s.Width), float32(s.Height), r.palette.Platform, false)
	})

	ecs.ForEach2(w, component.CollectibleComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, c *component.Collectible, t *component.Transform) {
		if !c.Active {
			return
		}
		r.drawCentered(screen, imageFor("star", r.buildStar), t.X, t.Y, nil)
	})

	ecs.ForEach2(w, component.HazardComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, _ *component.Hazard, t *component.Transform) {
		r.drawCentered(screen, imageFor("bomb", r.buildBomb), t.X, t.Y, nil)
	})

	ecs.ForEach3(w, component.PlayerComponent.Kind(), component.TransformComponent.Kind(), component.AnimationComponent.Kind(), func(_ ecs.Entity, p *component.Player, t *component.Transform, anim *component.Animation) {
		img := r.PlayerFrame(system.SheetFrame(anim))
		var tint color.Color
		if p.Tinted {
			tint = r.palette.Tint
		}
		r.drawCentered(screen, img, t.X, t.Y, tint)
	})
}

// PlayerFrame returns the image for one cell of the player's sheet.
func (r *Renderer) PlayerFrame(frame int) *ebiten.Image {
	return imageFor(fmt.Sprintf("player:%d", frame), func() *ebiten.Image { return r.buildPlayerFrame(frame) })
}

func (r *Renderer) drawCentered(screen, img *ebiten.Image, x, y float64, tint color.Color) {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x-float64(b.Dx())/2, y-float64(b.Dy())/2)
	if tint != nil {
		op.ColorScale.ScaleWithColor(tint)
	}
	screen.DrawImage(img, op)
}

func (r *Renderer) buildSky() *ebiten.Image {
	img := ebiten.NewImage(r.width, r.height)
	top := toNRGBA(r.palette.SkyTop)
	bottom := toNRGBA(r.palette.SkyBottom)
	for y := 0; y < r.height; y++ {
		t := float32(y) / float32(max(r.height-1, 1))
		c := color.NRGBA{
			R: uint8(common.Lerp(float32(top.R), float32(bottom.R), t)),
			G: uint8(common.Lerp(float32(top.G), float32(bottom.G), t)),
			B: uint8(common.Lerp(float32(top.B), float32(bottom.B), t)),
			A: 0xff,
		}
		vector.FillRect(img, 0, float32(y), float32(r.width), 1, c, false)
	}
	return img
}

func (r *Renderer) buildStar() *ebiten.Image {
	const size = 24
	img := ebiten.NewImage(size, size)
	c := r.palette.Star
	vector.StrokeLine(img, size/2, 1, size/2, size-1, 3, c, true)
	vector.StrokeLine(img, 1, size/2, size-1, size/2, 3, c, true)
	vector.StrokeLine(img, 5, 5, size-5, size-5, 2, c, true)
	vector.StrokeLine(img, size-5, 5, 5, size-5, 2, c, true)
	vector.DrawFilledCircle(img, size/2, size/2, 5, c, true)
	return img
}

func (r *Renderer) buildBomb() *ebiten.Image {
	const size = 14
	img := ebiten.NewImage(size, size)
	vector.DrawFilledCircle(img, size/2, size/2, size/2, r.palette.Bomb, true)
	vector.DrawFilledCircle(img, size/2-2, size/2-2, 2, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x90}, true)
	return img
}

// buildPlayerFrame draws one cell of the player's sheet: frames 0-3 face
// left, 4 faces the camera, 5-8 face right. Walking frames shift the legs.
func (r *Renderer) buildPlayerFrame(frame int) *ebiten.Image {
	const w, h = 32, 48
	img := ebiten.NewImage(w, h)
	body := r.palette.Player
	eye := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	vector.FillRect(img, 6, 4, 20, 30, body, false)

	stride := float32(frame%2) * 4
	vector.FillRect(img, 8, 34, 6, 14-stride, body, false)
	vector.FillRect(img, 18, 34, 6, 10+stride, body, false)

	switch {
	case frame < 4:
		vector.FillRect(img, 8, 10, 5, 5, eye, false)
	case frame == 4:
		vector.FillRect(img, 9, 10, 5, 5, eye, false)
		vector.FillRect(img, 18, 10, 5, 5, eye, false)
	default:
		vector.FillRect(img, 19, 10, 5, 5, eye, false)
	}
	return img
}

func toNRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
