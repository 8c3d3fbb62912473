package render

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/starcatch/ecs"
	"github.com/milk9111/starcatch/ecs/component"
	"golang.org/x/image/font/basicfont"
)

// OverlayUI shows every TextOverlay entity as an ebitenui label.
type OverlayUI struct {
	ui     *ebitenui.UI
	root   *widget.Container
	face   ebtext.Face
	color  color.Color
	width  float64
	labels map[ecs.Entity]*widget.Text
}

func NewOverlayUI(width int, textColor color.Color) *OverlayUI {
	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	return &OverlayUI{
		ui:     &ebitenui.UI{Container: root},
		root:   root,
		face:   ebtext.NewGoXFace(basicfont.Face7x13),
		color:  textColor,
		width:  float64(width),
		labels: make(map[ecs.Entity]*widget.Text),
	}
}

// Update creates labels for new overlays and copies the current text into
// every label.
func (o *OverlayUI) Update(w *ecs.World) {
	if o == nil || w == nil {
		return
	}
	ecs.ForEach(w, component.TextOverlayComponent.Kind(), func(e ecs.Entity, t *component.TextOverlay) {
		label, ok := o.labels[e]
		if !ok {
			label = o.addLabel(t)
			o.labels[e] = label
		}
		label.Label = t.Text
	})
	o.ui.Update()
}

func (o *OverlayUI) Draw(screen *ebiten.Image) {
	if o == nil {
		return
	}
	o.ui.Draw(screen)
}

func (o *OverlayUI) addLabel(t *component.TextOverlay) *widget.Text {
	label := widget.NewText(widget.TextOpts.Text(t.Text, &o.face, o.color))

	insets := &widget.Insets{Top: int(t.Y), Left: int(t.X)}
	anchor := widget.AnchorLayoutPositionStart
	if t.Align == "right" {
		insets = &widget.Insets{Top: int(t.Y), Right: int(o.width - t.X)}
		anchor = widget.AnchorLayoutPositionEnd
	}

	box := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(widget.RowLayoutOpts.Padding(insets))),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: anchor,
			VerticalPosition:   widget.AnchorLayoutPositionStart,
		})),
	)
	box.AddChild(label)
	o.root.AddChild(box)
	return label
}
