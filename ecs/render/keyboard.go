package render

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/starcatch/ecs/component"
)

// Keyboard samples ebiten's keyboard state for the input system.
type Keyboard struct {
	pressed []ebiten.Key
}

func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

func (k *Keyboard) Held() component.Input {
	return component.Input{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown),
	}
}

// KeyDowns reports the keys that went down this tick. Modifier keys are
// folded into the Shift flag rather than reported on their own.
func (k *Keyboard) KeyDowns() []component.KeyEvent {
	k.pressed = inpututil.AppendJustPressedKeys(k.pressed[:0])
	if len(k.pressed) == 0 {
		return nil
	}

	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	out := make([]component.KeyEvent, 0, len(k.pressed))
	for _, key := range k.pressed {
		switch key {
		case ebiten.KeyShift, ebiten.KeyShiftLeft, ebiten.KeyShiftRight:
			continue
		}
		out = append(out, component.KeyEvent{Key: strings.ToLower(key.String()), Shift: shift})
	}
	return out
}
