package system

import (
	"github.com/milk9111/starcatch/ecs"
	"github.com/milk9111/starcatch/ecs/component"
)

// KeyboardSource samples the keyboard once per frame.
type KeyboardSource interface {
	// Held reports the movement keys currently down.
	Held() component.Input
	// KeyDowns returns the keys pressed since the last frame, in order.
	KeyDowns() []component.KeyEvent
}

// InputSystem copies held keys into every Input component and queues each
// key-down as an event for the controller.
type InputSystem struct {
	source KeyboardSource
}

func NewInputSystem(source KeyboardSource) *InputSystem {
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || i.source == nil || w == nil {
		return
	}

	held := i.source.Held()
	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		*input = held
	})

	for _, key := range i.source.KeyDowns() {
		w.Events().Push(ecs.Event{Type: ecs.EventKeyDown, Data: key})
	}
}
