package system

import (
	"strings"

	"github.com/milk9111/starcatch/ecs"
	"github.com/milk9111/starcatch/ecs/component"
	"github.com/milk9111/starcatch/prefabs"
)

const (
	keyToggleHazards = "b"
	keyRestart       = "r"
)

// PlayerControllerSystem turns input into player velocity and animation, and
// key-down events into game commands.
type PlayerControllerSystem struct {
	tuning      *prefabs.Tuning
	progression *ProgressionController
	state       *GameStateController

	// OnToggleHazards is called after shift+b with the new enabled state.
	OnToggleHazards func(enabled bool)
}

func NewPlayerControllerSystem(tuning *prefabs.Tuning, progression *ProgressionController, state *GameStateController) *PlayerControllerSystem {
	if tuning == nil || progression == nil || state == nil {
		panic("player controller system: needs tuning, progression and game state")
	}
	return &PlayerControllerSystem{tuning: tuning, progression: progression, state: state}
}

func (p *PlayerControllerSystem) SetTuning(t *prefabs.Tuning) {
	if p == nil || t == nil {
		return
	}
	p.tuning = t
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if p == nil || w == nil {
		return
	}

	for _, ev := range w.Events().Drain() {
		if ev.Type != ecs.EventKeyDown {
			continue
		}
		key, ok := ev.Data.(component.KeyEvent)
		if !ok {
			continue
		}
		p.handleKey(w, key)
	}

	_, state := mustSession(w)
	if state.Phase != component.PhasePlaying {
		return
	}

	player := mustPlayer(w)
	input := mustGet(w, player, component.InputComponent.Kind())
	body := mustBody(w, player)
	anim, _ := ecs.Get(w, player, component.AnimationComponent.Kind())

	speed := p.tuning.Player.MoveSpeed
	switch {
	case input.Left:
		body.SetVelocityX(-speed)
		playAnimation(anim, component.AnimLeft)
	case input.Right:
		body.SetVelocityX(speed)
		playAnimation(anim, component.AnimRight)
	default:
		body.SetVelocityX(0)
		playAnimation(anim, component.AnimTurn)
	}

	if input.Up {
		body.SetVelocityY(-p.tuning.Player.JumpSpeed)
	}
}

func (p *PlayerControllerSystem) handleKey(w *ecs.World, key component.KeyEvent) {
	switch strings.ToLower(key.Key) {
	case keyToggleHazards:
		if !key.Shift {
			return
		}
		enabled := p.progression.ToggleHazards(w)
		if p.OnToggleHazards != nil {
			p.OnToggleHazards(enabled)
		}
	case keyRestart:
		_, state := mustSession(w)
		if state.Phase == component.PhaseGameOver {
			p.state.Restart(w)
		}
	}
}
