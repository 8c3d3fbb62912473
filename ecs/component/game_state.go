package component

type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

type GameState struct {
	Phase          Phase
	HazardsEnabled bool
}

var GameStateComponent = NewComponent[GameState]()
