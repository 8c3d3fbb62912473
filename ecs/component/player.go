package component

// Player holds the domain state of the single player character.
type Player struct {
	SpawnX float64
	SpawnY float64
	// Tinted is set when a hazard strikes the player and cleared on restart.
	Tinted bool
}

var PlayerComponent = NewComponent[Player]()
