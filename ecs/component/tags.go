package component

// SessionTag marks the entity carrying Progression and GameState.
type SessionTag struct{}

var SessionTagComponent = NewComponent[SessionTag]()
