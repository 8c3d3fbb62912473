package component

// Hazard marks a bomb. Level is the level at which it was spawned.
type Hazard struct {
	Level int
}

var HazardComponent = NewComponent[Hazard]()
