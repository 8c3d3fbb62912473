package component

// Transform is the world-space center of an entity, mirrored from its body
// after every physics step.
type Transform struct {
	X      float64
	Y      float64
	ScaleX float64
	ScaleY float64
}

var TransformComponent = NewComponent[Transform]()
