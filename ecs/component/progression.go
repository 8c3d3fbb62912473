package component

type Progression struct {
	Level int
	Score int
}

var ProgressionComponent = NewComponent[Progression]()
