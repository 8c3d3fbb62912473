package component

// Player animation names.
const (
	AnimLeft  = "left"
	AnimRight = "right"
	AnimTurn  = "turn"
)

type AnimationDef struct {
	Name       string
	FirstFrame int
	FrameCount int
	FPS        float64
	Loop       bool
}

type Animation struct {
	Defs       map[string]AnimationDef
	Current    string
	Frame      int
	FrameTimer int
	Playing    bool
}

var AnimationComponent = NewComponent[Animation]()
