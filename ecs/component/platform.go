package component

// Platform is a static, immovable ledge. It never changes after creation.
type Platform struct {
	Scale  float64
	Ground bool
}

var PlatformComponent = NewComponent[Platform]()
