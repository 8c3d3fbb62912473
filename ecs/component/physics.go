package component

// BodyKind is the collision role of a body. The collision rules pair kinds,
// never individual bodies.
type BodyKind int

const (
	BodyKindNone BodyKind = iota
	BodyKindPlayer
	BodyKindPlatform
	BodyKindCollectible
	BodyKindHazard
	BodyKindBounds
)

func (k BodyKind) String() string {
	switch k {
	case BodyKindPlayer:
		return "player"
	case BodyKindPlatform:
		return "platform"
	case BodyKindCollectible:
		return "collectible"
	case BodyKindHazard:
		return "hazard"
	case BodyKindBounds:
		return "bounds"
	default:
		return "none"
	}
}

// BodyShape selects the collider geometry.
type BodyShape int

const (
	BodyShapeBox BodyShape = iota
	BodyShapeCircle
)

// BodySpec describes a body to create. X and Y are the body center.
type BodySpec struct {
	Kind               BodyKind
	Shape              BodyShape
	X                  float64
	Y                  float64
	Width              float64
	Height             float64
	Radius             float64
	Bounce             float64
	Static             bool
	CollideWorldBounds bool
}

// Body is the capability an entity gets over its simulated body. The
// simulation owns the body; entities only hold this handle.
type Body interface {
	Position() (x, y float64)
	SetPosition(x, y float64)
	Velocity() (vx, vy float64)
	SetVelocity(vx, vy float64)
	SetVelocityX(vx float64)
	SetVelocityY(vy float64)
	// Enable puts the body back into the simulation; Disable takes it out
	// without destroying it.
	Enable()
	Disable()
	Enabled() bool
	// Remove destroys the body. The handle is unusable afterwards.
	Remove()
}

// PhysicsBody links an entity to its simulated body.
type PhysicsBody struct {
	Body Body
	Spec BodySpec
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
