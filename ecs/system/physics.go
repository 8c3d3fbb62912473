package system

import (
	"cmp"
	"math"
	"slices"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/starcatch/ecs"
	"github.com/milk9111/starcatch/ecs/component"
)

// boundsThickness is how far the invisible world walls extend outside the
// screen, so fast bodies cannot tunnel through them in one step.
const boundsThickness = 64.0

// Overlap is one non-solid contact found during a physics step. A has the
// first kind of the registered pair and B the second.
type Overlap struct {
	Pair int
	A    ecs.Entity
	B    ecs.Entity
}

type pairRule struct {
	a       component.BodyKind
	b       component.BodyKind
	overlap bool
}

// PhysicsSystem owns the Chipmunk space. Bodies only collide or overlap when
// their kinds were paired with Collide or Overlap; every other pair passes
// through.
type PhysicsSystem struct {
	space  *cp.Space
	dt     float64
	paused bool

	width  float64
	height float64

	pairs   []pairRule
	bodies  map[ecs.Entity]*cpBody
	shapes  map[*cp.Shape]ecs.Entity
	pending []Overlap
}

// NewPhysicsSystem creates a space of the given size with walls on all four
// sides. tps is the number of steps per simulated second.
func NewPhysicsSystem(width, height, gravity float64, tps int) *PhysicsSystem {
	if tps <= 0 {
		tps = 60
	}
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: gravity})

	ps := &PhysicsSystem{
		space:  space,
		dt:     1.0 / float64(tps),
		width:  width,
		height: height,
		bodies: make(map[ecs.Entity]*cpBody),
		shapes: make(map[*cp.Shape]ecs.Entity),
	}
	ps.buildWorldBounds()
	return ps
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

// Pause freezes the simulation: Update stops stepping until Resume.
func (ps *PhysicsSystem) Pause() { ps.paused = true }

func (ps *PhysicsSystem) Resume() { ps.paused = false }

func (ps *PhysicsSystem) Paused() bool { return ps.paused }

// Collide makes bodies of kinds a and b block each other.
func (ps *PhysicsSystem) Collide(a, b component.BodyKind) int {
	return ps.registerPair(a, b, false)
}

// Overlap makes bodies of kinds a and b pass through each other while
// reporting the first contact through DrainOverlaps.
func (ps *PhysicsSystem) Overlap(a, b component.BodyKind) int {
	return ps.registerPair(a, b, true)
}

func (ps *PhysicsSystem) registerPair(a, b component.BodyKind, overlap bool) int {
	idx := len(ps.pairs)
	ps.pairs = append(ps.pairs, pairRule{a: a, b: b, overlap: overlap})

	if overlap {
		handler := ps.space.NewCollisionHandler(cp.CollisionType(a), cp.CollisionType(b))
		handler.UserData = ps
		handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
			sys, ok := userData.(*PhysicsSystem)
			if !ok || sys == nil {
				return false
			}
			sys.recordOverlap(idx, arb)
			return false
		}
		handler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
			return false
		}
	}

	for _, b := range ps.bodies {
		b.shape.SetFilter(ps.filterFor(b.spec))
	}
	return idx
}

func (ps *PhysicsSystem) recordOverlap(pair int, arb *cp.Arbiter) {
	shapeA, shapeB := arb.Shapes()
	ea, okA := ps.shapes[shapeA]
	eb, okB := ps.shapes[shapeB]
	if !okA || !okB {
		return
	}
	ba := ps.bodies[ea]
	if ba == nil || ps.bodies[eb] == nil {
		return
	}
	if ba.spec.Kind != ps.pairs[pair].a {
		ea, eb = eb, ea
	}
	ps.pending = append(ps.pending, Overlap{Pair: pair, A: ea, B: eb})
}

// DrainOverlaps returns the overlaps found since the last drain, ordered by
// pair registration and then by entity, and clears them.
func (ps *PhysicsSystem) DrainOverlaps() []Overlap {
	if ps == nil || len(ps.pending) == 0 {
		return nil
	}
	out := ps.pending
	ps.pending = nil
	slices.SortStableFunc(out, func(x, y Overlap) int {
		return cmp.Or(
			cmp.Compare(x.Pair, y.Pair),
			cmp.Compare(x.A, y.A),
			cmp.Compare(x.B, y.B),
		)
	})
	return out
}

func category(kind component.BodyKind) uint {
	return 1 << uint(kind)
}

func (ps *PhysicsSystem) filterFor(spec component.BodySpec) cp.ShapeFilter {
	var mask uint
	for _, p := range ps.pairs {
		if p.a == spec.Kind {
			mask |= category(p.b)
		}
		if p.b == spec.Kind {
			mask |= category(p.a)
		}
	}
	if spec.CollideWorldBounds {
		mask |= category(component.BodyKindBounds)
	}
	return cp.NewShapeFilter(cp.NO_GROUP, category(spec.Kind), mask)
}

func (ps *PhysicsSystem) buildWorldBounds() {
	w, h, t := ps.width, ps.height, boundsThickness
	walls := []cp.BB{
		{L: -t, B: -t, R: w + t, T: 0},
		{L: -t, B: h, R: w + t, T: h + t},
		{L: -t, B: 0, R: 0, T: h},
		{L: w, B: 0, R: w + t, T: h},
	}
	for _, bb := range walls {
		shape := cp.NewBox2(ps.space.StaticBody, bb, 0)
		shape.SetElasticity(1)
		shape.SetFriction(0)
		shape.SetCollisionType(cp.CollisionType(component.BodyKindBounds))
		shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, category(component.BodyKindBounds), cp.ALL_CATEGORIES))
		ps.space.AddShape(shape)
	}
}

// NewBody creates and enables a body for e.
func (ps *PhysicsSystem) NewBody(e ecs.Entity, spec component.BodySpec) component.Body {
	var body *cp.Body
	if spec.Static {
		body = cp.NewStaticBody()
	} else {
		body = cp.NewBody(1, math.Inf(1))
	}
	body.SetPosition(cp.Vector{X: spec.X, Y: spec.Y})

	var shape *cp.Shape
	switch spec.Shape {
	case component.BodyShapeCircle:
		shape = cp.NewCircle(body, spec.Radius, cp.Vector{})
	default:
		shape = cp.NewBox(body, spec.Width, spec.Height, 0)
	}
	shape.SetElasticity(spec.Bounce)
	shape.SetFriction(0)
	shape.SetCollisionType(cp.CollisionType(spec.Kind))
	shape.SetFilter(ps.filterFor(spec))

	b := &cpBody{ps: ps, entity: e, spec: spec, body: body, shape: shape}
	ps.bodies[e] = b
	ps.shapes[shape] = e
	b.Enable()
	return b
}

// Update steps the simulation once and mirrors body positions into
// transforms. It does nothing while paused.
func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil || ps.paused {
		return
	}
	ps.space.Step(ps.dt)
	ps.syncTransforms(w)
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, pb *component.PhysicsBody, t *component.Transform) {
		if pb.Body == nil || pb.Spec.Static || !pb.Body.Enabled() {
			return
		}
		t.X, t.Y = pb.Body.Position()
	})
}

// cpBody implements component.Body over a Chipmunk body with one shape.
type cpBody struct {
	ps      *PhysicsSystem
	entity  ecs.Entity
	spec    component.BodySpec
	body    *cp.Body
	shape   *cp.Shape
	enabled bool
	removed bool
}

func (b *cpBody) Position() (float64, float64) {
	p := b.body.Position()
	return p.X, p.Y
}

// SetPosition moves the body. A static body that is in the space is taken
// out and put back so its shape lands in the static index at the new spot.
func (b *cpBody) SetPosition(x, y float64) {
	if b.spec.Static && b.enabled {
		b.Disable()
		defer b.Enable()
	}
	b.body.SetPosition(cp.Vector{X: x, Y: y})
}

func (b *cpBody) Velocity() (float64, float64) {
	v := b.body.Velocity()
	return v.X, v.Y
}

func (b *cpBody) SetVelocity(vx, vy float64) {
	if b.spec.Static {
		return
	}
	b.body.SetVelocityVector(cp.Vector{X: vx, Y: vy})
}

func (b *cpBody) SetVelocityX(vx float64) {
	_, vy := b.Velocity()
	b.SetVelocity(vx, vy)
}

func (b *cpBody) SetVelocityY(vy float64) {
	vx, _ := b.Velocity()
	b.SetVelocity(vx, vy)
}

func (b *cpBody) Enable() {
	if b.enabled || b.removed {
		return
	}
	b.ps.space.AddBody(b.body)
	b.ps.space.AddShape(b.shape)
	b.enabled = true
}

func (b *cpBody) Disable() {
	if !b.enabled {
		return
	}
	b.ps.space.RemoveShape(b.shape)
	b.ps.space.RemoveBody(b.body)
	b.enabled = false
}

func (b *cpBody) Enabled() bool {
	return b.enabled
}

func (b *cpBody) Remove() {
	if b.removed {
		return
	}
	b.Disable()
	delete(b.ps.bodies, b.entity)
	delete(b.ps.shapes, b.shape)
	b.removed = true
}
