package system

import (
	"log"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/younwookim/charmove/internal/infrastructure/config"
)

// spaceIterations is the solver iteration count per step
const spaceIterations = 10

const (
	collisionTypeCharacter cp.CollisionType = iota + 1
	collisionTypeSolid
)

// ContactSink receives the surface normals touching the character during
// a physics step. It may be called several times per step.
type ContactSink interface {
	EvaluateCollision(normals []mgl64.Vec3)
}

// PhysicsSystem owns the Chipmunk space: static level segments and the
// character's dynamic circle body. Chipmunk is 2D, so the world's x/y
// plane maps to the space and z is always zero.
type PhysicsSystem struct {
	config *config.WorldConfig
	space  *cp.Space
	body   *cp.Body
	shape  *cp.Shape

	gravity mgl64.Vec3
	sink    ContactSink
	normals []mgl64.Vec3
}

// NewPhysicsSystem creates the space described by cfg
func NewPhysicsSystem(cfg *config.WorldConfig) *PhysicsSystem {
	space := cp.NewSpace()
	space.Iterations = spaceIterations
	space.SetGravity(cp.Vector{X: cfg.Physics.Gravity.X, Y: cfg.Physics.Gravity.Y})

	ps := &PhysicsSystem{
		config:  cfg,
		space:   space,
		gravity: mgl64.Vec3{cfg.Physics.Gravity.X, cfg.Physics.Gravity.Y, 0},
	}
	ps.buildSegments()
	ps.buildCharacter()
	ps.setupHandlers()
	return ps
}

// SetContactSink sets where contact normals are delivered
func (ps *PhysicsSystem) SetContactSink(sink ContactSink) {
	ps.sink = sink
}

// Body returns the character body adapted to the controller's Body interface
func (ps *PhysicsSystem) Body() *CharacterBody {
	return &CharacterBody{body: ps.body}
}

// Gravity returns the space gravity as a world vector
func (ps *PhysicsSystem) Gravity() mgl64.Vec3 {
	return ps.gravity
}

// Position returns the character's position
func (ps *PhysicsSystem) Position() mgl64.Vec3 {
	p := ps.body.Position()
	return mgl64.Vec3{p.X, p.Y, 0}
}

// Segments returns the static level geometry
func (ps *PhysicsSystem) Segments() []config.SegmentConfig {
	return ps.config.Segments
}

// Radius returns the character's collision radius
func (ps *PhysicsSystem) Radius() float64 {
	return ps.config.Character.Radius
}

// Step advances the space by dt. Contacts found during the step are
// forwarded to the sink before Step returns. It reports whether the
// character fell below KillY and was put back at the spawn point.
func (ps *PhysicsSystem) Step(dt float64) bool {
	ps.space.Step(dt)

	if ps.body.Position().Y < ps.config.Character.KillY {
		log.Printf("PhysicsSystem: character fell below %.1f, respawning", ps.config.Character.KillY)
		ps.Respawn()
		return true
	}
	return false
}

// Respawn puts the character back at the spawn point at rest
func (ps *PhysicsSystem) Respawn() {
	spawn := ps.config.Character.Spawn
	ps.body.SetPosition(cp.Vector{X: spawn.X, Y: spawn.Y})
	ps.body.SetVelocityVector(cp.Vector{})
	ps.body.SetAngularVelocity(0)
}

func (ps *PhysicsSystem) buildSegments() {
	for _, seg := range ps.config.Segments {
		a := cp.Vector{X: seg.A.X, Y: seg.A.Y}
		b := cp.Vector{X: seg.B.X, Y: seg.B.Y}
		shape := ps.space.AddShape(cp.NewSegment(ps.space.StaticBody, a, b, seg.Radius))
		shape.SetFriction(seg.Friction)
		shape.SetElasticity(0)
		shape.SetCollisionType(collisionTypeSolid)
	}
}

func (ps *PhysicsSystem) buildCharacter() {
	c := ps.config.Character
	mass := c.Mass
	if mass <= 0 {
		mass = 1
	}
	moment := cp.MomentForCircle(mass, 0, c.Radius, cp.Vector{})

	ps.body = ps.space.AddBody(cp.NewBody(mass, moment))
	ps.body.SetPosition(cp.Vector{X: c.Spawn.X, Y: c.Spawn.Y})

	ps.shape = ps.space.AddShape(cp.NewCircle(ps.body, c.Radius, cp.Vector{}))
	ps.shape.SetFriction(c.Friction)
	ps.shape.SetElasticity(0)
	ps.shape.SetCollisionType(collisionTypeCharacter)
}

func (ps *PhysicsSystem) setupHandlers() {
	handler := ps.space.NewCollisionHandler(collisionTypeCharacter, collisionTypeSolid)
	handler.UserData = ps
	handler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		world, ok := userData.(*PhysicsSystem)
		if !ok || world == nil || world.sink == nil {
			return true
		}
		world.sink.EvaluateCollision(world.contactNormals(arb))
		return true
	}
}

// contactNormals returns one surface normal per contact point, pointing
// from the surface toward the character
func (ps *PhysicsSystem) contactNormals(arb *cp.Arbiter) []mgl64.Vec3 {
	set := arb.ContactPointSet()
	// the arbiter normal points from shape A to shape B
	n := set.Normal.Neg()
	shapeA, _ := arb.Shapes()
	if shapeA != ps.shape {
		n = n.Neg()
	}

	ps.normals = ps.normals[:0]
	for i := 0; i < set.Count; i++ {
		ps.normals = append(ps.normals, mgl64.Vec3{n.X, n.Y, 0})
	}
	return ps.normals
}

// CharacterBody adapts a Chipmunk body to the controller's Body interface.
// The z component of a written velocity is dropped.
type CharacterBody struct {
	body *cp.Body
}

// Velocity returns the body's linear velocity
func (b *CharacterBody) Velocity() mgl64.Vec3 {
	v := b.body.Velocity()
	return mgl64.Vec3{v.X, v.Y, 0}
}

// SetVelocity overwrites the body's linear velocity
func (b *CharacterBody) SetVelocity(v mgl64.Vec3) {
	b.body.SetVelocity(v.X(), v.Y())
}
