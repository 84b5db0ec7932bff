package system

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/charmove/internal/application/state"
	"github.com/younwookim/charmove/internal/domain/entity"
	"github.com/younwookim/charmove/internal/infrastructure/config"
)

var (
	// ErrNoBody is returned when a movement system is built without a body
	ErrNoBody = errors.New("movement: no body attached")
	// ErrNoGravity is returned when a movement system is built without a gravity source
	ErrNoGravity = errors.New("movement: no gravity source attached")
)

// MovementSystem turns player intent into the velocity of a dynamic body.
//
// It runs on two rates. The input tick (Apply, Sample) only writes the
// desired velocity and the jump latch. The physics tick (FixedStep) runs
// the whole step pipeline and is the only writer of the body's velocity.
// Contacts reach it through EvaluateCollision between steps.
type MovementSystem struct {
	config  config.MovementConfig
	body    entity.Body
	gravity entity.GravitySource
	space   *entity.InputSpace

	minGroundDotProduct float64

	contacts ContactAccumulator
	motion   entity.MotionState
	phase    state.StepPhase
	grounded bool // result of the last UpdateState

	// OnPhase, if set, is called as the step pipeline enters each phase
	OnPhase func(state.StepPhase)
}

// NewMovementSystem creates a movement system driving body.
// cfg is clamped into range.
func NewMovementSystem(cfg config.MovementConfig, body entity.Body, gravity entity.GravitySource) (*MovementSystem, error) {
	if body == nil {
		return nil, ErrNoBody
	}
	if gravity == nil {
		return nil, ErrNoGravity
	}
	s := &MovementSystem{
		config:  cfg.Clamp(),
		body:    body,
		gravity: gravity,
		phase:   state.PhaseAccumulate,
	}
	s.RecomputeDerived()
	return s, nil
}

// Config returns the active movement config
func (s *MovementSystem) Config() config.MovementConfig {
	return s.config
}

// SetConfig replaces the movement config and recomputes derived values.
// Call it between steps, never from inside FixedStep.
func (s *MovementSystem) SetConfig(cfg config.MovementConfig) {
	s.config = cfg.Clamp()
	s.RecomputeDerived()
}

// RecomputeDerived refreshes values computed from the config
func (s *MovementSystem) RecomputeDerived() {
	s.minGroundDotProduct = math.Cos(s.config.MaxGroundAngle * math.Pi / 180)
}

// MinGroundDotProduct is the smallest up-component a contact normal may
// have and still count as ground
func (s *MovementSystem) MinGroundDotProduct() float64 {
	return s.minGroundDotProduct
}

// SetInputSpace sets the frame the input axis is read in. nil means world axes.
func (s *MovementSystem) SetInputSpace(space *entity.InputSpace) {
	s.space = space
}

// State returns a snapshot of the motion state
func (s *MovementSystem) State() entity.MotionState {
	m := s.motion
	m.GroundContactCount = s.contacts.Count
	return m
}

// Phase returns the pipeline phase the system is in
func (s *MovementSystem) Phase() state.StepPhase {
	return s.phase
}

// OnGround reports whether the last resolved step found ground
func (s *MovementSystem) OnGround() bool {
	return s.grounded
}

// Apply feeds intents from the input tick
func (s *MovementSystem) Apply(intents ...Intent) {
	for _, in := range intents {
		switch in := in.(type) {
		case MoveIntent:
			s.setDesiredVelocity(in.Axis)
		case JumpIntent:
			// latched until a physics step consumes it
			s.motion.DesiredJump = true
		}
	}
}

// Sample applies one input frame
func (s *MovementSystem) Sample(frame entity.InputFrame) {
	s.Apply(IntentsFromFrame(frame.Axis, frame.JumpPressed)...)
}

func (s *MovementSystem) setDesiredVelocity(axis mgl64.Vec2) {
	axis = entity.ClampMagnitude(axis, 1)
	if s.space != nil {
		forward, right := s.space.Basis()
		s.motion.DesiredVelocity = forward.Mul(axis.Y()).Add(right.Mul(axis.X())).Mul(s.config.MaxSpeed)
		return
	}
	s.motion.DesiredVelocity = mgl64.Vec3{axis.X(), 0, axis.Y()}.Mul(s.config.MaxSpeed)
}

// EvaluateCollision accumulates contact normals reported by the engine.
// It may be called any number of times before the next FixedStep.
func (s *MovementSystem) EvaluateCollision(normals []mgl64.Vec3) {
	s.contacts.Evaluate(normals, s.minGroundDotProduct)
}

// FixedStep runs one physics step: update state, adjust velocity,
// resolve a pending jump, commit to the body and clear the accumulator.
// Each stage is entered with StepPhase.Next, ending back at PhaseAccumulate.
func (s *MovementSystem) FixedStep(dt float64) {
	s.phase = state.PhaseAccumulate

	s.advance() // UpdateState
	s.updateState()

	s.advance() // AdjustVelocity
	s.adjustVelocity(dt)

	s.advance() // ResolveJump
	if s.motion.DesiredJump {
		s.motion.DesiredJump = false
		s.jump()
	}

	s.advance() // Commit
	s.body.SetVelocity(s.motion.Velocity)

	s.advance() // Clear
	s.clearState()

	s.advance() // Accumulate
}

func (s *MovementSystem) advance() {
	s.phase = s.phase.Next()
	if s.OnPhase != nil {
		s.OnPhase(s.phase)
	}
}

func (s *MovementSystem) updateState() {
	s.motion.Velocity = s.body.Velocity()
	s.motion.GroundContactCount = s.contacts.Count
	s.motion.ContactNormal = s.contacts.Normal
	s.grounded = s.motion.OnGround()
	if s.grounded {
		s.motion.JumpPhase = 0
		// a single contact is used as reported, without normalizing
		if s.motion.GroundContactCount > 1 {
			s.motion.ContactNormal = entity.Normalized(s.motion.ContactNormal)
		}
	} else {
		s.motion.ContactNormal = entity.Up
	}
}

func (s *MovementSystem) adjustVelocity(dt float64) {
	xAxis := entity.Normalized(entity.ProjectOnPlane(entity.Right, s.motion.ContactNormal))
	zAxis := entity.Normalized(entity.ProjectOnPlane(entity.Forward, s.motion.ContactNormal))

	currentX := s.motion.Velocity.Dot(xAxis)
	currentZ := s.motion.Velocity.Dot(zAxis)

	acceleration := s.config.MaxAirAcceleration
	if s.motion.OnGround() {
		acceleration = s.config.MaxGroundAcceleration
	}
	maxSpeedChange := acceleration * dt

	newX := entity.MoveTowards(currentX, s.motion.DesiredVelocity.X(), maxSpeedChange)
	newZ := entity.MoveTowards(currentZ, s.motion.DesiredVelocity.Z(), maxSpeedChange)

	s.motion.Velocity = s.motion.Velocity.
		Add(xAxis.Mul(newX - currentX)).
		Add(zAxis.Mul(newZ - currentZ))
}

// jump launches along the contact normal. The ground jump is always
// allowed; in the air only MaxAirJumps more are. A refused jump is a no-op.
func (s *MovementSystem) jump() {
	if !s.motion.OnGround() && s.motion.JumpPhase >= s.config.MaxAirJumps {
		return
	}
	s.motion.JumpPhase++

	gravityY := s.gravity.Gravity().Y()
	jumpSpeed := math.Sqrt(math.Max(-2*gravityY*s.config.JumpHeight, 0))
	alignedSpeed := s.motion.Velocity.Dot(s.motion.ContactNormal)
	if alignedSpeed > 0 {
		jumpSpeed = math.Max(jumpSpeed-alignedSpeed, 0)
	}
	s.motion.Velocity = s.motion.Velocity.Add(s.motion.ContactNormal.Mul(jumpSpeed))
}

func (s *MovementSystem) clearState() {
	s.contacts.Reset()
	s.motion.GroundContactCount = 0
	s.motion.ContactNormal = mgl64.Vec3{}
}
