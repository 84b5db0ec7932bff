package entity

import "github.com/go-gl/mathgl/mgl64"

// Body is the dynamic rigid body a movement controller drives.
// The physics engine owns it; the controller reads its velocity at the
// start of a step and overwrites it at the end.
type Body interface {
	Velocity() mgl64.Vec3
	SetVelocity(v mgl64.Vec3)
}

// GravitySource exposes the engine's global gravity vector.
type GravitySource interface {
	Gravity() mgl64.Vec3
}

// RigidBody is a point body with no collision response or integration.
// It satisfies Body and GravitySource so the controller can be stepped
// without a physics engine, as its unit tests do.
type RigidBody struct {
	position mgl64.Vec3
	velocity mgl64.Vec3
	gravity  mgl64.Vec3
}

// NewRigidBody creates a body at position pulled by gravity.
func NewRigidBody(position, gravity mgl64.Vec3) *RigidBody {
	return &RigidBody{
		position: position,
		gravity:  gravity,
	}
}

// Position returns the body's position
func (b *RigidBody) Position() mgl64.Vec3 {
	return b.position
}

// Velocity returns the body's linear velocity
func (b *RigidBody) Velocity() mgl64.Vec3 {
	return b.velocity
}

// SetVelocity overwrites the body's linear velocity
func (b *RigidBody) SetVelocity(v mgl64.Vec3) {
	b.velocity = v
}

// Gravity returns the gravity the body reports to the controller
func (b *RigidBody) Gravity() mgl64.Vec3 {
	return b.gravity
}
