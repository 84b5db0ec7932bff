package entity

import "github.com/go-gl/mathgl/mgl64"

// MotionState is the controller-owned state that persists across steps.
type MotionState struct {
	Velocity        mgl64.Vec3 // last velocity read from the body, adjusted during a step
	DesiredVelocity mgl64.Vec3 // written by the input tick only
	ContactNormal   mgl64.Vec3 // resolved ground normal, meaningful after UpdateState
	JumpPhase       int        // jumps used since last grounded

	GroundContactCount int  // valid only inside a step
	DesiredJump        bool // latched by input, cleared by the step that consumes it
}

// OnGround reports whether any ground contact was accumulated this step.
func (s MotionState) OnGround() bool {
	return s.GroundContactCount > 0
}

// InputFrame is one sample from the input device.
type InputFrame struct {
	Axis        mgl64.Vec2 // x: right, y: forward; components in [-1, 1]
	JumpPressed bool       // jump went down this frame
}

// InputSpace reinterprets the input axis relative to an arbitrary
// orientation (typically a camera) instead of the world axes.
type InputSpace struct {
	Forward mgl64.Vec3
	Right   mgl64.Vec3
}

// Basis returns Forward and Right projected flat onto the ground plane
// and normalized.
func (s *InputSpace) Basis() (forward, right mgl64.Vec3) {
	return Flatten(s.Forward), Flatten(s.Right)
}
