package system

import "github.com/go-gl/mathgl/mgl64"

// Intent is a request the input tick hands to the movement system.
// Intents only touch desired state; physics state is left to FixedStep.
type Intent interface {
	isIntent()
}

// MoveIntent asks to move along a 2D axis (x: right, y: forward)
type MoveIntent struct {
	Axis mgl64.Vec2
}

func (MoveIntent) isIntent() {}

// JumpIntent asks for a jump on the next physics step
type JumpIntent struct{}

func (JumpIntent) isIntent() {}

// IntentsFromFrame converts one input sample into intents.
// A MoveIntent is always produced so releasing the stick stops the character.
func IntentsFromFrame(axis mgl64.Vec2, jumpPressed bool) []Intent {
	intents := []Intent{MoveIntent{Axis: axis}}
	if jumpPressed {
		intents = append(intents, JumpIntent{})
	}
	return intents
}
