package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/charmove/internal/domain/entity"
)

// stickDeadzone ignores analog stick noise around the center
const stickDeadzone = 0.15

// InputSystem samples keyboard and gamepad into input frames
type InputSystem struct {
	gamepads []ebiten.GamepadID
}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// KeyState holds the raw digital movement and jump keys for one frame
type KeyState struct {
	Left, Right, Back, Forward bool
	JumpPressed                bool
}

// GetInput reads the current input state.
// The left stick of the first standard gamepad overrides the keyboard
// axis when it is pushed past the deadzone.
func (s *InputSystem) GetInput() entity.InputFrame {
	keys := KeyState{
		Left:        ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:       ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Back:        ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Forward:     ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		JumpPressed: inpututil.IsKeyJustPressed(ebiten.KeySpace),
	}
	frame := FrameFromKeys(keys)

	s.gamepads = ebiten.AppendGamepadIDs(s.gamepads[:0])
	for _, id := range s.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		stick := mgl64.Vec2{
			ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal),
			// stick up is negative
			-ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical),
		}
		if stick.Len() > stickDeadzone {
			frame.Axis = entity.ClampMagnitude(stick, 1)
		}
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom) {
			frame.JumpPressed = true
		}
		break
	}

	return frame
}

// FrameFromKeys converts digital keys to an input frame with the axis
// clamped to the unit circle, so diagonals are no faster than straights.
func FrameFromKeys(keys KeyState) entity.InputFrame {
	var axis mgl64.Vec2
	if keys.Left {
		axis[0]--
	}
	if keys.Right {
		axis[0]++
	}
	if keys.Back {
		axis[1]--
	}
	if keys.Forward {
		axis[1]++
	}
	return entity.InputFrame{
		Axis:        entity.ClampMagnitude(axis, 1),
		JumpPressed: keys.JumpPressed,
	}
}
