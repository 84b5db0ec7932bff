package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveIntent(t *testing.T) {
	intent := MoveIntent{Axis: mgl64.Vec2{0.5, -1}}

	// Test that it implements Intent interface
	var i Intent = intent
	i.isIntent() // Should not panic

	assert.Equal(t, mgl64.Vec2{0.5, -1}, intent.Axis)
}

func TestJumpIntent(t *testing.T) {
	var i Intent = JumpIntent{}
	i.isIntent() // Should not panic
}

func TestIntentsFromFrame(t *testing.T) {
	t.Run("idle still produces a move", func(t *testing.T) {
		intents := IntentsFromFrame(mgl64.Vec2{}, false)

		require.Len(t, intents, 1)
		assert.Equal(t, MoveIntent{}, intents[0])
	})

	t.Run("jump follows the move", func(t *testing.T) {
		intents := IntentsFromFrame(mgl64.Vec2{1, 0}, true)

		require.Len(t, intents, 2)
		assert.Equal(t, MoveIntent{Axis: mgl64.Vec2{1, 0}}, intents[0])
		assert.IsType(t, JumpIntent{}, intents[1])
	})
}
