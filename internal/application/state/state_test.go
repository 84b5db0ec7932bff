package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameState_String(t *testing.T) {
	tests := []struct {
		state    GameState
		expected string
	}{
		{StatePlaying, "Playing"},
		{StatePaused, "Paused"},
		{StateReplayDone, "ReplayDone"},
		{GameState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestStepPhase_String(t *testing.T) {
	tests := []struct {
		phase    StepPhase
		expected string
	}{
		{PhaseAccumulate, "Accumulate"},
		{PhaseUpdateState, "UpdateState"},
		{PhaseAdjustVelocity, "AdjustVelocity"},
		{PhaseResolveJump, "ResolveJump"},
		{PhaseCommit, "Commit"},
		{PhaseClear, "Clear"},
		{StepPhase(42), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.phase.String())
		})
	}
}

func TestStepPhase_Next(t *testing.T) {
	// Walking Next from Accumulate visits every phase once and wraps
	var seen []StepPhase
	p := PhaseAccumulate
	for i := 0; i < 6; i++ {
		seen = append(seen, p)
		p = p.Next()
	}

	assert.Equal(t, []StepPhase{
		PhaseAccumulate,
		PhaseUpdateState,
		PhaseAdjustVelocity,
		PhaseResolveJump,
		PhaseCommit,
		PhaseClear,
	}, seen)
	assert.Equal(t, PhaseAccumulate, p)
	assert.Equal(t, PhaseAccumulate, StepPhase(-1).Next())
}
