package state

// GameState represents the current state of the demo scene
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateReplayDone
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateReplayDone:
		return "ReplayDone"
	default:
		return "Unknown"
	}
}

// StepPhase is one stage of the fixed-step movement pipeline.
// A step always walks every phase in declaration order and returns to
// PhaseAccumulate; PhaseResolveJump does work only when a jump is latched.
type StepPhase int

const (
	PhaseAccumulate StepPhase = iota
	PhaseUpdateState
	PhaseAdjustVelocity
	PhaseResolveJump
	PhaseCommit
	PhaseClear
)

// String returns the string representation of the step phase
func (p StepPhase) String() string {
	switch p {
	case PhaseAccumulate:
		return "Accumulate"
	case PhaseUpdateState:
		return "UpdateState"
	case PhaseAdjustVelocity:
		return "AdjustVelocity"
	case PhaseResolveJump:
		return "ResolveJump"
	case PhaseCommit:
		return "Commit"
	case PhaseClear:
		return "Clear"
	default:
		return "Unknown"
	}
}

// Next returns the phase that follows p. PhaseClear wraps to PhaseAccumulate.
func (p StepPhase) Next() StepPhase {
	if p >= PhaseClear || p < PhaseAccumulate {
		return PhaseAccumulate
	}
	return p + 1
}
