package system

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/charmove/internal/domain/entity"
	"github.com/younwookim/charmove/internal/infrastructure/config"
)

// createTestWorld is a long flat floor with the character dropped just above it
func createTestWorld() *config.WorldConfig {
	return &config.WorldConfig{
		Name:    "flat",
		Display: config.DisplayConfig{Framerate: 50},
		Physics: config.PhysicsSettings{Gravity: config.Vec2{X: 0, Y: -9.81}},
		Character: config.CharacterConfig{
			Radius:   0.5,
			Mass:     1,
			Friction: 0.6,
			Spawn:    config.Vec2{X: 0, Y: 1},
			KillY:    -5,
		},
		Segments: []config.SegmentConfig{
			{A: config.Vec2{X: -100, Y: 0}, B: config.Vec2{X: 100, Y: 0}, Radius: 0.05, Friction: 0.6},
		},
	}
}

// recordingSink keeps every batch delivered during the last step
type recordingSink struct {
	batches [][]mgl64.Vec3
}

func (s *recordingSink) EvaluateCollision(normals []mgl64.Vec3) {
	s.batches = append(s.batches, append([]mgl64.Vec3(nil), normals...))
}

func settle(ps *PhysicsSystem, steps int) {
	for i := 0; i < steps; i++ {
		ps.Step(testDT)
	}
}

func TestNewPhysicsSystem(t *testing.T) {
	cfg := createTestWorld()
	ps := NewPhysicsSystem(cfg)
	require.NotNil(t, ps)

	assert.Equal(t, mgl64.Vec3{0, -9.81, 0}, ps.Gravity())
	assert.Equal(t, mgl64.Vec3{0, 1, 0}, ps.Position())
	assert.Equal(t, 0.5, ps.Radius())
	assert.Len(t, ps.Segments(), 1)
	assert.Equal(t, mgl64.Vec3{}, ps.Body().Velocity())
}

func TestPhysicsSystem_Falls(t *testing.T) {
	cfg := createTestWorld()
	cfg.Character.Spawn = config.Vec2{X: 0, Y: 4}
	ps := NewPhysicsSystem(cfg)

	// position moves with the velocity from before the step
	ps.Step(testDT)
	assert.Less(t, ps.Body().Velocity().Y(), 0.0)
	assert.Equal(t, 4.0, ps.Position().Y())

	ps.Step(testDT)
	assert.Less(t, ps.Position().Y(), 4.0)
}

func TestPhysicsSystem_ReportsFloorContact(t *testing.T) {
	ps := NewPhysicsSystem(createTestWorld())
	sink := &recordingSink{}
	ps.SetContactSink(sink)

	settle(ps, 50)
	sink.batches = nil
	ps.Step(testDT)

	require.NotEmpty(t, sink.batches, "resting body keeps reporting its contact")
	for _, batch := range sink.batches {
		for _, n := range batch {
			assert.InDelta(t, 1.0, n.Y(), 1e-6, "floor normal points at the character")
			assert.InDelta(t, 0.0, n.X(), 1e-6)
			assert.Equal(t, 0.0, n.Z())
		}
	}
	assert.InDelta(t, 0.5, ps.Position().Y(), 0.1, "rests on the floor surface")
}

func TestPhysicsSystem_NoSinkIsSafe(t *testing.T) {
	ps := NewPhysicsSystem(createTestWorld())

	assert.NotPanics(t, func() { settle(ps, 20) })
}

func TestPhysicsSystem_Respawn(t *testing.T) {
	cfg := createTestWorld()
	cfg.Segments = nil
	ps := NewPhysicsSystem(cfg)

	// no floor: falls past killY and comes back to spawn
	respawned := false
	steps := 0
	for ; steps < 200 && !respawned; steps++ {
		respawned = ps.Step(testDT)
	}

	require.True(t, respawned)
	assert.Greater(t, steps, 1)
	assert.Equal(t, mgl64.Vec3{0, 1, 0}, ps.Position())
	assert.Equal(t, mgl64.Vec3{}, ps.Body().Velocity())

	assert.False(t, ps.Step(testDT), "back at spawn, above killY")
}

func TestPhysicsSystem_RespawnResetsMotion(t *testing.T) {
	ps := NewPhysicsSystem(createTestWorld())
	ps.Body().SetVelocity(mgl64.Vec3{5, 5, 0})
	settle(ps, 3)

	ps.Respawn()

	assert.Equal(t, mgl64.Vec3{0, 1, 0}, ps.Position())
	assert.Equal(t, mgl64.Vec3{}, ps.Body().Velocity())
}

func TestCharacterBody(t *testing.T) {
	ps := NewPhysicsSystem(createTestWorld())
	body := ps.Body()

	body.SetVelocity(mgl64.Vec3{3, 4, 5})

	assert.Equal(t, mgl64.Vec3{3, 4, 0}, body.Velocity(), "z is dropped")
}

func createTestController(t *testing.T, cfg *config.WorldConfig) (*MovementSystem, *PhysicsSystem) {
	t.Helper()
	ps := NewPhysicsSystem(cfg)
	ms, err := NewMovementSystem(config.DefaultMovementConfig(), ps.Body(), ps)
	require.NoError(t, err)
	ps.SetContactSink(ms)
	return ms, ps
}

// runSteps drives the controller the way the game loop does
func runSteps(ms *MovementSystem, ps *PhysicsSystem, steps int, each func(i int)) {
	for i := 0; i < steps; i++ {
		if each != nil {
			each(i)
		}
		ms.FixedStep(testDT)
		ps.Step(testDT)
	}
}

func TestController_GroundedOnFloor(t *testing.T) {
	ms, ps := createTestController(t, createTestWorld())

	runSteps(ms, ps, 60, nil)

	assert.True(t, ms.OnGround())
	assert.InDelta(t, 0, ps.Body().Velocity().Len(), 0.1, "idle character comes to rest")
}

func TestController_RunsRight(t *testing.T) {
	ms, ps := createTestController(t, createTestWorld())
	runSteps(ms, ps, 30, nil)
	start := ps.Position()

	runSteps(ms, ps, 100, func(int) {
		ms.Sample(entity.InputFrame{Axis: mgl64.Vec2{1, 0}})
	})

	assert.Greater(t, ps.Position().X(), start.X()+5)
	assert.Greater(t, ps.Body().Velocity().X(), 5.0)
	assert.LessOrEqual(t, ps.Body().Velocity().X(), 10.0+0.5)
	assert.True(t, ms.OnGround())
}

func TestController_JumpHeight(t *testing.T) {
	ms, ps := createTestController(t, createTestWorld())
	runSteps(ms, ps, 60, nil)
	rest := ps.Position().Y()

	ms.Sample(entity.InputFrame{JumpPressed: true})
	peak := rest
	runSteps(ms, ps, 60, func(int) {
		if y := ps.Position().Y(); y > peak {
			peak = y
		}
	})

	assert.InDelta(t, ms.Config().JumpHeight, peak-rest, 0.3)
}

func TestController_Deterministic(t *testing.T) {
	run := func() mgl64.Vec3 {
		ms, ps := createTestController(t, createTestWorld())
		runSteps(ms, ps, 150, func(i int) {
			ms.Sample(entity.InputFrame{
				Axis:        mgl64.Vec2{float64(i%3) - 1, 0},
				JumpPressed: i%40 == 0,
			})
		})
		return ps.Position()
	}

	assert.Equal(t, run(), run(), "same inputs give the same trajectory")
}

func TestController_AirJumpOnCleanTakeoff(t *testing.T) {
	tests := []struct {
		name        string
		maxAirJumps int
		wantGrant   bool
	}{
		{name: "ground jump uses the only phase", maxAirJumps: 1, wantGrant: false},
		{name: "second phase is a double jump", maxAirJumps: 2, wantGrant: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms, ps := createTestController(t, createTestWorld())
			cfg := ms.Config()
			cfg.MaxAirJumps = tt.maxAirJumps
			ms.SetConfig(cfg)
			runSteps(ms, ps, 60, nil)
			require.True(t, ms.OnGround())

			ms.Sample(entity.InputFrame{JumpPressed: true})
			runSteps(ms, ps, 5, nil)
			require.False(t, ms.OnGround(), "body left the floor on the jump step")
			require.Equal(t, 1, ms.State().JumpPhase)

			before := ps.Body().Velocity().Y()
			ms.Sample(entity.InputFrame{JumpPressed: true})
			ms.FixedStep(testDT)
			after := ps.Body().Velocity().Y()
			ps.Step(testDT)

			if tt.wantGrant {
				assert.InDelta(t, math.Sqrt(2*9.81*cfg.JumpHeight), after, 1e-6, "air jump tops up to jump speed")
				assert.Equal(t, 2, ms.State().JumpPhase)
			} else {
				assert.Equal(t, before, after, "air jump refused")
				assert.Equal(t, 1, ms.State().JumpPhase)
			}
		})
	}
}
