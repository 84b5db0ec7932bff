package config

// MovementConfig tunes the character controller (movement.json / movement.yaml).
// Every field has a documented range; Clamp pulls values back into it.
type MovementConfig struct {
	MaxSpeed              float64 `json:"maxSpeed" yaml:"maxSpeed"`                           // [0, 100]
	MaxGroundAcceleration float64 `json:"maxGroundAcceleration" yaml:"maxGroundAcceleration"` // [0, 100]
	MaxAirAcceleration    float64 `json:"maxAirAcceleration" yaml:"maxAirAcceleration"`       // [0, 100]
	JumpHeight            float64 `json:"jumpHeight" yaml:"jumpHeight"`                       // [0, 10]
	MaxAirJumps           int     `json:"maxAirJumps" yaml:"maxAirJumps"`                     // [0, 5]
	MaxGroundAngle        float64 `json:"maxGroundAngle" yaml:"maxGroundAngle"`               // degrees, [0, 90]
}

// Ranges for MovementConfig fields
const (
	MaxSpeedLimit        = 100.0
	MaxAccelerationLimit = 100.0
	MaxJumpHeightLimit   = 10.0
	MaxAirJumpsLimit     = 5
	MaxGroundAngleLimit  = 90.0
)

// DefaultMovementConfig returns the stock tuning
func DefaultMovementConfig() MovementConfig {
	return MovementConfig{
		MaxSpeed:              10,
		MaxGroundAcceleration: 10,
		MaxAirAcceleration:    1,
		JumpHeight:            2,
		MaxAirJumps:           0,
		MaxGroundAngle:        25,
	}
}

// Clamp returns a copy of c with every field pulled into its range.
// Out-of-range values are never rejected.
func (c MovementConfig) Clamp() MovementConfig {
	c.MaxSpeed = clampFloat(c.MaxSpeed, 0, MaxSpeedLimit)
	c.MaxGroundAcceleration = clampFloat(c.MaxGroundAcceleration, 0, MaxAccelerationLimit)
	c.MaxAirAcceleration = clampFloat(c.MaxAirAcceleration, 0, MaxAccelerationLimit)
	c.JumpHeight = clampFloat(c.JumpHeight, 0, MaxJumpHeightLimit)
	c.MaxGroundAngle = clampFloat(c.MaxGroundAngle, 0, MaxGroundAngleLimit)
	if c.MaxAirJumps < 0 {
		c.MaxAirJumps = 0
	} else if c.MaxAirJumps > MaxAirJumpsLimit {
		c.MaxAirJumps = MaxAirJumpsLimit
	}
	return c
}

func clampFloat(v, lo, hi float64) float64 {
	// NaN fails both comparisons; treat it as the low bound
	if !(v >= lo) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// WorldConfig is the root config for world.json: the demo physics world
type WorldConfig struct {
	Name      string          `json:"name" yaml:"name"`
	Display   DisplayConfig   `json:"display" yaml:"display"`
	Physics   PhysicsSettings `json:"physics" yaml:"physics"`
	Character CharacterConfig `json:"character" yaml:"character"`
	Segments  []SegmentConfig `json:"segments" yaml:"segments"`
}

// DisplayConfig sizes the window and maps world meters to pixels
type DisplayConfig struct {
	ScreenWidth    int     `json:"screenWidth" yaml:"screenWidth"`
	ScreenHeight   int     `json:"screenHeight" yaml:"screenHeight"`
	Scale          int     `json:"scale" yaml:"scale"`
	Framerate      int     `json:"framerate" yaml:"framerate"` // fixed physics steps per second
	PixelsPerMeter float64 `json:"pixelsPerMeter" yaml:"pixelsPerMeter"`
}

// PhysicsSettings configures the physics space
type PhysicsSettings struct {
	Gravity Vec2 `json:"gravity" yaml:"gravity"`
}

// CharacterConfig describes the character's circle body and spawn point
type CharacterConfig struct {
	Radius   float64 `json:"radius" yaml:"radius"`
	Mass     float64 `json:"mass" yaml:"mass"`
	Friction float64 `json:"friction" yaml:"friction"`
	Spawn    Vec2    `json:"spawn" yaml:"spawn"`
	KillY    float64 `json:"killY" yaml:"killY"` // respawn when the body falls below this height
}

// SegmentConfig is a static line of level geometry
type SegmentConfig struct {
	A        Vec2    `json:"a" yaml:"a"`
	B        Vec2    `json:"b" yaml:"b"`
	Radius   float64 `json:"radius" yaml:"radius"`
	Friction float64 `json:"friction" yaml:"friction"`
}

// Vec2 is a point in the world's vertical x/y plane, in meters
type Vec2 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}
