package replay

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/charmove/internal/domain/entity"
)

// FormatVersion is written into every saved replay
const FormatVersion = "1.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int     `json:"f"`            // Frame number
	X  float64 `json:"x"`            // Axis right
	Y  float64 `json:"y"`            // Axis forward
	JP bool    `json:"jp,omitempty"` // JumpPressed
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string       `json:"version"`
	World     string       `json:"world"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// Frame converts a recorded frame back to an input frame
func (fi FrameInput) Frame() entity.InputFrame {
	return entity.InputFrame{
		Axis:        mgl64.Vec2{fi.X, fi.Y},
		JumpPressed: fi.JP,
	}
}
