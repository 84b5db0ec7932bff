package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/charmove/internal/domain/entity"
)

// ContactAccumulator gathers ground contacts reported by the physics engine
// during one step. The engine may report any number of batches per step;
// each batch adds to the totals. Reset empties it at the end of the step.
type ContactAccumulator struct {
	Count  int
	Normal mgl64.Vec3 // vector sum of ground normals, not averaged
}

// Evaluate counts every normal whose vertical component is at least
// minGroundDot and adds it to the running sum. Zero or degenerate normals
// are taken as-is.
func (a *ContactAccumulator) Evaluate(normals []mgl64.Vec3, minGroundDot float64) {
	for _, n := range normals {
		if n.Dot(entity.Up) >= minGroundDot {
			a.Count++
			a.Normal = a.Normal.Add(n)
		}
	}
}

// Reset clears the accumulator for the next step
func (a *ContactAccumulator) Reset() {
	a.Count = 0
	a.Normal = mgl64.Vec3{}
}
