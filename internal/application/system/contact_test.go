package system

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestContactAccumulator_Evaluate(t *testing.T) {
	minDot := math.Cos(25 * math.Pi / 180)

	var acc ContactAccumulator
	acc.Evaluate([]mgl64.Vec3{{0, 1, 0}, {1, 0, 0}}, minDot)
	acc.Evaluate([]mgl64.Vec3{{0.1, 0.99, 0}}, minDot)
	acc.Evaluate(nil, minDot)

	assert.Equal(t, 2, acc.Count)
	assert.InDeltaSlice(t, []float64{0.1, 1.99, 0}, acc.Normal[:], 1e-12, "normals are summed, not averaged")
}

func TestContactAccumulator_Boundary(t *testing.T) {
	minDot := 0.5

	var acc ContactAccumulator
	acc.Evaluate([]mgl64.Vec3{{math.Sqrt(0.75), 0.5, 0}}, minDot)
	assert.Equal(t, 1, acc.Count, "inclusive at the limit")

	acc.Reset()
	acc.Evaluate([]mgl64.Vec3{{math.Sqrt(0.75), math.Nextafter(0.5, 0), 0}}, minDot)
	assert.Equal(t, 0, acc.Count)
	assert.Equal(t, mgl64.Vec3{}, acc.Normal)
}

func TestContactAccumulator_Reset(t *testing.T) {
	acc := ContactAccumulator{Count: 3, Normal: mgl64.Vec3{0, 3, 0}}
	acc.Reset()

	assert.Equal(t, ContactAccumulator{}, acc)
}
