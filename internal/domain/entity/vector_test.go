package entity

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestNormalized(t *testing.T) {
	tests := []struct {
		name string
		in   mgl64.Vec3
		want mgl64.Vec3
	}{
		{name: "unit stays unit", in: Up, want: Up},
		{name: "scaled down", in: mgl64.Vec3{0, 3, 4}, want: mgl64.Vec3{0, 0.6, 0.8}},
		{name: "zero stays zero", in: mgl64.Vec3{}, want: mgl64.Vec3{}},
		{name: "tiny collapses to zero", in: mgl64.Vec3{1e-7, 0, 0}, want: mgl64.Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalized(tt.in)
			assert.InDeltaSlice(t, tt.want[:], got[:], 1e-12)
		})
	}
}

func TestProjectOnPlane(t *testing.T) {
	// flat ground keeps horizontal vectors untouched
	assert.Equal(t, Right, ProjectOnPlane(Right, Up))

	// 45 degree slope rising to the right
	n := Normalized(mgl64.Vec3{-1, 1, 0})
	got := ProjectOnPlane(Right, n)
	assert.InDelta(t, 0.0, got.Dot(n), 1e-12, "projection must lie in the plane")
	assert.InDelta(t, 0.5, got.X(), 1e-12)
	assert.InDelta(t, 0.5, got.Y(), 1e-12)

	// an unnormalized normal is used as given
	got = ProjectOnPlane(Right, mgl64.Vec3{2, 0, 0})
	assert.Equal(t, mgl64.Vec3{-3, 0, 0}, got)
}

func TestMoveTowards(t *testing.T) {
	tests := []struct {
		name                     string
		current, target, maxStep float64
		want                     float64
	}{
		{name: "step up", current: 0, target: 5, maxStep: 0.02, want: 0.02},
		{name: "step down", current: 5, target: 0, maxStep: 1, want: 4},
		{name: "snap when within reach", current: 4.9, target: 5, maxStep: 0.5, want: 5},
		{name: "exact reach", current: 0, target: 1, maxStep: 1, want: 1},
		{name: "zero step holds", current: 3, target: -3, maxStep: 0, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, MoveTowards(tt.current, tt.target, tt.maxStep), 1e-12)
		})
	}
}

func TestClampMagnitude(t *testing.T) {
	got := ClampMagnitude(mgl64.Vec2{1, 1}, 1)
	assert.InDelta(t, 1.0, got.Len(), 1e-12)
	assert.InDelta(t, math.Sqrt2/2, got.X(), 1e-12)

	short := mgl64.Vec2{0.3, -0.4}
	assert.Equal(t, short, ClampMagnitude(short, 1))

	assert.Equal(t, mgl64.Vec2{}, ClampMagnitude(mgl64.Vec2{}, 1))
}

func TestFlatten(t *testing.T) {
	got := Flatten(mgl64.Vec3{0, 5, 2})
	assert.InDeltaSlice(t, Forward[:], got[:], 1e-12)

	// looking straight down has no flat direction
	assert.Equal(t, mgl64.Vec3{}, Flatten(mgl64.Vec3{0, -1, 0}))
}
