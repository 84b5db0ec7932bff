package entity

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// World axes. Y is up; X and Z span the horizontal plane.
var (
	Up      = mgl64.Vec3{0, 1, 0}
	Right   = mgl64.Vec3{1, 0, 0}
	Forward = mgl64.Vec3{0, 0, 1}
)

// normalizeEpsilon is the length below which a vector has no direction.
const normalizeEpsilon = 1e-5

// Normalized returns v scaled to unit length.
// Vectors shorter than normalizeEpsilon normalize to zero instead of NaN.
func Normalized(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l <= normalizeEpsilon {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

// ProjectOnPlane removes the part of v along normal.
// normal is used as given; it is not normalized first.
func ProjectOnPlane(v, normal mgl64.Vec3) mgl64.Vec3 {
	return v.Sub(normal.Mul(v.Dot(normal)))
}

// MoveTowards moves current toward target by at most maxDelta.
func MoveTowards(current, target, maxDelta float64) float64 {
	if math.Abs(target-current) <= maxDelta {
		return target
	}
	return current + math.Copysign(maxDelta, target-current)
}

// ClampMagnitude shortens v to maxLength if it is longer.
func ClampMagnitude(v mgl64.Vec2, maxLength float64) mgl64.Vec2 {
	l := v.Len()
	if l > maxLength && l > 0 {
		return v.Mul(maxLength / l)
	}
	return v
}

// Flatten drops the vertical component of v and normalizes the rest.
func Flatten(v mgl64.Vec3) mgl64.Vec3 {
	v[1] = 0
	return Normalized(v)
}
