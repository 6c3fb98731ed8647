// Package physics implements the movement core of the runner: a pure,
// frame-rate independent simulation of a single agent moving over static
// axis-aligned box platforms.
//
// Nothing in this package knows about terminals, storage or settings.
// The caller samples input, measures elapsed time and calls Step.
package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is the world-space vector type used throughout the core.
type Vec3 = mgl64.Vec3

// V3 is shorthand for constructing a Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// normalizeOrZero returns v scaled to unit length, or the zero vector when
// v has no length. mgl64's Normalize divides by zero in that case.
func normalizeOrZero(v Vec3) Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	return v.Mul(1 / l)
}

// HorizontalSpeed returns the length of the X/Z component of v.
func HorizontalSpeed(v Vec3) float64 {
	return math.Hypot(v.X(), v.Z())
}
