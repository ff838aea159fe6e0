package game

import (
	"github.com/Tokenzrey/dinosaurus/vmath"
)

// AABB is an axis-aligned box used for lane collision
type AABB struct {
	Min, Max vmath.Vec3
}

// Intersects reports whether the boxes overlap on all three axes
func (a AABB) Intersects(b AABB) bool {
	return a.Min.X < b.Max.X && b.Min.X < a.Max.X &&
		a.Min.Y < b.Max.Y && b.Min.Y < a.Max.Y &&
		a.Min.Z < b.Max.Z && b.Min.Z < a.Max.Z
}
