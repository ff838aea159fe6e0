package scene

import (
	"github.com/Tokenzrey/dinosaurus/vmath"
)

// Camera is a perspective viewpoint with a focal length expressed as a
// fraction of the view height
type Camera struct {
	Eye    vmath.Vec3
	Target vmath.Vec3
	Focal  float64
}

// View returns the world-to-view transform
func (c *Camera) View() vmath.Mat4 {
	return vmath.M4LookAt(c.Eye, c.Target, vmath.Vec3{Y: 1})
}
