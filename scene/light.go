package scene

import (
	"github.com/Tokenzrey/dinosaurus/vmath"
)

// DirectionalLight is the shadow-casting key light with a square
// orthographic frustum
type DirectionalLight struct {
	Position     vmath.Vec3
	Target       vmath.Vec3
	FrustumWidth float64
	Near, Far    float64
}

// View returns the world-to-light-space transform
// Light space Z is the linear depth the shadow map stores
func (l *DirectionalLight) View() vmath.Mat4 {
	return vmath.M4LookAt(l.Position, l.Target, vmath.Vec3{Y: 1})
}

// Direction returns the normalized direction the light shines along
func (l *DirectionalLight) Direction() vmath.Vec3 {
	return vmath.V3Normalize(vmath.V3Sub(l.Target, l.Position))
}
