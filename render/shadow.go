package render

import (
	"github.com/Tokenzrey/dinosaurus/scene"
	"github.com/Tokenzrey/dinosaurus/terminal"
	"github.com/Tokenzrey/dinosaurus/vmath"
)

// worldTri is one scene triangle after world transform, tagged with its
// actor's draw properties
type worldTri struct {
	a, b, c       vmath.Vec3
	color         terminal.RGB
	castShadow    bool
	receiveShadow bool
}

// collectTriangles flattens the scene graph into world-space triangles
func collectTriangles(sc *scene.Scene) []worldTri {
	var out []worldTri
	sc.Visit(func(a *scene.Actor, world vmath.Mat4) {
		if a.Mesh == nil || a.Backdrop {
			return
		}
		for _, tri := range a.Mesh.Tris {
			out = append(out, worldTri{
				a:             vmath.M4TransformPoint(world, tri.A),
				b:             vmath.M4TransformPoint(world, tri.B),
				c:             vmath.M4TransformPoint(world, tri.C),
				color:         a.Color,
				castShadow:    a.CastShadow,
				receiveShadow: a.ReceiveShadow,
			})
		}
	})
	return out
}

// lightSpace projects world points into the light's square frustum
type lightSpace struct {
	view     vmath.Mat4
	invWidth float64
}

func newLightSpace(l *scene.DirectionalLight) lightSpace {
	return lightSpace{
		view:     l.View(),
		invWidth: 1.0 / l.FrustumWidth,
	}
}

// project returns shadow-map UV in [0,1] inside the frustum and the
// linear depth along the light axis
func (ls lightSpace) project(p vmath.Vec3) (u, v, depth float64) {
	q := vmath.M4TransformPoint(ls.view, p)
	return q.X*ls.invWidth + 0.5, q.Y*ls.invWidth + 0.5, q.Z
}

// renderShadowMap rasterizes caster triangles into the depth map from the
// light's point of view, keeping the closest depth per texel
func renderShadowMap(m *DepthMap, l *scene.DirectionalLight, ls lightSpace, tris []worldTri) {
	m.Reset(l.Far)
	size := float64(m.Size())
	for _, t := range tris {
		if !t.castShadow {
			continue
		}
		u0, v0, d0 := ls.project(t.a)
		u1, v1, d1 := ls.project(t.b)
		u2, v2, d2 := ls.project(t.c)
		rasterizeTriangle(
			u0*size, v0*size, d0,
			u1*size, v1*size, d1,
			u2*size, v2*size, d2,
			m.Size(), m.Size(),
			func(x, y int, depth, _, _, _ float64) {
				m.Write(x, y, depth)
			},
		)
	}
}
