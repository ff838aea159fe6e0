// Package scene holds the renderable object graph: actors with meshes
// and transforms, the camera, and the shadow-casting light rig
package scene

import (
	"github.com/Tokenzrey/dinosaurus/vmath"
)

// Triangle is one world-space face after transform
type Triangle struct {
	A, B, C vmath.Vec3
}

// Mesh is a triangle soup in actor-local space
type Mesh struct {
	Tris []Triangle
}

// BoxMesh builds a box centered on X/Z with its base on y=0
func BoxMesh(w, h, d float64) *Mesh {
	hw, hd := w/2, d/2
	// Corner layout: bottom 0-3, top 4-7, counter-clockwise from -X/-Z
	c := [8]vmath.Vec3{
		{X: -hw, Y: 0, Z: -hd},
		{X: hw, Y: 0, Z: -hd},
		{X: hw, Y: 0, Z: hd},
		{X: -hw, Y: 0, Z: hd},
		{X: -hw, Y: h, Z: -hd},
		{X: hw, Y: h, Z: -hd},
		{X: hw, Y: h, Z: hd},
		{X: -hw, Y: h, Z: hd},
	}
	quads := [6][4]int{
		{0, 1, 5, 4}, // front (-Z)
		{2, 3, 7, 6}, // back (+Z)
		{3, 0, 4, 7}, // left (-X)
		{1, 2, 6, 5}, // right (+X)
		{4, 5, 6, 7}, // top
		{3, 2, 1, 0}, // bottom
	}
	m := &Mesh{Tris: make([]Triangle, 0, 12)}
	for _, q := range quads {
		m.Tris = append(m.Tris,
			Triangle{c[q[0]], c[q[1]], c[q[2]]},
			Triangle{c[q[0]], c[q[2]], c[q[3]]},
		)
	}
	return m
}

// PlaneMesh builds a y=0 rectangle centered at the origin
func PlaneMesh(w, d float64) *Mesh {
	hw, hd := w/2, d/2
	a := vmath.Vec3{X: -hw, Z: -hd}
	b := vmath.Vec3{X: hw, Z: -hd}
	c := vmath.Vec3{X: hw, Z: hd}
	e := vmath.Vec3{X: -hw, Z: hd}
	return &Mesh{Tris: []Triangle{{a, b, c}, {a, c, e}}}
}

// WedgeMesh builds a triangular prism with its base on y=0, ridge along Z
func WedgeMesh(w, h, d float64) *Mesh {
	hw, hd := w/2, d/2
	b0 := vmath.Vec3{X: -hw, Y: 0, Z: -hd}
	b1 := vmath.Vec3{X: hw, Y: 0, Z: -hd}
	b2 := vmath.Vec3{X: hw, Y: 0, Z: hd}
	b3 := vmath.Vec3{X: -hw, Y: 0, Z: hd}
	t0 := vmath.Vec3{X: 0, Y: h, Z: -hd}
	t1 := vmath.Vec3{X: 0, Y: h, Z: hd}
	return &Mesh{Tris: []Triangle{
		{b0, b1, t0},
		{b3, b2, t1},
		{b0, t0, t1}, {b0, t1, b3},
		{b1, b2, t1}, {b1, t1, t0},
		{b0, b3, b2}, {b0, b2, b1},
	}}
}
