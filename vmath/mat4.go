package vmath

import (
	"math"
)

// Mat4 is a row-major 4x4 affine transform matrix
type Mat4 [16]float64

func M4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// M4Mul composes two transforms; the result applies b first, then a
func M4Mul(a, b Mat4) Mat4 {
	var out Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += a[r*4+k] * b[k*4+c]
			}
			out[r*4+c] = sum
		}
	}
	return out
}

func M4Translate(t Vec3) Mat4 {
	return Mat4{
		1, 0, 0, t.X,
		0, 1, 0, t.Y,
		0, 0, 1, t.Z,
		0, 0, 0, 1,
	}
}

func M4Scale(s Vec3) Mat4 {
	return Mat4{
		s.X, 0, 0, 0,
		0, s.Y, 0, 0,
		0, 0, s.Z, 0,
		0, 0, 0, 1,
	}
}

func M4RotateX(rad float64) Mat4 {
	c, s := math.Cos(rad), math.Sin(rad)
	return Mat4{
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	}
}

func M4RotateY(rad float64) Mat4 {
	c, s := math.Cos(rad), math.Sin(rad)
	return Mat4{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	}
}

func M4RotateZ(rad float64) Mat4 {
	c, s := math.Cos(rad), math.Sin(rad)
	return Mat4{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// M4LookAt builds a view transform with the viewer at eye facing target
// View space: +X right, +Y up, +Z depth away from the viewer
func M4LookAt(eye, target, up Vec3) Mat4 {
	f := V3Normalize(V3Sub(target, eye))
	r := V3Cross(up, f)
	if V3MagSq(r) < 1e-12 {
		// Up parallel to the view direction, fall back to world Z
		r = V3Cross(Vec3{Z: 1}, f)
	}
	r = V3Normalize(r)
	u := V3Cross(f, r)
	return Mat4{
		r.X, r.Y, r.Z, -V3Dot(r, eye),
		u.X, u.Y, u.Z, -V3Dot(u, eye),
		f.X, f.Y, f.Z, -V3Dot(f, eye),
		0, 0, 0, 1,
	}
}

// M4TransformPoint applies m to v with an implicit w of 1
func M4TransformPoint(m Mat4, v Vec3) Vec3 {
	return Vec3{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z + m[3],
		Y: m[4]*v.X + m[5]*v.Y + m[6]*v.Z + m[7],
		Z: m[8]*v.X + m[9]*v.Y + m[10]*v.Z + m[11],
	}
}

// M4TransformDir applies the rotational part of m to v, ignoring translation
func M4TransformDir(m Mat4, v Vec3) Vec3 {
	return Vec3{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		Y: m[4]*v.X + m[5]*v.Y + m[6]*v.Z,
		Z: m[8]*v.X + m[9]*v.Y + m[10]*v.Z,
	}
}
