package vmath

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func v3AlmostEqual(a, b Vec3) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y) && almostEqual(a.Z, b.Z)
}

func TestV3Normalize(t *testing.T) {
	v := V3Normalize(Vec3{3, 4, 0})
	if !almostEqual(V3Mag(v), 1.0) {
		t.Errorf("Expected unit magnitude, got %f", V3Mag(v))
	}

	zero := V3Normalize(Vec3{})
	if zero != (Vec3{}) {
		t.Errorf("Expected zero vector to normalize to zero, got %+v", zero)
	}
}

func TestV3Cross(t *testing.T) {
	got := V3Cross(Vec3{X: 1}, Vec3{Y: 1})
	if !v3AlmostEqual(got, Vec3{Z: 1}) {
		t.Errorf("Expected X cross Y = Z, got %+v", got)
	}
}

func TestM4MulOrder(t *testing.T) {
	// Translate after scale: point (1,0,0) scaled to (2,0,0) then moved to (5,0,0)
	m := M4Mul(M4Translate(Vec3{X: 3}), M4Scale(Vec3{2, 2, 2}))
	got := M4TransformPoint(m, Vec3{X: 1})
	if !v3AlmostEqual(got, Vec3{X: 5}) {
		t.Errorf("Expected (5,0,0), got %+v", got)
	}
}

func TestM4LookAt(t *testing.T) {
	view := M4LookAt(Vec3{Z: -5}, Vec3{}, Vec3{Y: 1})

	eye := M4TransformPoint(view, Vec3{Z: -5})
	if !v3AlmostEqual(eye, Vec3{}) {
		t.Errorf("Expected eye to map to origin, got %+v", eye)
	}

	target := M4TransformPoint(view, Vec3{})
	if !v3AlmostEqual(target, Vec3{Z: 5}) {
		t.Errorf("Expected target at depth 5, got %+v", target)
	}

	// A point to the viewer's right stays on +X
	right := M4TransformPoint(view, Vec3{X: 2, Z: -5})
	if !v3AlmostEqual(right, Vec3{X: 2}) {
		t.Errorf("Expected right offset preserved, got %+v", right)
	}
}

func TestM4LookAtDegenerateUp(t *testing.T) {
	// Looking straight down with a Y up vector must still produce a valid basis
	view := M4LookAt(Vec3{Y: 10}, Vec3{}, Vec3{Y: 1})
	got := M4TransformPoint(view, Vec3{})
	if !almostEqual(got.Z, 10) {
		t.Errorf("Expected depth 10 at target, got %+v", got)
	}
	if math.IsNaN(got.X) || math.IsNaN(got.Y) {
		t.Errorf("Expected finite transform, got %+v", got)
	}
}

func TestHashUnitDeterministic(t *testing.T) {
	a := HashUnit(0.25, 0.75)
	b := HashUnit(0.25, 0.75)
	if a != b {
		t.Errorf("Expected identical hash for identical input, got %f and %f", a, b)
	}
}

func TestHashUnitRange(t *testing.T) {
	for i := 0; i < 32; i++ {
		for j := 0; j < 32; j++ {
			h := HashUnit(float64(i)/32, float64(j)/32)
			if h < 0 || h >= 1 {
				t.Fatalf("Hash out of [0,1): %f at (%d,%d)", h, i, j)
			}
		}
	}
}

func TestHashUnitVaries(t *testing.T) {
	if HashUnit(0.1, 0.2) == HashUnit(0.2, 0.1) {
		t.Error("Expected different hashes for swapped coordinates")
	}
}

func TestClampLerp(t *testing.T) {
	if got := Clamp(5, 0, 1); got != 1 {
		t.Errorf("Expected 1, got %f", got)
	}
	if got := Clamp(-5, 0, 1); got != 0 {
		t.Errorf("Expected 0, got %f", got)
	}
	if got := Lerp(2, 4, 0.5); !almostEqual(got, 3) {
		t.Errorf("Expected 3, got %f", got)
	}
}

func TestIsFinite(t *testing.T) {
	if IsFinite(math.NaN()) {
		t.Error("Expected NaN to be non-finite")
	}
	if IsFinite(math.Inf(1)) {
		t.Error("Expected +Inf to be non-finite")
	}
	if !IsFinite(0) {
		t.Error("Expected 0 to be finite")
	}
}
