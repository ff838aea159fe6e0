package render

import (
	"math"
	"testing"

	"github.com/Tokenzrey/dinosaurus/constants"
)

func uniformDepth(d float64) ShadowSampler {
	return func(u, v float64) float64 { return d }
}

func TestSampleOffsetsCount(t *testing.T) {
	offs := sampleOffsets(0.3, 0.7)
	if len(offs) != constants.ShadowSampleCount {
		t.Errorf("Expected %d offsets, got %d", constants.ShadowSampleCount, len(offs))
	}
}

func TestSampleOffsetsMagnitude(t *testing.T) {
	seeds := [][2]float64{{0, 0}, {0.5, 0.5}, {0.123, 0.987}, {1, 1}}
	for _, s := range seeds {
		offs := sampleOffsets(s[0], s[1])
		for i, o := range offs {
			mag := math.Hypot(o.X, o.Y)
			if mag > 1.0+1e-12 {
				t.Errorf("Offset %d for seed %v has magnitude %f > 1", i, s, mag)
			}
		}
	}
}

func TestSampleOffsetsDeterministic(t *testing.T) {
	a := sampleOffsets(0.25, 0.75)
	b := sampleOffsets(0.25, 0.75)
	if a != b {
		t.Error("Expected identical offsets for identical seed")
	}

	c := sampleOffsets(0.75, 0.25)
	if a == c {
		t.Error("Expected different offsets for different seed")
	}
}

func TestSampleOffsetsSpiralGrowth(t *testing.T) {
	offs := sampleOffsets(0.4, 0.6)
	first := math.Hypot(offs[0].X, offs[0].Y)
	last := math.Hypot(offs[len(offs)-1].X, offs[len(offs)-1].Y)
	if last <= first {
		t.Errorf("Expected spiral radius to grow, first %f last %f", first, last)
	}
	if math.Abs(last-1.0) > 1e-9 {
		t.Errorf("Expected final ring at radius 1, got %f", last)
	}
}

func TestSoftShadowNoOccluder(t *testing.T) {
	// Uniform far depth means no sample is closer than the receiver
	sampler := uniformDepth(1.0)
	coords := [][2]float64{{0.1, 0.1}, {0.5, 0.5}, {0.9, 0.2}}
	for _, c := range coords {
		if got := SoftShadow(sampler, c[0], c[1], 0.5); got != 1.0 {
			t.Errorf("Expected fully lit at %v, got %f", c, got)
		}
	}
}

func TestSoftShadowNoBlockerShortCircuit(t *testing.T) {
	// Receiver beyond the near plane, all map depths farther than it
	calls := 0
	sampler := func(u, v float64) float64 {
		calls++
		return 10.0
	}
	if got := SoftShadow(sampler, 0.5, 0.5, 2.0); got != 1.0 {
		t.Errorf("Expected fully lit, got %f", got)
	}
	if calls != constants.ShadowSampleCount {
		t.Errorf("Expected search pass only (%d samples), got %d", constants.ShadowSampleCount, calls)
	}
}

func TestFilteredVisibilityFullOcclusion(t *testing.T) {
	sampler := uniformDepth(0.0)
	offs := sampleOffsets(0.5, 0.5)
	for _, radius := range []float64{0, 0.001, 0.05, 0.5, 10} {
		if got := filteredVisibility(sampler, 0.5, 0.5, 0.5, radius, &offs); got != 0.0 {
			t.Errorf("Expected full occlusion at radius %f, got %f", radius, got)
		}
	}
}

func TestSoftShadowFullOcclusion(t *testing.T) {
	// Every tap sees a blocker at depth 0.5 under a receiver at 3.0
	sampler := uniformDepth(0.5)
	if got := SoftShadow(sampler, 0.5, 0.5, 3.0); got != 0.0 {
		t.Errorf("Expected fully shadowed, got %f", got)
	}
}

func TestPenumbraRadiusMonotonic(t *testing.T) {
	const zReceiver = 6.0
	prev := -math.MaxFloat64
	// Walking the blocker away from the receiver must not narrow the filter
	for _, avg := range []float64{5.5, 4.0, 3.0, 2.0, 1.2} {
		r := penumbraRadius(zReceiver, avg)
		if r < prev {
			t.Errorf("Expected radius to grow as blocker depth drops, got %f after %f at avg %f", r, prev, avg)
		}
		prev = r
	}
}

func TestSoftShadowNearPlaneDegenerate(t *testing.T) {
	sampler := uniformDepth(0.0)
	for _, z := range []float64{constants.ShadowNearPlane, 0.5, 0.0, -1.0} {
		if got := SoftShadow(sampler, 0.5, 0.5, z); got != 1.0 {
			t.Errorf("Expected lit for degenerate receiver depth %f, got %f", z, got)
		}
	}
}

func TestSoftShadowNonFiniteReceiver(t *testing.T) {
	sampler := uniformDepth(0.5)
	for _, z := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if got := SoftShadow(sampler, 0.5, 0.5, z); got != 1.0 {
			t.Errorf("Expected lit for non-finite receiver depth, got %f", got)
		}
	}
}

func TestSoftShadowNonFiniteMap(t *testing.T) {
	// A NaN-poisoned map must not leak non-finite attenuation
	sampler := uniformDepth(math.NaN())
	got := SoftShadow(sampler, 0.5, 0.5, 2.0)
	if math.IsNaN(got) || got < 0 || got > 1 {
		t.Errorf("Expected attenuation in [0,1], got %f", got)
	}
}

func TestSoftShadowPure(t *testing.T) {
	m := NewDepthMap(32)
	m.Reset(20.0)
	// A blocker square in the middle of the map at depth 2
	for y := 12; y < 20; y++ {
		for x := 12; x < 20; x++ {
			m.Write(x, y, 2.0)
		}
	}

	for i := 0; i < 3; i++ {
		a := SoftShadow(m.Sample, 0.55, 0.55, 5.0)
		b := SoftShadow(m.Sample, 0.55, 0.55, 5.0)
		if a != b {
			t.Fatalf("Expected identical results for identical inputs, got %f and %f", a, b)
		}
	}
}

func TestSoftShadowPenumbraGradient(t *testing.T) {
	// A half-plane blocker at depth 2: receivers at depth 5 under the
	// blocker go dark, receivers far on the open side stay lit
	m := NewDepthMap(64)
	m.Reset(20.0)
	for y := 0; y < 64; y++ {
		for x := 0; x < 32; x++ {
			m.Write(x, y, 2.0)
		}
	}

	dark := SoftShadow(m.Sample, 0.2, 0.5, 5.0)
	lit := SoftShadow(m.Sample, 0.9, 0.5, 5.0)

	if dark != 0.0 {
		t.Errorf("Expected full shadow deep under blocker, got %f", dark)
	}
	if lit != 1.0 {
		t.Errorf("Expected fully lit far from blocker, got %f", lit)
	}
}

func TestSoftShadowRange(t *testing.T) {
	m := NewDepthMap(48)
	m.Reset(20.0)
	for y := 16; y < 32; y++ {
		for x := 16; x < 32; x++ {
			m.Write(x, y, 3.0)
		}
	}

	for i := 0; i <= 20; i++ {
		for j := 0; j <= 20; j++ {
			u := float64(i) / 20
			v := float64(j) / 20
			got := SoftShadow(m.Sample, u, v, 6.0)
			if got < 0 || got > 1 {
				t.Fatalf("Attenuation out of range at (%f,%f): %f", u, v, got)
			}
		}
	}
}
