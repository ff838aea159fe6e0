// Package render draws the scene into a terminal cell buffer: a light-space
// depth pass, a camera pass with percentage-closer soft shadows, and UI
// overlays composited on top
package render

import (
	"math"

	"github.com/Tokenzrey/dinosaurus/constants"
	"github.com/Tokenzrey/dinosaurus/vmath"
)

// ShadowSampler returns the decoded linear depth stored at (u, v)
type ShadowSampler func(u, v float64) float64

// tapOffsets is one spiral-ring sample pattern, magnitude <= 1 per tap
type tapOffsets [constants.ShadowSampleCount]vmath.Vec2

// sampleOffsets derives the tap pattern from the fragment's own (u, v)
// so neighboring fragments decorrelate without any shared state
func sampleOffsets(u, v float64) tapOffsets {
	const invNum = 1.0 / constants.ShadowSampleCount
	const angleStep = 2 * math.Pi * constants.ShadowRingCount / constants.ShadowSampleCount

	angle := vmath.HashUnit(u, v) * 2 * math.Pi
	radius := invNum

	var offs tapOffsets
	for i := range offs {
		r := math.Pow(radius, 0.75)
		offs[i] = vmath.Vec2{X: math.Cos(angle) * r, Y: math.Sin(angle) * r}
		radius += invNum
		angle += angleStep
	}
	return offs
}

// searchBlockers averages the depths of taps closer to the light than the
// receiver; found is zero when the region is unoccluded
func searchBlockers(sample ShadowSampler, u, v, zReceiver, radius float64, offs *tapOffsets) (avg float64, found int) {
	sum := 0.0
	for _, o := range offs {
		d := sample(u+o.X*radius, v+o.Y*radius)
		if d < zReceiver {
			sum += d
			found++
		}
	}
	if found == 0 {
		return 0, 0
	}
	return sum / float64(found), found
}

// penumbraRadius converts blocker-to-receiver separation into a filter
// radius in UV space; farther blockers widen the penumbra
func penumbraRadius(zReceiver, avgBlockerDepth float64) float64 {
	ratio := (zReceiver - avgBlockerDepth) / avgBlockerDepth
	return ratio * constants.LightSizeUV * constants.ShadowNearPlane / zReceiver
}

// filteredVisibility runs two passes of taps, the second with swapped and
// negated components to stand in for an independent pattern, and returns
// the fraction of taps that see the receiver unoccluded
func filteredVisibility(sample ShadowSampler, u, v, zReceiver, radius float64, offs *tapOffsets) float64 {
	lit := 0
	for _, o := range offs {
		if sample(u+o.X*radius, v+o.Y*radius) >= zReceiver {
			lit++
		}
		if sample(u-o.Y*radius, v-o.X*radius) >= zReceiver {
			lit++
		}
	}
	return float64(lit) / float64(2*constants.ShadowSampleCount)
}

// SoftShadow returns the light attenuation at a shadow-space coordinate,
// 1 fully lit to 0 fully shadowed, with a penumbra that widens as the
// blocker sits farther from the receiver
//
// The function is pure: identical sampler contents and coordinates always
// produce the identical result, which keeps per-fragment parallel use safe
func SoftShadow(sample ShadowSampler, u, v, zReceiver float64) float64 {
	// Receivers at or inside the near plane have a degenerate search
	// region, treat them as lit
	if !vmath.IsFinite(zReceiver) || zReceiver <= constants.ShadowNearPlane {
		return 1.0
	}

	offs := sampleOffsets(u, v)

	searchRadius := constants.LightSizeUV * (zReceiver - constants.ShadowNearPlane) / zReceiver
	avg, found := searchBlockers(sample, u, v, zReceiver, searchRadius, &offs)
	if found == 0 {
		return 1.0
	}
	if !vmath.IsFinite(avg) || avg <= 0 {
		return 1.0
	}

	radius := penumbraRadius(zReceiver, avg)
	if !vmath.IsFinite(radius) {
		return 1.0
	}

	return filteredVisibility(sample, u, v, zReceiver, radius, &offs)
}
