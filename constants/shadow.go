package constants

// Soft Shadow Filtering (PCSS)
const (
	// LightWorldSize is the emitting area side of the key light in world units
	LightWorldSize = 0.05

	// LightFrustumWidth is the width of the light's orthographic frustum
	LightFrustumWidth = 3.75

	// LightSizeUV is the light size expressed in shadow-map UV space
	LightSizeUV = LightWorldSize / LightFrustumWidth

	// ShadowNearPlane is the near plane of the light frustum
	ShadowNearPlane = 1.0

	// ShadowSampleCount is the number of taps per filtering pass
	ShadowSampleCount = 17

	// ShadowRingCount spreads the taps across this many spiral rings
	ShadowRingCount = 11
)

// Light Rig
const (
	// ShadowFarPlane is the far plane of the light frustum
	ShadowFarPlane = 40.0

	// LightHeight is the key light's elevation above the ground plane
	LightHeight = 9.0
)
