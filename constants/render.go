package constants

// Display Refresh
const (
	// DefaultRefreshHz is the frame source rate when unconfigured
	DefaultRefreshHz = 30

	// MinRefreshHz and MaxRefreshHz bound the configurable refresh rate
	MinRefreshHz = 10
	MaxRefreshHz = 120
)

// Shadow Map
const (
	// DefaultShadowMapSize is the square depth raster resolution
	DefaultShadowMapSize = 96

	// MinShadowMapSize and MaxShadowMapSize bound the configurable resolution
	MinShadowMapSize = 16
	MaxShadowMapSize = 512
)

// Camera & Shading
const (
	// CameraFocal is the projection focal length as a fraction of view height
	CameraFocal = 1.15

	// CellAspect doubles projected X because terminal cells are ~1:2
	CellAspect = 2.0

	// NearClip drops geometry closer than this to the camera
	NearClip = 0.25

	// AmbientLight is the shading floor for unlit fragments
	AmbientLight = 0.35

	// DiffuseLight scales the lambert term
	DiffuseLight = 0.65
)
